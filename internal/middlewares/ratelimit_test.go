package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRateLimitMiddleware(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("requests under the limit pass", func(t *testing.T) {
		handler := RateLimitMiddleware(rdb, 3, time.Minute)(next)

		for i := 0; i < 3; i++ {
			httpReq := httptest.NewRequest(http.MethodGet, "/", nil)
			httpReq.RemoteAddr = "10.0.0.1:12345"
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httpReq)
			assert.Equal(t, http.StatusOK, rr.Code)
		}
	})

	t.Run("requests over the limit are rejected", func(t *testing.T) {
		handler := RateLimitMiddleware(rdb, 2, time.Minute)(next)

		var last int
		for i := 0; i < 4; i++ {
			httpReq := httptest.NewRequest(http.MethodGet, "/", nil)
			httpReq.RemoteAddr = "10.0.0.2:12345"
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httpReq)
			last = rr.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, last)
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		handler := RateLimitMiddleware(rdb, 1, 2*time.Second)(next)

		httpReq := httptest.NewRequest(http.MethodGet, "/", nil)
		httpReq.RemoteAddr = "10.0.0.3:12345"

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httpReq)
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = httptest.NewRecorder()
		handler.ServeHTTP(rr, httpReq)
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)

		// Wait for the window to pass
		time.Sleep(3 * time.Second)

		rr = httptest.NewRecorder()
		handler.ServeHTTP(rr, httpReq)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
