package middlewares

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/task-manager-api/internal/logger"
)

// RateLimitMiddleware returns a middleware enforcing a fixed-window
// per-client-IP request limit backed by Redis. When Redis is
// unreachable the request is let through.
func RateLimitMiddleware(client *redis.Client, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := fmt.Sprintf("ratelimit:%s", ip)

			count, err := client.Incr(ctx, key).Result()
			if err != nil {
				logger.Log.Errorw("rate limit counter unavailable", "key", key, "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				client.Expire(ctx, key, window)
			}

			if count > int64(limit) {
				logger.Log.Warnw("rate limit exceeded", "key", key, "count", count)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Too many requests",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
