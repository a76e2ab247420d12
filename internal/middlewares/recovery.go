package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/task-manager-api/internal/logger"
)

// RecoveryMiddleware converts panics into a generic JSON 500 response.
// Details stay in the log; the client only sees the fixed message.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Log.Errorw("unhandled panic", "path", r.URL.Path, "panic", rec)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "An unexpected error occurred",
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
