package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/task-manager-api/internal/logger"
)

// NotFoundResponse represents the error body for unknown routes
// swagger:model NotFoundResponse
type NotFoundResponse struct {
	// Error message
	// default: Resource not found
	Error string `json:"error"`
}

// NewNotFoundHandler returns an HTTP handler answering unknown routes.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Log.Warnw("404 error: path not found", "path", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(NotFoundResponse{
			Error: "Resource not found",
		})
	}
}
