package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/task-manager-api/internal/logger"
)

// Endpoint describes one API route in the root listing.
type Endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// HomeResponse represents the static API description served at the root
// swagger:model HomeResponse
type HomeResponse struct {
	// API name
	// default: Task Manager API
	Message string `json:"message"`

	// API version
	// default: 1.0
	Version string `json:"version"`

	// Available endpoints
	Endpoints []Endpoint `json:"endpoints"`
}

// NewHomeHandler returns an HTTP handler serving the API description.
// @Summary API description
// @Description Returns the API name, version, and available endpoints.
// @Tags meta
// @Produce json
// @Success 200 {object} handlers.HomeResponse "API description"
// @Router / [get]
func NewHomeHandler() http.HandlerFunc {
	resp := HomeResponse{
		Message: "Task Manager API",
		Version: "1.0",
		Endpoints: []Endpoint{
			{Method: "GET", Path: "/api/users", Description: "Get all users"},
			{Method: "POST", Path: "/api/users", Description: "Create a new user"},
			{Method: "GET", Path: "/api/users/{username}/tasks", Description: "Get tasks for a specific user"},
			{Method: "POST", Path: "/api/users/{username}/tasks", Description: "Create a new task for a user"},
			{Method: "POST", Path: "/api/users/{username}/task/{task_id}/complete", Description: "Complete a task for user"},
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		logger.Log.Info("API root accessed")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
