package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/task-manager-api/internal/logger"
	"github.com/sbilibin2017/task-manager-api/internal/models"
)

// TaskCreator defines the interface that the service must implement.
type TaskCreator interface {
	Create(ctx context.Context, username string, title, description *string, completed *bool, priority *int) (*models.TaskDB, error)
}

// CreateTaskRequest represents the JSON body for creating a task.
// swagger:model CreateTaskRequest
type CreateTaskRequest struct {
	// Title
	// required: true
	// default: Buy milk
	Title *string `json:"title"`

	// Description
	// default: Two liters, whole
	Description *string `json:"description"`

	// Completion flag, defaults to false
	Completed *bool `json:"completed"`

	// Priority, 1-5, defaults to 1
	Priority *int `json:"priority"`
}

// CreateTaskResponse represents a successful task creation response
// swagger:model CreateTaskResponse
type CreateTaskResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// Created task
	Data TaskResponse `json:"data"`
}

// CreateTaskErrorResponse represents an error response for task creation
// swagger:model CreateTaskErrorResponse
type CreateTaskErrorResponse struct {
	// Error message
	// default: Failed to create task
	Error string `json:"error"`
}

// NewCreateTaskHandler returns an HTTP handler creating a task for a user.
// A missing or empty JSON body is a 400; an unknown user and any storage
// failure are the generic 500.
// @Summary Create a task for a user
// @Description Creates a new task owned by the given user.
// @Tags tasks
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param createTaskRequest body handlers.CreateTaskRequest true "Task to create"
// @Success 200 {object} handlers.CreateTaskResponse "Created task"
// @Failure 400 {object} handlers.CreateTaskErrorResponse "No data provided"
// @Failure 500 {object} handlers.CreateTaskErrorResponse "Failed to create task"
// @Router /api/users/{username}/tasks [post]
func NewCreateTaskHandler(svc TaskCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Log.Errorw("error reading request body", "username", username, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CreateTaskErrorResponse{
				Error: "Failed to create task",
			})
			return
		}

		if emptyBody(body) {
			logger.Log.Warn("invalid request: no JSON data provided")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateTaskErrorResponse{
				Error: "No data provided",
			})
			return
		}

		var req CreateTaskRequest
		if err := json.Unmarshal(body, &req); err != nil {
			logger.Log.Errorw("error creating task", "username", username, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CreateTaskErrorResponse{
				Error: "Failed to create task",
			})
			return
		}

		task, err := svc.Create(r.Context(), username, req.Title, req.Description, req.Completed, req.Priority)
		if err != nil {
			logger.Log.Errorw("error creating task", "username", username, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CreateTaskErrorResponse{
				Error: "Failed to create task",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CreateTaskResponse{
			Success: true,
			Data:    toTaskResponse(*task),
		})
	}
}
