package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/task-manager-api/internal/logger"
	"github.com/sbilibin2017/task-manager-api/internal/models"
)

// TaskCompleter defines the interface that the service must implement.
type TaskCompleter interface {
	Complete(ctx context.Context, username string, taskID int64) (*models.TaskDB, error)
}

// CompleteTaskResponse represents a successful task completion response
// swagger:model CompleteTaskResponse
type CompleteTaskResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// Completed task
	Data TaskResponse `json:"data"`
}

// CompleteTaskErrorResponse represents an error response for task completion
// swagger:model CompleteTaskErrorResponse
type CompleteTaskErrorResponse struct {
	// Error message
	// default: Failed to complete task
	Error string `json:"error"`
}

// NewCompleteTaskHandler returns an HTTP handler marking a task completed.
// Completing an already-completed task succeeds. An unknown user, an
// unknown task, and a non-numeric task id are all the generic 500.
// @Summary Complete a task
// @Description Marks the given task of the given user as completed.
// @Tags tasks
// @Produce json
// @Param username path string true "Username"
// @Param task_id path int true "Task ID"
// @Success 200 {object} handlers.CompleteTaskResponse "Completed task"
// @Failure 500 {object} handlers.CompleteTaskErrorResponse "Failed to complete task"
// @Router /api/users/{username}/task/{task_id}/complete [post]
func NewCompleteTaskHandler(svc TaskCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		taskID, err := strconv.ParseInt(chi.URLParam(r, "task_id"), 10, 64)
		if err != nil {
			logger.Log.Errorw("error completing task", "username", username, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CompleteTaskErrorResponse{
				Error: "Failed to complete task",
			})
			return
		}

		task, err := svc.Complete(r.Context(), username, taskID)
		if err != nil {
			logger.Log.Errorw("error completing task", "username", username, "task_id", taskID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CompleteTaskErrorResponse{
				Error: "Failed to complete task",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CompleteTaskResponse{
			Success: true,
			Data:    toTaskResponse(*task),
		})
	}
}
