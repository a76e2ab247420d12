package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/task-manager-api/internal/logger"
	"github.com/sbilibin2017/task-manager-api/internal/models"
)

// TaskLister defines the interface that the service must implement.
type TaskLister interface {
	ListByUser(ctx context.Context, username string) ([]models.TaskDB, error)
}

// TaskResponse represents the serialized form of a task
// swagger:model TaskResponse
type TaskResponse struct {
	// Task identifier
	// default: 1
	TaskID int64 `json:"task_id"`

	// Title
	// default: Buy milk
	Title string `json:"title"`

	// Description, null when absent
	Description *string `json:"description"`

	// Owning username
	// default: johndoe
	UserUsername string `json:"user_username"`

	// Completion flag
	// default: false
	Completed bool `json:"completed"`

	// Priority, 1-5
	// default: 1
	Priority int `json:"priority"`
}

// ListTasksErrorResponse represents an error response when listing tasks
// swagger:model ListTasksErrorResponse
type ListTasksErrorResponse struct {
	// Error message
	// default: Failed to retrieve tasks
	Error string `json:"error"`
}

func toTaskResponse(t models.TaskDB) TaskResponse {
	return TaskResponse{
		TaskID:       t.TaskID,
		Title:        t.Title,
		Description:  t.Description,
		UserUsername: t.Username,
		Completed:    t.Completed,
		Priority:     t.Priority,
	}
}

// NewListTasksHandler returns an HTTP handler listing a user's tasks.
// An unknown username surfaces as the generic 500, never a 404.
// @Summary List tasks for a user
// @Description Returns all tasks belonging to the given user as a JSON array.
// @Tags tasks
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} handlers.TaskResponse "Tasks of the user"
// @Failure 500 {object} handlers.ListTasksErrorResponse "Failed to retrieve tasks"
// @Router /api/users/{username}/tasks [get]
func NewListTasksHandler(svc TaskLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		tasks, err := svc.ListByUser(r.Context(), username)
		if err != nil {
			logger.Log.Errorw("error retrieving tasks", "username", username, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListTasksErrorResponse{
				Error: "Failed to retrieve tasks",
			})
			return
		}

		resp := make([]TaskResponse, 0, len(tasks))
		for _, t := range tasks {
			resp = append(resp, toTaskResponse(t))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
