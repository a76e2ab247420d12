package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/task-manager-api/internal/logger"
	"github.com/sbilibin2017/task-manager-api/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserResponse represents the serialized form of a user
// swagger:model UserResponse
type UserResponse struct {
	// Username
	// default: johndoe
	Username string `json:"username"`

	// Email
	// default: john@example.com
	Email string `json:"email"`

	// Phone number, null when absent
	PhoneNumber *string `json:"phone_number"`

	// Creation timestamp in RFC 3339, null when absent
	CreatedAt *string `json:"created_at"`
}

// ListUsersErrorResponse represents an error response when listing users
// swagger:model ListUsersErrorResponse
type ListUsersErrorResponse struct {
	// Error message
	// default: Failed to retrieve users
	Error string `json:"error"`
}

func toUserResponse(u models.UserDB) UserResponse {
	var created *string
	if !u.CreatedAt.IsZero() {
		s := u.CreatedAt.UTC().Format(time.RFC3339)
		created = &s
	}
	return UserResponse{
		Username:    u.Username,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   created,
	}
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Description Returns all users as a JSON array.
// @Tags users
// @Produce json
// @Success 200 {array} handlers.UserResponse "All users"
// @Failure 500 {object} handlers.ListUsersErrorResponse "Failed to retrieve users"
// @Router /api/users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("error retrieving users", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListUsersErrorResponse{
				Error: "Failed to retrieve users",
			})
			return
		}

		resp := make([]UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, toUserResponse(u))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
