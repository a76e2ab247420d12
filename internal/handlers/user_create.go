package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/sbilibin2017/task-manager-api/internal/logger"
	"github.com/sbilibin2017/task-manager-api/internal/models"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, username, email, phoneNumber *string) (*models.UserDB, error)
}

// CreateUserRequest represents the JSON body for creating a user.
// Fields are read permissively: absent fields stay nil and reach the
// store as NULL.
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Username
	// required: true
	// default: johndoe
	Username *string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email *string `json:"email"`

	// Phone number
	// default: +15551234567
	PhoneNumber *string `json:"phone_number"`
}

// CreateUserResponse represents a successful user creation response
// swagger:model CreateUserResponse
type CreateUserResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// Created user
	Data UserResponse `json:"data"`
}

// CreateUserErrorResponse represents an error response for user creation
// swagger:model CreateUserErrorResponse
type CreateUserErrorResponse struct {
	// Error message
	// default: Failed to create user
	Error string `json:"error"`
}

// NewCreateUserHandler returns an HTTP handler creating a new user.
// A missing or empty JSON body is a 400; any storage failure, including
// uniqueness and non-null violations, is a generic 500.
// @Summary Create a user
// @Description Creates a new user. Username and email must be unique.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User to create"
// @Success 200 {object} handlers.CreateUserResponse "Created user"
// @Failure 400 {object} handlers.CreateUserErrorResponse "No data provided"
// @Failure 500 {object} handlers.CreateUserErrorResponse "Failed to create user"
// @Router /api/users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Log.Errorw("error reading request body", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CreateUserErrorResponse{
				Error: "Failed to create user",
			})
			return
		}

		if emptyBody(body) {
			logger.Log.Warn("invalid request: no JSON data provided")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateUserErrorResponse{
				Error: "No data provided",
			})
			return
		}

		var req CreateUserRequest
		if err := json.Unmarshal(body, &req); err != nil {
			logger.Log.Errorw("error creating user", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CreateUserErrorResponse{
				Error: "Failed to create user",
			})
			return
		}

		user, err := svc.Create(r.Context(), req.Username, req.Email, req.PhoneNumber)
		if err != nil {
			logger.Log.Errorw("error creating user", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CreateUserErrorResponse{
				Error: "Failed to create user",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CreateUserResponse{
			Success: true,
			Data:    toUserResponse(*user),
		})
	}
}

// emptyBody reports whether the request body carries no data: absent,
// whitespace-only, JSON null, or an empty JSON object.
func emptyBody(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return false
	}
	return len(fields) == 0
}
