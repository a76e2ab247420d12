package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/task-manager-api/internal/models"
	"github.com/sbilibin2017/task-manager-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewUserService(mockReader, mockWriter, nil)

	t.Run("returns users", func(t *testing.T) {
		users := []models.UserDB{
			{Username: "johndoe", Email: "john@example.com", CreatedAt: time.Now()},
			{Username: "janedoe", Email: "jane@example.com", CreatedAt: time.Now()},
		}

		mockReader.EXPECT().List(gomock.Any()).Return(users, nil)

		got, err := svc.List(context.Background())
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "johndoe", got[0].Username)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		got, err := svc.List(context.Background())
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	tests := []struct {
		name      string
		username  *string
		email     *string
		phone     *string
		writerErr error
		wantErr   bool
	}{
		{
			name:     "successful creation",
			username: strPtr("alice"),
			email:    strPtr("alice@example.com"),
			phone:    strPtr("+15551234567"),
		},
		{
			name:     "nil phone passes through",
			username: strPtr("bob"),
			email:    strPtr("bob@example.com"),
		},
		{
			name:      "nil username reaches the store and fails there",
			email:     strPtr("carol@example.com"),
			writerErr: errors.New("null value in column \"username\" violates not-null constraint"),
			wantErr:   true,
		},
		{
			name:      "duplicate email",
			username:  strPtr("dave"),
			email:     strPtr("alice@example.com"),
			writerErr: errors.New("duplicate key value violates unique constraint \"users_email_key\""),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved *models.UserDB
			if tt.writerErr == nil {
				saved = &models.UserDB{
					Username:    *tt.username,
					Email:       *tt.email,
					PhoneNumber: tt.phone,
					CreatedAt:   time.Now(),
				}
			}

			mockWriter.EXPECT().
				Save(gomock.Any(), tt.username, tt.email, tt.phone).
				Return(saved, tt.writerErr)

			svc := services.NewUserService(mockReader, mockWriter, nil)

			user, err := svc.Create(context.Background(), tt.username, tt.email, tt.phone)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, *tt.username, user.Username)
			assert.Equal(t, tt.phone, user.PhoneNumber)
		})
	}
}

func TestUserService_Create_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	username := strPtr("alice")
	email := strPtr("alice@example.com")

	mockWriter.EXPECT().
		Save(gomock.Any(), username, email, nil).
		Return(&models.UserDB{Username: "alice", Email: "alice@example.com", CreatedAt: time.Now()}, nil)
	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(nil)

	svc := services.NewUserService(mockReader, mockWriter, mockKafka)

	user, err := svc.Create(context.Background(), username, email, nil)
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestUserService_Create_PublishFailureDoesNotSurface(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	username := strPtr("bob")
	email := strPtr("bob@example.com")

	mockWriter.EXPECT().
		Save(gomock.Any(), username, email, nil).
		Return(&models.UserDB{Username: "bob", Email: "bob@example.com", CreatedAt: time.Now()}, nil)
	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(errors.New("broker unavailable"))

	svc := services.NewUserService(mockReader, mockWriter, mockKafka)

	user, err := svc.Create(context.Background(), username, email, nil)
	assert.NoError(t, err)
	assert.NotNil(t, user)
}
