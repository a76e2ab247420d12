package services

import (
	"context"

	"github.com/sbilibin2017/task-manager-api/internal/logger"
	"github.com/sbilibin2017/task-manager-api/internal/models"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	List(ctx context.Context) ([]models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, phoneNumber *string) (*models.UserDB, error)
}

// UserService handles user listing and creation.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	kafkaWriter KafkaWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// List returns all users.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	logger.Log.Info("retrieving list of users")

	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	return users, nil
}

// Create persists a new user and returns the stored record.
// Fields are passed through to the store without validation: a nil
// username or email fails on the storage constraint, as do duplicate
// usernames, emails, and phone numbers.
func (svc *UserService) Create(ctx context.Context, username, email, phoneNumber *string) (*models.UserDB, error) {
	user, err := svc.writer.Save(ctx, username, email, phoneNumber)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	logger.Log.Infow("user added", "username", user.Username)

	publishEvent(ctx, svc.kafkaWriter, models.Event{
		Action:   models.ActionUserCreated,
		Username: user.Username,
	})

	return user, nil
}
