package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/task-manager-api/internal/logger"
	"github.com/sbilibin2017/task-manager-api/internal/models"
	"github.com/segmentio/kafka-go"
)

// TaskReader defines read-only operations for tasks.
type TaskReader interface {
	ListByUsername(ctx context.Context, username string) ([]models.TaskDB, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	Save(ctx context.Context, username string, title, description *string, completed bool, priority int) (*models.TaskDB, error)
	SetCompleted(ctx context.Context, username string, taskID int64) (*models.TaskDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TaskService handles task operations for a single user.
type TaskService struct {
	userReader  UserReader
	taskReader  TaskReader
	taskWriter  TaskWriter
	kafkaWriter KafkaWriter
}

// NewTaskService creates a new TaskService.
func NewTaskService(userReader UserReader, taskReader TaskReader, taskWriter TaskWriter, kafkaWriter KafkaWriter) *TaskService {
	return &TaskService{
		userReader:  userReader,
		taskReader:  taskReader,
		taskWriter:  taskWriter,
		kafkaWriter: kafkaWriter,
	}
}

// ListByUser returns all tasks for the given user.
// The user is looked up first; an unknown username propagates the lookup
// error so the handler answers with its generic failure, never a 404.
func (svc *TaskService) ListByUser(ctx context.Context, username string) ([]models.TaskDB, error) {
	logger.Log.Infow("retrieving user", "username", username)

	user, err := svc.userReader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("no user found", "username", username, "err", err)
		return nil, err
	}

	tasks, err := svc.taskReader.ListByUsername(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to list tasks", "username", username, "err", err)
		return nil, err
	}

	return tasks, nil
}

// Create persists a new task for the given user and returns the stored
// record. An omitted completed flag defaults to false and an omitted
// priority defaults to 1; an out-of-range priority fails on the CHECK
// constraint.
func (svc *TaskService) Create(ctx context.Context, username string, title, description *string, completed *bool, priority *int) (*models.TaskDB, error) {
	logger.Log.Infow("attempting to add task to user", "username", username)

	user, err := svc.userReader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("no user found", "username", username, "err", err)
		return nil, err
	}

	done := false
	if completed != nil {
		done = *completed
	}
	prio := 1
	if priority != nil {
		prio = *priority
	}

	task, err := svc.taskWriter.Save(ctx, user.Username, title, description, done, prio)
	if err != nil {
		logger.Log.Errorw("failed to save task", "username", username, "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, models.Event{
		Action:   models.ActionTaskCreated,
		Username: task.Username,
		TaskID:   task.TaskID,
	})

	return task, nil
}

// Complete marks a task as completed and returns the updated record.
// Completing an already-completed task succeeds and leaves it completed.
func (svc *TaskService) Complete(ctx context.Context, username string, taskID int64) (*models.TaskDB, error) {
	logger.Log.Infow("attempting to mark task as completed", "username", username, "task_id", taskID)

	if _, err := svc.userReader.GetByUsername(ctx, username); err != nil {
		logger.Log.Errorw("no user found", "username", username, "err", err)
		return nil, err
	}

	task, err := svc.taskWriter.SetCompleted(ctx, username, taskID)
	if err != nil {
		logger.Log.Errorw("no task found", "username", username, "task_id", taskID, "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, models.Event{
		Action:   models.ActionTaskCompleted,
		Username: task.Username,
		TaskID:   task.TaskID,
	})

	return task, nil
}

// publishEvent publishes a domain event to Kafka. A nil writer skips
// publishing; failures are logged and never surfaced to the caller.
func publishEvent(ctx context.Context, writer KafkaWriter, event models.Event) {
	if writer == nil {
		logger.Log.Warnw("kafka writer not configured, skipping publishing", "action", event.Action)
		return
	}

	event.EventID = uuid.New().String()
	event.Timestamp = time.Now().Unix()

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal event for kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Username),
		Value: data,
	}
	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event to kafka", "event_id", event.EventID, "error", err)
		return
	}

	logger.Log.Infow("event published", "event_id", event.EventID, "action", event.Action)
}
