package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/task-manager-api/internal/logger"
	"github.com/sbilibin2017/task-manager-api/internal/models"
)

// TaskReadRepository handles task read operations
type TaskReadRepository struct {
	db *sqlx.DB
}

func NewTaskReadRepository(db *sqlx.DB) *TaskReadRepository {
	return &TaskReadRepository{db: db}
}

// ListByUsername returns all tasks belonging to the given user.
func (r *TaskReadRepository) ListByUsername(ctx context.Context, username string) ([]models.TaskDB, error) {
	const query = `
		SELECT task_id, title, description, username, completed, priority
		FROM tasks
		WHERE username = $1
		ORDER BY task_id
	`

	var tasks []models.TaskDB
	err := r.db.SelectContext(ctx, &tasks, query, username)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", len(tasks),
		"error", err,
	)

	return tasks, err
}

// TaskWriteRepository handles task write operations
type TaskWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTaskWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TaskWriteRepository {
	return &TaskWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new task and returns the persisted row.
// Title passes through as-is so a nil title fails on the NOT NULL
// constraint; the priority range is enforced by the CHECK constraint.
func (r *TaskWriteRepository) Save(ctx context.Context, username string, title, description *string, completed bool, priority int) (*models.TaskDB, error) {
	query := `
		INSERT INTO tasks (title, description, username, completed, priority)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING task_id, title, description, username, completed, priority
	`
	args := []any{title, description, username, completed, priority}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var task models.TaskDB
	err := sqlx.GetContext(ctx, executor, &task, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", task,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &task, nil
}

// SetCompleted marks the task with the given id and owner as completed
// and returns the updated row. Returns sql.ErrNoRows when the pair does
// not match any task. Completing an already-completed task is a no-op
// update and still returns the row.
func (r *TaskWriteRepository) SetCompleted(ctx context.Context, username string, taskID int64) (*models.TaskDB, error) {
	query := `
		UPDATE tasks
		SET completed = TRUE
		WHERE username = $1 AND task_id = $2
		RETURNING task_id, title, description, username, completed, priority
	`
	args := []any{username, taskID}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var task models.TaskDB
	err := sqlx.GetContext(ctx, executor, &task, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", task,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &task, nil
}
