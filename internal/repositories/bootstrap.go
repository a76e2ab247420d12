package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/task-manager-api/internal/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	username VARCHAR(80) PRIMARY KEY,
	email VARCHAR(120) NOT NULL UNIQUE,
	phone_number VARCHAR(20) UNIQUE,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS tasks (
	task_id SERIAL PRIMARY KEY,
	title VARCHAR(100) NOT NULL,
	description TEXT,
	username VARCHAR(80) NOT NULL REFERENCES users (username),
	completed BOOLEAN NOT NULL DEFAULT FALSE,
	priority INTEGER NOT NULL DEFAULT 1 CHECK (priority >= 1 AND priority <= 5)
);
`

// Bootstrap creates the schema and, only when the users table is empty,
// seeds two users and three tasks with fixed values so a fresh store is
// immediately usable for demos and integration tests. Re-running on a
// non-empty store is a no-op beyond schema creation.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		logger.Log.Errorw("failed to create schema", "error", err)
		return err
	}

	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		logger.Log.Errorw("failed to count users", "error", err)
		return err
	}
	if count > 0 {
		return nil
	}

	logger.Log.Info("initializing database with sample data")

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	users := []struct {
		username string
		email    string
	}{
		{"johndoe", "john@example.com"},
		{"janedoe", "jane@example.com"},
	}
	for _, u := range users {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, email) VALUES ($1, $2)`,
			u.username, u.email,
		); err != nil {
			return err
		}
	}

	tasks := []struct {
		title       string
		description string
		username    string
		priority    int
	}{
		{"Complete project", "Finish the task manager project", "johndoe", 3},
		{"Buy groceries", "Milk, eggs, bread", "johndoe", 2},
		{"Learn Go", "Study the Go documentation", "janedoe", 4},
	}
	for _, t := range tasks {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (title, description, username, priority) VALUES ($1, $2, $3, $4)`,
			t.title, t.description, t.username, t.priority,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	logger.Log.Info("sample data created successfully")
	return nil
}
