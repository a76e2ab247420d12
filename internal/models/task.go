package models

// TaskDB represents a task row in the database
type TaskDB struct {
	TaskID      int64   `json:"task_id" db:"task_id"`         // Auto-assigned primary key
	Title       string  `json:"title" db:"title"`             // Task title
	Description *string `json:"description" db:"description"` // Optional free-form description
	Username    string  `json:"username" db:"username"`       // Owner, references users(username)
	Completed   bool    `json:"completed" db:"completed"`     // Completion flag, flips false->true once
	Priority    int     `json:"priority" db:"priority"`       // Priority on a 1-5 scale
}
