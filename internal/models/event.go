package models

// Event actions published to the task events topic.
const (
	ActionUserCreated   = "user.created"
	ActionTaskCreated   = "task.created"
	ActionTaskCompleted = "task.completed"
)

// Event represents a domain event emitted after a successful mutation.
type Event struct {
	EventID   string `json:"event_id"`          // Unique event identifier
	Timestamp int64  `json:"timestamp"`         // Unix timestamp in seconds
	Action    string `json:"action"`            // One of the Action* constants
	Username  string `json:"username"`          // User the event relates to
	TaskID    int64  `json:"task_id,omitempty"` // Set for task events
}
