package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a single task record.
//
// All fields besides the identifier and timestamps are passthrough data:
// the server persists whatever the client sent and enforces no rules on
// their contents. Updates replace the fixed field set (title,
// description, due date, priority, status, assigned email, user email)
// keyed by ID.
type Task struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	DueDate       string    `json:"dueDate"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
	AssignedEmail string    `json:"assignedEmail,omitempty"`
	UserEmail     string    `json:"userEmail"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewTask creates a new Task with a generated ID and timestamps.
func NewTask(title, description, dueDate, priority, status, assignedEmail, userEmail string) *Task {
	now := time.Now().UTC()
	return &Task{
		ID:            uuid.New(),
		Title:         title,
		Description:   description,
		DueDate:       dueDate,
		Priority:      priority,
		Status:        status,
		AssignedEmail: assignedEmail,
		UserEmail:     userEmail,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// HasAssignee reports whether the task names an assignee. Only tasks
// with an assignee produce notifications on the notifying creation path.
func (t *Task) HasAssignee() bool {
	return t.AssignedEmail != ""
}
