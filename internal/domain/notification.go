package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Notification is a derived record signaling a task assignment to a
// specific recipient. Notifications are created only as a side effect of
// the assignment-notifying task creation path, flip to read exactly
// once, and are never deleted.
type Notification struct {
	ID            uuid.UUID `json:"id"`
	ReceiverEmail string    `json:"receiverEmail"`
	Message       string    `json:"message"`
	TaskID        uuid.UUID `json:"taskId"`
	IsRead        bool      `json:"isRead"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewAssignmentNotification creates the notification for a task being
// assigned to receiverEmail. The message template interpolates the task
// title and is part of the external contract.
func NewAssignmentNotification(task *Task) *Notification {
	return &Notification{
		ID:            uuid.New(),
		ReceiverEmail: task.AssignedEmail,
		Message:       fmt.Sprintf(`You have been assigned a new task: "%s"`, task.Title),
		TaskID:        task.ID,
		IsRead:        false,
		CreatedAt:     time.Now().UTC(),
	}
}
