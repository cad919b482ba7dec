package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskflowhq/taskflow-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store.
	Create(ctx context.Context, task *domain.Task) error

	// List retrieves all tasks.
	List(ctx context.Context) ([]domain.Task, error)

	// Update replaces the fixed field set (title, description, due date,
	// priority, status, assigned email, user email) of the task with the
	// given ID. Returns ErrTaskNotFound if no task has that ID.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task with the given ID.
	// Returns ErrTaskNotFound if no task has that ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
