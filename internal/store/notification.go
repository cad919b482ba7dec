package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskflowhq/taskflow-api/internal/domain"
)

// NotificationStore defines the interface for notification persistence.
// Notifications are append-only; the only mutation is the one-way flip
// of the read flag.
type NotificationStore interface {
	// Create saves a new notification to the store.
	Create(ctx context.Context, notification *domain.Notification) error

	// ListByReceiver retrieves all notifications addressed to the given
	// email, ordered by creation time descending (newest first). The
	// ordering is part of the external contract.
	ListByReceiver(ctx context.Context, receiverEmail string) ([]domain.Notification, error)

	// MarkRead sets the read flag of the notification with the given ID.
	// Marking an already-read notification is a no-op success.
	// Returns ErrNotificationNotFound if no notification has that ID.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new NotificationStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) NotificationStore
}
