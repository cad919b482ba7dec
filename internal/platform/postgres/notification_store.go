package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/platform/logger"
	"github.com/taskflowhq/taskflow-api/internal/store"
)

// NotificationStore implements the store.NotificationStore interface
// using PostgreSQL.
//
// The task_id column carries no foreign key: a notification references a
// task without owning it, and notifications outlive task deletion.
type NotificationStore struct {
	db store.DBTX
}

// NewNotificationStore creates a new PostgreSQL implementation of the
// NotificationStore interface.
func NewNotificationStore(db store.DBTX) *NotificationStore {
	return &NotificationStore{db: db}
}

// Ensure NotificationStore implements store.NotificationStore.
var _ store.NotificationStore = (*NotificationStore)(nil)

// Create implements store.NotificationStore.Create.
func (s *NotificationStore) Create(ctx context.Context, notification *domain.Notification) error {
	log := logger.FromContext(ctx)

	query := `
		INSERT INTO notifications (id, receiver_email, message, task_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		notification.ID,
		notification.ReceiverEmail,
		notification.Message,
		notification.TaskID,
		notification.IsRead,
		notification.CreatedAt,
	)
	if err != nil {
		log.Error("failed to insert notification",
			"notification_id", notification.ID,
			"task_id", notification.TaskID,
			"error", err)
		return fmt.Errorf("failed to insert notification: %w", MapError(err))
	}

	return nil
}

// ListByReceiver implements store.NotificationStore.ListByReceiver.
// Results are ordered newest first; the ordering is part of the contract.
func (s *NotificationStore) ListByReceiver(ctx context.Context, receiverEmail string) ([]domain.Notification, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, receiver_email, message, task_id, is_read, created_at
		FROM notifications
		WHERE receiver_email = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, receiverEmail)
	if err != nil {
		log.Error("failed to query notifications", "error", err)
		return nil, fmt.Errorf("failed to query notifications: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(
			&n.ID,
			&n.ReceiverEmail,
			&n.Message,
			&n.TaskID,
			&n.IsRead,
			&n.CreatedAt,
		); err != nil {
			log.Error("failed to scan notification row", "error", err)
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating notification rows", "error", err)
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return notifications, nil
}

// MarkRead implements store.NotificationStore.MarkRead. Setting the flag
// on an already-read notification succeeds without changing anything.
func (s *NotificationStore) MarkRead(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := s.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to mark notification read",
			"notification_id", id,
			"error", err)
		return fmt.Errorf("failed to mark notification read: %w", MapError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			"notification_id", id,
			"error", err)
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrNotificationNotFound
	}

	return nil
}

// WithTx implements store.NotificationStore.WithTx.
func (s *NotificationStore) WithTx(tx *sql.Tx) store.NotificationStore {
	return &NotificationStore{db: tx}
}
