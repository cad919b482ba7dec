package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/store"
)

// MemoryUserStore is an in-memory implementation of store.UserStore.
// Error fields, when set, are returned by the corresponding method to
// simulate persistence failures.
type MemoryUserStore struct {
	mu    sync.Mutex
	users []domain.User

	CreateErr error
	ListErr   error
	FindErr   error
}

var _ store.UserStore = (*MemoryUserStore)(nil)

// NewMemoryUserStore creates an empty in-memory user store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{}
}

// Create implements store.UserStore.Create, including the per-element
// shop-name uniqueness constraint of the real storage layer.
func (s *MemoryUserStore) Create(ctx context.Context, user *domain.User) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].SharesShopName(user.ShopNames) {
			return store.ErrShopNameExists
		}
	}
	s.users = append(s.users, *user)
	return nil
}

// List implements store.UserStore.List.
func (s *MemoryUserStore) List(ctx context.Context) ([]domain.User, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// FindByShopNames implements store.UserStore.FindByShopNames.
func (s *MemoryUserStore) FindByShopNames(ctx context.Context, names []string) ([]domain.User, error) {
	if s.FindErr != nil {
		return nil, s.FindErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.User
	for i := range s.users {
		if s.users[i].SharesShopName(names) {
			out = append(out, s.users[i])
		}
	}
	return out, nil
}

// WithTx implements store.UserStore.WithTx. The in-memory store has no
// transaction isolation; it returns itself.
func (s *MemoryUserStore) WithTx(tx *sql.Tx) store.UserStore { return s }

// MemoryTaskStore is an in-memory implementation of store.TaskStore.
type MemoryTaskStore struct {
	mu    sync.Mutex
	tasks []domain.Task

	CreateErr error
	ListErr   error
	UpdateErr error
	DeleteErr error
}

var _ store.TaskStore = (*MemoryTaskStore)(nil)

// NewMemoryTaskStore creates an empty in-memory task store.
func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{}
}

// Create implements store.TaskStore.Create.
func (s *MemoryTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, *task)
	return nil
}

// List implements store.TaskStore.List.
func (s *MemoryTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

// Update implements store.TaskStore.Update.
func (s *MemoryTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			updated := *task
			updated.CreatedAt = s.tasks[i].CreatedAt
			s.tasks[i] = updated
			return nil
		}
	}
	return store.ErrTaskNotFound
}

// Delete implements store.TaskStore.Delete.
func (s *MemoryTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return store.ErrTaskNotFound
}

// Get returns the stored task with the given ID, for test assertions.
func (s *MemoryTaskStore) Get(id uuid.UUID) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return s.tasks[i], true
		}
	}
	return domain.Task{}, false
}

// WithTx implements store.TaskStore.WithTx.
func (s *MemoryTaskStore) WithTx(tx *sql.Tx) store.TaskStore { return s }

// MemoryNotificationStore is an in-memory implementation of
// store.NotificationStore.
type MemoryNotificationStore struct {
	mu            sync.Mutex
	notifications []domain.Notification

	CreateErr   error
	ListErr     error
	MarkReadErr error
}

var _ store.NotificationStore = (*MemoryNotificationStore)(nil)

// NewMemoryNotificationStore creates an empty in-memory notification store.
func NewMemoryNotificationStore() *MemoryNotificationStore {
	return &MemoryNotificationStore{}
}

// Create implements store.NotificationStore.Create.
func (s *MemoryNotificationStore) Create(ctx context.Context, notification *domain.Notification) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, *notification)
	return nil
}

// ListByReceiver implements store.NotificationStore.ListByReceiver,
// preserving the newest-first ordering contract.
func (s *MemoryNotificationStore) ListByReceiver(ctx context.Context, receiverEmail string) ([]domain.Notification, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Notification
	for i := range s.notifications {
		if s.notifications[i].ReceiverEmail == receiverEmail {
			out = append(out, s.notifications[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// MarkRead implements store.NotificationStore.MarkRead.
func (s *MemoryNotificationStore) MarkRead(ctx context.Context, id uuid.UUID) error {
	if s.MarkReadErr != nil {
		return s.MarkReadErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			return nil
		}
	}
	return store.ErrNotificationNotFound
}

// All returns a copy of every stored notification, for test assertions.
func (s *MemoryNotificationStore) All() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// WithTx implements store.NotificationStore.WithTx.
func (s *MemoryNotificationStore) WithTx(tx *sql.Tx) store.NotificationStore { return s }
