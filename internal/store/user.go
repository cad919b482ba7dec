package store

import (
	"context"
	"database/sql"

	"github.com/taskflowhq/taskflow-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store, claiming every shop name in
	// the user's set. Returns ErrShopNameExists if any shop name is
	// already claimed by another user.
	Create(ctx context.Context, user *domain.User) error

	// List retrieves all users.
	List(ctx context.Context) ([]domain.User, error)

	// FindByShopNames retrieves all users whose shop-name set intersects
	// the given names. An empty result means none of the names are taken.
	FindByShopNames(ctx context.Context, names []string) ([]domain.User, error)

	// WithTx returns a new UserStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller
	// (typically a service).
	WithTx(tx *sql.Tx) UserStore
}
