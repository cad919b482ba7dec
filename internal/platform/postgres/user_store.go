package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/platform/logger"
	"github.com/taskflowhq/taskflow-api/internal/store"
)

// UserStore implements the store.UserStore interface using PostgreSQL.
//
// Shop names live in their own table with a unique constraint on the
// name, so per-element uniqueness across all users is enforced by the
// storage layer rather than by a racy check-then-insert.
type UserStore struct {
	db store.DBTX
}

// NewUserStore creates a new PostgreSQL implementation of the UserStore
// interface. It accepts a database connection or transaction that is
// initialized and managed by the caller.
func NewUserStore(db store.DBTX) *UserStore {
	return &UserStore{db: db}
}

// Ensure UserStore implements store.UserStore.
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContext(ctx)

	insertUser := `
		INSERT INTO users (id, user_name, photo_url, email, password, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := s.db.ExecContext(ctx, insertUser,
		user.ID,
		user.UserName,
		user.PhotoURL,
		user.Email,
		user.Password,
		user.CreatedAt,
	); err != nil {
		log.Error("failed to insert user",
			"user_id", user.ID,
			"error", err)
		return fmt.Errorf("failed to insert user: %w", MapError(err))
	}

	insertShopNames := `
		INSERT INTO user_shop_names (shop_name, user_id)
		SELECT unnest($1::text[]), $2
	`
	if _, err := s.db.ExecContext(ctx, insertShopNames, user.ShopNames, user.ID); err != nil {
		if isUniqueViolation(err) {
			log.Debug("shop name collision on insert", "user_id", user.ID)
			return store.ErrShopNameExists
		}
		log.Error("failed to insert shop names",
			"user_id", user.ID,
			"error", err)
		return fmt.Errorf("failed to insert shop names: %w", MapError(err))
	}

	return nil
}

// List implements store.UserStore.List.
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT u.id, u.user_name, u.photo_url, u.email, u.password, u.created_at,
		       COALESCE(json_agg(n.shop_name ORDER BY n.shop_name) FILTER (WHERE n.shop_name IS NOT NULL), '[]')
		FROM users u
		LEFT JOIN user_shop_names n ON n.user_id = u.id
		GROUP BY u.id
		ORDER BY u.created_at
	`
	return s.queryUsers(ctx, query)
}

// FindByShopNames implements store.UserStore.FindByShopNames.
func (s *UserStore) FindByShopNames(ctx context.Context, names []string) ([]domain.User, error) {
	if len(names) == 0 {
		return nil, nil
	}

	query := `
		SELECT u.id, u.user_name, u.photo_url, u.email, u.password, u.created_at,
		       COALESCE(json_agg(n.shop_name ORDER BY n.shop_name) FILTER (WHERE n.shop_name IS NOT NULL), '[]')
		FROM users u
		LEFT JOIN user_shop_names n ON n.user_id = u.id
		WHERE u.id IN (
			SELECT user_id FROM user_shop_names WHERE shop_name = ANY($1::text[])
		)
		GROUP BY u.id
		ORDER BY u.created_at
	`
	return s.queryUsers(ctx, query, names)
}

// WithTx implements store.UserStore.WithTx.
func (s *UserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &UserStore{db: tx}
}

// queryUsers runs a user query whose row shape is the fixed user column
// list plus a JSON array of shop names.
func (s *UserStore) queryUsers(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	log := logger.FromContext(ctx)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query users", "error", err)
		return nil, fmt.Errorf("failed to query users: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		var shopNames []byte

		if err := rows.Scan(
			&user.ID,
			&user.UserName,
			&user.PhotoURL,
			&user.Email,
			&user.Password,
			&user.CreatedAt,
			&shopNames,
		); err != nil {
			log.Error("failed to scan user row", "error", err)
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}

		if err := json.Unmarshal(shopNames, &user.ShopNames); err != nil {
			log.Error("failed to decode shop names",
				"user_id", user.ID,
				"error", err)
			return nil, fmt.Errorf("failed to decode shop names: %w", err)
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating user rows", "error", err)
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}
