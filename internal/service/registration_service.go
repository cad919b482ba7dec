// Package service implements the business workflows on top of the store
// interfaces: user registration with the shop-name uniqueness guard, and
// the task assignment and notification engine.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/store"
)

// RegistrationService provides user registration with the shop-name
// uniqueness guard.
type RegistrationService interface {
	// Register validates the submitted fields, checks that no submitted
	// shop name is already claimed by any existing user (per-element
	// intersection, not whole-set equality), and persists the user record
	// verbatim. Returns store.ErrShopNameExists on any overlap and
	// domain validation errors on missing fields.
	Register(ctx context.Context, userName, photoURL, email, password string, shopNames []string) (*domain.User, error)
}

// RegistrationServiceImpl implements the RegistrationService interface.
type RegistrationServiceImpl struct {
	userStore store.UserStore
	db        *sql.DB
	logger    *slog.Logger
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(userStore store.UserStore, db *sql.DB, logger *slog.Logger) RegistrationService {
	return &RegistrationServiceImpl{
		userStore: userStore,
		db:        db,
		logger:    logger.With("component", "registration_service"),
	}
}

// Register implements RegistrationService.Register.
//
// The intersection check and the insert run inside one transaction, and
// the shop-name table carries a unique constraint, so two concurrent
// registrations with overlapping names cannot both succeed.
func (s *RegistrationServiceImpl) Register(
	ctx context.Context,
	userName, photoURL, email, password string,
	shopNames []string,
) (*domain.User, error) {
	user, err := domain.NewUser(userName, photoURL, email, password, shopNames)
	if err != nil {
		s.logger.Debug("registration rejected by validation", "error", err)
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		holders, err := txStore.FindByShopNames(ctx, user.ShopNames)
		if err != nil {
			return fmt.Errorf("failed to check shop names: %w", err)
		}
		if len(holders) > 0 {
			return store.ErrShopNameExists
		}

		return txStore.Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrShopNameExists) {
			s.logger.Debug("registration rejected: shop name already taken",
				"user_name", userName)
			return nil, store.ErrShopNameExists
		}
		s.logger.Error("failed to register user", "error", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"shop_name_count", len(user.ShopNames))

	return user, nil
}
