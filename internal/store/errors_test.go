package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrorWrapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		parent error
	}{
		{name: "user not found", err: ErrUserNotFound, parent: ErrNotFound},
		{name: "task not found", err: ErrTaskNotFound, parent: ErrNotFound},
		{name: "notification not found", err: ErrNotificationNotFound, parent: ErrNotFound},
		{name: "shop name exists", err: ErrShopNameExists, parent: ErrDuplicate},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tt.err, tt.parent)

			// Wrapping preserves the chain.
			wrapped := fmt.Errorf("store operation failed: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.err)
			assert.ErrorIs(t, wrapped, tt.parent)
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrTaskNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("wrapped: %w", ErrNotificationNotFound)))
	assert.False(t, IsNotFoundError(ErrShopNameExists))
	assert.False(t, IsNotFoundError(errors.New("unrelated")))

	assert.True(t, IsDuplicateError(ErrShopNameExists))
	assert.False(t, IsDuplicateError(ErrUserNotFound))
}
