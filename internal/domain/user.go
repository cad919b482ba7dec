package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered user of the TaskFlow application.
//
// The password is an opaque credential stored exactly as the client
// supplied it; no hashing or normalization happens anywhere in the
// system. ShopNames is the set of shop namespaces the user claimed at
// registration; no element may be claimed by any other user.
type User struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"userName"`
	PhotoURL  string    `json:"photoURL"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // Opaque credential, never exposed in JSON
	ShopNames []string  `json:"shopName"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a new User with a generated ID and creation timestamp.
// Returns an error if validation fails.
func NewUser(userName, photoURL, email, password string, shopNames []string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		UserName:  userName,
		PhotoURL:  photoURL,
		Email:     email,
		Password:  password,
		ShopNames: shopNames,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that the required registration fields are present.
// Presence is the only rule; field contents are deliberately not
// inspected beyond that.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if strings.TrimSpace(u.UserName) == "" {
		return ErrEmptyUserName
	}
	if strings.TrimSpace(u.Email) == "" {
		return ErrEmptyEmail
	}
	if u.Password == "" {
		return ErrEmptyPassword
	}
	if len(u.ShopNames) == 0 {
		return ErrNoShopNames
	}
	for _, name := range u.ShopNames {
		if strings.TrimSpace(name) == "" {
			return ErrEmptyShopName
		}
	}
	return nil
}

// SharesShopName reports whether any of the given shop names appears in
// the user's set. Uniqueness is enforced per element across all users,
// not by whole-set equality.
func (u *User) SharesShopName(names []string) bool {
	for _, claimed := range u.ShopNames {
		for _, candidate := range names {
			if claimed == candidate {
				return true
			}
		}
	}
	return false
}
