// Package auth implements the session credential lifecycle: issuing,
// verifying and revoking the signed token carried by the session cookie.
package auth

import (
	"context"
	"encoding/json"
	"time"
)

// Session lifetime tiers. Selecting between them is the only policy
// decision in the auth flow: rememberMe buys the long tier, everything
// else gets the short one. There is no sliding window or refresh.
const (
	// SessionLifetime is the credential lifetime without rememberMe.
	SessionLifetime = 30 * time.Minute

	// RememberMeLifetime is the credential lifetime with rememberMe.
	RememberMeLifetime = 7 * 24 * time.Hour
)

// TokenService defines operations for managing session tokens.
//
// The token carries an opaque user payload supplied by the caller at
// issuance. The payload is never validated against stored user records;
// verification returns it exactly as issued. Credential state lives
// entirely in the signed token, so logout (cookie removal) and expiry
// are the only ways a credential becomes invalid.
type TokenService interface {
	// Issue creates a signed session token embedding the given payload.
	// Returns the token string and the lifetime that was selected for it.
	Issue(ctx context.Context, payload json.RawMessage, rememberMe bool) (string, time.Duration, error)

	// Verify checks the signature and expiry of the given token string
	// and returns the embedded payload unchanged. Returns ErrExpiredToken
	// for expired tokens and ErrInvalidToken for anything else that fails
	// verification (bad signature, malformed, missing payload).
	Verify(ctx context.Context, tokenString string) (json.RawMessage, error)
}
