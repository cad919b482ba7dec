package auth

import "errors"

// Common authentication errors.
var (
	// ErrMissingToken is returned when a request carries no session cookie.
	ErrMissingToken = errors.New("authentication token missing")

	// ErrInvalidToken is returned when a token is malformed or its
	// signature does not verify.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's expiry claim has passed.
	// Callers must not leak the distinction to clients; both invalid and
	// expired tokens produce the same unauthenticated result.
	ErrExpiredToken = errors.New("token expired")
)
