package auth

import "time"

// NewTestTokenService creates a token service with an injectable time
// function. For tests only: lets expiry scenarios run against a frozen
// or shifted clock.
func NewTestTokenService(secret string, timeFunc func() time.Time) TokenService {
	return &hmacTokenService{
		signingKey: []byte(secret),
		timeFunc:   timeFunc,
	}
}
