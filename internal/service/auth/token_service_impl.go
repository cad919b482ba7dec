package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/taskflowhq/taskflow-api/internal/platform/logger"
)

// hmacTokenService is an implementation of TokenService using HMAC-SHA signing.
type hmacTokenService struct {
	signingKey []byte
	timeFunc   func() time.Time // Injectable for testing
}

// sessionClaims defines the structure of the JWT claims we use. The user
// payload stays raw JSON so it round-trips through the token untouched.
type sessionClaims struct {
	User json.RawMessage `json:"user"`
	jwt.RegisteredClaims
}

// Ensure hmacTokenService implements TokenService interface.
var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a new session token service using HMAC-SHA256
// signing with the given secret.
func NewTokenService(secret string) (TokenService, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("token secret must be at least 32 characters")
	}

	return &hmacTokenService{
		signingKey: []byte(secret),
		timeFunc:   time.Now,
	}, nil
}

// Issue creates a signed session token carrying the opaque user payload.
func (s *hmacTokenService) Issue(
	ctx context.Context,
	payload json.RawMessage,
	rememberMe bool,
) (string, time.Duration, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	lifetime := SessionLifetime
	if rememberMe {
		lifetime = RememberMeLifetime
	}

	claims := sessionClaims{
		User: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign session token",
			"error", err,
			"remember_me", rememberMe,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", 0, fmt.Errorf("failed to sign session token with HMAC-SHA256: %w", err)
	}

	log.Debug("session token issued",
		"remember_me", rememberMe,
		"lifetime", lifetime.String())

	return signedToken, lifetime, nil
}

// Verify validates a session token and returns the embedded payload.
// Expiry is enforced exactly, with no leeway: the two lifetime tiers are
// the whole of the expiry policy.
func (s *hmacTokenService) Verify(ctx context.Context, tokenString string) (json.RawMessage, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(func() time.Time {
			return now
		}),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&sessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("token verification failed: token expired", "error", err)
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenMalformed):
			log.Debug("token verification failed: malformed token", "error", err)
			return nil, ErrInvalidToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			log.Debug("token verification failed: invalid signature", "error", err)
			return nil, ErrInvalidToken
		default:
			log.Debug("token verification failed: other validation error",
				"error", err,
				"error_type", fmt.Sprintf("%T", err))
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || len(claims.User) == 0 {
		log.Debug("token verification failed: invalid claims")
		return nil, ErrInvalidToken
	}

	log.Debug("session token verified",
		"token_id", claims.ID,
		"expiry", claims.ExpiresAt.Time)

	return claims.User, nil
}
