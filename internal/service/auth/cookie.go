package auth

import (
	"errors"
	"net/http"
	"time"
)

// SessionCookieName is the name of the cookie carrying the session token.
const SessionCookieName = "token"

// sessionCookie builds the session cookie with the fixed attribute set.
// Issue and revoke must use identical attributes: browsers silently
// ignore a deletion whose attributes do not match the original cookie.
//
// The cookie is deliberately not Secure-flagged so the server works over
// plain HTTP. That is a deployment caveat inherited from the reference
// behavior, not an oversight; flag it before changing it.
func sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
}

// WriteSessionCookie sets the session cookie on the response with a
// Max-Age matching the token's lifetime tier.
func WriteSessionCookie(w http.ResponseWriter, token string, lifetime time.Duration) {
	http.SetCookie(w, sessionCookie(token, int(lifetime.Seconds())))
}

// ClearSessionCookie removes the session cookie, using the same
// attributes as WriteSessionCookie so the removal actually takes effect.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, sessionCookie("", -1))
}

// ReadSessionCookie extracts the session token from the request cookie.
// Returns ErrMissingToken if the cookie is absent or empty.
func ReadSessionCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrMissingToken
		}
		return "", err
	}
	if cookie.Value == "" {
		return "", ErrMissingToken
	}
	return cookie.Value, nil
}
