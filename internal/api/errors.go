package api

import (
	"errors"
	"net/http"

	"github.com/taskflowhq/taskflow-api/internal/api/shared"
	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/service/auth"
	"github.com/taskflowhq/taskflow-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes. This keeps internal error types from leaking to clients.
//
// Shop-name conflicts deliberately map to 400 rather than 409; the 400
// shape is part of the existing client contract.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors: missing, invalid and expired credentials
	// all produce the same unauthenticated result.
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Auth failures share one generic message so
// the reason (missing vs. bad vs. expired) never leaks to the caller.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "Unauthorized"

	case errors.Is(err, store.ErrShopNameExists):
		return "one or more shop names already taken"

	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrNotificationNotFound):
		return "Notification not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidID):
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the HTTP response for an internal error, using
// the status and safe-message mappings above. An optional override
// message replaces the mapped message when non-empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, overrideMessage string) {
	status := MapErrorToStatusCode(err)
	message := overrideMessage
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
