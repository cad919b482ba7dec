// Package api implements the HTTP surface: request models, handlers
// and the translation of internal errors into HTTP responses.
package api

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Common request/response structures.

// IssueTokenRequest defines the payload for the session issuance endpoint.
// The user payload is opaque: it is signed into the token exactly as
// submitted and never validated against stored user records.
type IssueTokenRequest struct {
	User       json.RawMessage `json:"user"       validate:"required"`
	RememberMe bool            `json:"rememberMe"`
}

// IssueTokenResponse defines the successful response for session issuance.
type IssueTokenResponse struct {
	Success bool `json:"success"`
}

// VerifyResponse defines the successful response for credential verification.
type VerifyResponse struct {
	User json.RawMessage `json:"user"`
}

// RegisterRequest defines the payload for the user registration endpoint.
// Presence is the only validation rule; contents pass through verbatim.
type RegisterRequest struct {
	UserName  string   `json:"userName" validate:"required"`
	PhotoURL  string   `json:"photoURL"`
	Email     string   `json:"email"    validate:"required"`
	Password  string   `json:"password" validate:"required"`
	ShopNames []string `json:"shopName" validate:"required,min=1"`
}

// RegisterResponse defines the successful response for registration.
type RegisterResponse struct {
	InsertedID uuid.UUID `json:"insertedId"`
}

// TaskRequest defines the payload for task creation and replacement.
// Both the plain and the assignment-notifying creation paths accept the
// same shape; only the chosen endpoint decides whether a notification
// side effect can happen.
type TaskRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	DueDate       string `json:"dueDate"`
	Priority      string `json:"priority"`
	Status        string `json:"status"`
	AssignedEmail string `json:"assignedEmail"`
	UserEmail     string `json:"userEmail"`
}

// TaskCreatedResponse defines the successful response for plain task creation.
type TaskCreatedResponse struct {
	InsertedID uuid.UUID `json:"insertedId"`
}

// MutationResponse defines the response for task replacement/deletion
// and notification read-marking.
type MutationResponse struct {
	Acknowledged  bool `json:"acknowledged"`
	ModifiedCount int  `json:"modifiedCount"`
}
