package api

import (
	"log/slog"
	"net/http"

	"github.com/taskflowhq/taskflow-api/internal/api/shared"
	"github.com/taskflowhq/taskflow-api/internal/service/auth"
)

// AuthHandler handles the session credential lifecycle endpoints.
type AuthHandler struct {
	tokenService auth.TokenService
	logger       *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(tokenService auth.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		tokenService: tokenService,
		logger:       logger.With("component", "auth_handler"),
	}
}

// IssueToken handles POST /jwt. It signs the submitted opaque user
// payload into a session token and sets it as the session cookie, with
// the lifetime tier selected by rememberMe.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req IssueTokenRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if len(req.User) == 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "user payload is required")
		return
	}

	token, lifetime, err := h.tokenService.Issue(r.Context(), req.User, req.RememberMe)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to issue session token")
		return
	}

	auth.WriteSessionCookie(w, token, lifetime)
	shared.RespondWithJSON(w, r, http.StatusOK, IssueTokenResponse{Success: true})
}

// Logout handles POST /logout. It clears the session cookie using the
// same attributes it was set with. The token itself stays valid until
// its expiry; the server keeps no session state to revoke.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	shared.RespondWithJSON(w, r, http.StatusOK, IssueTokenResponse{Success: true})
}

// Verify handles GET /verify. It reads the session cookie, verifies the
// token and echoes back the embedded user payload. Every failure mode
// produces the same generic 401.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token, err := auth.ReadSessionCookie(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	payload, err := h.tokenService.Verify(r.Context(), token)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, VerifyResponse{User: payload})
}
