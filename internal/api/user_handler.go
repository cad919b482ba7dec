package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/taskflowhq/taskflow-api/internal/api/shared"
	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/service"
	"github.com/taskflowhq/taskflow-api/internal/store"
)

// UserHandler handles registration and the user listing passthrough.
type UserHandler struct {
	registration service.RegistrationService
	userStore    store.UserStore
	logger       *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	registration service.RegistrationService,
	userStore store.UserStore,
	logger *slog.Logger,
) *UserHandler {
	return &UserHandler{
		registration: registration,
		userStore:    userStore,
		logger:       logger.With("component", "user_handler"),
	}
}

// Register handles POST /user.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request: missing required fields")
		return
	}

	user, err := h.registration.Register(
		r.Context(),
		req.UserName,
		req.PhotoURL,
		req.Email,
		req.Password,
		req.ShopNames,
	)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrShopNameExists),
			errors.Is(err, domain.ErrValidation):
			HandleAPIError(w, r, err, "")
		default:
			HandleAPIError(w, r, err, "Failed to register user")
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{InsertedID: user.ID})
}

// ListUsers handles GET /users. Pure passthrough, no business rules.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list users")
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, users)
}
