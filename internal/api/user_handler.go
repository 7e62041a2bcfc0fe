package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/portfolioz/server/internal/api/shared"
	"github.com/portfolioz/server/internal/domain"
	"github.com/portfolioz/server/internal/service/auth"
	"github.com/portfolioz/server/internal/store"
)

// UserHandler handles user registration, listing, deletion and bearer-token
// issuance.
type UserHandler struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	validator  *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, jwtService auth.JWTService) *UserHandler {
	return &UserHandler{
		userStore:  userStore,
		jwtService: jwtService,
		validator:  validator.New(),
	}
}

// TokenRequest is the payload for the token issuance endpoint.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// TokenResponse carries a freshly signed bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// RegisterRequest is the payload for self-registration. Role is optional;
// admins are promoted out of band, not through this endpoint.
type RegisterRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"`
}

// RegisterResponse reports the outcome of a registration attempt.
// InsertedID is null when the email was already registered.
type RegisterResponse struct {
	Message    string  `json:"message"`
	InsertedID *string `json:"insertedId"`
}

// DeleteUserResponse reports a completed user deletion.
type DeleteUserResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

// IssueToken handles POST /jwt. It looks the user up by email and signs a
// token embedding the stored email and role.
func (h *UserHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Email is required")
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("failed to look up user for token issuance", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "email", user.Email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}

// List handles GET /users. Requires authentication.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Error fetching users")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// Register handles POST /users. Registration is idempotent by email: an
// already-registered email is reported without inserting anything.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Email is required")
		return
	}

	_, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err == nil {
		shared.RespondWithJSON(w, r, http.StatusOK, RegisterResponse{
			Message:    "User already exists",
			InsertedID: nil,
		})
		return
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		slog.Error("failed to check for existing user", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	id, err := h.userStore.Create(r.Context(), &domain.User{Email: req.Email, Role: req.Role})
	if err != nil {
		slog.Error("failed to create user", "error", err, "email", req.Email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	hex := id.Hex()
	shared.RespondWithJSON(w, r, http.StatusOK, RegisterResponse{
		Message:    "User added",
		InsertedID: &hex,
	})
}

// Delete handles DELETE /users/{id}. The route is the only admin-gated
// mutation; both Authenticate and RequireAdmin run before this handler.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user ID")
		return
	}

	deleted, err := h.userStore.Delete(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete user", "error", err, "user_id", id.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if deleted == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteUserResponse{
		Message:      "User deleted",
		DeletedCount: deleted,
	})
}
