package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aneves/socialnet/internal/domain"
	"github.com/aneves/socialnet/internal/service"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleLogin exchanges credentials for a token pair.
//
//	@Summary      Obtain authentication tokens
//	@Description  Authenticates a user and returns new access and refresh tokens.
//	@Tags         Authentication
//	@Accept       json
//	@Produce      json
//	@Success      200
//	@Failure      400
//	@Router       /auth/ [post]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := readJSON(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	user, tokens, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// One generic message for unknown email and wrong password alike.
		if errors.Is(err, domain.ErrUnauthorized) {
			writeDetail(w, http.StatusBadRequest, "No active account found with the given credentials.")
			return
		}
		slog.Error("login user", "error", err)
		writeDetail(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user_id":       user.ID,
		"access_token":  tokens.Access,
		"refresh_token": tokens.Refresh,
	})
}
