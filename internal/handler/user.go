package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aneves/socialnet/internal/domain"
	"github.com/aneves/socialnet/internal/service"
)

// UserHandler handles user registration and profile operations.
type UserHandler struct {
	auth  *service.AuthService
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(auth *service.AuthService, users *service.UserService) *UserHandler {
	return &UserHandler{auth: auth, users: users}
}

// pathID parses the {id} path segment. Malformed ids are reported as a
// missing resource, matching how non-numeric ids fail route resolution in
// typed routers.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil && id > 0
}

// HandleRegister creates a new user account.
//
//	@Summary      Create a new user
//	@Description  Registers a new user in the system. Email must be unique.
//	@Tags         Users
//	@Accept       json
//	@Produce      json
//	@Success      201
//	@Failure      400
//	@Router       /users/ [post]
func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := readJSON(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	if _, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"email": "Email already in use"})
			return
		}
		slog.Error("register user", "error", err)
		writeDetail(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "User created successfully!"})
}

// HandleGet returns a user's profile.
//
//	@Summary      View a specific user
//	@Tags         Users
//	@Produce      json
//	@Param        id  path  int  true  "User ID"
//	@Success      200
//	@Failure      401
//	@Failure      404
//	@Router       /users/{id}/ [get]
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "User not found or has been deleted.")
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "User not found or has been deleted.")
			return
		}
		slog.Error("get user", "error", err)
		writeDetail(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(user))
}

// HandleUpdate applies a partial profile update. Owner-only.
//
//	@Summary      Update a specific user
//	@Description  Updates some fields of an existing user. Only the provided fields will be updated.
//	@Tags         Users
//	@Accept       json
//	@Produce      json
//	@Param        id  path  int  true  "User ID"
//	@Success      200
//	@Failure      400
//	@Failure      401
//	@Failure      403
//	@Failure      404
//	@Router       /users/{id}/ [patch]
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	requester := UserFromContext(r.Context())

	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "User not found or has been deleted.")
		return
	}

	var req updateUserRequest
	if err := readJSON(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	user, err := h.users.Update(r.Context(), requester.ID, id, service.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeDetail(w, http.StatusNotFound, "User not found or has been deleted.")
		case errors.Is(err, domain.ErrForbidden):
			writeDetail(w, http.StatusForbidden, "You do not have permission to edit this profile.")
		case errors.Is(err, domain.ErrDuplicateEmail):
			writeJSON(w, http.StatusBadRequest, map[string]string{"email": "Email already in use"})
		default:
			slog.Error("update user", "error", err)
			writeDetail(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(user))
}

// HandleDelete soft-deletes a profile. Owner-only.
//
//	@Summary      Delete a specific user
//	@Tags         Users
//	@Param        id  path  int  true  "User ID"
//	@Success      204
//	@Failure      400
//	@Failure      401
//	@Failure      403
//	@Failure      404
//	@Router       /users/{id}/ [delete]
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	requester := UserFromContext(r.Context())

	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "User not found or has been deleted.")
		return
	}

	if err := h.users.Delete(r.Context(), requester.ID, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeDetail(w, http.StatusNotFound, "User not found or has been deleted.")
		case errors.Is(err, domain.ErrForbidden):
			writeDetail(w, http.StatusForbidden, "You do not have permission to delete this profile.")
		case errors.Is(err, domain.ErrAlreadyDeleted):
			writeDetail(w, http.StatusBadRequest, "User already deleted.")
		default:
			slog.Error("delete user", "error", err)
			writeDetail(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
