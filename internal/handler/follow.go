package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aneves/socialnet/internal/domain"
	"github.com/aneves/socialnet/internal/service"
)

// FollowHandler handles follow/unfollow HTTP requests.
type FollowHandler struct {
	follows *service.FollowService
}

// NewFollowHandler creates a new FollowHandler.
func NewFollowHandler(follows *service.FollowService) *FollowHandler {
	return &FollowHandler{follows: follows}
}

// HandleFollow creates a follow edge from the authenticated user to the
// target user. No request body is needed.
//
//	@Summary      Follow a user
//	@Tags         Follows
//	@Produce      json
//	@Param        id  path  int  true  "User ID to follow"
//	@Success      201
//	@Failure      400
//	@Failure      401
//	@Failure      404
//	@Router       /users/{id}/follow/ [post]
func (h *FollowHandler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	follower := UserFromContext(r.Context())

	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "User not found.")
		return
	}

	follow, err := h.follows.Follow(r.Context(), follower, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeDetail(w, http.StatusNotFound, "User not found.")
		case errors.Is(err, domain.ErrSelfFollow):
			writeDetail(w, http.StatusBadRequest, "You cannot follow yourself.")
		case errors.Is(err, domain.ErrAlreadyFollowing):
			writeDetail(w, http.StatusBadRequest, "You are already following this user.")
		default:
			slog.Error("follow user", "error", err)
			writeDetail(w, http.StatusInternalServerError, "An unexpected error occurred while trying to follow.")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toFollowDTO(follow))
}

// HandleUnfollow removes the follow edge from the authenticated user to the
// target user. A missing edge is a client error, not a silent success.
//
//	@Summary      Unfollow a user
//	@Tags         Follows
//	@Param        id  path  int  true  "User ID to unfollow"
//	@Success      204
//	@Failure      400
//	@Failure      401
//	@Failure      404
//	@Router       /users/{id}/unfollow/ [delete]
func (h *FollowHandler) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	follower := UserFromContext(r.Context())

	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "User not found.")
		return
	}

	if err := h.follows.Unfollow(r.Context(), follower, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeDetail(w, http.StatusNotFound, "User not found.")
		case errors.Is(err, domain.ErrNotFollowing):
			writeDetail(w, http.StatusBadRequest, "You are not following this user.")
		default:
			slog.Error("unfollow user", "error", err)
			writeDetail(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
