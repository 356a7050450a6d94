package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aneves/socialnet/internal/domain"
	"github.com/aneves/socialnet/internal/service"
)

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	posts *service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// HandleCreate creates a post owned by the authenticated user.
//
//	@Summary      Create a new post
//	@Description  Creates a new post for the authenticated user.
//	@Tags         Posts
//	@Accept       json
//	@Produce      json
//	@Success      201
//	@Failure      400
//	@Failure      401
//	@Router       /posts/ [post]
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req createPostRequest
	if err := readJSON(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	post, err := h.posts.Create(r.Context(), user, req.Title, req.Content, req.ImageURL)
	if err != nil {
		slog.Error("create post", "error", err)
		writeDetail(w, http.StatusInternalServerError, "An unexpected error occurred while creating the post.")
		return
	}

	writeJSON(w, http.StatusCreated, toPostDTO(post))
}

// HandleListByUser lists a user's visible posts, newest first.
//
//	@Summary      List posts by a specific user
//	@Description  Retrieves all non-deleted posts created by a specific user, ordered by creation date (newest first).
//	@Tags         Posts
//	@Produce      json
//	@Param        id  path  int  true  "User ID"
//	@Success      200
//	@Failure      401
//	@Failure      404
//	@Router       /users/{id}/posts/ [get]
func (h *PostHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "User not found.")
		return
	}

	posts, err := h.posts.ListByUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "User not found.")
			return
		}
		slog.Error("list posts", "error", err)
		writeDetail(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, toPostDTOs(posts))
}

// HandleGet returns a post.
//
//	@Summary      View a specific post
//	@Tags         Posts
//	@Produce      json
//	@Param        id  path  int  true  "Post ID"
//	@Success      200
//	@Failure      401
//	@Failure      404
//	@Router       /posts/{id}/ [get]
func (h *PostHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Post not found or has been deleted.")
		return
	}

	post, err := h.posts.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Post not found or has been deleted.")
			return
		}
		slog.Error("get post", "error", err)
		writeDetail(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, toPostDTO(post))
}

// HandleUpdate applies a partial post update. Owner-only.
//
//	@Summary      Update a specific post
//	@Description  Updates some fields of an existing post. Only the provided fields will be updated.
//	@Tags         Posts
//	@Accept       json
//	@Produce      json
//	@Param        id  path  int  true  "Post ID"
//	@Success      200
//	@Failure      400
//	@Failure      401
//	@Failure      403
//	@Failure      404
//	@Router       /posts/{id}/ [patch]
func (h *PostHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	requester := UserFromContext(r.Context())

	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Post not found or has been deleted.")
		return
	}

	var req updatePostRequest
	if err := readJSON(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	post, err := h.posts.Update(r.Context(), requester.ID, id, service.PostUpdate{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeDetail(w, http.StatusNotFound, "Post not found or has been deleted.")
		case errors.Is(err, domain.ErrForbidden):
			writeDetail(w, http.StatusForbidden, "You do not have permission to edit this post.")
		default:
			slog.Error("update post", "error", err)
			writeDetail(w, http.StatusInternalServerError, "An unexpected error occurred while updating the post.")
		}
		return
	}

	writeJSON(w, http.StatusOK, toPostDTO(post))
}

// HandleDelete soft-deletes a post. Owner-only. A repeated delete surfaces as
// not-found because the target lookup filters deleted posts first.
//
//	@Summary      Delete a specific post
//	@Tags         Posts
//	@Param        id  path  int  true  "Post ID"
//	@Success      204
//	@Failure      401
//	@Failure      403
//	@Failure      404
//	@Router       /posts/{id}/ [delete]
func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	requester := UserFromContext(r.Context())

	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Post not found or has been deleted.")
		return
	}

	if err := h.posts.Delete(r.Context(), requester.ID, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeDetail(w, http.StatusNotFound, "Post not found or has been deleted.")
		case errors.Is(err, domain.ErrForbidden):
			writeDetail(w, http.StatusForbidden, "You do not have permission to delete this post.")
		default:
			slog.Error("delete post", "error", err)
			writeDetail(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
