package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aneves/socialnet/internal/domain"
)

// PostService handles post CRUD behind the ownership gate.
type PostService struct {
	posts domain.PostRepository
	users domain.UserRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts domain.PostRepository, users domain.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// PostUpdate carries a partial post update. Nil fields keep their prior
// values.
type PostUpdate struct {
	Title    *string
	Content  *string
	ImageURL *string
}

// Create stores a new post owned by the author.
func (s *PostService) Create(ctx context.Context, author *domain.User, title, content string, imageURL *string) (*domain.Post, error) {
	post := &domain.Post{
		UserID:     author.ID,
		AuthorName: author.Name,
		Title:      title,
		Content:    content,
		ImageURL:   imageURL,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// Get returns a visible post. Soft-deleted posts resolve as ErrNotFound.
func (s *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	return s.posts.GetActive(ctx, id)
}

// ListByUser returns the given user's visible posts, newest first. The owner
// is resolved without the deletion filter; only a truly missing user fails.
func (s *PostService) ListByUser(ctx context.Context, ownerID int64) ([]domain.Post, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.posts.ListActiveByOwner(ctx, ownerID)
}

// Update applies the provided field subset after the ownership check.
func (s *PostService) Update(ctx context.Context, requesterID, id int64, in PostUpdate) (*domain.Post, error) {
	post, err := s.posts.GetActive(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Authorize(requesterID, post, domain.OpUpdate); err != nil {
		return nil, err
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.ImageURL != nil {
		post.ImageURL = in.ImageURL
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return post, nil
}

// Delete soft-deletes a post after the ownership check. A second delete of
// the same post resolves as ErrNotFound because the lookup filters the
// already-deleted row out first.
func (s *PostService) Delete(ctx context.Context, requesterID, id int64) error {
	post, err := s.posts.GetActive(ctx, id)
	if err != nil {
		return err
	}

	if err := domain.Authorize(requesterID, post, domain.OpDelete); err != nil {
		return err
	}

	if err := s.posts.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}
