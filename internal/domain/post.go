package domain

import (
	"context"
	"time"
)

// Post is a text post owned by a single user. Deletion is a soft delete:
// DeletedAt is set and the post disappears from all standard reads.
type Post struct {
	ID         int64
	UserID     int64
	AuthorName string
	Title      string
	Content    string
	ImageURL   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// OwnerID identifies the post's author.
func (p *Post) OwnerID() int64 { return p.UserID }

// Deleted reports whether the post has been soft-deleted.
func (p *Post) Deleted() bool { return p.DeletedAt != nil }

// PostRepository defines persistence operations for posts. All read paths
// exclude soft-deleted rows; a deleted post resolves as ErrNotFound.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetActive(ctx context.Context, id int64) (*Post, error)
	// ListActiveByOwner returns the owner's visible posts, newest first.
	ListActiveByOwner(ctx context.Context, ownerID int64) ([]Post, error)
	Update(ctx context.Context, post *Post) error
	SoftDelete(ctx context.Context, id int64) error
}
