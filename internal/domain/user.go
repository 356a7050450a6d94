package domain

import (
	"context"
	"time"
)

// User represents a registered account. A user is never physically removed;
// deletion sets DeletedAt and hides the record from standard reads.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// OwnerID identifies the user itself as the owner of its own profile.
func (u *User) OwnerID() int64 { return u.ID }

// Deleted reports whether the user has been soft-deleted.
func (u *User) Deleted() bool { return u.DeletedAt != nil }

// UserRepository defines persistence operations for users.
//
// GetByID resolves a user regardless of deletion state; GetActive excludes
// soft-deleted rows. Both resolutions exist because post-list and follow
// targets are looked up without the deletion filter while profile detail
// operations apply it.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetActive(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	SoftDelete(ctx context.Context, id int64) error
}
