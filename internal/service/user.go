package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aneves/socialnet/internal/domain"
)

// UserService handles profile reads, partial updates, and soft deletion.
type UserService struct {
	users domain.UserRepository
	auth  *AuthService
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository, auth *AuthService) *UserService {
	return &UserService{users: users, auth: auth}
}

// UserUpdate carries a partial profile update. Nil fields keep their prior
// values.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

// Get returns a visible user. Soft-deleted users resolve as ErrNotFound.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetActive(ctx, id)
}

// Update applies the provided field subset to the requester's own profile.
// Only the owner may edit; anyone else gets ErrForbidden.
func (s *UserService) Update(ctx context.Context, requesterID, id int64, in UserUpdate) (*domain.User, error) {
	user, err := s.users.GetActive(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Authorize(requesterID, user, domain.OpUpdate); err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := s.auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

// Delete soft-deletes the requester's own profile. The lookup already filters
// deleted users, so the explicit already-deleted check only fires if a caller
// bypasses it; it is kept because the deletion of a profile reports
// ErrAlreadyDeleted rather than not-found.
func (s *UserService) Delete(ctx context.Context, requesterID, id int64) error {
	user, err := s.users.GetActive(ctx, id)
	if err != nil {
		return err
	}

	if err := domain.Authorize(requesterID, user, domain.OpDelete); err != nil {
		return err
	}

	if user.Deleted() {
		return domain.ErrAlreadyDeleted
	}

	return s.users.SoftDelete(ctx, id)
}
