package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aneves/socialnet/internal/domain"
)

// FollowService manages directed follow edges between users. The acting
// identity is always the follower side, so no separate ownership gate is
// needed here.
type FollowService struct {
	follows domain.FollowRepository
	users   domain.UserRepository
}

// NewFollowService creates a new FollowService.
func NewFollowService(follows domain.FollowRepository, users domain.UserRepository) *FollowService {
	return &FollowService{follows: follows, users: users}
}

// Follow creates an edge from the follower to the target user. The target
// must exist (deletion state is not checked), self-follow is rejected, and a
// duplicate pair surfaces as ErrAlreadyFollowing. Under concurrent requests
// the unique constraint guarantees exactly one edge.
func (s *FollowService) Follow(ctx context.Context, follower *domain.User, targetID int64) (*domain.Follow, error) {
	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if follower.ID == target.ID {
		return nil, domain.ErrSelfFollow
	}

	follow := &domain.Follow{
		FollowerID:  follower.ID,
		FollowingID: target.ID,
	}
	if err := s.follows.Create(ctx, follow); err != nil {
		if errors.Is(err, domain.ErrAlreadyFollowing) {
			return nil, err
		}
		return nil, fmt.Errorf("create follow: %w", err)
	}

	return follow, nil
}

// Unfollow removes the edge from the follower to the target user. A missing
// edge is reported as ErrNotFollowing, not silently ignored.
func (s *FollowService) Unfollow(ctx context.Context, follower *domain.User, targetID int64) error {
	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	if err := s.follows.Delete(ctx, follower.ID, target.ID); err != nil {
		if errors.Is(err, domain.ErrNotFollowing) {
			return err
		}
		return fmt.Errorf("delete follow: %w", err)
	}
	return nil
}
