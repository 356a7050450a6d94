package domain

import (
	"context"
	"time"
)

// Follow is a directed edge from one user to another. The pair is unique and
// edges are hard-deleted; an absent edge is a valid terminal state.
type Follow struct {
	ID          int64
	FollowerID  int64
	FollowingID int64
	CreatedAt   time.Time
}

// FollowRepository defines persistence operations for follow edges. The
// unique (follower, following) constraint is the sole guard against
// concurrent duplicate creation.
type FollowRepository interface {
	// Create inserts the edge, returning ErrAlreadyFollowing when the pair
	// already exists.
	Create(ctx context.Context, follow *Follow) error
	// Delete removes the edge, returning ErrNotFollowing when no row matched.
	Delete(ctx context.Context, followerID, followingID int64) error
}
