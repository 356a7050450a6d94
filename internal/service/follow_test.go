package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aneves/socialnet/internal/domain"
	"github.com/aneves/socialnet/internal/repository/sqlite"
	"github.com/aneves/socialnet/internal/service"
)

func newTestFollowService(t *testing.T) (*service.FollowService, *service.AuthService, *sqlite.DB) {
	t.Helper()
	auth, db := newTestAuthService(t)
	return service.NewFollowService(db.Follows(), db.Users()), auth, db
}

func TestFollowService_Follow(t *testing.T) {
	follows, auth, _ := newTestFollowService(t)
	ctx := context.Background()

	a := registerTestUser(t, auth, "a@example.com")
	b := registerTestUser(t, auth, "b@example.com")

	follow, err := follows.Follow(ctx, a, b.ID)
	if err != nil {
		t.Fatalf("Follow: %v", err)
	}
	if follow.FollowerID != a.ID || follow.FollowingID != b.ID {
		t.Fatalf("unexpected edge %+v", follow)
	}
}

func TestFollowService_Follow_Self(t *testing.T) {
	follows, auth, db := newTestFollowService(t)
	ctx := context.Background()

	a := registerTestUser(t, auth, "a@example.com")

	if _, err := follows.Follow(ctx, a, a.ID); !errors.Is(err, domain.ErrSelfFollow) {
		t.Fatalf("expected ErrSelfFollow, got %v", err)
	}

	exists, err := db.Follows().Exists(ctx, a.ID, a.ID)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if exists {
		t.Fatal("self-follow must not create an edge")
	}
}

func TestFollowService_Follow_Duplicate(t *testing.T) {
	follows, auth, _ := newTestFollowService(t)
	ctx := context.Background()

	a := registerTestUser(t, auth, "a@example.com")
	b := registerTestUser(t, auth, "b@example.com")

	if _, err := follows.Follow(ctx, a, b.ID); err != nil {
		t.Fatalf("first Follow: %v", err)
	}
	if _, err := follows.Follow(ctx, a, b.ID); !errors.Is(err, domain.ErrAlreadyFollowing) {
		t.Fatalf("expected ErrAlreadyFollowing, got %v", err)
	}
}

func TestFollowService_Follow_UnknownTarget(t *testing.T) {
	follows, auth, _ := newTestFollowService(t)
	ctx := context.Background()

	a := registerTestUser(t, auth, "a@example.com")

	if _, err := follows.Follow(ctx, a, 9999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFollowService_Follow_DeletedTargetStillResolves(t *testing.T) {
	follows, auth, db := newTestFollowService(t)
	ctx := context.Background()

	a := registerTestUser(t, auth, "a@example.com")
	b := registerTestUser(t, auth, "b@example.com")
	if err := db.Users().SoftDelete(ctx, b.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	// Target resolution checks existence only, not deletion state.
	if _, err := follows.Follow(ctx, a, b.ID); err != nil {
		t.Fatalf("Follow of deleted target: %v", err)
	}
}

func TestFollowService_Unfollow(t *testing.T) {
	follows, auth, db := newTestFollowService(t)
	ctx := context.Background()

	a := registerTestUser(t, auth, "a@example.com")
	b := registerTestUser(t, auth, "b@example.com")

	if _, err := follows.Follow(ctx, a, b.ID); err != nil {
		t.Fatalf("Follow: %v", err)
	}
	if err := follows.Unfollow(ctx, a, b.ID); err != nil {
		t.Fatalf("Unfollow: %v", err)
	}

	exists, err := db.Follows().Exists(ctx, a.ID, b.ID)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if exists {
		t.Fatal("expected edge removed")
	}
}

func TestFollowService_Unfollow_NotFollowing(t *testing.T) {
	follows, auth, _ := newTestFollowService(t)
	ctx := context.Background()

	a := registerTestUser(t, auth, "a@example.com")
	b := registerTestUser(t, auth, "b@example.com")

	if err := follows.Unfollow(ctx, a, b.ID); !errors.Is(err, domain.ErrNotFollowing) {
		t.Fatalf("expected ErrNotFollowing, got %v", err)
	}
}
