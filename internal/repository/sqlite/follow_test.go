package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aneves/socialnet/internal/domain"
)

func TestFollowRepository_Create(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	a := createTestUser(t, db, "a@example.com")
	b := createTestUser(t, db, "b@example.com")

	follow := &domain.Follow{FollowerID: a.ID, FollowingID: b.ID}
	if err := db.Follows().Create(ctx, follow); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if follow.ID == 0 {
		t.Fatal("expected follow ID to be set")
	}
	if follow.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

func TestFollowRepository_Create_DuplicatePair(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	a := createTestUser(t, db, "a@example.com")
	b := createTestUser(t, db, "b@example.com")

	if err := db.Follows().Create(ctx, &domain.Follow{FollowerID: a.ID, FollowingID: b.ID}); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	err := db.Follows().Create(ctx, &domain.Follow{FollowerID: a.ID, FollowingID: b.ID})
	if !errors.Is(err, domain.ErrAlreadyFollowing) {
		t.Fatalf("expected ErrAlreadyFollowing, got %v", err)
	}

	// The unique constraint must leave exactly one row behind.
	var count int
	if err := db.SqlDB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM follows WHERE follower_id = ? AND following_id = ?", a.ID, b.ID,
	).Scan(&count); err != nil {
		t.Fatalf("count follows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 edge, got %d", count)
	}
}

func TestFollowRepository_Create_ReversePairAllowed(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	a := createTestUser(t, db, "a@example.com")
	b := createTestUser(t, db, "b@example.com")

	if err := db.Follows().Create(ctx, &domain.Follow{FollowerID: a.ID, FollowingID: b.ID}); err != nil {
		t.Fatalf("a->b: %v", err)
	}
	if err := db.Follows().Create(ctx, &domain.Follow{FollowerID: b.ID, FollowingID: a.ID}); err != nil {
		t.Fatalf("b->a should be a distinct edge: %v", err)
	}
}

func TestFollowRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	a := createTestUser(t, db, "a@example.com")
	b := createTestUser(t, db, "b@example.com")

	if err := db.Follows().Create(ctx, &domain.Follow{FollowerID: a.ID, FollowingID: b.ID}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := db.Follows().Delete(ctx, a.ID, b.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	exists, err := db.Follows().Exists(ctx, a.ID, b.ID)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if exists {
		t.Fatal("expected edge to be removed")
	}
}

func TestFollowRepository_Delete_MissingEdge(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	a := createTestUser(t, db, "a@example.com")
	b := createTestUser(t, db, "b@example.com")

	if err := db.Follows().Delete(ctx, a.ID, b.ID); !errors.Is(err, domain.ErrNotFollowing) {
		t.Fatalf("expected ErrNotFollowing, got %v", err)
	}
}
