package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aneves/socialnet/internal/domain"
)

func TestUserRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	user := &domain.User{
		Email:        "test@example.com",
		Name:         "Test User",
		PasswordHash: "hashedpw",
	}

	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if user.ID == 0 {
		t.Fatal("expected user ID to be set after create")
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	createTestUser(t, db, "dup@example.com")

	user := &domain.User{Email: "dup@example.com", Name: "User 2", PasswordHash: "hash2"}
	if err := repo.Create(ctx, user); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_Create_DuplicateEmailOfDeletedUser(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	user := createTestUser(t, db, "freed@example.com")
	if err := repo.SoftDelete(ctx, user.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	// Deleted users keep their row, so the email stays taken.
	again := &domain.User{Email: "freed@example.com", Name: "Newcomer", PasswordHash: "hash"}
	if err := repo.Create(ctx, again); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail for deleted user's email, got %v", err)
	}
}

func TestUserRepository_GetActive_FiltersDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	user := createTestUser(t, db, "gone@example.com")
	if err := repo.SoftDelete(ctx, user.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	if _, err := repo.GetActive(ctx, user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound from GetActive, got %v", err)
	}

	// Unfiltered lookup still resolves the row and carries the timestamp.
	got, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.DeletedAt == nil {
		t.Fatal("expected DeletedAt to be set")
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	created := createTestUser(t, db, "mail@example.com")

	got, err := repo.GetByEmail(ctx, "mail@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected id %d, got %d", created.ID, got.ID)
	}

	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	user := createTestUser(t, db, "update@example.com")
	user.Name = "Renamed"
	user.Email = "renamed@example.com"

	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Renamed" || got.Email != "renamed@example.com" {
		t.Fatalf("update not persisted: %+v", got)
	}
}

func TestUserRepository_Update_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	createTestUser(t, db, "taken@example.com")
	user := createTestUser(t, db, "mine@example.com")

	user.Email = "taken@example.com"
	if err := repo.Update(ctx, user); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_SoftDelete_Twice(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	user := createTestUser(t, db, "twice@example.com")
	if err := repo.SoftDelete(ctx, user.ID); err != nil {
		t.Fatalf("first SoftDelete: %v", err)
	}
	if err := repo.SoftDelete(ctx, user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second soft delete, got %v", err)
	}
}
