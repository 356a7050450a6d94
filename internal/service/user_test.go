package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aneves/socialnet/internal/domain"
	"github.com/aneves/socialnet/internal/repository/sqlite"
	"github.com/aneves/socialnet/internal/service"
)

func newTestUserService(t *testing.T) (*service.UserService, *service.AuthService, *sqlite.DB) {
	t.Helper()
	auth, db := newTestAuthService(t)
	return service.NewUserService(db.Users(), auth), auth, db
}

func strPtr(s string) *string { return &s }

func TestUserService_Get_DeletedIsNotFound(t *testing.T) {
	users, auth, db := newTestUserService(t)
	ctx := context.Background()

	user := registerTestUser(t, auth, "gone@example.com")
	if err := db.Users().SoftDelete(ctx, user.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	if _, err := users.Get(ctx, user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserService_Update_Partial(t *testing.T) {
	users, auth, _ := newTestUserService(t)
	ctx := context.Background()

	user := registerTestUser(t, auth, "partial@example.com")

	updated, err := users.Update(ctx, user.ID, user.ID, service.UserUpdate{Name: strPtr("Renamed")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("expected name Renamed, got %s", updated.Name)
	}
	// Unprovided fields keep their prior values.
	if updated.Email != "partial@example.com" {
		t.Fatalf("expected email unchanged, got %s", updated.Email)
	}
}

func TestUserService_Update_PasswordChangesLogin(t *testing.T) {
	users, auth, _ := newTestUserService(t)
	ctx := context.Background()

	user := registerTestUser(t, auth, "repass@example.com")

	if _, err := users.Update(ctx, user.ID, user.ID, service.UserUpdate{Password: strPtr("newpass99")}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if _, _, err := auth.Login(ctx, "repass@example.com", "password123"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected old password rejected, got %v", err)
	}
	if _, _, err := auth.Login(ctx, "repass@example.com", "newpass99"); err != nil {
		t.Fatalf("expected new password accepted, got %v", err)
	}
}

func TestUserService_Update_NonOwnerForbidden(t *testing.T) {
	users, auth, db := newTestUserService(t)
	ctx := context.Background()

	owner := registerTestUser(t, auth, "owner@example.com")
	other := registerTestUser(t, auth, "other@example.com")

	_, err := users.Update(ctx, other.ID, owner.ID, service.UserUpdate{Name: strPtr("Hijacked")})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// The denied update must leave the record unchanged.
	got, err := db.Users().GetByID(ctx, owner.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != owner.Name {
		t.Fatalf("expected name unchanged, got %s", got.Name)
	}
}

func TestUserService_Update_DuplicateEmail(t *testing.T) {
	users, auth, _ := newTestUserService(t)
	ctx := context.Background()

	registerTestUser(t, auth, "taken@example.com")
	user := registerTestUser(t, auth, "mine@example.com")

	_, err := users.Update(ctx, user.ID, user.ID, service.UserUpdate{Email: strPtr("taken@example.com")})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	users, auth, _ := newTestUserService(t)
	ctx := context.Background()

	user := registerTestUser(t, auth, "del@example.com")

	if err := users.Delete(ctx, user.ID, user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// The profile disappears from standard reads.
	if _, err := users.Get(ctx, user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// A second delete resolves as not-found: the lookup filters the row first.
	if err := users.Delete(ctx, user.ID, user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestUserService_Delete_NonOwnerForbidden(t *testing.T) {
	users, auth, _ := newTestUserService(t)
	ctx := context.Background()

	owner := registerTestUser(t, auth, "owner@example.com")
	other := registerTestUser(t, auth, "other@example.com")

	if err := users.Delete(ctx, other.ID, owner.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Still visible after the denied delete.
	if _, err := users.Get(ctx, owner.ID); err != nil {
		t.Fatalf("expected owner still visible, got %v", err)
	}
}
