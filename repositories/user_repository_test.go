package repositories

import (
	"testing"

	"garment-flow/apperr"
)

func TestUserCreateAndLookup(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	email := "ops@factory.test"
	created, err := repo.Create(InsertUser{
		Username: "operator1",
		Email:    &email,
		Password: "hashed-password",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Role != "user" || created.Status != "active" {
		t.Fatalf("expected defaults, got role %q status %q", created.Role, created.Status)
	}

	got, err := repo.GetByUsername("operator1")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got == nil || got.ID != created.ID {
		t.Fatalf("lookup mismatch: %+v", got)
	}

	absent, err := repo.GetByUsername("nobody")
	if err != nil || absent != nil {
		t.Fatalf("absent user must be nil, nil; got %+v, %v", absent, err)
	}
}

func TestUserDuplicateUsername(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	if _, err := repo.Create(InsertUser{Username: "dup", Password: "x"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := repo.Create(InsertUser{Username: "dup", Password: "y"})
	appErr, ok := apperr.As(err)
	if !ok || appErr.Kind != apperr.Conflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestUserPartialUpdate(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	created, err := repo.Create(InsertUser{Username: "operator1", Password: "x", Department: "dyeing"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	role := "admin"
	updated, err := repo.Update(int(created.ID), UpdateUser{Role: &role})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Role != "admin" {
		t.Fatalf("expected role admin, got %q", updated.Role)
	}
	if updated.Department != "dyeing" {
		t.Fatalf("unspecified field changed: %q", updated.Department)
	}
}

func TestUserUpdateMissingIsNotFound(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	role := "admin"
	_, err := repo.Update(42, UpdateUser{Role: &role})
	appErr, ok := apperr.As(err)
	if !ok || appErr.Kind != apperr.NotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUserTouchLastLogin(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	created, err := repo.Create(InsertUser{Username: "operator1", Password: "x"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.LastLogin != nil {
		t.Fatal("fresh user must have no last login")
	}

	if err := repo.TouchLastLogin(created.ID); err != nil {
		t.Fatalf("touch: %v", err)
	}

	got, err := repo.GetByID(int(created.ID))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.LastLogin == nil {
		t.Fatal("expected last login stamped")
	}
}
