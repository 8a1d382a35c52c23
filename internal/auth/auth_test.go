package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage/sqlstore"
)

func newAuthenticator(t *testing.T) *PasswordAuthenticator {
	t.Helper()
	store, err := sqlstore.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "auth.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewPasswordAuthenticator(store)
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	a := newAuthenticator(t)

	if _, err := a.Register(ctx, "desk@example.com", "Front Desk", "short", models.RoleStaff); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("expected ErrWeakPassword, got %v", err)
	}

	staff, err := a.Register(ctx, " Desk@Example.com ", "Front Desk", "correct horse", models.RoleStaff)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if staff.Email != "desk@example.com" {
		t.Errorf("expected normalized email, got %q", staff.Email)
	}

	if _, err := a.Register(ctx, "desk@example.com", "Again", "correct horse", models.RoleStaff); !errors.Is(err, ErrEmailExists) {
		t.Errorf("expected ErrEmailExists, got %v", err)
	}

	got, err := a.Authenticate(ctx, "DESK@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got.ID != staff.ID {
		t.Errorf("expected staff %s, got %s", staff.ID, got.ID)
	}

	if _, err := a.Authenticate(ctx, "desk@example.com", "wrong password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := a.Authenticate(ctx, "nobody@example.com", "correct horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	a := newAuthenticator(t)

	created, err := a.EnsureAdmin(ctx, "admin@example.com", "admin-password")
	if err != nil || !created {
		t.Fatalf("expected admin to be created, got created=%v err=%v", created, err)
	}
	created, err = a.EnsureAdmin(ctx, "admin@example.com", "other-password")
	if err != nil || created {
		t.Fatalf("expected existing admin to be kept, got created=%v err=%v", created, err)
	}

	staff, err := a.Authenticate(ctx, "admin@example.com", "admin-password")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if staff.Role != models.RoleAdmin {
		t.Errorf("expected admin role, got %q", staff.Role)
	}
}

func TestJWTManager(t *testing.T) {
	staff := models.NewStaff("desk@example.com", "Front Desk", "hash", models.RoleStaff)

	m := NewJWTManager("test-secret", time.Hour)
	token, err := m.Generate(staff)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.StaffID != staff.ID || claims.Email != staff.Email || claims.Role != models.RoleStaff {
		t.Errorf("unexpected claims: %+v", claims)
	}

	if _, err := NewJWTManager("other-secret", time.Hour).Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}

	expired, err := NewJWTManager("test-secret", -time.Minute).Generate(staff)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := m.Validate(expired); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}
