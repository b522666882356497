package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tenantive/accounts-api/internal/core/domain"
	"github.com/tenantive/accounts-api/internal/core/ports"
	"github.com/tenantive/accounts-api/internal/pkg/hash"
)

func strPtr(s string) *string          { return &s }
func rolePtr(r domain.Role) *domain.Role { return &r }
func boolPtr(b bool) *bool             { return &b }

func createTestUser(t *testing.T, svc *UserService, email string, role domain.Role) *domain.User {
	t.Helper()
	id, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Test User",
		Email:    email,
		Password: "password1",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	user, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	return user
}

func TestUserService_Create(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	id, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password1",
		Role:     domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	user, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.DocVersion != 1 {
		t.Fatalf("expected docVersion 1, got %d", user.DocVersion)
	}
	if user.PasswordHash == "password1" || !hash.Verify("password1", user.PasswordHash) {
		t.Fatalf("password not hashed correctly")
	}
	if h := repo.historyFor(id); len(h) != 1 || h[0].DocVersion != 1 {
		t.Fatalf("expected one history snapshot at version 1, got %+v", h)
	}
}

func TestUserService_HistoryAppendFailureAbortsMutation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := createTestUser(t, svc, "audited@example.com", domain.RoleUser)

	repo.historyErr = errors.New("history collection unavailable")

	t.Run("create", func(t *testing.T) {
		_, err := svc.Create(context.Background(), ports.CreateUserInput{
			Name:     "Eve",
			Email:    "eve@example.com",
			Password: "password1",
			Role:     domain.RoleUser,
		})
		if err == nil {
			t.Fatal("create succeeded without a history snapshot")
		}
	})

	t.Run("update", func(t *testing.T) {
		_, err := svc.Update(context.Background(), user.ID, user, ports.UpdateUserInput{
			Name: strPtr("Renamed"),
		})
		if err == nil {
			t.Fatal("update succeeded without a history snapshot")
		}
		got, gerr := svc.Get(context.Background(), user.ID)
		if gerr != nil {
			t.Fatalf("get: %v", gerr)
		}
		if got.DocVersion != 1 || got.Name != "Test User" {
			t.Fatalf("stored user mutated despite aborted update: %+v", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := svc.Delete(context.Background(), user.ID); err == nil {
			t.Fatal("delete succeeded without a history snapshot")
		}
		if _, err := svc.Get(context.Background(), user.ID); err != nil {
			t.Fatalf("user removed despite aborted delete: %v", err)
		}
	})
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	createTestUser(t, svc, "dup@example.com", domain.RoleUser)

	_, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Other",
		Email:    "dup@example.com",
		Password: "password2",
		Role:     domain.RoleUser,
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected Conflict, got %v", err)
	}

	all, _ := svc.List(context.Background())
	if len(all) != 1 {
		t.Fatalf("conflict must not insert a document, have %d users", len(all))
	}
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "password1",
		Role:     domain.Role("root"),
	})
	if !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected BadRequest for unknown role, got %v", err)
	}
}

func TestUserService_Update_BumpsVersionAndHistory(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := createTestUser(t, svc, "admin@example.com", domain.RoleAdmin)
	user := createTestUser(t, svc, "user@example.com", domain.RoleUser)

	updated, err := svc.Update(context.Background(), user.ID, admin, ports.UpdateUserInput{
		Name: strPtr("new name"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "new name" {
		t.Fatalf("name not applied: %+v", updated)
	}
	if updated.DocVersion != 2 {
		t.Fatalf("expected docVersion 2, got %d", updated.DocVersion)
	}
	if h := repo.historyFor(user.ID); len(h) != 2 || h[1].DocVersion != 2 {
		t.Fatalf("expected second history snapshot at version 2, got %+v", h)
	}
}

func TestUserService_Update_AdminPromotesUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := createTestUser(t, svc, "admin@example.com", domain.RoleAdmin)
	user := createTestUser(t, svc, "user@example.com", domain.RoleUser)

	updated, err := svc.Update(context.Background(), user.ID, admin, ports.UpdateUserInput{
		Role: rolePtr(domain.RoleAdmin),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Role != domain.RoleAdmin || updated.DocVersion != 2 {
		t.Fatalf("expected role=admin docVersion=2, got %+v", updated)
	}
}

func TestUserService_Update_RoleEscalationGuard(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := createTestUser(t, svc, "admin@example.com", domain.RoleAdmin)
	user := createTestUser(t, svc, "user@example.com", domain.RoleUser)

	// A user cannot raise their own role.
	_, err := svc.Update(context.Background(), user.ID, user, ports.UpdateUserInput{
		Role: rolePtr(domain.RoleAdmin),
	})
	var derr *domain.Error
	if !errors.As(err, &derr) || derr.Status != 403 || derr.Message != "Cannot change role to higher" {
		t.Fatalf("expected 403 Cannot change role to higher, got %v", err)
	}

	// An admin cannot raise anyone (self included) to superAdmin.
	if _, err := svc.Update(context.Background(), admin.ID, admin, ports.UpdateUserInput{
		Role: rolePtr(domain.RoleSuperAdmin),
	}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected Forbidden, got %v", err)
	}

	// But an admin may lower their own role.
	updated, err := svc.Update(context.Background(), admin.ID, admin, ports.UpdateUserInput{
		Role: rolePtr(domain.RoleUser),
	})
	if err != nil {
		t.Fatalf("self-demotion should pass: %v", err)
	}
	if updated.Role != domain.RoleUser {
		t.Fatalf("expected role=user, got %s", updated.Role)
	}

	// Failed updates leave the version untouched.
	current, _ := svc.Get(context.Background(), user.ID)
	if current.DocVersion != 1 {
		t.Fatalf("failed update must not bump docVersion, got %d", current.DocVersion)
	}
}

func TestUserService_Update_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := createTestUser(t, svc, "admin@example.com", domain.RoleAdmin)
	user := createTestUser(t, svc, "user@example.com", domain.RoleUser)

	if _, err := svc.Update(context.Background(), user.ID, admin, ports.UpdateUserInput{
		Email: strPtr("admin@example.com"),
	}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected Conflict, got %v", err)
	}
}

func TestUserService_Update_Disable(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := createTestUser(t, svc, "admin@example.com", domain.RoleAdmin)
	user := createTestUser(t, svc, "user@example.com", domain.RoleUser)

	updated, err := svc.Update(context.Background(), user.ID, admin, ports.UpdateUserInput{
		IsDisabled: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.IsDisabled || updated.DocVersion != 2 {
		t.Fatalf("expected disabled at version 2, got %+v", updated)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := createTestUser(t, svc, "user@example.com", domain.RoleUser)

	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.Get(context.Background(), user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected NotFound after delete, got %v", err)
	}
	// Final snapshot written before removal.
	h := repo.historyFor(user.ID)
	if len(h) != 2 || h[1].DocVersion != 2 {
		t.Fatalf("expected final history snapshot at version 2, got %+v", h)
	}
}

func TestUserService_Get_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), "000000000000000000000000"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}
