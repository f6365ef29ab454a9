package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/matalogics/inventory-api/internal/core/domain"
	"github.com/matalogics/inventory-api/internal/core/ports"
)

func TestUserCreate_Success(t *testing.T) {
	repo := newStubUserRepo()
	audit := &stubAuditRecorder{}
	svc := NewUserService(repo, audit, zerolog.Nop())

	created, err := svc.Create(context.Background(), adminIdentity(), ports.CreateUserInput{
		Name: "Michael Chen", Email: "Michael.Chen@Company.com", Password: "manager123", Role: domain.RoleManager,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Email != "michael.chen@company.com" {
		t.Fatalf("email not lowercased: %q", created.Email)
	}
	if created.PasswordHash == "manager123" {
		t.Fatalf("password stored in clear")
	}
	if created.Status != domain.StatusActive {
		t.Fatalf("default status = %s, want Active", created.Status)
	}
	if len(audit.events) != 1 {
		t.Fatalf("audit events = %d, want 1", len(audit.events))
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())

	input := ports.CreateUserInput{Name: "A", Email: "a@x.com", Password: "pw123456", Role: domain.RoleViewer}
	if _, err := svc.Create(context.Background(), adminIdentity(), input); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(context.Background(), adminIdentity(), input); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("got %v, want ErrConflict", err)
	}
}

func TestUserCreate_UnknownRoleRejected(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), nil, zerolog.Nop())

	_, err := svc.Create(context.Background(), adminIdentity(), ports.CreateUserInput{
		Name: "B", Email: "b@x.com", Password: "pw123456", Role: "Root",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestUserManagement_NonAdminForbidden(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), nil, zerolog.Nop())

	if _, err := svc.List(context.Background(), managerIdentity()); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("manager list: got %v, want ErrForbidden", err)
	}
	if _, err := svc.Create(context.Background(), viewerIdentity(), ports.CreateUserInput{
		Name: "C", Email: "c@x.com", Password: "pw123456", Role: domain.RoleViewer,
	}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("viewer create: got %v, want ErrForbidden", err)
	}
}

func TestUser_SelfProtection(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())

	admin, err := repo.Create(context.Background(), &domain.User{
		Name: "Sole Admin", Email: "admin@x.com", Role: domain.RoleAdmin, Status: domain.StatusActive,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	actor := admin.Identity()

	// The sole acting Admin cannot demote themselves...
	if err := svc.ChangeRole(context.Background(), actor, admin.ID, domain.RoleViewer); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("self demote: got %v, want ErrForbidden", err)
	}
	// ...nor disable themselves...
	if _, err := svc.ToggleStatus(context.Background(), actor, admin.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("self disable: got %v, want ErrForbidden", err)
	}
	// ...nor delete their own account.
	if err := svc.Delete(context.Background(), actor, admin.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("self delete: got %v, want ErrForbidden", err)
	}

	still, err := repo.FindByID(context.Background(), admin.ID)
	if err != nil {
		t.Fatalf("admin gone: %v", err)
	}
	if still.Role != domain.RoleAdmin || still.Status != domain.StatusActive {
		t.Fatalf("admin record mutated: role=%s status=%s", still.Role, still.Status)
	}
}

func TestUser_AdminManagesOthers(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())

	admin, _ := repo.Create(context.Background(), &domain.User{Name: "A", Email: "a@x.com", Role: domain.RoleAdmin, Status: domain.StatusActive})
	other, _ := repo.Create(context.Background(), &domain.User{Name: "B", Email: "b@x.com", Role: domain.RoleViewer, Status: domain.StatusActive})
	actor := admin.Identity()

	if err := svc.ChangeRole(context.Background(), actor, other.ID, domain.RoleManager); err != nil {
		t.Fatalf("change role: %v", err)
	}
	status, err := svc.ToggleStatus(context.Background(), actor, other.ID)
	if err != nil {
		t.Fatalf("toggle status: %v", err)
	}
	if status != domain.StatusDisabled {
		t.Fatalf("status = %s, want Disabled", status)
	}
	status, err = svc.ToggleStatus(context.Background(), actor, other.ID)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if status != domain.StatusActive {
		t.Fatalf("status = %s, want Active", status)
	}
	if err := svc.Delete(context.Background(), actor, other.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
