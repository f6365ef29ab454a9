package auth

import (
	"errors"
	"testing"

	"github.com/matalogics/inventory-api/internal/core/domain"
)

func admin() domain.Identity {
	return domain.Identity{ID: "u1", Name: "Sarah", Email: "sarah@company.com", Role: domain.RoleAdmin, Status: domain.StatusActive}
}

func viewer() domain.Identity {
	return domain.Identity{ID: "u3", Name: "Emily", Email: "emily@company.com", Role: domain.RoleViewer, Status: domain.StatusActive}
}

func TestRequireAction_Allows(t *testing.T) {
	if err := RequireAction(admin(), domain.ActionManageUsers); err != nil {
		t.Fatalf("admin manageUsers: %v", err)
	}
	if err := RequireAction(viewer(), domain.ActionRead); err != nil {
		t.Fatalf("viewer read: %v", err)
	}
}

func TestRequireAction_Forbids(t *testing.T) {
	if err := RequireAction(viewer(), domain.ActionCreate); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("viewer create: got %v, want ErrForbidden", err)
	}
}

func TestRequireAction_ZeroIdentity(t *testing.T) {
	if err := RequireAction(domain.Identity{}, domain.ActionRead); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("zero identity: got %v, want ErrForbidden", err)
	}
}

func TestRequireActionOnUser_SelfDenied(t *testing.T) {
	caller := admin()

	// Even the sole acting Admin may not target their own account.
	if err := RequireActionOnUser(caller, caller.ID, domain.ActionManageUsers); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("self-targeted action: got %v, want ErrForbidden", err)
	}
}

func TestRequireActionOnUser_OtherAllowed(t *testing.T) {
	if err := RequireActionOnUser(admin(), "u2", domain.ActionManageUsers); err != nil {
		t.Fatalf("admin on other user: %v", err)
	}
}

func TestRequireActionOnUser_StillChecksTable(t *testing.T) {
	if err := RequireActionOnUser(viewer(), "u2", domain.ActionManageUsers); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("viewer manageUsers: got %v, want ErrForbidden", err)
	}
}
