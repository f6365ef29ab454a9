package ports

import (
	"context"

	"github.com/matalogics/inventory-api/internal/core/domain"
)

// CreateUserInput carries all data needed to create a user.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
	Status   domain.UserStatus
}

// UpdateUserInput is a partial profile edit. Role and status changes go
// through ChangeRole / ToggleStatus so the self-protection rule applies.
type UpdateUserInput struct {
	Name  *string
	Email *string
}

// UserService defines user-management use cases. Every operation takes the
// acting identity explicitly; there is no ambient current-user lookup.
type UserService interface {
	List(ctx context.Context, actor domain.Identity) ([]domain.User, error)
	Create(ctx context.Context, actor domain.Identity, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, actor domain.Identity, id string, input UpdateUserInput) error
	Delete(ctx context.Context, actor domain.Identity, id string) error
	ChangeRole(ctx context.Context, actor domain.Identity, id string, role domain.Role) error
	ToggleStatus(ctx context.Context, actor domain.Identity, id string) (domain.UserStatus, error)
}
