package ports

import (
	"context"

	"github.com/matalogics/inventory-api/internal/core/domain"
)

// UserUpdate carries a partial user mutation. Nil fields are left untouched.
// The password hash is deliberately absent: it is only written at creation.
type UserUpdate struct {
	Name   *string
	Email  *string
	Role   *domain.Role
	Status *domain.UserStatus
}

// UserRepository defines user persistence. Email lookups are
// case-insensitive (emails are stored lowercased).
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
