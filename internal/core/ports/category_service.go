package ports

import (
	"context"

	"github.com/matalogics/inventory-api/internal/core/domain"
)

// CreateCategoryInput carries all data needed to create a category.
type CreateCategoryInput struct {
	Name        string
	Description string
	Icon        string
}

// UpdateCategoryInput is a partial category edit.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
	Icon        *string
}

// CategoryService defines category use cases.
type CategoryService interface {
	List(ctx context.Context, actor domain.Identity) ([]domain.Category, error)
	Create(ctx context.Context, actor domain.Identity, input CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, actor domain.Identity, id string, input UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, actor domain.Identity, id string) error
}
