package ports

import (
	"context"

	"github.com/matalogics/inventory-api/internal/core/domain"
)

// CategoryUpdate carries a partial category mutation.
type CategoryUpdate struct {
	Name        *string
	Description *string
	Icon        *string
}

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id string, upd CategoryUpdate) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
