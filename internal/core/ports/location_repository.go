package ports

import (
	"context"

	"github.com/matalogics/inventory-api/internal/core/domain"
)

// LocationUpdate carries a partial location mutation.
type LocationUpdate struct {
	Name    *string
	Address *string
	Type    *domain.LocationType
}

type LocationRepository interface {
	List(ctx context.Context) ([]domain.Location, error)
	FindByID(ctx context.Context, id string) (*domain.Location, error)
	Create(ctx context.Context, location *domain.Location) (*domain.Location, error)
	Update(ctx context.Context, id string, upd LocationUpdate) (*domain.Location, error)
	Delete(ctx context.Context, id string) error
}
