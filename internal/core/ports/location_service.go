package ports

import (
	"context"

	"github.com/matalogics/inventory-api/internal/core/domain"
)

// CreateLocationInput carries all data needed to create a location.
type CreateLocationInput struct {
	Name    string
	Address string
	Type    domain.LocationType
}

// UpdateLocationInput is a partial location edit.
type UpdateLocationInput struct {
	Name    *string
	Address *string
	Type    *domain.LocationType
}

// LocationService defines location use cases.
type LocationService interface {
	List(ctx context.Context, actor domain.Identity) ([]domain.Location, error)
	Create(ctx context.Context, actor domain.Identity, input CreateLocationInput) (*domain.Location, error)
	Update(ctx context.Context, actor domain.Identity, id string, input UpdateLocationInput) (*domain.Location, error)
	Delete(ctx context.Context, actor domain.Identity, id string) error
}
