package ports

import (
	"context"
	"time"

	"github.com/matalogics/inventory-api/internal/core/domain"
)

// AssetUpdate carries a partial asset mutation. Nil fields are left untouched.
type AssetUpdate struct {
	Name         *string
	SerialNumber *string
	CategoryID   *string
	LocationID   *string
	PurchaseDate *time.Time
	Status       *domain.AssetStatus
	Quantity     *int
	Notes        *string
}

// AssetRepository defines asset persistence.
type AssetRepository interface {
	List(ctx context.Context) ([]domain.Asset, error)
	FindByID(ctx context.Context, id string) (*domain.Asset, error)
	Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error)
	Update(ctx context.Context, id string, upd AssetUpdate) (*domain.Asset, error)
	Delete(ctx context.Context, id string) error
	// CountByCategory and CountByLocation back the referential checks that
	// block deleting a category/location still in use.
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
	CountByLocation(ctx context.Context, locationID string) (int64, error)
}
