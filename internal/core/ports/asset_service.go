package ports

import (
	"context"
	"time"

	"github.com/matalogics/inventory-api/internal/core/domain"
)

// CreateAssetInput carries all data needed to create an asset.
type CreateAssetInput struct {
	Name         string
	SerialNumber string
	CategoryID   string
	LocationID   string
	PurchaseDate time.Time
	Status       domain.AssetStatus
	Quantity     int
	Notes        string
}

// UpdateAssetInput is a partial asset edit. Which fields actually apply
// depends on the caller's role; the service reduces the set, never the guard.
type UpdateAssetInput struct {
	Name         *string
	SerialNumber *string
	CategoryID   *string
	LocationID   *string
	PurchaseDate *time.Time
	Status       *domain.AssetStatus
	Quantity     *int
	Notes        *string
}

// AssetService defines asset use cases.
type AssetService interface {
	List(ctx context.Context, actor domain.Identity) ([]domain.Asset, error)
	Get(ctx context.Context, actor domain.Identity, id string) (*domain.Asset, error)
	Create(ctx context.Context, actor domain.Identity, input CreateAssetInput) (*domain.Asset, error)
	Update(ctx context.Context, actor domain.Identity, id string, input UpdateAssetInput) (*domain.Asset, error)
	Delete(ctx context.Context, actor domain.Identity, id string) error
}
