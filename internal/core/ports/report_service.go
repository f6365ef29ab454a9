package ports

import (
	"context"

	"github.com/matalogics/inventory-api/internal/core/domain"
)

// LocationCount is a per-location asset tally.
type LocationCount struct {
	LocationID string
	Name       string
	Count      int
}

// ReportSummary is the aggregate view over the asset collection. Low-stock
// and critical counts are derived from quantity at read time, never stored.
type ReportSummary struct {
	TotalAssets int
	Available   int
	InUse       int
	InStock     int
	InRepair    int
	LowStock    int
	Critical    int
	ByLocation  []LocationCount
}

// ReportService defines reporting use cases.
type ReportService interface {
	Summary(ctx context.Context, actor domain.Identity) (*ReportSummary, error)
}
