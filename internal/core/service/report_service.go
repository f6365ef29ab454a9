package service

import (
	"context"
	"sort"

	"github.com/matalogics/inventory-api/internal/auth"
	"github.com/matalogics/inventory-api/internal/core/domain"
	"github.com/matalogics/inventory-api/internal/core/ports"
)

// ReportService computes aggregate views over the asset collection.
// Everything here is derived at read time; no report state is stored.
type ReportService struct {
	assets    ports.AssetRepository
	locations ports.LocationRepository
}

func NewReportService(assets ports.AssetRepository, locations ports.LocationRepository) *ReportService {
	return &ReportService{assets: assets, locations: locations}
}

func (s *ReportService) Summary(ctx context.Context, actor domain.Identity) (*ports.ReportSummary, error) {
	if err := auth.RequireAction(actor, domain.ActionViewReports); err != nil {
		return nil, err
	}

	assets, err := s.assets.List(ctx)
	if err != nil {
		return nil, err
	}
	locations, err := s.locations.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &ports.ReportSummary{TotalAssets: len(assets)}
	perLocation := make(map[string]int)

	for _, a := range assets {
		switch a.Status {
		case domain.AssetAvailable:
			summary.Available++
		case domain.AssetInUse:
			summary.InUse++
		case domain.AssetInStock:
			summary.InStock++
		case domain.AssetInRepair:
			summary.InRepair++
		}
		if a.LowStock() {
			summary.LowStock++
		}
		if a.CriticalStock() {
			summary.Critical++
		}
		perLocation[a.LocationID]++
	}

	for _, loc := range locations {
		summary.ByLocation = append(summary.ByLocation, ports.LocationCount{
			LocationID: loc.ID,
			Name:       loc.Name,
			Count:      perLocation[loc.ID],
		})
	}
	sort.Slice(summary.ByLocation, func(i, j int) bool {
		return summary.ByLocation[i].Name < summary.ByLocation[j].Name
	})

	return summary, nil
}
