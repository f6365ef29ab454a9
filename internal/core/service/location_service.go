package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/matalogics/inventory-api/internal/auth"
	"github.com/matalogics/inventory-api/internal/core/domain"
	"github.com/matalogics/inventory-api/internal/core/ports"
)

// LocationService implements location use cases. Create and update are bound
// to the updateLocation permission (Admins and Managers both hold it, the
// operational reading of location upkeep); delete is Admin-only via the
// delete permission. Deletes are blocked while assets still reference the
// location.
type LocationService struct {
	locations ports.LocationRepository
	assets    ports.AssetRepository
	audit     ports.AuditRecorder
	logger    zerolog.Logger
}

func NewLocationService(locations ports.LocationRepository, assets ports.AssetRepository, audit ports.AuditRecorder, logger zerolog.Logger) *LocationService {
	return &LocationService{locations: locations, assets: assets, audit: audit, logger: logger}
}

func (s *LocationService) List(ctx context.Context, actor domain.Identity) ([]domain.Location, error) {
	if err := auth.RequireAction(actor, domain.ActionRead); err != nil {
		return nil, err
	}
	return s.locations.List(ctx)
}

func (s *LocationService) Create(ctx context.Context, actor domain.Identity, input ports.CreateLocationInput) (*domain.Location, error) {
	if err := auth.RequireAction(actor, domain.ActionUpdateLocation); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, domain.NewValidationError("name")
	}
	typ := input.Type
	if typ == "" {
		typ = domain.LocationOffice
	}
	if !typ.Valid() {
		return nil, domain.NewValidationError("type")
	}

	now := time.Now().UTC()
	location := &domain.Location{
		Name:      input.Name,
		Address:   input.Address,
		Type:      typ,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.locations.Create(ctx, location)
	if err != nil {
		return nil, err
	}
	recordAudit(s.audit, actor, domain.ActionUpdateLocation, "location", created.ID)
	s.logger.Info().Str("location_id", created.ID).Str("name", created.Name).Msg("location created")
	return created, nil
}

func (s *LocationService) Update(ctx context.Context, actor domain.Identity, id string, input ports.UpdateLocationInput) (*domain.Location, error) {
	if err := auth.RequireAction(actor, domain.ActionUpdateLocation); err != nil {
		return nil, err
	}
	if input.Name != nil && *input.Name == "" {
		return nil, domain.NewValidationError("name")
	}
	if input.Type != nil && !input.Type.Valid() {
		return nil, domain.NewValidationError("type")
	}

	updated, err := s.locations.Update(ctx, id, ports.LocationUpdate{
		Name:    input.Name,
		Address: input.Address,
		Type:    input.Type,
	})
	if err != nil {
		return nil, err
	}
	recordAudit(s.audit, actor, domain.ActionUpdateLocation, "location", id)
	return updated, nil
}

func (s *LocationService) Delete(ctx context.Context, actor domain.Identity, id string) error {
	if err := auth.RequireAction(actor, domain.ActionDelete); err != nil {
		return err
	}

	n, err := s.assets.CountByLocation(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}

	if err := s.locations.Delete(ctx, id); err != nil {
		return err
	}
	recordAudit(s.audit, actor, domain.ActionDelete, "location", id)
	s.logger.Info().Str("location_id", id).Msg("location deleted")
	return nil
}
