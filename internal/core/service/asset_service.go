package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/matalogics/inventory-api/internal/auth"
	"github.com/matalogics/inventory-api/internal/core/domain"
	"github.com/matalogics/inventory-api/internal/core/ports"
)

// AssetService implements asset use cases. Updates are field-authorized: a
// role without the full update permission gets its payload reduced to the
// fields it may touch instead of a silent privilege escalation.
type AssetService struct {
	assets     ports.AssetRepository
	categories ports.CategoryRepository
	locations  ports.LocationRepository
	audit      ports.AuditRecorder
	logger     zerolog.Logger
}

func NewAssetService(assets ports.AssetRepository, categories ports.CategoryRepository, locations ports.LocationRepository, audit ports.AuditRecorder, logger zerolog.Logger) *AssetService {
	return &AssetService{assets: assets, categories: categories, locations: locations, audit: audit, logger: logger}
}

func (s *AssetService) List(ctx context.Context, actor domain.Identity) ([]domain.Asset, error) {
	if err := auth.RequireAction(actor, domain.ActionRead); err != nil {
		return nil, err
	}
	return s.assets.List(ctx)
}

func (s *AssetService) Get(ctx context.Context, actor domain.Identity, id string) (*domain.Asset, error) {
	if err := auth.RequireAction(actor, domain.ActionRead); err != nil {
		return nil, err
	}
	return s.assets.FindByID(ctx, id)
}

func (s *AssetService) Create(ctx context.Context, actor domain.Identity, input ports.CreateAssetInput) (*domain.Asset, error) {
	if err := auth.RequireAction(actor, domain.ActionCreate); err != nil {
		return nil, err
	}

	var bad []string
	if input.Name == "" {
		bad = append(bad, "name")
	}
	if input.SerialNumber == "" {
		bad = append(bad, "serialNumber")
	}
	if input.CategoryID == "" {
		bad = append(bad, "categoryId")
	}
	if input.LocationID == "" {
		bad = append(bad, "locationId")
	}
	if input.Quantity < 0 {
		bad = append(bad, "quantity")
	}
	status := input.Status
	if status == "" {
		status = domain.AssetAvailable
	}
	if !status.Valid() {
		bad = append(bad, "status")
	}
	if len(bad) > 0 {
		return nil, domain.NewValidationError(bad...)
	}

	if err := s.checkReferences(ctx, input.CategoryID, input.LocationID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	asset := &domain.Asset{
		Name:         input.Name,
		SerialNumber: input.SerialNumber,
		CategoryID:   input.CategoryID,
		LocationID:   input.LocationID,
		PurchaseDate: input.PurchaseDate,
		Status:       status,
		Quantity:     input.Quantity,
		Notes:        input.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.assets.Create(ctx, asset)
	if err != nil {
		s.logger.Error().Err(err).Msg("asset create failed")
		return nil, err
	}

	recordAudit(s.audit, actor, domain.ActionCreate, "asset", created.ID)
	s.logger.Info().Str("asset_id", created.ID).Str("name", created.Name).Msg("asset created")
	return created, nil
}

// Update applies a partial edit. Admins may touch every field; a role that
// only holds updateStatus/updateLocation has every other submitted field
// dropped before the write. Roles with neither permission are forbidden.
func (s *AssetService) Update(ctx context.Context, actor domain.Identity, id string, input ports.UpdateAssetInput) (*domain.Asset, error) {
	upd, err := s.authorizeUpdate(actor, input)
	if err != nil {
		return nil, err
	}

	if upd.Status != nil && !upd.Status.Valid() {
		return nil, domain.NewValidationError("status")
	}
	if upd.Quantity != nil && *upd.Quantity < 0 {
		return nil, domain.NewValidationError("quantity")
	}

	var categoryID, locationID string
	if upd.CategoryID != nil {
		categoryID = *upd.CategoryID
	}
	if upd.LocationID != nil {
		locationID = *upd.LocationID
	}
	if err := s.checkReferences(ctx, categoryID, locationID); err != nil {
		return nil, err
	}

	updated, err := s.assets.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	recordAudit(s.audit, actor, domain.ActionUpdate, "asset", id)
	return updated, nil
}

func (s *AssetService) Delete(ctx context.Context, actor domain.Identity, id string) error {
	if err := auth.RequireAction(actor, domain.ActionDelete); err != nil {
		return err
	}
	if err := s.assets.Delete(ctx, id); err != nil {
		return err
	}
	recordAudit(s.audit, actor, domain.ActionDelete, "asset", id)
	s.logger.Info().Str("asset_id", id).Msg("asset deleted")
	return nil
}

// authorizeUpdate reduces the submitted field set to what the actor's role
// may touch. The guard decides whether any update is allowed at all; which
// fields survive is this service's call.
func (s *AssetService) authorizeUpdate(actor domain.Identity, input ports.UpdateAssetInput) (ports.AssetUpdate, error) {
	if err := auth.RequireAction(actor, domain.ActionUpdate); err == nil {
		return ports.AssetUpdate{
			Name:         input.Name,
			SerialNumber: input.SerialNumber,
			CategoryID:   input.CategoryID,
			LocationID:   input.LocationID,
			PurchaseDate: input.PurchaseDate,
			Status:       input.Status,
			Quantity:     input.Quantity,
			Notes:        input.Notes,
		}, nil
	}

	upd := ports.AssetUpdate{}
	allowed := false
	if auth.RequireAction(actor, domain.ActionUpdateStatus) == nil {
		upd.Status = input.Status
		allowed = true
	}
	if auth.RequireAction(actor, domain.ActionUpdateLocation) == nil {
		upd.LocationID = input.LocationID
		allowed = true
	}
	if !allowed {
		return ports.AssetUpdate{}, domain.ErrForbidden
	}
	return upd, nil
}

// checkReferences verifies that non-empty category/location IDs point at
// existing records. Dangling references are rejected at write time.
func (s *AssetService) checkReferences(ctx context.Context, categoryID, locationID string) error {
	if categoryID != "" {
		if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("categoryId")
			}
			return err
		}
	}
	if locationID != "" {
		if _, err := s.locations.FindByID(ctx, locationID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("locationId")
			}
			return err
		}
	}
	return nil
}
