package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/matalogics/inventory-api/internal/auth"
	"github.com/matalogics/inventory-api/internal/core/domain"
	"github.com/matalogics/inventory-api/internal/core/ports"
)

// CategoryService implements category use cases. Mutations require the
// manageCategories permission; deletes are blocked while assets still
// reference the category.
type CategoryService struct {
	categories ports.CategoryRepository
	assets     ports.AssetRepository
	audit      ports.AuditRecorder
	logger     zerolog.Logger
}

func NewCategoryService(categories ports.CategoryRepository, assets ports.AssetRepository, audit ports.AuditRecorder, logger zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, assets: assets, audit: audit, logger: logger}
}

func (s *CategoryService) List(ctx context.Context, actor domain.Identity) ([]domain.Category, error) {
	if err := auth.RequireAction(actor, domain.ActionRead); err != nil {
		return nil, err
	}
	return s.categories.List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, actor domain.Identity, input ports.CreateCategoryInput) (*domain.Category, error) {
	if err := auth.RequireAction(actor, domain.ActionManageCategories); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, domain.NewValidationError("name")
	}

	now := time.Now().UTC()
	category := &domain.Category{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.categories.Create(ctx, category)
	if err != nil {
		return nil, err
	}
	recordAudit(s.audit, actor, domain.ActionManageCategories, "category", created.ID)
	s.logger.Info().Str("category_id", created.ID).Str("name", created.Name).Msg("category created")
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, actor domain.Identity, id string, input ports.UpdateCategoryInput) (*domain.Category, error) {
	if err := auth.RequireAction(actor, domain.ActionManageCategories); err != nil {
		return nil, err
	}
	if input.Name != nil && *input.Name == "" {
		return nil, domain.NewValidationError("name")
	}

	updated, err := s.categories.Update(ctx, id, ports.CategoryUpdate{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
	})
	if err != nil {
		return nil, err
	}
	recordAudit(s.audit, actor, domain.ActionManageCategories, "category", id)
	return updated, nil
}

// Delete refuses to remove a category that assets still reference: the
// caller must reassign or delete those assets first.
func (s *CategoryService) Delete(ctx context.Context, actor domain.Identity, id string) error {
	if err := auth.RequireAction(actor, domain.ActionManageCategories); err != nil {
		return err
	}

	n, err := s.assets.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	recordAudit(s.audit, actor, domain.ActionManageCategories, "category", id)
	s.logger.Info().Str("category_id", id).Msg("category deleted")
	return nil
}
