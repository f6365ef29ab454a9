package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/matalogics/inventory-api/internal/auth"
	"github.com/matalogics/inventory-api/internal/core/domain"
	"github.com/matalogics/inventory-api/internal/core/ports"
)

const bcryptCost = 12

// UserService implements user management. Every mutating operation checks
// the guard first; actions that target the caller's own account go through
// RequireActionOnUser so an Admin cannot demote, disable, or delete
// themselves.
type UserService struct {
	repo   ports.UserRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, audit ports.AuditRecorder, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, audit: audit, logger: logger}
}

func (s *UserService) List(ctx context.Context, actor domain.Identity) ([]domain.User, error) {
	if err := auth.RequireAction(actor, domain.ActionManageUsers); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *UserService) Create(ctx context.Context, actor domain.Identity, input ports.CreateUserInput) (*domain.User, error) {
	if err := auth.RequireAction(actor, domain.ActionManageUsers); err != nil {
		return nil, err
	}

	var missing []string
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.Password == "" {
		missing = append(missing, "password")
	}
	if !input.Role.Valid() {
		missing = append(missing, "role")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}

	status := input.Status
	if status == "" {
		status = domain.StatusActive
	}
	if !status.Valid() {
		return nil, domain.NewValidationError("status")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: string(hash),
		Role:         input.Role,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(actor, domain.ActionManageUsers, "user", created.ID)
	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, actor domain.Identity, id string, input ports.UpdateUserInput) error {
	if err := auth.RequireAction(actor, domain.ActionManageUsers); err != nil {
		return err
	}

	upd := ports.UserUpdate{Name: input.Name}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email == "" {
			return domain.NewValidationError("email")
		}
		upd.Email = &email
	}

	if _, err := s.repo.Update(ctx, id, upd); err != nil {
		return err
	}
	s.record(actor, domain.ActionManageUsers, "user", id)
	return nil
}

func (s *UserService) Delete(ctx context.Context, actor domain.Identity, id string) error {
	if err := auth.RequireActionOnUser(actor, id, domain.ActionManageUsers); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.record(actor, domain.ActionManageUsers, "user", id)
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) ChangeRole(ctx context.Context, actor domain.Identity, id string, role domain.Role) error {
	if err := auth.RequireActionOnUser(actor, id, domain.ActionManageUsers); err != nil {
		return err
	}
	if !role.Valid() {
		return domain.NewValidationError("role")
	}
	if _, err := s.repo.Update(ctx, id, ports.UserUpdate{Role: &role}); err != nil {
		return err
	}
	s.record(actor, domain.ActionManageUsers, "user", id)
	s.logger.Info().Str("user_id", id).Str("role", string(role)).Msg("role changed")
	return nil
}

// ToggleStatus flips Active to Disabled and back, returning the new status.
func (s *UserService) ToggleStatus(ctx context.Context, actor domain.Identity, id string) (domain.UserStatus, error) {
	if err := auth.RequireActionOnUser(actor, id, domain.ActionManageUsers); err != nil {
		return "", err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	next := domain.StatusDisabled
	if user.Status == domain.StatusDisabled {
		next = domain.StatusActive
	}
	if _, err := s.repo.Update(ctx, id, ports.UserUpdate{Status: &next}); err != nil {
		return "", err
	}
	s.record(actor, domain.ActionManageUsers, "user", id)
	return next, nil
}

func (s *UserService) record(actor domain.Identity, action domain.Action, resource, resourceID string) {
	recordAudit(s.audit, actor, action, resource, resourceID)
}
