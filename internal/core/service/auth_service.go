package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/matalogics/inventory-api/internal/core/domain"
	"github.com/matalogics/inventory-api/internal/core/ports"
)

// tokenClaims is the signed payload of an issued credential. The role claim
// is informational only: Verify always re-reads role and status from the
// store, so privilege revoked after issuance takes effect immediately.
type tokenClaims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// AuthService implements login, token verification, and logout.
type AuthService struct {
	users     ports.UserRepository
	revoked   ports.RevocationList
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, revoked ports.RevocationList, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		revoked:   revoked,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Authenticate checks the credentials and issues a token. Unknown email and
// wrong password both collapse to ErrInvalidCredentials so the response does
// not reveal which of the two failed.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (domain.Identity, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return domain.Identity{}, "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Identity{}, "", domain.ErrInvalidCredentials
		}
		return domain.Identity{}, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.Identity{}, "", domain.ErrInvalidCredentials
	}

	// Disabled accounts are rejected even with valid credentials, but only
	// after the password check so the response never confirms the password
	// of a disabled account.
	if user.Status == domain.StatusDisabled {
		return domain.Identity{}, "", domain.ErrAccountDisabled
	}

	token, err := s.issueToken(user)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("token signing failed")
		return domain.Identity{}, "", err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login")
	return user.Identity(), token, nil
}

// Verify validates the token and resolves the caller's current identity.
// Role and status come from the live user record, not the token payload.
func (s *AuthService) Verify(ctx context.Context, token string) (domain.Identity, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	if claims.ID != "" {
		revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return domain.Identity{}, err
		}
		if revoked {
			return domain.Identity{}, domain.ErrInvalidToken
		}
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Identity{}, domain.ErrInvalidToken
		}
		return domain.Identity{}, err
	}

	if user.Status == domain.StatusDisabled {
		return domain.Identity{}, domain.ErrAccountDisabled
	}

	return user.Identity(), nil
}

// Logout revokes the token for the remainder of its lifetime. Expired or
// malformed tokens need no server-side action.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.revoked.Revoke(ctx, claims.ID, ttl)
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) parseToken(token string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
