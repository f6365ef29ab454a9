package ports

import (
	"context"

	"github.com/matalogics/inventory-api/internal/core/domain"
)

// AuthService issues and verifies credentials.
type AuthService interface {
	// Authenticate checks email+password and returns the identity with a
	// fresh bearer token. Unknown email and wrong password are
	// indistinguishable (both ErrInvalidCredentials).
	Authenticate(ctx context.Context, email, password string) (domain.Identity, string, error)
	// Verify validates the token and re-resolves the user's current role and
	// status from the store; claims cached in the token never win over the
	// live record.
	Verify(ctx context.Context, token string) (domain.Identity, error)
	// Logout revokes the token for the remainder of its lifetime.
	Logout(ctx context.Context, token string) error
}
