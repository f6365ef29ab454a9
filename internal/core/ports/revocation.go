package ports

import (
	"context"
	"time"
)

// RevocationList tracks token IDs invalidated before their natural expiry.
// Logout revokes; Verify consults.
type RevocationList interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
