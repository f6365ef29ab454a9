package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matalogics/inventory-api/internal/core/domain"
)

// RevocationList stores revoked token IDs in Redis.
// Key format: revoked:<jti>, expiring when the token itself would have.
type RevocationList struct {
	client *redis.Client
}

// NewRevocationList creates a RevocationList wrapping the given Redis client.
func NewRevocationList(client *redis.Client) *RevocationList {
	return &RevocationList{client: client}
}

// Revoke marks the token ID as invalid for the remainder of its lifetime.
func (l *RevocationList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired; nothing to revoke.
		return nil
	}
	if err := l.client.Set(ctx, l.key(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %v: %w", err, domain.ErrUpstream)
	}
	return nil
}

// IsRevoked reports whether the token ID has been revoked. A Redis failure
// is surfaced as an error so verification fails closed.
func (l *RevocationList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := l.client.Exists(ctx, l.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %v: %w", err, domain.ErrUpstream)
	}
	return n > 0, nil
}

func (l *RevocationList) key(jti string) string {
	return "revoked:" + jti
}
