package ports

import (
	"context"

	"github.com/matalogics/inventory-api/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditRecorder accepts audit events off the request path. Implementations
// are best-effort: Record never blocks the caller and never fails the
// originating request.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}
