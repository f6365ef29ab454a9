package service

import (
	"time"

	"github.com/matalogics/inventory-api/internal/core/domain"
	"github.com/matalogics/inventory-api/internal/core/ports"
)

// recordAudit emits an audit event for a completed mutation. A nil recorder
// disables auditing (tests, seed tooling).
func recordAudit(rec ports.AuditRecorder, actor domain.Identity, action domain.Action, resource, resourceID string) {
	if rec == nil {
		return
	}
	rec.Record(domain.AuditEvent{
		ActorID:    actor.ID,
		ActorEmail: actor.Email,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		At:         time.Now().UTC(),
	})
}
