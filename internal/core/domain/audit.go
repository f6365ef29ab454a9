package domain

import "time"

// AuditEvent records a successful mutation for the audit trail.
type AuditEvent struct {
	ActorID    string    `json:"actor_id"`
	ActorEmail string    `json:"actor_email"`
	Action     Action    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id"`
	At         time.Time `json:"at"`
}
