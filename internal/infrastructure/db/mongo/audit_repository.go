package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/matalogics/inventory-api/internal/core/domain"
)

const collectionAuditEvents = "audit_events"

// AuditRepository appends audit events. Events are write-only from the API's
// point of view; they are read through Mongo tooling, not an endpoint.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAuditEvents)}
}

type auditDoc struct {
	ActorID    string    `bson:"actor_id"`
	ActorEmail string    `bson:"actor_email"`
	Action     string    `bson:"action"`
	Resource   string    `bson:"resource"`
	ResourceID string    `bson:"resource_id,omitempty"`
	At         time.Time `bson:"at"`
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := auditDoc{
		ActorID:    event.ActorID,
		ActorEmail: event.ActorEmail,
		Action:     string(event.Action),
		Resource:   event.Resource,
		ResourceID: event.ResourceID,
		At:         event.At,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return upstreamErr("insert audit event", err)
	}
	return nil
}

// EnsureIndexes creates indexes for actor and time range queries.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "actor_id", Value: 1}, {Key: "at", Value: -1}}},
		{Keys: bson.D{{Key: "at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
