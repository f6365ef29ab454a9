package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/matalogics/inventory-api/internal/core/domain"
)

type stubAuditRepo struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	done   chan struct{}
}

func (r *stubAuditRepo) Insert(_ context.Context, event *domain.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	select {
	case r.done <- struct{}{}:
	default:
	}
	return nil
}

func (r *stubAuditRepo) recorded() []domain.AuditEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditEvent, len(r.events))
	copy(out, r.events)
	return out
}

func TestDispatcherWritesRecordedEvents(t *testing.T) {
	repo := &stubAuditRepo{done: make(chan struct{}, 1)}
	d := NewDispatcher(2, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	event := domain.AuditEvent{
		ActorID:    "u1",
		ActorEmail: "sarah.johnson@company.com",
		Action:     domain.ActionCreate,
		Resource:   "asset",
		ResourceID: "a1",
		At:         time.Now().UTC(),
	}
	d.Record(event)

	select {
	case <-repo.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for audit write")
	}

	got := repo.recorded()
	if len(got) != 1 {
		t.Fatalf("recorded %d events, want 1", len(got))
	}
	if got[0].ActorID != "u1" || got[0].Action != domain.ActionCreate {
		t.Errorf("unexpected event: %+v", got[0])
	}
}

func TestDispatcherPreservesPerActorOrder(t *testing.T) {
	repo := &stubAuditRepo{done: make(chan struct{}, 1)}
	d := NewDispatcher(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const n = 20
	for i := 0; i < n; i++ {
		d.Record(domain.AuditEvent{
			ActorID:    "u1",
			Action:     domain.ActionUpdate,
			Resource:   "asset",
			ResourceID: string(rune('a' + i)),
		})
	}

	deadline := time.Now().Add(2 * time.Second)
	for len(repo.recorded()) < n {
		if time.Now().After(deadline) {
			t.Fatalf("recorded %d events, want %d", len(repo.recorded()), n)
		}
		time.Sleep(10 * time.Millisecond)
	}

	got := repo.recorded()
	for i := 0; i < n; i++ {
		if got[i].ResourceID != string(rune('a'+i)) {
			t.Fatalf("event %d out of order: got resource id %q", i, got[i].ResourceID)
		}
	}
}

func TestShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(4, &stubAuditRepo{done: make(chan struct{}, 1)}, zerolog.Nop())

	first := d.shardIndex("u42")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("u42"); got != first {
			t.Fatalf("shard index changed: got %d, want %d", got, first)
		}
	}
}

func TestNewDispatcherDefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &stubAuditRepo{done: make(chan struct{}, 1)}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("got %d workers, want %d", len(d.workers), defaultWorkers)
	}
}
