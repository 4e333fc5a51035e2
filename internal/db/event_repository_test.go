package db

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/opencode-ai/blockseq/internal/models"
)

func newEvent(entityID string, at time.Time) *models.Event {
	payload, _ := json.Marshal(models.EvaluatedPayload{Ruleset: entityID, Variant: "perfect", Success: true})
	return &models.Event{
		Timestamp:  at,
		Type:       models.EventTypeSequenceEvaluated,
		EntityType: models.EntityTypeRuleset,
		EntityID:   entityID,
		Payload:    payload,
		Metadata:   map[string]string{"source": "test"},
	}
}

func TestEventRepositoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(setupTestDB(t))

	event := newEvent("cooking", time.Time{})
	if err := repo.Create(ctx, event); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if event.ID == "" {
		t.Fatal("expected ID to be set")
	}
	if event.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be set")
	}

	got, err := repo.Get(ctx, event.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Type != models.EventTypeSequenceEvaluated || got.EntityID != "cooking" {
		t.Fatalf("unexpected event: %+v", got)
	}
	if got.Metadata["source"] != "test" {
		t.Fatalf("expected metadata to round-trip, got %v", got.Metadata)
	}

	var payload models.EvaluatedPayload
	if err := json.Unmarshal(got.Payload, &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload.Variant != "perfect" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestEventRepositoryRejectsInvalid(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))

	err := repo.Create(context.Background(), &models.Event{Type: models.EventTypeError})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestEventRepositoryGetMissing(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestEventRepositoryQueryPagination(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(setupTestDB(t))

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if err := repo.Create(ctx, newEvent("cooking", base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := repo.Create(ctx, newEvent("dressing", base)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	entityID := "cooking"
	page, err := repo.Query(ctx, EventQuery{EntityID: &entityID, Limit: 3})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(page.Events) != 3 || page.NextCursor == "" {
		t.Fatalf("expected 3 events and a cursor, got %d %q", len(page.Events), page.NextCursor)
	}

	next, err := repo.Query(ctx, EventQuery{EntityID: &entityID, Limit: 3, Cursor: page.NextCursor})
	if err != nil {
		t.Fatalf("Query next: %v", err)
	}
	if len(next.Events) != 2 || next.NextCursor != "" {
		t.Fatalf("expected final page of 2, got %d %q", len(next.Events), next.NextCursor)
	}
	if !next.Events[0].Timestamp.After(page.Events[2].Timestamp) {
		t.Fatal("expected pages in timestamp order")
	}
}

func TestEventRepositoryRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(setupTestDB(t))

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i, id := range []string{"cooking", "dressing", "cooking"} {
		if err := repo.Create(ctx, newEvent(id, base.Add(time.Duration(i)*time.Second))); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	events, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if !events[0].Timestamp.After(events[1].Timestamp) {
		t.Fatal("expected newest first")
	}

	byEntity, err := repo.ListByEntity(ctx, models.EntityTypeRuleset, "cooking", 10)
	if err != nil {
		t.Fatalf("ListByEntity: %v", err)
	}
	if len(byEntity) != 2 {
		t.Fatalf("expected 2 cooking events, got %d", len(byEntity))
	}
}
