package events

import (
	"context"
	"errors"
	"testing"

	"github.com/opencode-ai/blockseq/internal/models"
)

type fakeRepo struct {
	last *models.Event
}

func (r *fakeRepo) Create(ctx context.Context, event *models.Event) error {
	r.last = event
	return nil
}

func TestLogSequenceEvaluated(t *testing.T) {
	repo := &fakeRepo{}

	payload := models.EvaluatedPayload{
		EvaluationID: "eval-1",
		Ruleset:      "cooking",
		Variant:      "perfect",
		Success:      true,
		Length:       7,
	}
	if err := LogSequenceEvaluated(context.Background(), repo, payload); err != nil {
		t.Fatalf("LogSequenceEvaluated failed: %v", err)
	}

	if repo.last == nil {
		t.Fatal("expected event to be created")
	}
	if repo.last.Type != models.EventTypeSequenceEvaluated {
		t.Fatalf("unexpected event type: %q", repo.last.Type)
	}
	if repo.last.EntityID != "cooking" {
		t.Fatalf("unexpected entity id: %q", repo.last.EntityID)
	}
	if repo.last.Metadata["evaluation_id"] != "eval-1" {
		t.Fatalf("unexpected metadata: %v", repo.last.Metadata)
	}

	decoded, err := DecodeEvaluated(repo.last)
	if err != nil {
		t.Fatalf("DecodeEvaluated failed: %v", err)
	}
	if decoded != payload {
		t.Fatalf("decoded payload mismatch: %+v", decoded)
	}
}

func TestLogDrillEvaluated(t *testing.T) {
	repo := &fakeRepo{}

	payload := models.EvaluatedPayload{Ruleset: "dressing", Variant: "failure", Drill: "no-raincoat"}
	if err := LogSequenceEvaluated(context.Background(), repo, payload); err != nil {
		t.Fatalf("LogSequenceEvaluated failed: %v", err)
	}
	if repo.last.Type != models.EventTypeDrillEvaluated {
		t.Fatalf("unexpected event type: %q", repo.last.Type)
	}
}

func TestLogSequenceEvaluatedRequiresFields(t *testing.T) {
	if err := LogSequenceEvaluated(context.Background(), nil, models.EvaluatedPayload{Ruleset: "x", Variant: "y"}); err == nil {
		t.Fatal("expected error for nil repository")
	}
	if err := LogSequenceEvaluated(context.Background(), &fakeRepo{}, models.EvaluatedPayload{Variant: "y"}); err == nil {
		t.Fatal("expected error for missing ruleset")
	}
}

func TestLogError(t *testing.T) {
	repo := &fakeRepo{}

	if err := LogError(context.Background(), repo, "load sequence", errors.New("boom")); err != nil {
		t.Fatalf("LogError failed: %v", err)
	}
	if repo.last.Type != models.EventTypeError || repo.last.EntityType != models.EntityTypeSystem {
		t.Fatalf("unexpected event: %+v", repo.last)
	}

	if _, err := DecodeEvaluated(repo.last); err == nil {
		t.Fatal("expected DecodeEvaluated to reject error events")
	}
}
