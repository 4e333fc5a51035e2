package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/opencode-ai/blockseq/internal/models"
)

func TestEvaluationRepositoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewEvaluationRepository(setupTestDB(t))

	record := &models.EvaluationRecord{
		Ruleset:    "dressing",
		Variant:    "failure",
		Length:     3,
		Violations: 2,
		Source:     "cli",
		Drill:      "shoes-first",
	}
	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if record.ID == "" || record.EvaluatedAt.IsZero() {
		t.Fatalf("expected ID and time to be set: %+v", record)
	}

	got, err := repo.Get(ctx, record.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Ruleset != "dressing" || got.Variant != "failure" || got.Success {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.Violations != 2 || got.Length != 3 || got.Drill != "shoes-first" || got.Source != "cli" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestEvaluationRepositoryRejectsInvalid(t *testing.T) {
	repo := NewEvaluationRepository(setupTestDB(t))

	err := repo.Create(context.Background(), &models.EvaluationRecord{Ruleset: "cooking"})
	if !errors.Is(err, ErrInvalidEvaluation) {
		t.Fatalf("expected ErrInvalidEvaluation, got %v", err)
	}

	_, err = repo.Get(context.Background(), "missing")
	if !errors.Is(err, ErrEvaluationNotFound) {
		t.Fatalf("expected ErrEvaluationNotFound, got %v", err)
	}
}

func seedEvaluations(t *testing.T, repo *EvaluationRepository) time.Time {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	records := []models.EvaluationRecord{
		{Ruleset: "cooking", Variant: "perfect", Success: true},
		{Ruleset: "cooking", Variant: "burned"},
		{Ruleset: "cooking", Variant: "burned", Drill: "fire-first"},
		{Ruleset: "dressing", Variant: "success", Success: true},
	}
	for i := range records {
		records[i].EvaluatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := repo.Create(ctx, &records[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	return base
}

func TestEvaluationRepositoryQuery(t *testing.T) {
	ctx := context.Background()
	repo := NewEvaluationRepository(setupTestDB(t))
	base := seedEvaluations(t, repo)

	all, err := repo.Query(ctx, models.EvaluationQuery{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(all) != 4 || all[0].Ruleset != "dressing" {
		t.Fatalf("expected 4 records newest first, got %d", len(all))
	}

	ruleset := "cooking"
	since := base.Add(time.Minute)
	cooking, err := repo.Query(ctx, models.EvaluationQuery{Ruleset: &ruleset, Since: &since})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(cooking) != 2 {
		t.Fatalf("expected 2 cooking records since base+1m, got %d", len(cooking))
	}
}

func TestEvaluationRepositorySummarize(t *testing.T) {
	ctx := context.Background()
	repo := NewEvaluationRepository(setupTestDB(t))
	seedEvaluations(t, repo)

	summary, err := repo.Summarize(ctx, "cooking", nil, nil)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.Total != 3 || summary.Successes != 1 || summary.Drills != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	all, err := repo.Summarize(ctx, "", nil, nil)
	if err != nil {
		t.Fatalf("Summarize all: %v", err)
	}
	if all.Total != 4 || all.SuccessRate() != 0.5 {
		t.Fatalf("unexpected summary: %+v", all)
	}
}

func TestEvaluationRepositoryCountByVariant(t *testing.T) {
	ctx := context.Background()
	repo := NewEvaluationRepository(setupTestDB(t))
	seedEvaluations(t, repo)

	counts, err := repo.CountByVariant(ctx, "cooking", 0)
	if err != nil {
		t.Fatalf("CountByVariant: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(counts))
	}
	if counts[0].Variant != "burned" || counts[0].Count != 2 || counts[0].Success {
		t.Fatalf("unexpected top variant: %+v", counts[0])
	}
}

func TestEvaluationRepositoryDeleteBefore(t *testing.T) {
	ctx := context.Background()
	repo := NewEvaluationRepository(setupTestDB(t))
	base := seedEvaluations(t, repo)

	deleted, err := repo.DeleteBefore(ctx, base.Add(2*time.Minute))
	if err != nil {
		t.Fatalf("DeleteBefore: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 deleted, got %d", deleted)
	}
}
