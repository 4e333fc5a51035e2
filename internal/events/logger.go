// Package events provides helpers for writing journal events.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opencode-ai/blockseq/internal/models"
)

// Repository is the minimal interface needed to write events.
type Repository interface {
	Create(ctx context.Context, event *models.Event) error
}

// LogSequenceEvaluated records the result of an evaluation run. Drill runs
// are recorded as drill.evaluated.
func LogSequenceEvaluated(ctx context.Context, repo Repository, payload models.EvaluatedPayload) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if payload.Ruleset == "" {
		return fmt.Errorf("ruleset is required")
	}
	if payload.Variant == "" {
		return fmt.Errorf("variant is required")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal evaluation payload: %w", err)
	}

	eventType := models.EventTypeSequenceEvaluated
	if payload.Drill != "" {
		eventType = models.EventTypeDrillEvaluated
	}

	event := &models.Event{
		Type:       eventType,
		EntityType: models.EntityTypeRuleset,
		EntityID:   payload.Ruleset,
		Payload:    data,
	}
	if payload.EvaluationID != "" {
		event.Metadata = map[string]string{"evaluation_id": payload.EvaluationID}
	}

	return repo.Create(ctx, event)
}

// LogError records an error that happened outside an evaluation, such as a
// sequence file that failed to parse.
func LogError(ctx context.Context, repo Repository, errContext string, cause error) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if cause == nil {
		return fmt.Errorf("error is required")
	}

	data, err := json.Marshal(models.ErrorPayload{
		Error:   cause.Error(),
		Context: errContext,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal error payload: %w", err)
	}

	return repo.Create(ctx, &models.Event{
		Type:       models.EventTypeError,
		EntityType: models.EntityTypeSystem,
		EntityID:   "blockseq",
		Payload:    data,
	})
}

// DecodeEvaluated reads the payload of an evaluation event.
func DecodeEvaluated(event *models.Event) (models.EvaluatedPayload, error) {
	var payload models.EvaluatedPayload
	if event == nil {
		return payload, fmt.Errorf("event is required")
	}
	if event.Type != models.EventTypeSequenceEvaluated && event.Type != models.EventTypeDrillEvaluated {
		return payload, fmt.Errorf("event %s is not an evaluation", event.Type)
	}
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to decode evaluation payload: %w", err)
	}
	return payload, nil
}
