package models

import (
	"encoding/json"
	"strings"
	"time"
)

// EventType categorizes events in the journal.
type EventType string

const (
	// Evaluation events
	EventTypeSequenceEvaluated EventType = "sequence.evaluated"
	EventTypeDrillEvaluated    EventType = "drill.evaluated"

	// System events
	EventTypeError   EventType = "error"
	EventTypeWarning EventType = "warning"
)

// EntityType identifies the type of entity an event relates to.
type EntityType string

const (
	EntityTypeRuleset EntityType = "ruleset"
	EntityTypeSystem  EntityType = "system"
)

// Event represents an append-only journal entry.
type Event struct {
	// ID is the unique identifier for the event.
	ID string `json:"id"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Type categorizes the event.
	Type EventType `json:"type"`

	// EntityType identifies what kind of entity this event relates to.
	EntityType EntityType `json:"entity_type"`

	// EntityID is the ID of the related entity.
	EntityID string `json:"entity_id"`

	// Payload contains event-specific data.
	Payload json.RawMessage `json:"payload,omitempty"`

	// Metadata contains additional context.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Validate checks if the event is valid.
func (e *Event) Validate() error {
	validation := &ValidationErrors{}
	if strings.TrimSpace(string(e.Type)) == "" {
		validation.AddMessage("type", "event type is required")
	}
	if strings.TrimSpace(string(e.EntityType)) == "" {
		validation.AddMessage("entity_type", "entity_type is required")
	}
	if strings.TrimSpace(e.EntityID) == "" {
		validation.AddMessage("entity_id", "entity_id is required")
	}
	return validation.Err()
}

// EvaluatedPayload is the payload for sequence.evaluated and drill.evaluated
// events. Only the result is journaled, never the sequence itself.
type EvaluatedPayload struct {
	EvaluationID string  `json:"evaluation_id"`
	Ruleset      string  `json:"ruleset"`
	Variant      Variant `json:"variant"`
	Success      bool    `json:"success"`
	Length       int     `json:"length"`
	Violations   int     `json:"violations,omitempty"`
	Source       string  `json:"source,omitempty"`
	Drill        string  `json:"drill,omitempty"`
}

// ErrorPayload is the payload for error events.
type ErrorPayload struct {
	Error   string `json:"error"`
	Context string `json:"context,omitempty"`
}
