// Package models defines the shared data types for blockseq.
package models

import "strconv"

// DefaultDurationSeconds is the duration assumed for a timed action that
// carries no duration (or a non-positive one).
const DefaultDurationSeconds = 30

// ActionKind identifies an action block within a ruleset vocabulary.
type ActionKind string

// String returns the kind identifier.
func (k ActionKind) String() string {
	return string(k)
}

// Action is a single block placed into a sequence. Actions are values;
// editing a duration produces a new Action.
type Action struct {
	// Kind is the vocabulary identifier of the block.
	Kind ActionKind `json:"kind" yaml:"kind"`

	// DurationSeconds is set only on timed blocks. Zero means unset.
	DurationSeconds int `json:"seconds,omitempty" yaml:"seconds,omitempty"`

	// Distraction marks blocks that waste time without contributing.
	Distraction bool `json:"distraction,omitempty" yaml:"distraction,omitempty"`
}

// NewAction returns an action of the given kind.
func NewAction(kind ActionKind) Action {
	return Action{Kind: kind}
}

// Seconds returns the effective duration, falling back to
// DefaultDurationSeconds for a missing or non-positive value.
func (a Action) Seconds() int {
	if a.DurationSeconds <= 0 {
		return DefaultDurationSeconds
	}
	return a.DurationSeconds
}

// WithDuration returns a copy of the action carrying the given duration.
func (a Action) WithDuration(seconds int) Action {
	a.DurationSeconds = seconds
	return a
}

// String renders the action as a token, e.g. "wait:90".
func (a Action) String() string {
	if a.DurationSeconds > 0 {
		return string(a.Kind) + ":" + strconv.Itoa(a.DurationSeconds)
	}
	return string(a.Kind)
}
