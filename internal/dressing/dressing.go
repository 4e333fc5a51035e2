// Package dressing implements the rainy school day ruleset: independent
// presence and ordering checks that report every violation at once.
package dressing

import (
	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/opencode-ai/blockseq/internal/vocab"
)

// Name is the ruleset identifier.
const Name = "dressing"

// Action kinds.
const (
	PutOnSocks   models.ActionKind = "put_on_socks"
	PutOnShoes   models.ActionKind = "put_on_shoes"
	WearBag      models.ActionKind = "wear_bag"
	WearRaincoat models.ActionKind = "wear_raincoat"
	WatchTV      models.ActionKind = "watch_tv"
	PlayGame     models.ActionKind = "play_game"
)

// Outcome variants.
const (
	VariantSuccess models.Variant = "success"
	VariantFailure models.Variant = "failure"
)

// Variants lists every outcome variant.
var Variants = []models.Variant{VariantSuccess, VariantFailure}

// Vocabulary returns the dressing block vocabulary.
func Vocabulary() *vocab.Vocabulary {
	return vocab.MustBuiltin(Name)
}

// Rules implements the dressing ruleset.
type Rules struct{}

// New returns the dressing ruleset.
func New() Rules {
	return Rules{}
}

// Name returns the ruleset identifier.
func (Rules) Name() string { return Name }

// Vocabulary returns the block vocabulary.
func (Rules) Vocabulary() *vocab.Vocabulary { return Vocabulary() }

// Evaluate checks the sequence and reports every violation.
func (Rules) Evaluate(seq models.Sequence) models.Outcome { return Evaluate(seq) }

// ClassifyState returns the composite attire state of a prefix.
func (Rules) ClassifyState(prefix models.Sequence) models.VisualState { return ClassifyState(prefix) }

// BuildReplayFrames returns the playback frames of a finalized sequence.
func (Rules) BuildReplayFrames(seq models.Sequence) []models.ReplayFrame {
	return BuildReplayFrames(seq)
}
