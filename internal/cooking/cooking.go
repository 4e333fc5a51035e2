// Package cooking implements the ramen ruleset: a priority-ordered rule
// chain over timed steps and a visual-state classifier for playback.
package cooking

import (
	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/opencode-ai/blockseq/internal/vocab"
)

// Name is the ruleset identifier.
const Name = "cooking"

// Action kinds.
const (
	AddWater       models.ActionKind = "add_water"
	LightFire      models.ActionKind = "light_fire"
	Wait           models.ActionKind = "wait"
	AddNoodle      models.ActionKind = "add_noodle"
	AddSoup        models.ActionKind = "add_soup"
	ExtinguishFire models.ActionKind = "extinguish_fire"
)

// Outcome variants.
const (
	VariantEmpty             models.Variant = "empty"
	VariantMissingWater      models.Variant = "missing_water"
	VariantColdStart         models.Variant = "cold_start"
	VariantNoNoodle          models.Variant = "no_noodle"
	VariantNoSoup            models.Variant = "no_soup"
	VariantBurned            models.Variant = "burned"
	VariantUselessWait       models.Variant = "useless_wait"
	VariantImperfectBoilSkip models.Variant = "imperfect_boil_skip"
	VariantVeryUndercooked   models.Variant = "very_undercooked"
	VariantUndercooked       models.Variant = "undercooked"
	VariantOvercooked        models.Variant = "overcooked"
	VariantLateSoup          models.Variant = "late_soup"
	VariantSoupAfterOff      models.Variant = "soup_after_off"
	VariantPerfect           models.Variant = "perfect"
)

// Variants lists every outcome variant in rule priority order.
var Variants = []models.Variant{
	VariantEmpty,
	VariantMissingWater,
	VariantColdStart,
	VariantNoNoodle,
	VariantNoSoup,
	VariantBurned,
	VariantUselessWait,
	VariantImperfectBoilSkip,
	VariantVeryUndercooked,
	VariantUndercooked,
	VariantOvercooked,
	VariantLateSoup,
	VariantSoupAfterOff,
	VariantPerfect,
}

// Timing targets, in seconds.
const (
	TargetCookSeconds     = 180
	VeryUndercookedCutoff = 60
	// CookedWaitCount is the number of waits after the noodles at which the
	// classifier shows the bowl as cooked.
	CookedWaitCount = TargetCookSeconds / models.DefaultDurationSeconds
)

// Vocabulary returns the cooking block vocabulary.
func Vocabulary() *vocab.Vocabulary {
	return vocab.MustBuiltin(Name)
}

// Rules implements the cooking ruleset.
type Rules struct{}

// New returns the cooking ruleset.
func New() Rules {
	return Rules{}
}

// Name returns the ruleset identifier.
func (Rules) Name() string { return Name }

// Vocabulary returns the block vocabulary.
func (Rules) Vocabulary() *vocab.Vocabulary { return Vocabulary() }

// Evaluate classifies the sequence into an outcome.
func (Rules) Evaluate(seq models.Sequence) models.Outcome { return Evaluate(seq) }

// ClassifyState returns the visual state of a prefix.
func (Rules) ClassifyState(prefix models.Sequence) models.VisualState { return ClassifyState(prefix) }

// BuildReplayFrames returns the playback frames of a finalized sequence.
func (Rules) BuildReplayFrames(seq models.Sequence) []models.ReplayFrame {
	return BuildReplayFrames(seq)
}
