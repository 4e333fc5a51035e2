package cooking

import (
	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/opencode-ai/blockseq/internal/replay"
)

// Visual states, from the unopened package to a finished bowl.
const (
	StatePackage models.VisualState = "package"
	StateWater   models.VisualState = "water"
	StateBoiling models.VisualState = "boiling"
	StateCooking models.VisualState = "cooking"
	StateCooked  models.VisualState = "cooked"
)

// States lists every cooking visual state.
var States = []models.VisualState{StatePackage, StateWater, StateBoiling, StateCooking, StateCooked}

// ClassifyState returns the scene for a sequence prefix.
//
// The cooked threshold counts wait blocks after the noodles rather than
// summing their durations, so a single long wait still shows as cooking.
// Evaluate sums real durations; the two can disagree on non-default waits.
func ClassifyState(prefix models.Sequence) models.VisualState {
	if noodle := prefix.Index(AddNoodle); noodle >= 0 {
		waits := 0
		for i := noodle + 1; i < prefix.Len(); i++ {
			if prefix.At(i).Kind == Wait {
				waits++
			}
		}
		if waits >= CookedWaitCount {
			return StateCooked
		}
		return StateCooking
	}
	if prefix.Has(Wait) || prefix.Has(LightFire) {
		return StateBoiling
	}
	if prefix.Has(AddWater) {
		return StateWater
	}
	return StatePackage
}

// BuildReplayFrames returns one frame per cooking block, starting from the
// empty pot.
func BuildReplayFrames(seq models.Sequence) []models.ReplayFrame {
	v := Vocabulary()
	return replay.Build(seq, func(a models.Action) bool { return v.IsVisible(a.Kind) }, ClassifyState)
}
