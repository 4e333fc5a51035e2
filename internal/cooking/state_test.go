package cooking

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/blockseq/internal/models"
)

func TestClassifyState(t *testing.T) {
	sixWaits := []models.Action{water(), fire(), noodle()}
	for i := 0; i < 6; i++ {
		sixWaits = append(sixWaits, wait(30))
	}

	tests := []struct {
		name string
		seq  models.Sequence
		want models.VisualState
	}{
		{"empty", seq(), StatePackage},
		{"soup only", seq(soup()), StatePackage},
		{"water", seq(water()), StateWater},
		{"fire", seq(water(), fire()), StateBoiling},
		{"wait without fire", seq(water(), wait(30)), StateBoiling},
		{"noodles in", seq(water(), fire(), noodle()), StateCooking},
		{"five waits", seq(water(), fire(), noodle(), wait(30), wait(30), wait(30), wait(30), wait(30)), StateCooking},
		{"six waits", seq(sixWaits...), StateCooked},
		{"waits before noodle ignored", seq(water(), fire(), wait(30), wait(30), wait(30), wait(30), wait(30), wait(30), noodle()), StateCooking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyState(tt.seq); got != tt.want {
				t.Errorf("ClassifyState() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifierCountsWaitsNotSeconds(t *testing.T) {
	input := seq(water(), fire(), wait(30), noodle(), soup(), wait(180), off())

	require.Equal(t, StateCooking, ClassifyState(input))
	require.Equal(t, VariantPerfect, Evaluate(input).Variant)
}

func TestClassifyStateOnlyEmitsDeclaredStates(t *testing.T) {
	declared := make(map[models.VisualState]bool, len(States))
	for _, s := range States {
		declared[s] = true
	}
	inputs := []models.Sequence{
		seq(),
		seq(off(), soup()),
		seq(noodle(), wait(30)),
		seq(fire(), water(), noodle(), soup(), wait(240), off()),
	}
	for _, input := range inputs {
		require.True(t, declared[ClassifyState(input)])
	}
}

func TestBuildReplayFrames(t *testing.T) {
	input := seq(water(), fire(), wait(30), noodle(), soup(), wait(180), off())
	frames := BuildReplayFrames(input)

	require.Len(t, frames, input.Len()+1)
	for i := 1; i < len(frames); i++ {
		require.Equal(t, frames[i-1].Snapshot.Len()+1, frames[i].Snapshot.Len())
	}

	want := []models.VisualState{
		StatePackage, StateWater, StateBoiling, StateBoiling,
		StateCooking, StateCooking, StateCooking, StateCooking,
	}
	got := make([]models.VisualState, len(frames))
	for i, frame := range frames {
		got[i] = frame.State
	}
	require.Equal(t, want, got)
}

func TestRulesImplementContract(t *testing.T) {
	r := New()
	input := seq(water(), fire(), wait(30), noodle(), soup(), wait(180), off())

	require.Equal(t, Name, r.Name())
	require.Equal(t, Name, r.Vocabulary().Name)
	require.Equal(t, Evaluate(input), r.Evaluate(input))
	require.Equal(t, ClassifyState(input), r.ClassifyState(input))
	require.Equal(t, BuildReplayFrames(input), r.BuildReplayFrames(input))
}
