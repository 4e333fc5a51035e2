package drills

import (
	"errors"
	"testing"

	"github.com/opencode-ai/blockseq/internal/cooking"
	"github.com/opencode-ai/blockseq/internal/dressing"
	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/stretchr/testify/require"
)

func evaluate(p Pattern) models.Outcome {
	if p.Ruleset == dressing.Name {
		return dressing.Evaluate(p.Sequence())
	}
	return cooking.Evaluate(p.Sequence())
}

func TestBuiltinDrillsAllFail(t *testing.T) {
	for _, ruleset := range []string{cooking.Name, dressing.Name} {
		patterns, err := ForRuleset(ruleset)
		require.NoError(t, err)
		require.Len(t, patterns, 5, ruleset)

		for _, p := range patterns {
			t.Run(ruleset+"/"+p.Name, func(t *testing.T) {
				got := evaluate(p)
				require.False(t, got.Success, "drill %s succeeded", p.Name)
				require.Equal(t, p.Expect, got.Variant)
			})
		}
	}
}

func TestDrillActionsNormalized(t *testing.T) {
	p, err := Get(dressing.Name, "distracted")
	require.NoError(t, err)
	require.True(t, p.Actions[0].Distraction)

	p, err = Get(cooking.Name, "no-soup")
	require.NoError(t, err)
	require.Equal(t, 30, p.Actions[2].DurationSeconds)
}

func TestGetUnknown(t *testing.T) {
	_, err := Get(cooking.Name, "missing")
	require.True(t, errors.Is(err, ErrDrillNotFound))

	_, err = ForRuleset("baking")
	require.True(t, errors.Is(err, ErrNoDrills))
}

func TestPickerIsSeedable(t *testing.T) {
	a, b := NewPicker(42), NewPicker(42)
	for i := 0; i < 10; i++ {
		pa, err := a.Pick(cooking.Name)
		require.NoError(t, err)
		pb, err := b.Pick(cooking.Name)
		require.NoError(t, err)
		require.Equal(t, pa.Name, pb.Name)
	}
}

func TestPickerCoversAllPatterns(t *testing.T) {
	picker := NewPicker(7)
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		p, err := picker.Pick(dressing.Name)
		require.NoError(t, err)
		seen[p.Name] = true
	}
	require.Len(t, seen, 5)
}

func TestDrillSequencesAreIndependent(t *testing.T) {
	p, err := Get(cooking.Name, "fire-first")
	require.NoError(t, err)

	edited := p.Sequence().RemoveAt(0)
	require.Equal(t, 7, p.Sequence().Len())
	require.Equal(t, 6, edited.Len())
}

func TestParseRejectsDuplicates(t *testing.T) {
	data := []byte(`ruleset: cooking
patterns:
  - name: a
    actions: [{kind: add_water}]
  - name: a
    actions: [{kind: add_water}]
`)
	_, _, err := Parse(data)
	require.Error(t, err)
}
