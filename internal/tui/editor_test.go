package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/blockseq/internal/cooking"
	"github.com/opencode-ai/blockseq/internal/dressing"
	"github.com/opencode-ai/blockseq/internal/models"
)

func TestEditorAddRemovesFromPalette(t *testing.T) {
	e := newEditor(cooking.Vocabulary(), nil)
	require.Equal(t, 7, e.palette.Len())

	require.True(t, e.add())
	require.Equal(t, 6, e.palette.Len())
	require.Equal(t, 1, e.sequence.Len())
	require.Equal(t, cooking.AddWater, e.sequence.At(0).Kind)
	require.Equal(t, 0, e.cursor)
}

func TestEditorRemoveReturnsFreshBlock(t *testing.T) {
	e := newEditor(cooking.Vocabulary(), nil)
	e.palette.Move(2)
	require.True(t, e.add())

	e.focus = focusSequence
	require.True(t, e.cycleDuration(1))
	require.Equal(t, 60, e.sequence.At(0).Seconds())

	require.True(t, e.remove())
	require.True(t, e.sequence.IsEmpty())
	require.Equal(t, 7, e.palette.Len())

	returned := e.palette.Items[e.palette.Len()-1]
	require.Equal(t, cooking.Wait, returned.Kind)
	require.Equal(t, models.DefaultDurationSeconds, returned.Seconds())
}

func TestEditorRemoveDoesNotGrowPalette(t *testing.T) {
	v := cooking.Vocabulary()
	wait := v.MustNew(cooking.Wait)
	e := newEditor(v, nil)
	e.load(models.NewSequence(wait, wait, wait))

	// Two waits are on the palette; the third one is not returned.
	require.Equal(t, 5, e.palette.Len())
	require.True(t, e.remove())
	require.Equal(t, 5, e.palette.Len())
	require.True(t, e.remove())
	require.Equal(t, 6, e.palette.Len())
	require.True(t, e.remove())
	require.Equal(t, 7, e.palette.Len())
	require.False(t, e.remove())
}

func TestEditorMoveBlock(t *testing.T) {
	v := dressing.Vocabulary()
	e := newEditor(v, nil)
	e.load(models.NewSequence(
		v.MustNew(dressing.PutOnShoes),
		v.MustNew(dressing.PutOnSocks),
	))
	require.Equal(t, 1, e.cursor)

	require.True(t, e.moveBlock(-1))
	require.Equal(t, 0, e.cursor)
	require.Equal(t, []string{"put_on_socks", "put_on_shoes"}, e.sequence.Tokens())

	require.False(t, e.moveBlock(-1))
}

func TestEditorCycleDuration(t *testing.T) {
	v := cooking.Vocabulary()
	e := newEditor(v, nil)
	e.load(models.NewSequence(v.MustNew(cooking.Wait).WithDuration(240)))

	require.True(t, e.cycleDuration(1))
	require.Equal(t, 30, e.sequence.At(0).Seconds())
	require.True(t, e.cycleDuration(-1))
	require.Equal(t, 240, e.sequence.At(0).Seconds())
}

func TestEditorCycleDurationIgnoresUntimed(t *testing.T) {
	v := cooking.Vocabulary()
	e := newEditor(v, nil)
	e.load(models.NewSequence(v.MustNew(cooking.AddWater)))
	require.False(t, e.cycleDuration(1))
}

func TestEditorResetShufflesDressingPalette(t *testing.T) {
	calls := 0
	shuffle := func(n int, swap func(i, j int)) {
		calls++
		swap(0, n-1)
	}

	dress := newEditor(dressing.Vocabulary(), shuffle)
	require.Equal(t, 1, calls)
	require.Equal(t, dressing.PlayGame, dress.palette.Items[0].Kind)

	newEditor(cooking.Vocabulary(), shuffle)
	require.Equal(t, 1, calls, "cooking palette keeps its order")
}

func TestPaletteRemainder(t *testing.T) {
	v := cooking.Vocabulary()
	seq := models.NewSequence(v.MustNew(cooking.AddWater), v.MustNew(cooking.Wait))

	remaining := paletteRemainder(v, seq)
	require.Len(t, remaining, 5)
	kinds := make([]models.ActionKind, len(remaining))
	for i, a := range remaining {
		kinds[i] = a.Kind
	}
	require.NotContains(t, kinds, cooking.AddWater)
	require.Contains(t, kinds, cooking.Wait)
}

func TestClampCursor(t *testing.T) {
	tests := []struct {
		cursor, length, want int
	}{
		{0, 0, 0},
		{3, 0, 0},
		{-1, 3, 0},
		{5, 3, 2},
		{1, 3, 1},
	}
	for _, tt := range tests {
		if got := clampCursor(tt.cursor, tt.length); got != tt.want {
			t.Errorf("clampCursor(%d, %d) = %d, want %d", tt.cursor, tt.length, got, tt.want)
		}
	}
}
