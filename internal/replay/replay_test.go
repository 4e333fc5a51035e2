package replay

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/blockseq/internal/models"
)

func countState(s models.Sequence) models.VisualState {
	return models.VisualState(string(rune('0' + s.Len())))
}

func TestBuildVisibleOnly(t *testing.T) {
	seq := models.NewSequence(models.NewAction("a"), models.NewAction("b"), models.NewAction("c"))
	frames := Build(seq, func(models.Action) bool { return true }, countState)

	require.Len(t, frames, seq.Len()+1)
	for i, frame := range frames {
		require.Equal(t, i, frame.Index)
		require.Equal(t, i, frame.Snapshot.Len())
		require.Equal(t, i, frame.SourcePrefixLength)
		require.Equal(t, countState(frame.Snapshot), frame.State)
	}
}

func TestBuildSkipsHiddenActions(t *testing.T) {
	seq := models.NewSequence(
		models.NewAction("hidden"),
		models.NewAction("a"),
		models.NewAction("hidden"),
		models.NewAction("b"),
	)
	visible := func(a models.Action) bool { return a.Kind != "hidden" }

	frames := Build(seq, visible, countState)

	require.Len(t, frames, 3)
	require.Equal(t, 0, frames[0].Snapshot.Len())
	require.Equal(t, []string{"a"}, frames[1].Snapshot.Tokens())
	require.Equal(t, 2, frames[1].SourcePrefixLength)
	require.Equal(t, []string{"a", "b"}, frames[2].Snapshot.Tokens())
	require.Equal(t, 4, frames[2].SourcePrefixLength)
}

func TestBuildEmpty(t *testing.T) {
	frames := Build(models.Sequence{}, func(models.Action) bool { return true }, countState)
	require.Len(t, frames, 1)
	require.True(t, frames[0].Snapshot.IsEmpty())
}

func TestBuildIsRestartable(t *testing.T) {
	seq := models.NewSequence(models.NewAction("a"), models.NewAction("b"))
	visible := func(models.Action) bool { return true }

	require.Equal(t, Build(seq, visible, countState), Build(seq, visible, countState))
}

func TestPlayer(t *testing.T) {
	seq := models.NewSequence(models.NewAction("a"), models.NewAction("b"))
	player := NewPlayer(Build(seq, func(models.Action) bool { return true }, countState))

	require.Equal(t, 3, player.Len())
	require.False(t, player.Done())

	require.True(t, player.Advance())
	require.True(t, player.Advance())
	require.True(t, player.Done())
	require.False(t, player.Advance())

	frame, ok := player.Current()
	require.True(t, ok)
	require.Equal(t, 2, frame.Index)

	player.Restart()
	require.Equal(t, 0, player.Position())
}
