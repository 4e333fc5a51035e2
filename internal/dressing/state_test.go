package dressing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/blockseq/internal/models"
)

func TestClassifyFeetAndBody(t *testing.T) {
	tests := []struct {
		name string
		seq  models.Sequence
		foot FootState
		body BodyState
	}{
		{"nothing", seq(), FootBare, BodyBare},
		{"socks", seq(PutOnSocks), FootSocks, BodyBare},
		{"shoes", seq(PutOnShoes), FootShoes, BodyBare},
		{"socks then shoes", seq(PutOnSocks, PutOnShoes), FootSocksShoes, BodyBare},
		{"shoes then socks", seq(PutOnShoes, PutOnSocks), FootShoesSocks, BodyBare},
		{"bag", seq(WearBag), FootBare, BodyBag},
		{"raincoat", seq(WearRaincoat), FootBare, BodyRaincoat},
		{"bag then raincoat", seq(WearBag, WearRaincoat), FootBare, BodyBagRaincoat},
		{"raincoat then bag", seq(WearRaincoat, WearBag), FootBare, BodyRaincoatBag},
		{"interleaved", seq(WearRaincoat, PutOnShoes, WearBag, PutOnSocks), FootShoesSocks, BodyRaincoatBag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyFeet(tt.seq); got != tt.foot {
				t.Errorf("ClassifyFeet() = %q, want %q", got, tt.foot)
			}
			if got := ClassifyBody(tt.seq); got != tt.body {
				t.Errorf("ClassifyBody() = %q, want %q", got, tt.body)
			}
		})
	}
}

func TestCompositeState(t *testing.T) {
	require.Equal(t, StateBase, CompositeState(BodyBare, FootBare))
	require.Equal(t, models.VisualState("socks"), CompositeState(BodyBare, FootSocks))
	require.Equal(t, models.VisualState("raincoat"), CompositeState(BodyRaincoat, FootBare))
	require.Equal(t, models.VisualState("bag_raincoat_socks"), CompositeState(BodyBagRaincoat, FootSocks))
	require.Equal(t, models.VisualState("raincoat_bag_shoes_socks"), CompositeState(BodyRaincoatBag, FootShoesSocks))
}

func TestStatesAreDistinct(t *testing.T) {
	states := States()
	require.Len(t, states, 25)

	seen := make(map[models.VisualState]bool)
	for _, s := range states {
		require.False(t, seen[s], "duplicate state %s", s)
		seen[s] = true
	}
}

func TestClassifyStateMatchesComposite(t *testing.T) {
	got := ClassifyState(seq(PutOnSocks, WatchTV, WearBag, PutOnShoes, WearRaincoat))
	require.Equal(t, models.VisualState("bag_raincoat_socks_shoes"), got)
}

func TestCaption(t *testing.T) {
	require.Equal(t, "base", Caption(StateBase))
	require.Equal(t, "bag + raincoat + socks", Caption("bag_raincoat_socks"))
	require.Equal(t, "shoes", Caption("shoes"))
}

func TestBuildReplayFramesSkipsDistractions(t *testing.T) {
	input := seq(WatchTV, PutOnSocks, PutOnShoes, PlayGame, WearBag, WearRaincoat)
	frames := BuildReplayFrames(input)

	require.Len(t, frames, 5)
	want := []models.VisualState{
		StateBase,
		"socks",
		"socks_shoes",
		"bag_socks_shoes",
		"bag_raincoat_socks_shoes",
	}
	for i, frame := range frames {
		require.Equal(t, i, frame.Index)
		require.Equal(t, i, frame.Snapshot.Len())
		require.Equal(t, want[i], frame.State)
	}
	require.Equal(t, 0, frames[0].SourcePrefixLength)
	require.Equal(t, 2, frames[1].SourcePrefixLength)
	require.Equal(t, 6, frames[4].SourcePrefixLength)
}

func TestBuildReplayFramesAttireOnly(t *testing.T) {
	input := seq(PutOnShoes, PutOnSocks, WearRaincoat, WearBag)
	frames := BuildReplayFrames(input)

	require.Len(t, frames, input.Len()+1)
	for i := 1; i < len(frames); i++ {
		require.Equal(t, frames[i-1].Snapshot.Len()+1, frames[i].Snapshot.Len())
	}
}

func TestRulesImplementContract(t *testing.T) {
	r := New()
	input := seq(PutOnSocks, PutOnShoes)

	require.Equal(t, Name, r.Name())
	require.Equal(t, Evaluate(input), r.Evaluate(input))
	require.Equal(t, ClassifyState(input), r.ClassifyState(input))
	require.Equal(t, BuildReplayFrames(input), r.BuildReplayFrames(input))
}
