package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/blockseq/internal/cooking"
	"github.com/opencode-ai/blockseq/internal/dressing"
	"github.com/opencode-ai/blockseq/internal/ruleset"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, name string) model {
	t.Helper()
	m, err := newModel(Config{
		Service:        ruleset.NewService(nil),
		Ruleset:        name,
		ReplayInterval: time.Millisecond,
		Seed:           42,
	})
	require.NoError(t, err)
	return m
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(model)
	require.True(t, ok)
	return out, cmd
}

func TestNewModelUnknownRuleset(t *testing.T) {
	_, err := newModel(Config{Ruleset: "baking"})
	require.ErrorIs(t, err, ruleset.ErrUnknownRuleset)
}

func TestRunReplaysThenShowsResult(t *testing.T) {
	m := newTestModel(t, cooking.Name)

	// water, fire
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 2, m.editor.sequence.Len())

	m, cmd := update(t, m, keyRunes("r"))
	require.NotNil(t, cmd)
	msg := cmd()
	evaluated, ok := msg.(evaluatedMsg)
	require.True(t, ok)
	require.NoError(t, evaluated.err)
	require.Equal(t, cooking.VariantNoNoodle, evaluated.result.Outcome.Variant)

	m, cmd = update(t, m, evaluated)
	require.Equal(t, modeReplay, m.mode)
	require.NotNil(t, cmd)
	require.Equal(t, 3, m.player.Len())
	require.Contains(t, m.View(), "Replay 1/3")

	for m.mode == modeReplay {
		m, _ = update(t, m, frameTickMsg{generation: m.generation})
	}
	require.Equal(t, modeResult, m.mode)
	require.Contains(t, m.View(), evaluated.result.Outcome.Message)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, modeEdit, m.mode)
	require.Equal(t, 2, m.editor.sequence.Len(), "sequence is kept after a run")
}

func TestStaleFrameTickIgnored(t *testing.T) {
	m := newTestModel(t, cooking.Name)
	_, cmd := update(t, m, keyRunes("r"))
	m, _ = update(t, m, cmd())
	require.Equal(t, modeReplay, m.mode)

	m, _ = update(t, m, keyRunes(" "))
	require.Equal(t, modeResult, m.mode)

	m, cmd = update(t, m, frameTickMsg{generation: m.generation - 1})
	require.Nil(t, cmd)
	require.Equal(t, modeResult, m.mode)
}

func TestDrillLoadsBuggySequence(t *testing.T) {
	m := newTestModel(t, dressing.Name)

	m, _ = update(t, m, keyRunes("d"))
	require.NotEmpty(t, m.drill)
	require.False(t, m.editor.sequence.IsEmpty())
	require.Contains(t, m.View(), "Drill loaded")

	_, cmd := update(t, m, keyRunes("r"))
	evaluated := cmd().(evaluatedMsg)
	require.NoError(t, evaluated.err)
	require.False(t, evaluated.result.Outcome.Success)
	require.Equal(t, m.drill, evaluated.result.Drill)
}

func TestEditClearsDrillTag(t *testing.T) {
	m := newTestModel(t, cooking.Name)
	m, _ = update(t, m, keyRunes("d"))
	require.NotEmpty(t, m.drill)

	m, _ = update(t, m, keyRunes("x"))
	require.Empty(t, m.drill)
}

func TestSwitchRuleset(t *testing.T) {
	m := newTestModel(t, cooking.Name)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, keyRunes("s"))
	require.Equal(t, dressing.Name, m.rs.Name())
	require.True(t, m.editor.sequence.IsEmpty())
	require.Equal(t, 6, m.editor.palette.Len())

	m, _ = update(t, m, keyRunes("s"))
	require.Equal(t, cooking.Name, m.rs.Name())
}

func TestClearRestoresPalette(t *testing.T) {
	m := newTestModel(t, cooking.Name)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 5, m.editor.palette.Len())

	m, _ = update(t, m, keyRunes("c"))
	require.True(t, m.editor.sequence.IsEmpty())
	require.Equal(t, 7, m.editor.palette.Len())
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel(t, cooking.Name)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Fatalf("expected small terminal warning, got: %s", m.View())
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, cooking.Name)
	_, cmd := update(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
}
