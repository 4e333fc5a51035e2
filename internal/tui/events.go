package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/blockseq/internal/ruleset"
)

// evaluatedMsg carries the result of an evaluation run.
type evaluatedMsg struct {
	result *ruleset.Result
	err    error
}

// frameTickMsg advances the replay. Ticks from an earlier playback carry an
// older generation and are ignored.
type frameTickMsg struct {
	generation int
	at         time.Time
}

func frameTickCmd(interval time.Duration, generation int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameTickMsg{generation: generation, at: t}
	})
}
