// Package tui implements the blockseq terminal user interface: a block
// editor with a palette and a sequence pane, and an animated replay of the
// evaluated sequence.
package tui

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/blockseq/internal/assets"
	"github.com/opencode-ai/blockseq/internal/dressing"
	"github.com/opencode-ai/blockseq/internal/drills"
	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/opencode-ai/blockseq/internal/replay"
	"github.com/opencode-ai/blockseq/internal/ruleset"
	"github.com/opencode-ai/blockseq/internal/tui/components"
	"github.com/opencode-ai/blockseq/internal/tui/styles"
)

// DefaultReplayInterval is used when Config.ReplayInterval is not set.
const DefaultReplayInterval = 700 * time.Millisecond

// Config configures the TUI.
type Config struct {
	// Service runs evaluations. Nil uses a service without a journal.
	Service *ruleset.Service

	// Ruleset is the ruleset to start with.
	Ruleset string

	// Theme names a palette from styles.Themes.
	Theme string

	// ReplayInterval is the delay between replay frames.
	ReplayInterval time.Duration

	// Seed fixes palette shuffles and drill picks. Zero picks at random.
	Seed uint64
}

// RunWithConfig launches the TUI program.
func RunWithConfig(cfg Config) error {
	m, err := newModel(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

type mode int

const (
	modeEdit mode = iota
	modeReplay
	modeResult
)

type model struct {
	width      int
	height     int
	styles     styles.Styles
	service    *ruleset.Service
	rs         ruleset.Ruleset
	editor     *editor
	mode       mode
	interval   time.Duration
	rng        *rand.Rand
	picker     *drills.Picker
	drill      string
	result     *ruleset.Result
	player     *replay.Player
	generation int
	status     string
	err        error
}

const (
	minWidth  = 60
	minHeight = 15
)

func newModel(cfg Config) (model, error) {
	service := cfg.Service
	if service == nil {
		service = ruleset.NewService(nil)
	}
	rs, err := service.Resolve(cfg.Ruleset)
	if err != nil {
		return model{}, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	interval := cfg.ReplayInterval
	if interval <= 0 {
		interval = DefaultReplayInterval
	}

	rng := rand.New(rand.NewPCG(seed, seed>>1|1))
	return model{
		styles:   styles.BuildStyles(styles.ThemeByName(cfg.Theme)),
		service:  service,
		rs:       rs,
		editor:   newEditor(rs.Vocabulary(), rng.Shuffle),
		interval: interval,
		rng:      rng,
		picker:   drills.NewPicker(seed),
	}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeReplay:
			return m.updateReplay(msg)
		case modeResult:
			return m.updateResult(msg)
		default:
			return m.updateEdit(msg)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case evaluatedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.mode = modeEdit
			return m, nil
		}
		m.err = nil
		m.result = msg.result
		return m.startReplay()
	case frameTickMsg:
		if m.mode != modeReplay || msg.generation != m.generation {
			return m, nil
		}
		if !m.player.Advance() {
			m.mode = modeResult
			return m, nil
		}
		return m, frameTickCmd(m.interval, m.generation)
	}
	return m, nil
}

func (m model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := m.editor
	changed := false
	m.status = ""

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "tab":
		e.toggleFocus()
	case "up", "k":
		e.moveCursor(-1)
	case "down", "j":
		e.moveCursor(1)
	case "enter", "a":
		if e.focus == focusPalette {
			changed = e.add()
		}
	case "x", "backspace", "delete":
		if e.focus == focusSequence {
			changed = e.remove()
		}
	case "K", "shift+up":
		if e.focus == focusSequence {
			changed = e.moveBlock(-1)
		}
	case "J", "shift+down":
		if e.focus == focusSequence {
			changed = e.moveBlock(1)
		}
	case "+", "=", "right", "l":
		changed = e.cycleDuration(1)
	case "-", "left", "h":
		changed = e.cycleDuration(-1)
	case "c":
		e.reset(m.rng.Shuffle)
		m.drill = ""
		m.status = "Cleared"
	case "d":
		return m.loadDrill(), nil
	case "s":
		return m.switchRuleset(), nil
	case "r":
		return m, m.evaluateCmd()
	}

	if changed {
		m.drill = ""
	}
	return m, nil
}

func (m model) updateReplay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case " ", "esc", "enter":
		m.mode = modeResult
		m.generation++
	}
	return m, nil
}

func (m model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter", "esc", "e":
		m.mode = modeEdit
	case "p":
		return m.startReplay()
	case "c":
		m.editor.reset(m.rng.Shuffle)
		m.drill = ""
		m.mode = modeEdit
	}
	return m, nil
}

func (m model) startReplay() (tea.Model, tea.Cmd) {
	m.player = replay.NewPlayer(m.result.Frames)
	m.mode = modeReplay
	m.generation++
	return m, frameTickCmd(m.interval, m.generation)
}

func (m model) evaluateCmd() tea.Cmd {
	service := m.service
	req := ruleset.Request{
		Ruleset:  m.rs.Name(),
		Sequence: m.editor.sequence,
		Source:   "tui",
		Drill:    m.drill,
	}
	return func() tea.Msg {
		result, err := service.Run(context.Background(), req)
		return evaluatedMsg{result: result, err: err}
	}
}

func (m model) loadDrill() model {
	pattern, err := m.picker.Pick(m.rs.Name())
	if err != nil {
		m.err = err
		return m
	}
	m.editor.load(pattern.Sequence())
	m.drill = pattern.Name
	m.err = nil
	m.status = fmt.Sprintf("Drill %s: %s", pattern.Name, pattern.Description)
	return m
}

func (m model) switchRuleset() model {
	names := m.service.Registry().Names()
	if len(names) < 2 {
		return m
	}
	next := names[0]
	for i, name := range names {
		if name == m.rs.Name() {
			next = names[(i+1)%len(names)]
			break
		}
	}
	rs, err := m.service.Resolve(next)
	if err != nil {
		m.err = err
		return m
	}
	m.rs = rs
	m.editor = newEditor(rs.Vocabulary(), m.rng.Shuffle)
	m.drill = ""
	m.result = nil
	m.err = nil
	m.status = "Switched to " + rs.Vocabulary().Title
	return m
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", joinLines(m.smallViewLines()))
		}
	}

	v := m.rs.Vocabulary()
	lines := []string{
		m.styles.Title.Render(fmt.Sprintf("blockseq · %s", v.Title)),
		m.styles.Muted.Render(v.Description),
		"",
	}

	switch m.mode {
	case modeReplay:
		lines = append(lines, m.replayLines()...)
	case modeResult:
		lines = append(lines, m.resultLines()...)
	default:
		lines = append(lines, m.editLines()...)
	}

	if m.err != nil {
		lines = append(lines, "", m.styles.Error.Render("Error: "+m.err.Error()))
	} else if m.status != "" {
		lines = append(lines, "", m.styles.Info.Render(m.status))
	}

	return fmt.Sprintf("%s\n", joinLines(lines))
}

func (m model) editLines() []string {
	e := m.editor
	v := e.vocab

	paletteStyle, sequenceStyle := m.styles.Pane, m.styles.PaneFocus
	if e.focus == focusPalette {
		paletteStyle, sequenceStyle = m.styles.PaneFocus, m.styles.Pane
	}
	palette := paletteStyle.Render(joinLines(e.palette.Render(m.styles, v, e.focus == focusPalette)))
	sequence := sequenceStyle.Render(joinLines(components.RenderSequence(m.styles, v, e.sequence, e.cursor, e.focus == focusSequence)))

	state := m.rs.ClassifyState(e.sequence)
	preview := fmt.Sprintf("Now: %s  %s",
		components.RenderStateBadge(m.styles, state, m.caption(state)),
		m.styles.Muted.Render(assets.ForState(m.rs.Name(), state)))

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, palette, " ", sequence),
		preview,
	}
	if m.drill != "" {
		lines = append(lines, m.styles.Warning.Render("Drill loaded: find the bug, then press r"))
	}
	canSwitch := len(m.service.Registry().Names()) > 1
	lines = append(lines, "", components.RenderQuickActionBar(m.styles, components.EditorQuickActions(e.quickContext(canSwitch))))
	return lines
}

func (m model) replayLines() []string {
	frame, ok := m.player.Current()
	if !ok {
		return []string{components.EmptySequence().RenderCompact(m.styles)}
	}

	v := m.rs.Vocabulary()
	labels := make([]string, 0, frame.Snapshot.Len())
	for _, a := range frame.Snapshot.Actions() {
		labels = append(labels, v.Label(a))
	}
	steps := "(empty)"
	if len(labels) > 0 {
		steps = strings.Join(labels, " → ")
	}

	return []string{
		m.styles.Accent.Render(fmt.Sprintf("Replay %d/%d", m.player.Position()+1, m.player.Len())),
		components.RenderStateBadge(m.styles, frame.State, m.caption(frame.State)),
		m.styles.Muted.Render(assets.ForState(m.rs.Name(), frame.State)),
		m.styles.Text.Render(steps),
		"",
		components.RenderQuickActionBar(m.styles, components.ReplayQuickActions(false)),
	}
}

func (m model) resultLines() []string {
	r := m.result
	if r == nil {
		return nil
	}
	card := components.RenderOutcomeCard(m.styles, components.OutcomeCard{
		Outcome:      r.Outcome,
		State:        r.FinalState,
		StateCaption: m.caption(r.FinalState),
		Image:        assets.ForOutcome(r.Ruleset, r.Outcome.Variant, r.FinalState),
		Drill:        r.Drill,
	})
	return []string{
		card,
		"",
		components.RenderQuickActionBar(m.styles, components.ReplayQuickActions(true)),
	}
}

func (m model) caption(state models.VisualState) string {
	if m.rs.Name() == dressing.Name {
		return dressing.Caption(state)
	}
	return ""
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
