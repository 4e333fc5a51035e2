package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/blockseq/internal/tui/styles"
)

// QuickAction represents a keyboard-triggered action.
type QuickAction struct {
	Key     string // Keyboard key (e.g., "r", "tab")
	Label   string // Display label (e.g., "Run", "Switch")
	Enabled bool   // Whether the action is available
}

// RenderQuickActionBar renders a horizontal bar of available quick actions.
// Format: "tab:Switch  enter:Add  r:Run"
func RenderQuickActionBar(styleSet styles.Styles, actions []QuickAction) string {
	if len(actions) == 0 {
		return ""
	}

	var parts []string
	for _, action := range actions {
		if !action.Enabled {
			continue
		}
		keyStyle := styleSet.Accent.Copy().Bold(true)
		labelStyle := styleSet.Muted
		part := fmt.Sprintf("%s:%s", keyStyle.Render(action.Key), labelStyle.Render(action.Label))
		parts = append(parts, part)
	}

	if len(parts) == 0 {
		return ""
	}

	return strings.Join(parts, "  ")
}

// EditorContext describes the editor for choosing quick actions.
type EditorContext struct {
	PaletteFocused bool
	PaletteEmpty   bool
	SequenceEmpty  bool
	TimedSelected  bool
	CanSwitch      bool
}

// EditorQuickActions returns the actions available in the editor.
func EditorQuickActions(ctx EditorContext) []QuickAction {
	actions := []QuickAction{
		{Key: "tab", Label: "Switch pane", Enabled: true},
	}
	if ctx.PaletteFocused {
		actions = append(actions, QuickAction{Key: "enter", Label: "Add", Enabled: !ctx.PaletteEmpty})
	} else {
		actions = append(actions,
			QuickAction{Key: "x", Label: "Remove", Enabled: !ctx.SequenceEmpty},
			QuickAction{Key: "K/J", Label: "Move", Enabled: !ctx.SequenceEmpty},
			QuickAction{Key: "+/-", Label: "Duration", Enabled: ctx.TimedSelected},
		)
	}
	actions = append(actions,
		QuickAction{Key: "r", Label: "Run", Enabled: true},
		QuickAction{Key: "d", Label: "Drill", Enabled: true},
		QuickAction{Key: "c", Label: "Clear", Enabled: !ctx.SequenceEmpty},
		QuickAction{Key: "s", Label: "Ruleset", Enabled: ctx.CanSwitch},
		QuickAction{Key: "q", Label: "Quit", Enabled: true},
	)
	return actions
}

// ReplayQuickActions returns the actions available during playback.
func ReplayQuickActions(done bool) []QuickAction {
	return []QuickAction{
		{Key: "space", Label: "Skip", Enabled: !done},
		{Key: "enter", Label: "Back to editor", Enabled: done},
		{Key: "p", Label: "Replay", Enabled: done},
		{Key: "q", Label: "Quit", Enabled: true},
	}
}
