package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/blockseq/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Icon is an optional icon to display (e.g., "🧱", "🍜").
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are key hints the user can follow.
	Suggestions []Suggestion
}

// Suggestion represents a suggested key or command with description.
type Suggestion struct {
	// Command is the key or CLI command (e.g., "enter", "blockseq drill").
	Command string
	// Description explains what it does.
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	var lines []string

	titleLine := e.Title
	if e.Icon != "" {
		titleLine = e.Icon + "  " + titleLine
	}
	lines = append(lines, styleSet.Muted.Render(titleLine))

	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		lines = append(lines, styleSet.Text.Render("Get started:"))
		for _, s := range e.Suggestions {
			cmdLine := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Command))
			if s.Description != "" {
				cmdLine += styleSet.Muted.Render(fmt.Sprintf("  # %s", s.Description))
			}
			lines = append(lines, cmdLine)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderCompact renders a compact single-line empty state.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := e.Title
	if e.Icon != "" {
		line = e.Icon + " " + line
	}
	if len(e.Suggestions) > 0 {
		line += fmt.Sprintf(" Try: %s", e.Suggestions[0].Command)
	}
	return styleSet.Muted.Render(line)
}

// EmptySequence returns an empty state for a sequence with no blocks.
func EmptySequence() EmptyState {
	return EmptyState{
		Icon:     "🧱",
		Title:    "No blocks yet.",
		Subtitle: "Pick blocks from the palette to build a sequence.",
		Suggestions: []Suggestion{
			{Command: "enter", Description: "add the selected block"},
			{Command: "d", Description: "load a buggy drill sequence"},
		},
	}
}

// EmptyHistory returns an empty state for when no evaluation has run yet.
func EmptyHistory() EmptyState {
	return EmptyState{
		Icon:     "📭",
		Title:    "No evaluations recorded",
		Subtitle: "Every evaluation is added to the journal.",
		Suggestions: []Suggestion{
			{Command: "blockseq eval -s perfect-ramen", Description: "evaluate a saved sequence"},
			{Command: "blockseq ui", Description: "build a sequence interactively"},
		},
	}
}
