package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/opencode-ai/blockseq/internal/tui/styles"
)

const maxDescriptionLength = 72

// OutcomeCard contains data needed to render an evaluation result.
type OutcomeCard struct {
	Outcome      models.Outcome
	State        models.VisualState
	StateCaption string
	Image        string
	Drill        string
}

// RenderOutcomeCard renders the outcome of an evaluation.
func RenderOutcomeCard(styleSet styles.Styles, card OutcomeCard) string {
	outcome := card.Outcome
	header := styleSet.Title.Render(strings.TrimSpace(fmt.Sprintf("%s %s", outcome.Emoji, outcome.Message)))
	badgeLine := fmt.Sprintf("%s  %s", RenderOutcomeBadge(styleSet, outcome), RenderStateBadge(styleSet, card.State, card.StateCaption))

	lines := []string{header, badgeLine}
	if desc := strings.TrimSpace(outcome.Description); desc != "" {
		lines = append(lines, styleSet.Text.Render(truncate(desc, maxDescriptionLength)))
	}
	for _, violation := range outcome.Violations {
		lines = append(lines, styleSet.Warning.Render("• "+truncate(violation, maxDescriptionLength)))
	}
	if timing := outcome.Timing; timing != nil {
		lines = append(lines, styleSet.Muted.Render(formatTiming(timing)))
	}
	if card.Drill != "" {
		lines = append(lines, styleSet.Muted.Render("Drill: "+card.Drill))
	}
	if card.Image != "" {
		lines = append(lines, styleSet.Muted.Render("Image: "+card.Image))
	}

	border := styleSet.Theme.Tokens.Error
	if outcome.Success {
		border = styleSet.Theme.Tokens.Success
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1)

	return cardStyle.Render(strings.Join(lines, "\n"))
}

func formatTiming(timing *models.CookTiming) string {
	switch {
	case timing.RemainingSeconds > 0:
		return fmt.Sprintf("Cooked %ds, %ds short", timing.CookedSeconds, timing.RemainingSeconds)
	case timing.ExtraSeconds > 0:
		return fmt.Sprintf("Cooked %ds, %ds too long", timing.CookedSeconds, timing.ExtraSeconds)
	default:
		return fmt.Sprintf("Cooked %ds", timing.CookedSeconds)
	}
}
