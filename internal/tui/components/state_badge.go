package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/opencode-ai/blockseq/internal/tui/styles"
)

// RenderStateBadge renders a visual state with its caption.
func RenderStateBadge(styleSet styles.Styles, state models.VisualState, caption string) string {
	if strings.TrimSpace(caption) == "" {
		caption = normalizeStateLabel(state)
	}
	return styleSet.Info.Render(fmt.Sprintf("[%s]", caption))
}

// RenderOutcomeBadge renders an outcome as a short colored label.
func RenderOutcomeBadge(styleSet styles.Styles, outcome models.Outcome) string {
	icon, style := outcomeDescriptor(styleSet, outcome)
	return style.Render(fmt.Sprintf("%s %s", icon, normalizeVariantLabel(outcome.Variant)))
}

func outcomeDescriptor(styleSet styles.Styles, outcome models.Outcome) (string, lipgloss.Style) {
	switch {
	case outcome.Success:
		return "OK", styleSet.Success
	case outcome.Timing != nil:
		return "~", styleSet.Warning
	case outcome.Variant == "":
		return "-", styleSet.Muted
	default:
		return "ERR", styleSet.Error
	}
}

func normalizeStateLabel(state models.VisualState) string {
	value := strings.TrimSpace(strings.ReplaceAll(string(state), "_", " "))
	if value == "" {
		return "Unknown"
	}
	return strings.ToUpper(value[:1]) + value[1:]
}

func normalizeVariantLabel(variant models.Variant) string {
	value := strings.TrimSpace(strings.ReplaceAll(string(variant), "_", " "))
	if value == "" {
		return "Unknown"
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
