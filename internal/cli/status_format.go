// Package cli provides outcome and state formatting helpers.
package cli

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/blockseq/internal/cooking"
	"github.com/opencode-ai/blockseq/internal/dressing"
	"github.com/opencode-ai/blockseq/internal/models"
)

func formatOutcome(outcome models.Outcome) string {
	label, color := statusLabelForOutcome(outcome)
	return colorize(formatStatusLabel(label, string(outcome.Variant)), color)
}

func formatVisualState(ruleset string, state models.VisualState) string {
	return colorize(stateCaption(ruleset, state), colorCyan)
}

func statusLabelForOutcome(outcome models.Outcome) (string, string) {
	switch {
	case outcome.Success:
		return "OK", colorGreen
	case outcome.Variant == cooking.VariantEmpty:
		return "WAIT", colorGray
	case outcome.Timing != nil:
		return "WARN", colorYellow
	case outcome.HasViolations() && len(outcome.Violations) == 1:
		return "WARN", colorMagenta
	default:
		return "ERR", colorRed
	}
}

func stateCaption(ruleset string, state models.VisualState) string {
	if ruleset == dressing.Name {
		return dressing.Caption(state)
	}
	return strings.ReplaceAll(string(state), "_", " ")
}

func formatStatusLabel(label, status string) string {
	normalized := strings.TrimSpace(status)
	if normalized != "" {
		normalized = strings.ReplaceAll(normalized, "_", " ")
	}
	if normalized == "" {
		return label
	}
	return fmt.Sprintf("%s %s", label, normalized)
}

func formatTiming(timing *models.CookTiming) string {
	if timing == nil {
		return ""
	}
	switch {
	case timing.RemainingSeconds > 0:
		return fmt.Sprintf("cooked %ds, %ds short of %ds", timing.CookedSeconds, timing.RemainingSeconds, cooking.TargetCookSeconds)
	case timing.ExtraSeconds > 0:
		return fmt.Sprintf("cooked %ds, %ds over %ds", timing.CookedSeconds, timing.ExtraSeconds, cooking.TargetCookSeconds)
	default:
		return fmt.Sprintf("cooked %ds", timing.CookedSeconds)
	}
}
