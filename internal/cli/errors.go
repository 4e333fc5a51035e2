package cli

import (
	"fmt"
	"strings"
)

// PreflightError is returned when a command cannot start, with a hint on
// how to proceed.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Hint != "" {
		fmt.Fprintf(&b, "\nhint: %s", e.Hint)
	}
	if e.NextStep != "" {
		fmt.Fprintf(&b, "\ntry: %s", e.NextStep)
	}
	return b.String()
}
