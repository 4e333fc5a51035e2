package cli

import (
	"fmt"
	"io"
	"os"
	"time"
)

// progressOut receives progress lines. Stdout stays clean for piping.
var progressOut io.Writer = os.Stderr

// progressStep prints "label... done (12ms)" around a slow step.
type progressStep struct {
	out     io.Writer
	started time.Time
}

func startProgress(label string) *progressStep {
	if !progressEnabled() {
		return nil
	}
	fmt.Fprintf(progressOut, "%s... ", label)
	return &progressStep{out: progressOut, started: time.Now()}
}

func (p *progressStep) Done() {
	if p == nil {
		return
	}
	fmt.Fprintf(p.out, "done (%s)\n", formatElapsed(time.Since(p.started)))
}

func (p *progressStep) Fail(err error) {
	if p == nil {
		return
	}
	if err == nil {
		fmt.Fprintln(p.out, "failed")
		return
	}
	fmt.Fprintf(p.out, "failed: %v\n", err)
}

func progressEnabled() bool {
	switch {
	case IsJSONOutput(), IsJSONLOutput(), noProgress:
		return false
	}
	for _, key := range []string{"BLOCKSEQ_NO_PROGRESS", "NO_PROGRESS"} {
		if _, ok := os.LookupEnv(key); ok {
			return false
		}
	}
	return true
}

func formatElapsed(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.String()
	case d < time.Second:
		return d.Round(10 * time.Millisecond).String()
	default:
		return d.Round(100 * time.Millisecond).String()
	}
}
