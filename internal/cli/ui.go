// Package cli provides TUI launch commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/opencode-ai/blockseq/internal/config"
	"github.com/opencode-ai/blockseq/internal/logging"
	"github.com/opencode-ai/blockseq/internal/tui"
	"github.com/spf13/cobra"
)

var uiSeed uint64

func init() {
	rootCmd.AddCommand(uiCmd)

	uiCmd.Flags().Uint64Var(&uiSeed, "seed", 0, "seed for palette shuffles and drills (0 picks at random)")
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the block editor",
	Long: `Launch the blockseq terminal user interface.

Pick blocks from the palette, arrange them into a sequence, then run it to
watch the replay and see the outcome.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

func runTUI(cmd *cobra.Command) error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "TUI requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use CLI subcommands",
			NextStep: "blockseq eval --help",
		}
	}

	cfg := GetConfig()

	// Keep log output off the alternate screen.
	logFile, err := openTUILog()
	if err != nil {
		return err
	}
	defer logFile.Close()
	logging.InitWithWriter(cfg.Logging, logFile)

	service, closeFn, err := newService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	return tui.RunWithConfig(tui.Config{
		Service:        service,
		Ruleset:        selectedRuleset(),
		Theme:          cfg.TUI.Theme,
		ReplayInterval: cfg.Replay.Interval,
		Seed:           uiSeed,
	})
}

func openTUILog() (*os.File, error) {
	dir := config.DataDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	path := filepath.Join(dir, "tui.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}
