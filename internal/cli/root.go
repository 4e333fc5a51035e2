// Package cli implements the blockseq command line.
package cli

import (
	"context"
	"fmt"

	"github.com/opencode-ai/blockseq/internal/config"
	"github.com/opencode-ai/blockseq/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile        string
	logLevel       string
	jsonOutput     bool
	jsonlOutput    bool
	noProgress     bool
	nonInteractive bool
	noJournal      bool
	rulesetName    string

	appConfig *config.Config

	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "blockseq",
	Short: "Build and evaluate block sequences",
	Long: `blockseq lets you arrange action blocks for a procedure, such as cooking
ramen or getting dressed for a rainy school day, then evaluates the
sequence and replays what happens step by step.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/blockseq/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	flags.BoolVar(&jsonOutput, "json", false, "output in JSON format")
	flags.BoolVar(&jsonlOutput, "jsonl", false, "output in JSON Lines format")
	flags.BoolVar(&noProgress, "no-progress", false, "disable progress output")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or start the TUI")
	flags.BoolVar(&noJournal, "no-journal", false, "do not record evaluations in the journal")
	flags.StringVarP(&rulesetName, "ruleset", "r", "", "ruleset to use (default: ruleset.default from config)")
}

// SetVersion sets the build information reported by `blockseq version`.
func SetVersion(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		date = d
	}
	rootCmd.Version = version
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func initConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	logging.Init(cfg.Logging)
	appConfig = cfg

	logger := logging.Component("cli")
	logger.Debug().
		Str("config", cfgFile).
		Str("ruleset", cfg.Ruleset.Default).
		Bool("journal", cfg.Journal.Enabled).
		Msg("configuration loaded")
	return nil
}

// GetConfig returns the loaded configuration, or defaults before loading.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

// IsJSONLOutput reports whether --jsonl was given.
func IsJSONLOutput() bool {
	return jsonlOutput
}

// selectedRuleset returns the --ruleset flag or the configured default.
func selectedRuleset() string {
	if rulesetName != "" {
		return rulesetName
	}
	return GetConfig().Ruleset.Default
}
