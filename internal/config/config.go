// Package config loads blockseq configuration from defaults, a YAML file,
// and BLOCKSEQ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. BLOCKSEQ_LOGGING_LEVEL.
const EnvPrefix = "BLOCKSEQ"

// Config is the full application configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Ruleset   RulesetConfig   `mapstructure:"ruleset"`
	Replay    ReplayConfig    `mapstructure:"replay"`
	Journal   JournalConfig   `mapstructure:"journal"`
	TUI       TUIConfig       `mapstructure:"tui"`
	Sequences SequencesConfig `mapstructure:"sequences"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`

	// Format is console or json.
	Format string `mapstructure:"format"`
}

// RulesetConfig selects the ruleset used when none is given.
type RulesetConfig struct {
	Default string `mapstructure:"default"`
}

// ReplayConfig controls playback.
type ReplayConfig struct {
	// Interval is the time each replay frame stays on screen.
	Interval time.Duration `mapstructure:"interval"`
}

// JournalConfig controls the evaluation journal.
type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// TUIConfig controls the terminal UI.
type TUIConfig struct {
	Theme string `mapstructure:"theme"`
}

// SequencesConfig adds a sequence file search directory.
type SequencesConfig struct {
	Dir string `mapstructure:"dir"`
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"console", "json"}
	validThemes  = []string{"default", "high-contrast"}
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Ruleset: RulesetConfig{
			Default: "cooking",
		},
		Replay: ReplayConfig{
			Interval: 700 * time.Millisecond,
		},
		Journal: JournalConfig{
			Enabled: true,
			Path:    filepath.Join(DataDir(), "journal.db"),
		},
		TUI: TUIConfig{
			Theme: "default",
		},
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	var errs models.ValidationErrors

	if !contains(validLevels, strings.ToLower(c.Logging.Level)) {
		errs.AddMessage("logging.level", fmt.Sprintf("must be one of %s", strings.Join(validLevels, ", ")))
	}
	if !contains(validFormats, strings.ToLower(c.Logging.Format)) {
		errs.AddMessage("logging.format", fmt.Sprintf("must be one of %s", strings.Join(validFormats, ", ")))
	}
	if strings.TrimSpace(c.Ruleset.Default) == "" {
		errs.AddMessage("ruleset.default", "is required")
	}
	if c.Replay.Interval <= 0 {
		errs.AddMessage("replay.interval", "must be positive")
	}
	if c.Journal.Enabled && strings.TrimSpace(c.Journal.Path) == "" {
		errs.AddMessage("journal.path", "is required when the journal is enabled")
	}
	if !contains(validThemes, c.TUI.Theme) {
		errs.AddMessage("tui.theme", fmt.Sprintf("must be one of %s", strings.Join(validThemes, ", ")))
	}

	return errs.Err()
}

// Load reads configuration. When path is empty the default config file is
// used if it exists. Environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(ExpandPath(path))
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Journal.Path = ExpandPath(cfg.Journal.Path)
	cfg.Sequences.Dir = ExpandPath(cfg.Sequences.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DefaultConfigFile returns the path Load reads when no file is given.
func DefaultConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("ruleset.default", cfg.Ruleset.Default)
	v.SetDefault("replay.interval", cfg.Replay.Interval)
	v.SetDefault("journal.enabled", cfg.Journal.Enabled)
	v.SetDefault("journal.path", cfg.Journal.Path)
	v.SetDefault("tui.theme", cfg.TUI.Theme)
	v.SetDefault("sequences.dir", cfg.Sequences.Dir)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
