package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/opencode-ai/blockseq/internal/ruleset"
	"github.com/opencode-ai/blockseq/internal/vocab"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rulesetsCmd)
	rootCmd.AddCommand(vocabCmd)
}

// RulesetInfo is the listing entry of a ruleset.
type RulesetInfo struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Blocks      int    `json:"blocks"`
	Default     bool   `json:"default"`
}

var rulesetsCmd = &cobra.Command{
	Use:   "rulesets",
	Short: "List available rulesets",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaultName := GetConfig().Ruleset.Default

		items := make([]RulesetInfo, 0)
		for _, rs := range ruleset.List() {
			v := rs.Vocabulary()
			items = append(items, RulesetInfo{
				Name:        rs.Name(),
				Title:       v.Title,
				Description: v.Description,
				Blocks:      len(v.Actions),
				Default:     rs.Name() == defaultName,
			})
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, items)
		}

		rows := make([][]string, 0, len(items))
		for _, item := range items {
			name := item.Name
			if item.Default {
				name += " *"
			}
			rows = append(rows, []string{name, item.Title, strconv.Itoa(item.Blocks), item.Description})
		}
		return writeTable(os.Stdout, []string{"NAME", "TITLE", "BLOCKS", "DESCRIPTION"}, rows)
	},
}

var vocabCmd = &cobra.Command{
	Use:   "vocab [ruleset]",
	Short: "Show the blocks of a ruleset",
	Long:  "Show every block kind of a ruleset with its aliases and flags.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := selectedRuleset()
		if len(args) == 1 {
			name = args[0]
		}
		rs, err := ruleset.Lookup(name)
		if err != nil {
			return err
		}
		v := rs.Vocabulary()

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, v)
		}

		fmt.Printf("%s (%s)\n", bold(v.Title), v.Name)
		if v.Description != "" {
			fmt.Println(v.Description)
		}
		fmt.Println()

		rows := make([][]string, 0, len(v.Actions))
		for _, entry := range v.Actions {
			rows = append(rows, []string{
				string(entry.Kind),
				entry.Text,
				formatList(entry.Aliases),
				formatYesNo(entry.Timed),
				formatYesNo(entry.Visible),
				formatYesNo(entry.Distraction),
			})
		}
		if err := writeTable(os.Stdout, []string{"KIND", "TEXT", "ALIASES", "TIMED", "VISIBLE", "DISTRACTION"}, rows); err != nil {
			return err
		}

		if len(v.DurationOptions) > 0 {
			fmt.Printf("\nDurations: %s\n", formatDurations(v.DurationOptions))
		}
		fmt.Printf("Palette:   %s\n", formatPalette(v))
		return nil
	},
}

func formatDurations(options []int) string {
	parts := make([]string, len(options))
	for i, seconds := range options {
		parts[i] = strings.TrimPrefix(vocab.FormatWaitText(seconds), "Wait ")
	}
	return strings.Join(parts, ", ")
}

func formatPalette(v *vocab.Vocabulary) string {
	actions := v.PaletteActions()
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = v.Label(a)
	}
	if v.ShufflePalette {
		return formatList(labels) + " (shuffled)"
	}
	return formatList(labels)
}
