package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/opencode-ai/blockseq/internal/sequences"
	"github.com/spf13/cobra"
)

var (
	seqListTags     []string
	seqShowTemplate string
)

func init() {
	rootCmd.AddCommand(seqCmd)
	seqCmd.AddCommand(seqListCmd)
	seqCmd.AddCommand(seqShowCmd)

	seqListCmd.Flags().StringSliceVar(&seqListTags, "tags", nil, "filter by tag (any match)")
	seqShowCmd.Flags().StringVar(&seqShowTemplate, "template", "", "Go template for the listing")
}

var seqCmd = &cobra.Command{
	Use:     "sequences",
	Aliases: []string{"seq"},
	Short:   "Browse saved sequences",
	Long: `Browse sequence files.

Sequences are loaded from .blockseq/sequences in the current directory,
sequences.dir from config, ~/.config/blockseq/sequences, and the built-in
examples. The first file with a given name wins.`,
}

var seqListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sequences",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := sequences.LoadSequencesFromSearchPaths(projectDir(), GetConfig().Sequences.Dir)
		if err != nil {
			return fmt.Errorf("failed to load sequences: %w", err)
		}

		if rulesetName != "" {
			items = filterByRuleset(items, rulesetName)
		}
		items = filterSequences(items, seqListTags)

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, items)
		}

		if len(items) == 0 {
			fmt.Println("No sequences found")
			return nil
		}

		rows := make([][]string, 0, len(items))
		for _, item := range items {
			rows = append(rows, []string{
				item.Name,
				item.Ruleset,
				strconv.Itoa(len(item.Actions)),
				formatList(item.Tags),
				item.Source,
			})
		}
		return writeTable(os.Stdout, []string{"NAME", "RULESET", "BLOCKS", "TAGS", "SOURCE"}, rows)
	},
}

var seqShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a sequence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := sequences.LoadSequencesFromSearchPaths(projectDir(), GetConfig().Sequences.Dir)
		if err != nil {
			return fmt.Errorf("failed to load sequences: %w", err)
		}

		file := findSequenceByName(items, args[0])
		if file == nil {
			file, err = sequences.Find(args[0], projectDir(), GetConfig().Sequences.Dir)
			if err != nil {
				return err
			}
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, file)
		}

		return sequences.Render(os.Stdout, file, seqShowTemplate)
	},
}

func filterByRuleset(items []*sequences.File, ruleset string) []*sequences.File {
	filtered := make([]*sequences.File, 0, len(items))
	for _, item := range items {
		if item.Ruleset == ruleset {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func filterSequences(items []*sequences.File, tags []string) []*sequences.File {
	if len(tags) == 0 {
		return items
	}

	wanted := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		wanted[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
	}

	filtered := make([]*sequences.File, 0, len(items))
	for _, item := range items {
		for _, tag := range item.Tags {
			if _, ok := wanted[strings.ToLower(tag)]; ok {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}

func findSequenceByName(items []*sequences.File, name string) *sequences.File {
	for _, item := range items {
		if strings.EqualFold(item.Name, name) {
			return item
		}
	}
	return nil
}
