package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/opencode-ai/blockseq/internal/assets"
	"github.com/opencode-ai/blockseq/internal/cooking"
	"github.com/opencode-ai/blockseq/internal/ruleset"
	"github.com/opencode-ai/blockseq/internal/vocab"
	"github.com/spf13/cobra"
)

var evalExplain bool

func init() {
	rootCmd.AddCommand(evalCmd)

	addSequenceFlags(evalCmd)
	evalCmd.Flags().BoolVar(&evalExplain, "explain", false, "show which rule decided the outcome")
}

var evalCmd = &cobra.Command{
	Use:   "eval [block...]",
	Short: "Evaluate a block sequence",
	Long: `Evaluate a block sequence and print the outcome.

Blocks are given by kind or alias, in order. Timed blocks take a duration
as wait:90 or wait=1m30s. A saved sequence can be used with --sequence.`,
	Example: `  # Cook ramen
  blockseq eval water fire wait noodle wait:150 soup off

  # Get dressed
  blockseq eval -r dressing socks shoes raincoat bag

  # Evaluate a saved sequence
  blockseq eval -s perfect-ramen`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		input, err := resolveInput(args)
		if err != nil {
			journalError(ctx, "eval", err)
			return err
		}

		service, closeFn, err := newService(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		step := startProgress("Evaluating")
		result, err := service.Run(ctx, ruleset.Request{
			Ruleset:  input.Ruleset,
			Sequence: input.Sequence,
			Source:   input.Source,
		})
		if err != nil {
			step.Fail(err)
			return fmt.Errorf("failed to evaluate: %w", err)
		}
		step.Done()

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, result)
		}
		return printResult(os.Stdout, result, evalExplain)
	},
}

func printResult(out io.Writer, result *ruleset.Result, explain bool) error {
	outcome := result.Outcome

	v, err := vocab.Builtin(result.Ruleset)
	if err != nil {
		return err
	}
	labels := make([]string, 0, result.Sequence.Len())
	for _, a := range result.Sequence.Actions() {
		labels = append(labels, v.Label(a))
	}

	fmt.Fprintf(out, "%s  %s %s\n", formatOutcome(outcome), outcome.Emoji, bold(outcome.Message))
	if outcome.Description != "" {
		fmt.Fprintf(out, "  %s\n", outcome.Description)
	}
	for _, violation := range outcome.Violations {
		fmt.Fprintf(out, "  - %s\n", violation)
	}
	if outcome.Timing != nil {
		fmt.Fprintf(out, "  Timing:  %s\n", formatTiming(outcome.Timing))
	}
	fmt.Fprintf(out, "  Blocks:  %s\n", formatList(labels))
	fmt.Fprintf(out, "  State:   %s\n", formatVisualState(result.Ruleset, result.FinalState))
	fmt.Fprintf(out, "  Image:   %s\n", assets.ForOutcome(result.Ruleset, outcome.Variant, result.FinalState))
	if result.Drill != "" {
		fmt.Fprintf(out, "  Drill:   %s\n", result.Drill)
	}

	if explain && result.Ruleset == cooking.Name {
		_, rule := cooking.Explain(result.Sequence)
		if rule == "" {
			rule = "none (all checks passed)"
		}
		fmt.Fprintf(out, "  Rule:    %s\n", rule)
	}
	return nil
}
