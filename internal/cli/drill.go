package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/opencode-ai/blockseq/internal/drills"
	"github.com/opencode-ai/blockseq/internal/ruleset"
	"github.com/spf13/cobra"
)

var (
	drillSeed    uint64
	drillName    string
	drillList    bool
	drillExplain bool
)

func init() {
	rootCmd.AddCommand(drillCmd)

	drillCmd.Flags().Uint64Var(&drillSeed, "seed", 0, "seed for drill selection (0 picks at random)")
	drillCmd.Flags().StringVar(&drillName, "name", "", "run a specific drill instead of a random one")
	drillCmd.Flags().BoolVar(&drillList, "list", false, "list the drills of the ruleset")
	drillCmd.Flags().BoolVar(&drillExplain, "explain", false, "show which rule decided the outcome")
}

// DrillReport is the payload of `blockseq drill`.
type DrillReport struct {
	Pattern drills.Pattern  `json:"pattern"`
	Result  *ruleset.Result `json:"result"`
	Matched bool            `json:"matched"`
}

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Evaluate a buggy sequence",
	Long: `Pick a built-in buggy sequence for the ruleset and evaluate it with the
same rules as any other sequence. Use it to practise spotting what went
wrong before looking at the outcome.`,
	Example: `  blockseq drill
  blockseq drill -r dressing --seed 7
  blockseq drill --name fire-first`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		name := selectedRuleset()

		if drillList {
			return listDrills(name)
		}

		pattern, err := pickDrill(name)
		if err != nil {
			return err
		}

		service, closeFn, err := newService(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		result, err := service.Run(ctx, ruleset.Request{
			Ruleset:  pattern.Ruleset,
			Sequence: pattern.Sequence(),
			Source:   "drill",
			Drill:    pattern.Name,
		})
		if err != nil {
			return fmt.Errorf("failed to evaluate drill: %w", err)
		}

		report := DrillReport{
			Pattern: pattern,
			Result:  result,
			Matched: drillMatched(pattern, result),
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, report)
		}

		fmt.Printf("Drill %s: %s\n\n", bold(pattern.Name), pattern.Description)
		if err := printResult(os.Stdout, result, drillExplain); err != nil {
			return err
		}
		if !report.Matched {
			fmt.Printf("\n%s expected %s\n", colorize("note:", colorYellow), pattern.Expect)
		}
		return nil
	},
}

func pickDrill(name string) (drills.Pattern, error) {
	if drillName != "" {
		return drills.Get(name, drillName)
	}
	picker := drills.NewRandomPicker()
	if drillSeed != 0 {
		picker = drills.NewPicker(drillSeed)
	}
	return picker.Pick(name)
}

// drillMatched reports whether the drill produced its expected variant.
// Patterns without an expectation only need to fail.
func drillMatched(pattern drills.Pattern, result *ruleset.Result) bool {
	if pattern.Expect == "" {
		return !result.Outcome.Success
	}
	return result.Outcome.Variant == pattern.Expect
}

func listDrills(name string) error {
	patterns, err := drills.ForRuleset(name)
	if err != nil {
		return err
	}

	if IsJSONOutput() || IsJSONLOutput() {
		return WriteOutput(os.Stdout, patterns)
	}

	rows := make([][]string, 0, len(patterns))
	for _, p := range patterns {
		rows = append(rows, []string{p.Name, string(p.Expect), strings.Join(p.Sequence().Tokens(), " "), p.Description})
	}
	return writeTable(os.Stdout, []string{"NAME", "EXPECT", "BLOCKS", "DESCRIPTION"}, rows)
}
