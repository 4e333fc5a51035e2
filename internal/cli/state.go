package cli

import (
	"fmt"
	"os"

	"github.com/opencode-ai/blockseq/internal/assets"
	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/opencode-ai/blockseq/internal/ruleset"
	"github.com/spf13/cobra"
)

var statePrefix int

func init() {
	rootCmd.AddCommand(stateCmd)

	addSequenceFlags(stateCmd)
	stateCmd.Flags().IntVar(&statePrefix, "prefix", -1, "classify only the first N blocks")
}

// StateReport is the payload of `blockseq state`.
type StateReport struct {
	Ruleset string             `json:"ruleset"`
	Blocks  int                `json:"blocks"`
	State   models.VisualState `json:"state"`
	Caption string             `json:"caption"`
	Image   string             `json:"image"`
	HasArt  bool               `json:"has_art"`
}

var stateCmd = &cobra.Command{
	Use:   "state [block...]",
	Short: "Classify the visual state of a sequence",
	Long: `Classify what the scene looks like after a sequence, or after its first
N blocks with --prefix. The state drives the image shown during replay and
is independent of the evaluated outcome.`,
	Example: `  blockseq state water fire wait
  blockseq state -r dressing --prefix 2 socks shoes bag`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := resolveInput(args)
		if err != nil {
			return err
		}

		service := ruleset.NewService(ruleset.DefaultRegistry, ruleset.WithDefaultRuleset(input.Ruleset))
		n := input.Sequence.Len()
		if statePrefix >= 0 && statePrefix < n {
			n = statePrefix
		}
		state, err := service.ClassifyPrefix(input.Ruleset, input.Sequence, n)
		if err != nil {
			return err
		}

		report := StateReport{
			Ruleset: input.Ruleset,
			Blocks:  n,
			State:   state,
			Caption: stateCaption(input.Ruleset, state),
			Image:   assets.ForState(input.Ruleset, state),
			HasArt:  assets.Has(input.Ruleset, state),
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, report)
		}

		fmt.Printf("State:  %s (%s)\n", formatVisualState(report.Ruleset, report.State), report.State)
		fmt.Printf("Blocks: %d of %d\n", report.Blocks, input.Sequence.Len())
		fmt.Printf("Image:  %s\n", report.Image)
		return nil
	},
}
