package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/opencode-ai/blockseq/internal/assets"
	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/opencode-ai/blockseq/internal/replay"
	"github.com/opencode-ai/blockseq/internal/ruleset"
	"github.com/opencode-ai/blockseq/internal/vocab"
	"github.com/spf13/cobra"
)

var (
	replayAnimate  bool
	replayInterval time.Duration
)

func init() {
	rootCmd.AddCommand(replayCmd)

	addSequenceFlags(replayCmd)
	replayCmd.Flags().BoolVar(&replayAnimate, "animate", false, "print frames one at a time")
	replayCmd.Flags().DurationVar(&replayInterval, "interval", 0, "delay between animated frames (default: replay.interval from config)")
}

var replayCmd = &cobra.Command{
	Use:   "replay [block...]",
	Short: "Show the replay frames of a sequence",
	Long: `Show the step-by-step visual states of a sequence.

The first frame is the empty scene. Each visible block adds one frame;
blocks that do not change the scene (such as distractions) are skipped.`,
	Example: `  blockseq replay water fire wait noodle
  blockseq replay -r dressing --animate socks tv shoes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := resolveInput(args)
		if err != nil {
			return err
		}
		rs, err := ruleset.Lookup(input.Ruleset)
		if err != nil {
			return err
		}
		frames := rs.BuildReplayFrames(input.Sequence)

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, frames)
		}

		if replayAnimate {
			interval := replayInterval
			if interval <= 0 {
				interval = GetConfig().Replay.Interval
			}
			if err := animateFrames(cmd.Context(), os.Stdout, rs, frames, interval); err != nil {
				return err
			}
			outcome := rs.Evaluate(input.Sequence)
			fmt.Printf("%s  %s %s\n", formatOutcome(outcome), outcome.Emoji, outcome.Message)
			return nil
		}

		return writeTable(os.Stdout, []string{"FRAME", "SCANNED", "BLOCK", "STATE", "IMAGE"}, frameRows(rs, frames))
	},
}

func frameRows(rs ruleset.Ruleset, frames []models.ReplayFrame) [][]string {
	v := rs.Vocabulary()
	rows := make([][]string, 0, len(frames))
	for _, frame := range frames {
		rows = append(rows, []string{
			strconv.Itoa(frame.Index),
			strconv.Itoa(frame.SourcePrefixLength),
			lastBlockLabel(v, frame.Snapshot),
			stateCaption(rs.Name(), frame.State),
			assets.ForState(rs.Name(), frame.State),
		})
	}
	return rows
}

func lastBlockLabel(v *vocab.Vocabulary, snapshot models.Sequence) string {
	if snapshot.IsEmpty() {
		return "-"
	}
	return v.Label(snapshot.At(snapshot.Len() - 1))
}

// animateFrames prints one frame per tick until playback ends or ctx is
// cancelled.
func animateFrames(ctx context.Context, out io.Writer, rs ruleset.Ruleset, frames []models.ReplayFrame, interval time.Duration) error {
	player := replay.NewPlayer(frames)
	if player.Len() == 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	v := rs.Vocabulary()
	for {
		frame, _ := player.Current()
		fmt.Fprintf(out, "[%d/%d] %-24s %s\n",
			player.Position()+1, player.Len(),
			lastBlockLabel(v, frame.Snapshot),
			formatVisualState(rs.Name(), frame.State))

		if !player.Advance() {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
