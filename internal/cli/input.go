package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/opencode-ai/blockseq/internal/ruleset"
	"github.com/opencode-ai/blockseq/internal/sequences"
	"github.com/spf13/cobra"
)

var sequenceRef string

// sequenceInput is a sequence resolved from arguments or a sequence file.
type sequenceInput struct {
	Ruleset  string
	Name     string
	Sequence models.Sequence
	Source   string
}

func addSequenceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&sequenceRef, "sequence", "s", "", "sequence name or path to a sequence YAML file")
}

// resolveInput builds the sequence to evaluate from --sequence or from
// block tokens such as "water fire wait:60 noodle".
func resolveInput(args []string) (*sequenceInput, error) {
	if sequenceRef != "" {
		if len(args) > 0 {
			return nil, errors.New("use either --sequence or block arguments, not both")
		}
		file, err := sequences.Find(sequenceRef, projectDir(), GetConfig().Sequences.Dir)
		if err != nil {
			return nil, err
		}
		if rulesetName != "" && rulesetName != file.Ruleset {
			return nil, fmt.Errorf("sequence %q uses ruleset %s, not %s", file.Name, file.Ruleset, rulesetName)
		}
		if _, err := ruleset.Lookup(file.Ruleset); err != nil {
			return nil, fmt.Errorf("sequence %q: %w", file.Name, err)
		}
		return &sequenceInput{
			Ruleset:  file.Ruleset,
			Name:     file.Name,
			Sequence: file.Sequence(),
			Source:   "file:" + file.Name,
		}, nil
	}

	rs, err := ruleset.Lookup(selectedRuleset())
	if err != nil {
		return nil, err
	}
	seq, err := rs.Vocabulary().ParseTokens(args)
	if err != nil {
		return nil, err
	}
	return &sequenceInput{
		Ruleset:  rs.Name(),
		Sequence: seq,
		Source:   "cli",
	}, nil
}

func projectDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return dir
}
