// Package sequences loads named block sequences from YAML files. Files are
// read-only input for the CLI and TUI; sequences are never written back.
package sequences

import (
	"errors"
	"fmt"

	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/opencode-ai/blockseq/internal/vocab"
)

// Sequence file errors.
var (
	ErrSequenceNameRequired = errors.New("sequence name is required")
	ErrRulesetRequired      = errors.New("sequence ruleset is required")
	ErrSequenceNotFound     = errors.New("sequence not found")
)

// File is a named sequence of blocks for one ruleset.
type File struct {
	Name        string          `yaml:"name"`
	Ruleset     string          `yaml:"ruleset"`
	Description string          `yaml:"description,omitempty"`
	Actions     []models.Action `yaml:"actions"`
	Tags        []string        `yaml:"tags,omitempty"`
	Source      string          `yaml:"-"` // file path or "builtin"
}

// Sequence returns the actions as an immutable sequence.
func (f *File) Sequence() models.Sequence {
	return models.NewSequence(f.Actions...)
}

// Vocabulary returns the vocabulary of the file's ruleset.
func (f *File) Vocabulary() (*vocab.Vocabulary, error) {
	v, err := vocab.Builtin(f.Ruleset)
	if err != nil {
		return nil, fmt.Errorf("sequence %q: %w", f.Name, err)
	}
	return v, nil
}

// FromSequence wraps an in-memory sequence so it can be rendered or saved
// by the caller.
func FromSequence(name, ruleset string, seq models.Sequence) *File {
	return &File{
		Name:    name,
		Ruleset: ruleset,
		Actions: seq.Actions(),
	}
}
