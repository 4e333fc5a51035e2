// Package drills provides the debugging exercises: prewritten buggy
// sequences that the learner has to fix. Drills are evaluated exactly like
// any other sequence.
package drills

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"

	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/opencode-ai/blockseq/internal/vocab"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Drill errors.
var (
	ErrNoDrills      = errors.New("no drills for ruleset")
	ErrDrillNotFound = errors.New("drill not found")
)

// Pattern is one buggy sequence.
type Pattern struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Expect      models.Variant  `yaml:"expect"`
	Actions     []models.Action `yaml:"actions"`
	Ruleset     string          `yaml:"-"`
}

// Sequence returns a fresh sequence for the pattern.
func (p Pattern) Sequence() models.Sequence {
	return models.NewSequence(p.Actions...)
}

type patternFile struct {
	Ruleset  string    `yaml:"ruleset"`
	Patterns []Pattern `yaml:"patterns"`
}

var (
	builtinOnce sync.Once
	builtinSets map[string][]Pattern
	builtinErr  error
)

// LoadBuiltin returns the bundled drills keyed by ruleset.
func LoadBuiltin() (map[string][]Pattern, error) {
	builtinOnce.Do(func() {
		builtinSets, builtinErr = loadBuiltin()
	})
	return builtinSets, builtinErr
}

func loadBuiltin() (map[string][]Pattern, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin drills: %w", err)
	}

	sets := make(map[string][]Pattern, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin drills %s: %w", entry.Name(), err)
		}
		ruleset, patterns, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin drills %s: %w", entry.Name(), err)
		}
		sets[ruleset] = append(sets[ruleset], patterns...)
	}
	return sets, nil
}

// Parse decodes a drill file and normalizes its actions against the
// ruleset vocabulary.
func Parse(data []byte) (string, []Pattern, error) {
	var file patternFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return "", nil, err
	}

	ruleset := strings.ToLower(strings.TrimSpace(file.Ruleset))
	v, err := vocab.Builtin(ruleset)
	if err != nil {
		return "", nil, err
	}

	seen := make(map[string]struct{}, len(file.Patterns))
	for i := range file.Patterns {
		p := &file.Patterns[i]
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			return "", nil, fmt.Errorf("drill %d: name is required", i+1)
		}
		if _, exists := seen[p.Name]; exists {
			return "", nil, fmt.Errorf("duplicate drill %q", p.Name)
		}
		seen[p.Name] = struct{}{}
		p.Ruleset = ruleset

		for j, action := range p.Actions {
			normalized, err := v.Normalize(action)
			if err != nil {
				return "", nil, fmt.Errorf("drill %q action %d: %w", p.Name, j+1, err)
			}
			p.Actions[j] = normalized
		}
	}

	return ruleset, file.Patterns, nil
}

// ForRuleset returns the drills of a ruleset sorted by name.
func ForRuleset(ruleset string) ([]Pattern, error) {
	sets, err := LoadBuiltin()
	if err != nil {
		return nil, err
	}
	patterns := sets[ruleset]
	if len(patterns) == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoDrills, ruleset)
	}

	sorted := make([]Pattern, len(patterns))
	copy(sorted, patterns)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return sorted, nil
}

// Get returns a drill by name.
func Get(ruleset, name string) (Pattern, error) {
	patterns, err := ForRuleset(ruleset)
	if err != nil {
		return Pattern{}, err
	}
	for _, p := range patterns {
		if p.Name == name {
			return p, nil
		}
	}
	return Pattern{}, fmt.Errorf("%w: %s/%s", ErrDrillNotFound, ruleset, name)
}

// Picker chooses drills at random. It is not safe for concurrent use.
type Picker struct {
	rng *rand.Rand
}

// NewPicker returns a picker with a fixed seed, so the same seed always
// yields the same drills.
func NewPicker(seed uint64) *Picker {
	return &Picker{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandomPicker returns a picker seeded from the runtime source.
func NewRandomPicker() *Picker {
	return NewPicker(rand.Uint64())
}

// Pick returns a random drill for the ruleset.
func (p *Picker) Pick(ruleset string) (Pattern, error) {
	patterns, err := ForRuleset(ruleset)
	if err != nil {
		return Pattern{}, err
	}
	return patterns[p.rng.IntN(len(patterns))], nil
}
