// Package ruleset defines the contract every ruleset implements, a registry
// of the available rulesets, and the service that runs evaluations.
package ruleset

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/opencode-ai/blockseq/internal/cooking"
	"github.com/opencode-ai/blockseq/internal/dressing"
	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/opencode-ai/blockseq/internal/vocab"
)

// Registry errors.
var (
	ErrUnknownRuleset    = errors.New("unknown ruleset")
	ErrRulesetRegistered = errors.New("ruleset already registered")
)

// Ruleset evaluates sequences built from one vocabulary. Implementations
// are pure: no I/O, no shared mutable state.
type Ruleset interface {
	// Name is the registry key, e.g. "cooking".
	Name() string

	// Vocabulary returns the static block definitions.
	Vocabulary() *vocab.Vocabulary

	// Evaluate maps any sequence to exactly one outcome.
	Evaluate(seq models.Sequence) models.Outcome

	// ClassifyState returns the visual state after a prefix.
	ClassifyState(prefix models.Sequence) models.VisualState

	// BuildReplayFrames returns the playback frames of a finalized sequence.
	BuildReplayFrames(seq models.Sequence) []models.ReplayFrame
}

// Registry manages registered rulesets.
type Registry struct {
	mu       sync.RWMutex
	rulesets map[string]Ruleset
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		rulesets: make(map[string]Ruleset),
	}
}

// Register adds a ruleset.
// Returns an error if a ruleset with the same name is already registered.
func (r *Registry) Register(rs Ruleset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := rs.Name()
	if _, exists := r.rulesets[name]; exists {
		return fmt.Errorf("%w: %q", ErrRulesetRegistered, name)
	}

	r.rulesets[name] = rs
	return nil
}

// MustRegister adds a ruleset, panicking on error.
func (r *Registry) MustRegister(rs Ruleset) {
	if err := r.Register(rs); err != nil {
		panic(err)
	}
}

// Get retrieves a ruleset by name.
// Returns nil if the ruleset is not found.
func (r *Registry) Get(name string) Ruleset {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.rulesets[name]
}

// Lookup retrieves a ruleset by name or returns ErrUnknownRuleset.
func (r *Registry) Lookup(name string) (Ruleset, error) {
	if rs := r.Get(name); rs != nil {
		return rs, nil
	}
	return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownRuleset, name, r.Names())
}

// List returns all registered rulesets sorted by name.
func (r *Registry) List() []Ruleset {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rulesets := make([]Ruleset, 0, len(r.rulesets))
	for _, rs := range r.rulesets {
		rulesets = append(rulesets, rs)
	}
	sort.Slice(rulesets, func(i, j int) bool {
		return rulesets[i].Name() < rulesets[j].Name()
	})
	return rulesets
}

// Names returns the sorted names of all registered rulesets.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.rulesets))
	for name := range r.rulesets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unregister removes a ruleset.
// Returns true if the ruleset was removed, false if it wasn't found.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rulesets[name]; exists {
		delete(r.rulesets, name)
		return true
	}
	return false
}

// DefaultRegistry holds the built-in cooking and dressing rulesets.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(cooking.New())
	r.MustRegister(dressing.New())
	return r
}

// Get retrieves a ruleset from the default registry by name.
func Get(name string) Ruleset {
	return DefaultRegistry.Get(name)
}

// Lookup retrieves a ruleset from the default registry or fails.
func Lookup(name string) (Ruleset, error) {
	return DefaultRegistry.Lookup(name)
}

// List returns all rulesets in the default registry.
func List() []Ruleset {
	return DefaultRegistry.List()
}

// Names returns the names of all rulesets in the default registry.
func Names() []string {
	return DefaultRegistry.Names()
}
