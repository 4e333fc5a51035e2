// Package assets maps visual states and outcome variants to image paths.
// Lookups never fail: unknown keys resolve to the ruleset fallback.
package assets

import (
	_ "embed"
	"fmt"
	"path"
	"sort"
	"sync"

	"github.com/opencode-ai/blockseq/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed assets.yaml
var builtinTable []byte

// DefaultAsset is returned for rulesets with no table at all.
const DefaultAsset = "images/default.png"

// Table holds the asset files of one ruleset.
type Table struct {
	Base     string            `yaml:"base"`
	Fallback string            `yaml:"fallback"`
	States   map[string]string `yaml:"states"`
	Outcomes map[string]string `yaml:"outcomes,omitempty"`
}

var (
	loadOnce sync.Once
	tables   map[string]Table
	loadErr  error
)

// Load parses an asset table file keyed by ruleset.
func Load(data []byte) (map[string]Table, error) {
	var parsed map[string]Table
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse asset table: %w", err)
	}
	for name, table := range parsed {
		if table.Fallback == "" {
			return nil, fmt.Errorf("asset table %s: fallback is required", name)
		}
	}
	return parsed, nil
}

// Tables returns the built-in asset tables.
func Tables() (map[string]Table, error) {
	loadOnce.Do(func() {
		tables, loadErr = Load(builtinTable)
	})
	return tables, loadErr
}

func table(ruleset string) (Table, bool) {
	all, err := Tables()
	if err != nil {
		return Table{}, false
	}
	t, ok := all[ruleset]
	return t, ok
}

func (t Table) resolve(file string) string {
	if file == "" {
		file = t.Fallback
	}
	return path.Join(t.Base, file)
}

// Fallback returns the default asset of a ruleset.
func Fallback(ruleset string) string {
	t, ok := table(ruleset)
	if !ok {
		return DefaultAsset
	}
	return t.resolve("")
}

// ForState returns the image for a visual state.
func ForState(ruleset string, state models.VisualState) string {
	t, ok := table(ruleset)
	if !ok {
		return DefaultAsset
	}
	return t.resolve(t.States[string(state)])
}

// ForOutcome returns the result image for an outcome. Rulesets without
// per-variant images show the final state instead.
func ForOutcome(ruleset string, variant models.Variant, final models.VisualState) string {
	t, ok := table(ruleset)
	if !ok {
		return DefaultAsset
	}
	if file, ok := t.Outcomes[string(variant)]; ok {
		return t.resolve(file)
	}
	return t.resolve(t.States[string(final)])
}

// Has reports whether a state has its own image.
func Has(ruleset string, state models.VisualState) bool {
	t, ok := table(ruleset)
	if !ok {
		return false
	}
	_, ok = t.States[string(state)]
	return ok
}

// StateKeys lists the states with images, sorted.
func StateKeys(ruleset string) []string {
	t, _ := table(ruleset)
	keys := make([]string, 0, len(t.States))
	for key := range t.States {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
