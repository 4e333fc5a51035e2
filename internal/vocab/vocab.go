// Package vocab provides the action vocabulary of each ruleset: the closed
// set of block kinds, their display text, and their flags.
package vocab

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/opencode-ai/blockseq/internal/models"
)

var (
	// ErrUnknownAction is returned when a token names no block in the vocabulary.
	ErrUnknownAction = errors.New("unknown action")
	// ErrInvalidDuration is returned for durations outside the allowed options.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrVocabularyNotFound is returned when no vocabulary has the given name.
	ErrVocabularyNotFound = errors.New("vocabulary not found")
)

// Vocabulary is the static definition of a ruleset's blocks.
type Vocabulary struct {
	Name            string              `yaml:"name"`
	Title           string              `yaml:"title"`
	Description     string              `yaml:"description"`
	DurationOptions []int               `yaml:"duration_options,omitempty"`
	Actions         []Entry             `yaml:"actions"`
	Palette         []models.ActionKind `yaml:"palette"`
	ShufflePalette  bool                `yaml:"shuffle_palette,omitempty"`
	Source          string              `yaml:"-"`
}

// Entry describes one block kind.
type Entry struct {
	Kind           models.ActionKind `yaml:"kind"`
	Text           string            `yaml:"text"`
	Color          string            `yaml:"color,omitempty"`
	Aliases        []string          `yaml:"aliases,omitempty"`
	Timed          bool              `yaml:"timed,omitempty"`
	DefaultSeconds int               `yaml:"default_seconds,omitempty"`
	Distraction    bool              `yaml:"distraction,omitempty"`
	Visible        bool              `yaml:"visible,omitempty"`
}

// Lookup returns the entry for a kind.
func (v *Vocabulary) Lookup(kind models.ActionKind) (Entry, bool) {
	for _, entry := range v.Actions {
		if entry.Kind == kind {
			return entry, true
		}
	}
	return Entry{}, false
}

// Resolve finds an entry by kind or alias. Matching ignores case and treats
// dashes as underscores.
func (v *Vocabulary) Resolve(name string) (Entry, bool) {
	key := normalizeName(name)
	if key == "" {
		return Entry{}, false
	}
	for _, entry := range v.Actions {
		if string(entry.Kind) == key {
			return entry, true
		}
		for _, alias := range entry.Aliases {
			if normalizeName(alias) == key {
				return entry, true
			}
		}
	}
	return Entry{}, false
}

// Kinds returns every kind in declaration order.
func (v *Vocabulary) Kinds() []models.ActionKind {
	kinds := make([]models.ActionKind, len(v.Actions))
	for i, entry := range v.Actions {
		kinds[i] = entry.Kind
	}
	return kinds
}

// IsVisible reports whether actions of this kind change the rendered scene.
func (v *Vocabulary) IsVisible(kind models.ActionKind) bool {
	entry, ok := v.Lookup(kind)
	return ok && entry.Visible
}

// New returns a fresh action of the given kind with vocabulary flags applied.
func (v *Vocabulary) New(kind models.ActionKind) (models.Action, error) {
	entry, ok := v.Lookup(kind)
	if !ok {
		return models.Action{}, fmt.Errorf("%w %q in %s", ErrUnknownAction, kind, v.Name)
	}
	return entry.action(), nil
}

// MustNew is New for kinds known to exist; it panics otherwise.
func (v *Vocabulary) MustNew(kind models.ActionKind) models.Action {
	a, err := v.New(kind)
	if err != nil {
		panic(err)
	}
	return a
}

// Normalize checks an action against the vocabulary and applies its flags.
// Timed actions with a missing or non-positive duration get the entry
// default.
func (v *Vocabulary) Normalize(a models.Action) (models.Action, error) {
	entry, ok := v.Resolve(string(a.Kind))
	if !ok {
		return models.Action{}, fmt.Errorf("%w %q in %s", ErrUnknownAction, a.Kind, v.Name)
	}

	out := entry.action()
	if a.DurationSeconds != 0 && !entry.Timed {
		return models.Action{}, fmt.Errorf("%w: %s does not take a duration", ErrInvalidDuration, entry.Kind)
	}
	if a.DurationSeconds > 0 {
		if !v.ValidDuration(a.DurationSeconds) {
			return models.Action{}, fmt.Errorf("%w: %ds for %s (allowed: %s)", ErrInvalidDuration, a.DurationSeconds, entry.Kind, v.durationOptionsText())
		}
		out.DurationSeconds = a.DurationSeconds
	}
	return out, nil
}

// ParseToken converts a token such as "water", "wait:90" or "wait=1m30s"
// into an action.
func (v *Vocabulary) ParseToken(token string) (models.Action, error) {
	token = strings.TrimSpace(token)
	name, durationText, hasDuration := cutDuration(token)

	a := models.Action{Kind: models.ActionKind(name)}
	if hasDuration {
		seconds, err := parseSeconds(durationText)
		if err != nil {
			return models.Action{}, fmt.Errorf("%w %q: %v", ErrInvalidDuration, token, err)
		}
		a.DurationSeconds = seconds
	}
	return v.Normalize(a)
}

// ParseTokens converts tokens into a sequence. Tokens may also be comma
// separated.
func (v *Vocabulary) ParseTokens(tokens []string) (models.Sequence, error) {
	actions := make([]models.Action, 0, len(tokens))
	for _, raw := range tokens {
		for _, token := range strings.Split(raw, ",") {
			if strings.TrimSpace(token) == "" {
				continue
			}
			a, err := v.ParseToken(token)
			if err != nil {
				return models.Sequence{}, err
			}
			actions = append(actions, a)
		}
	}
	return models.NewSequence(actions...), nil
}

// ValidDuration reports whether seconds is an allowed duration. Without
// declared options any positive duration is allowed.
func (v *Vocabulary) ValidDuration(seconds int) bool {
	if seconds <= 0 {
		return false
	}
	if len(v.DurationOptions) == 0 {
		return true
	}
	for _, option := range v.DurationOptions {
		if option == seconds {
			return true
		}
	}
	return false
}

// NextDuration returns the option after seconds, wrapping around.
func (v *Vocabulary) NextDuration(seconds int) int {
	if len(v.DurationOptions) == 0 {
		return seconds
	}
	for i, option := range v.DurationOptions {
		if option > seconds {
			return v.DurationOptions[i]
		}
	}
	return v.DurationOptions[0]
}

// PrevDuration returns the option before seconds, wrapping around.
func (v *Vocabulary) PrevDuration(seconds int) int {
	if len(v.DurationOptions) == 0 {
		return seconds
	}
	for i := len(v.DurationOptions) - 1; i >= 0; i-- {
		if v.DurationOptions[i] < seconds {
			return v.DurationOptions[i]
		}
	}
	return v.DurationOptions[len(v.DurationOptions)-1]
}

// Label returns the display text of an action.
func (v *Vocabulary) Label(a models.Action) string {
	entry, ok := v.Lookup(a.Kind)
	if !ok {
		return string(a.Kind)
	}
	if entry.Timed {
		return FormatWaitText(a.Seconds())
	}
	return entry.Text
}

// PaletteActions returns fresh actions for the initial palette.
func (v *Vocabulary) PaletteActions() []models.Action {
	actions := make([]models.Action, 0, len(v.Palette))
	for _, kind := range v.Palette {
		if entry, ok := v.Lookup(kind); ok {
			actions = append(actions, entry.action())
		}
	}
	return actions
}

// FormatWaitText renders a wait duration, e.g. "Wait 1m 30s".
func FormatWaitText(seconds int) string {
	minutes := seconds / 60
	secs := seconds % 60
	switch {
	case minutes > 0 && secs > 0:
		return fmt.Sprintf("Wait %dm %ds", minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("Wait %dm", minutes)
	default:
		return fmt.Sprintf("Wait %ds", secs)
	}
}

func (e Entry) action() models.Action {
	a := models.Action{Kind: e.Kind, Distraction: e.Distraction}
	if e.Timed && e.DefaultSeconds > 0 {
		a.DurationSeconds = e.DefaultSeconds
	}
	return a
}

func (v *Vocabulary) durationOptionsText() string {
	parts := make([]string, len(v.DurationOptions))
	for i, option := range v.DurationOptions {
		parts[i] = strconv.Itoa(option)
	}
	return strings.Join(parts, ", ")
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, "-", "_")
}

func cutDuration(token string) (name, duration string, ok bool) {
	if i := strings.IndexAny(token, ":="); i >= 0 {
		return strings.TrimSpace(token[:i]), strings.TrimSpace(token[i+1:]), true
	}
	return token, "", false
}

func parseSeconds(text string) (int, error) {
	if text == "" {
		return 0, fmt.Errorf("duration is empty")
	}
	if seconds, err := strconv.Atoi(text); err == nil {
		return seconds, nil
	}
	d, err := time.ParseDuration(text)
	if err != nil {
		return 0, err
	}
	if d%time.Second != 0 {
		return 0, fmt.Errorf("duration must be whole seconds")
	}
	return int(d / time.Second), nil
}
