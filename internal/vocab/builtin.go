package vocab

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/blockseq/internal/models"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

var (
	builtinOnce  sync.Once
	builtinVocab map[string]*Vocabulary
	builtinErr   error
)

// LoadBuiltinVocabularies returns the vocabularies bundled with blockseq,
// sorted by name.
func LoadBuiltinVocabularies() ([]*Vocabulary, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin vocabularies: %w", err)
	}

	vocabularies := make([]*Vocabulary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := "builtin/" + entry.Name()
		data, err := builtinFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read builtin vocabulary %s: %w", entry.Name(), err)
		}
		v, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin vocabulary %s: %w", entry.Name(), err)
		}
		v.Source = "builtin"
		vocabularies = append(vocabularies, v)
	}

	sort.Slice(vocabularies, func(i, j int) bool {
		return vocabularies[i].Name < vocabularies[j].Name
	})

	return vocabularies, nil
}

// Builtin returns the bundled vocabulary with the given name. Results are
// parsed once and shared; callers must not modify them.
func Builtin(name string) (*Vocabulary, error) {
	builtinOnce.Do(func() {
		var list []*Vocabulary
		list, builtinErr = LoadBuiltinVocabularies()
		builtinVocab = make(map[string]*Vocabulary, len(list))
		for _, v := range list {
			builtinVocab[v.Name] = v
		}
	})
	if builtinErr != nil {
		return nil, builtinErr
	}
	v, ok := builtinVocab[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVocabularyNotFound, name)
	}
	return v, nil
}

// MustBuiltin is Builtin for names compiled into the binary.
func MustBuiltin(name string) *Vocabulary {
	v, err := Builtin(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse decodes and validates a vocabulary definition.
func Parse(data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}

	v.Name = strings.ToLower(strings.TrimSpace(v.Name))
	if v.Name == "" {
		return nil, fmt.Errorf("vocabulary name is required")
	}
	v.Title = strings.TrimSpace(v.Title)
	v.Description = strings.TrimSpace(v.Description)

	if len(v.Actions) == 0 {
		return nil, fmt.Errorf("vocabulary actions are required")
	}

	for i, option := range v.DurationOptions {
		if option <= 0 {
			return nil, fmt.Errorf("duration option %d must be positive", option)
		}
		if i > 0 && option <= v.DurationOptions[i-1] {
			return nil, fmt.Errorf("duration options must be ascending")
		}
	}

	seen := make(map[models.ActionKind]struct{}, len(v.Actions))
	for i := range v.Actions {
		entry := &v.Actions[i]
		entry.Kind = models.ActionKind(normalizeName(string(entry.Kind)))
		entry.Text = strings.TrimSpace(entry.Text)
		if entry.Kind == "" {
			return nil, fmt.Errorf("action %d: kind is required", i+1)
		}
		if _, exists := seen[entry.Kind]; exists {
			return nil, fmt.Errorf("duplicate action kind %q", entry.Kind)
		}
		seen[entry.Kind] = struct{}{}
		if entry.Text == "" {
			entry.Text = string(entry.Kind)
		}
		if !entry.Timed && entry.DefaultSeconds != 0 {
			return nil, fmt.Errorf("action %q: default_seconds requires timed", entry.Kind)
		}
		if entry.Timed && entry.DefaultSeconds == 0 {
			entry.DefaultSeconds = models.DefaultDurationSeconds
		}
		if entry.Timed && !v.ValidDuration(entry.DefaultSeconds) {
			return nil, fmt.Errorf("action %q: default_seconds %d is not an allowed duration", entry.Kind, entry.DefaultSeconds)
		}
	}

	for i, kind := range v.Palette {
		kind = models.ActionKind(normalizeName(string(kind)))
		if _, ok := seen[kind]; !ok {
			return nil, fmt.Errorf("palette entry %d: %w %q", i+1, ErrUnknownAction, kind)
		}
		v.Palette[i] = kind
	}

	return &v, nil
}
