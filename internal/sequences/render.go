package sequences

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/opencode-ai/blockseq/internal/vocab"
)

// Step is one rendered line of a sequence listing.
type Step struct {
	Number int
	Kind   string
	Label  string
}

// Listing is the template data for a rendered sequence.
type Listing struct {
	Name        string
	Ruleset     string
	Description string
	Source      string
	Steps       []Step
}

// DefaultTemplate renders a numbered step list.
const DefaultTemplate = `{{.Name}} ({{.Ruleset}}){{if .Source}} [{{.Source}}]{{end}}
{{- if .Description}}
{{.Description}}{{end}}
{{range .Steps}}
{{pad .Number}}. {{.Label}}{{end}}
{{- if not .Steps}}
(empty){{end}}
`

var funcs = template.FuncMap{
	"pad":   func(n int) string { return fmt.Sprintf("%2d", n) },
	"upper": strings.ToUpper,
}

// BuildListing resolves display labels for every action.
func BuildListing(file *File, v *vocab.Vocabulary) (*Listing, error) {
	if file == nil {
		return nil, fmt.Errorf("sequence is required")
	}
	if v == nil {
		var err error
		if v, err = file.Vocabulary(); err != nil {
			return nil, err
		}
	}

	listing := &Listing{
		Name:        file.Name,
		Ruleset:     file.Ruleset,
		Description: file.Description,
		Source:      file.Source,
		Steps:       make([]Step, 0, len(file.Actions)),
	}
	for i, action := range file.Actions {
		listing.Steps = append(listing.Steps, Step{
			Number: i + 1,
			Kind:   string(action.Kind),
			Label:  v.Label(action),
		})
	}
	return listing, nil
}

// Render writes a sequence listing using tmpl, or DefaultTemplate when tmpl
// is empty.
func Render(w io.Writer, file *File, tmpl string) error {
	listing, err := BuildListing(file, nil)
	if err != nil {
		return err
	}
	if strings.TrimSpace(tmpl) == "" {
		tmpl = DefaultTemplate
	}

	t, err := template.New(file.Name).Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}
	if err := t.Execute(w, listing); err != nil {
		return fmt.Errorf("render sequence %q: %w", file.Name, err)
	}
	return nil
}
