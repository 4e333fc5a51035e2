package vocab

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/blockseq/internal/models"
)

func TestLoadBuiltinVocabularies(t *testing.T) {
	vocabularies, err := LoadBuiltinVocabularies()
	if err != nil {
		t.Fatalf("LoadBuiltinVocabularies: %v", err)
	}
	if len(vocabularies) != 2 {
		t.Fatalf("expected 2 builtin vocabularies, got %d", len(vocabularies))
	}
	if vocabularies[0].Name != "cooking" || vocabularies[1].Name != "dressing" {
		t.Fatalf("unexpected order: %q, %q", vocabularies[0].Name, vocabularies[1].Name)
	}
	for _, v := range vocabularies {
		if v.Source != "builtin" {
			t.Fatalf("expected builtin source, got %q", v.Source)
		}
		if len(v.Palette) == 0 {
			t.Fatalf("%s: palette is empty", v.Name)
		}
	}
}

func TestBuiltinUnknown(t *testing.T) {
	_, err := Builtin("juggling")
	if !errors.Is(err, ErrVocabularyNotFound) {
		t.Fatalf("expected ErrVocabularyNotFound, got %v", err)
	}
}

func TestParseToken(t *testing.T) {
	cooking := MustBuiltin("cooking")
	dressing := MustBuiltin("dressing")

	tests := []struct {
		name    string
		v       *Vocabulary
		token   string
		want    models.Action
		wantErr error
	}{
		{"kind", cooking, "add_water", models.Action{Kind: "add_water"}, nil},
		{"alias", cooking, "Fire", models.Action{Kind: "light_fire"}, nil},
		{"dashes", cooking, "fire-off", models.Action{Kind: "extinguish_fire"}, nil},
		{"default wait", cooking, "wait", models.Action{Kind: "wait", DurationSeconds: 30}, nil},
		{"seconds", cooking, "wait:90", models.Action{Kind: "wait", DurationSeconds: 90}, nil},
		{"go duration", cooking, "wait=2m30s", models.Action{Kind: "wait", DurationSeconds: 150}, nil},
		{"zero wait defaults", cooking, "wait:0", models.Action{Kind: "wait", DurationSeconds: 30}, nil},
		{"negative wait defaults", cooking, "wait:-30", models.Action{Kind: "wait", DurationSeconds: 30}, nil},
		{"negative go duration defaults", cooking, "wait=-1m", models.Action{Kind: "wait", DurationSeconds: 30}, nil},
		{"distraction flag", dressing, "tv", models.Action{Kind: "watch_tv", Distraction: true}, nil},
		{"unknown", cooking, "stir", models.Action{}, ErrUnknownAction},
		{"off grid", cooking, "wait:45", models.Action{}, ErrInvalidDuration},
		{"untimed duration", cooking, "water:30", models.Action{}, ErrInvalidDuration},
		{"garbage duration", cooking, "wait:soon", models.Action{}, ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.ParseToken(tt.token)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseToken(%q) error = %v, want %v", tt.token, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseToken(%q): %v", tt.token, err)
			}
			if got != tt.want {
				t.Fatalf("ParseToken(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseTokensCommaSeparated(t *testing.T) {
	seq, err := MustBuiltin("cooking").ParseTokens([]string{"water,fire", "wait:60", " noodle , soup"})
	require.NoError(t, err)
	require.Equal(t, []string{"add_water", "light_fire", "wait:60", "add_noodle", "add_soup"}, seq.Tokens())
}

func TestDurationCycling(t *testing.T) {
	cooking := MustBuiltin("cooking")

	require.Equal(t, 60, cooking.NextDuration(30))
	require.Equal(t, 30, cooking.NextDuration(240))
	require.Equal(t, 240, cooking.PrevDuration(30))
	require.Equal(t, 150, cooking.PrevDuration(180))
	require.True(t, cooking.ValidDuration(210))
	require.False(t, cooking.ValidDuration(0))
}

func TestFormatWaitText(t *testing.T) {
	tests := map[int]string{
		30:  "Wait 30s",
		60:  "Wait 1m",
		90:  "Wait 1m 30s",
		240: "Wait 4m",
	}
	for seconds, want := range tests {
		if got := FormatWaitText(seconds); got != want {
			t.Errorf("FormatWaitText(%d) = %q, want %q", seconds, got, want)
		}
	}
}

func TestPaletteActions(t *testing.T) {
	palette := MustBuiltin("cooking").PaletteActions()
	require.Len(t, palette, 7)
	require.Equal(t, models.ActionKind("wait"), palette[2].Kind)
	require.Equal(t, 30, palette[2].DurationSeconds)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing name", "actions: [{kind: a}]"},
		{"no actions", "name: x"},
		{"duplicate kind", "name: x\nactions: [{kind: a}, {kind: A}]"},
		{"unknown palette", "name: x\nactions: [{kind: a}]\npalette: [b]"},
		{"descending options", "name: x\nduration_options: [60, 30]\nactions: [{kind: a}]"},
		{"default off grid", "name: x\nduration_options: [30]\nactions: [{kind: w, timed: true, default_seconds: 45}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
