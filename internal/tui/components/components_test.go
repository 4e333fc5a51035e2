package components

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/blockseq/internal/cooking"
	"github.com/opencode-ai/blockseq/internal/dressing"
	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/opencode-ai/blockseq/internal/tui/styles"
)

func TestBlockPaletteTakeAndReturn(t *testing.T) {
	v := cooking.Vocabulary()
	p := NewBlockPalette(v.PaletteActions())
	require.Equal(t, 7, p.Len())

	p.Move(2)
	taken, ok := p.Take()
	require.True(t, ok)
	require.Equal(t, cooking.Wait, taken.Kind)
	require.Equal(t, 6, p.Len())

	// The second wait block is still available.
	selected, ok := p.Selected()
	require.True(t, ok)
	require.Equal(t, cooking.Wait, selected.Kind)

	p.Return(taken)
	require.Equal(t, 7, p.Len())
	require.Equal(t, cooking.Wait, p.Items[6].Kind)
}

func TestBlockPaletteTakeDoesNotAliasSource(t *testing.T) {
	source := cooking.Vocabulary().PaletteActions()
	p := NewBlockPalette(source)

	_, ok := p.Take()
	require.True(t, ok)
	require.Equal(t, cooking.AddWater, source[0].Kind)
	require.Equal(t, cooking.LightFire, source[1].Kind)
}

func TestBlockPaletteEmpty(t *testing.T) {
	p := NewBlockPalette(nil)
	p.Move(1)
	if _, ok := p.Take(); ok {
		t.Fatal("expected nothing to take from an empty palette")
	}
	if p.Index != 0 {
		t.Fatalf("Index = %d, want 0", p.Index)
	}
}

func TestBlockPaletteMoveWraps(t *testing.T) {
	p := NewBlockPalette(dressing.Vocabulary().PaletteActions())

	p.Move(-1)
	if p.Index != p.Len()-1 {
		t.Fatalf("Move(-1) from start = %d, want %d", p.Index, p.Len()-1)
	}
	p.Move(1)
	if p.Index != 0 {
		t.Fatalf("Move(1) from end = %d, want 0", p.Index)
	}
}

func TestBlockPaletteTakeLastClampsIndex(t *testing.T) {
	p := NewBlockPalette(dressing.Vocabulary().PaletteActions())
	p.Move(-1)
	_, ok := p.Take()
	require.True(t, ok)
	require.Equal(t, p.Len()-1, p.Index)
}

func TestBlockPaletteShuffleKeepsBlocks(t *testing.T) {
	items := dressing.Vocabulary().PaletteActions()
	p := NewBlockPalette(items)
	rng := rand.New(rand.NewPCG(1, 2))

	p.Shuffle(rng.Shuffle)

	require.ElementsMatch(t, items, p.Items)
	require.Equal(t, 0, p.Index)
}

func TestRenderSequence(t *testing.T) {
	styleSet := styles.DefaultStyles()
	v := cooking.Vocabulary()

	empty := strings.Join(RenderSequence(styleSet, v, models.NewSequence(), 0, true), "\n")
	if !strings.Contains(empty, "No blocks yet") {
		t.Errorf("expected empty hint, got: %s", empty)
	}

	seq := models.NewSequence(
		v.MustNew(cooking.AddWater),
		v.MustNew(cooking.Wait).WithDuration(90),
	)
	out := strings.Join(RenderSequence(styleSet, v, seq, 1, true), "\n")
	for _, want := range []string{"SEQUENCE (2)", "1.", "Fill the pot with water", "Wait 1m 30s", ">"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}
}

func TestRenderOutcomeCard(t *testing.T) {
	styleSet := styles.DefaultStyles()

	outcome := dressing.Evaluate(models.NewSequence(models.NewAction(dressing.PutOnShoes)))
	out := RenderOutcomeCard(styleSet, OutcomeCard{
		Outcome:      outcome,
		State:        "shoes",
		StateCaption: "shoes",
		Image:        "images/dressing/3.shoes.png",
		Drill:        "no-socks",
	})

	require.Contains(t, out, outcome.Message)
	require.Contains(t, out, "Drill: no-socks")
	require.Contains(t, out, "Image: images/dressing/3.shoes.png")
	for _, violation := range outcome.Violations {
		require.Contains(t, out, truncate(violation, maxDescriptionLength))
	}
}

func TestRenderOutcomeBadge(t *testing.T) {
	styleSet := styles.DefaultStyles()

	tests := []struct {
		name    string
		outcome models.Outcome
		want    string
	}{
		{"success", models.Outcome{Success: true, Variant: cooking.VariantPerfect}, "OK Perfect"},
		{"timing", models.Outcome{Variant: cooking.VariantUndercooked, Timing: &models.CookTiming{CookedSeconds: 150, RemainingSeconds: 30}}, "~ Undercooked"},
		{"failure", models.Outcome{Variant: cooking.VariantBurned}, "ERR Burned"},
		{"unknown", models.Outcome{}, "- Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderOutcomeBadge(styleSet, tt.outcome); !strings.Contains(got, tt.want) {
				t.Errorf("RenderOutcomeBadge() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderStateBadgeFallsBackToState(t *testing.T) {
	styleSet := styles.DefaultStyles()
	if got := RenderStateBadge(styleSet, "boiling", ""); !strings.Contains(got, "Boiling") {
		t.Errorf("RenderStateBadge() = %q, want Boiling", got)
	}
	if got := RenderStateBadge(styleSet, "bag_socks", "bag + socks"); !strings.Contains(got, "bag + socks") {
		t.Errorf("RenderStateBadge() = %q, want caption", got)
	}
}

func TestEditorQuickActions(t *testing.T) {
	styleSet := styles.DefaultStyles()

	palette := RenderQuickActionBar(styleSet, EditorQuickActions(EditorContext{PaletteFocused: true, SequenceEmpty: true}))
	if !strings.Contains(palette, "Add") {
		t.Errorf("expected Add in palette actions, got: %s", palette)
	}
	if strings.Contains(palette, "Clear") {
		t.Errorf("did not expect Clear for an empty sequence, got: %s", palette)
	}

	sequence := RenderQuickActionBar(styleSet, EditorQuickActions(EditorContext{TimedSelected: true}))
	for _, want := range []string{"Remove", "Move", "Duration", "Clear"} {
		if !strings.Contains(sequence, want) {
			t.Errorf("expected %q in sequence actions, got: %s", want, sequence)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"abc", 2, "ab"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
