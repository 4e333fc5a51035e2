// Package components provides reusable TUI components.
package components

import (
	"fmt"

	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/opencode-ai/blockseq/internal/tui/styles"
	"github.com/opencode-ai/blockseq/internal/vocab"
)

// BlockPalette holds the blocks that can still be added to the sequence.
// Taking a block removes it; returning a block puts it back at the end.
type BlockPalette struct {
	Items []models.Action
	Index int
}

// NewBlockPalette creates a palette with the given blocks.
func NewBlockPalette(items []models.Action) *BlockPalette {
	p := &BlockPalette{}
	p.Reset(items)
	return p
}

// Reset replaces the palette contents and selects the first block.
func (p *BlockPalette) Reset(items []models.Action) {
	p.Items = append([]models.Action(nil), items...)
	p.Index = 0
}

// Len returns the number of blocks left.
func (p *BlockPalette) Len() int {
	return len(p.Items)
}

// Move shifts the selection, wrapping at both ends.
func (p *BlockPalette) Move(delta int) {
	if len(p.Items) == 0 {
		p.Index = 0
		return
	}
	if delta == 0 {
		return
	}
	idx := p.Index
	if idx < 0 || idx >= len(p.Items) {
		idx = 0
	}
	idx += delta
	if idx < 0 {
		idx = len(p.Items) - 1
	} else if idx >= len(p.Items) {
		idx = 0
	}
	p.Index = idx
}

// ClampIndex ensures the selection index stays in bounds.
func (p *BlockPalette) ClampIndex() {
	if len(p.Items) == 0 {
		p.Index = 0
		return
	}
	if p.Index < 0 {
		p.Index = 0
	}
	if p.Index >= len(p.Items) {
		p.Index = len(p.Items) - 1
	}
}

// Selected returns the selected block.
func (p *BlockPalette) Selected() (models.Action, bool) {
	if p.Index < 0 || p.Index >= len(p.Items) {
		return models.Action{}, false
	}
	return p.Items[p.Index], true
}

// Take removes and returns the selected block.
func (p *BlockPalette) Take() (models.Action, bool) {
	a, ok := p.Selected()
	if !ok {
		return models.Action{}, false
	}
	p.Items = append(p.Items[:p.Index:p.Index], p.Items[p.Index+1:]...)
	p.ClampIndex()
	return a, true
}

// Return puts a block back into the palette.
func (p *BlockPalette) Return(a models.Action) {
	p.Items = append(p.Items, a)
}

// Shuffle reorders the palette with the given shuffle function, such as
// (*rand.Rand).Shuffle.
func (p *BlockPalette) Shuffle(shuffle func(n int, swap func(i, j int))) {
	shuffle(len(p.Items), func(i, j int) {
		p.Items[i], p.Items[j] = p.Items[j], p.Items[i]
	})
	p.Index = 0
}

// Render renders the palette lines.
func (p *BlockPalette) Render(styleSet styles.Styles, v *vocab.Vocabulary, active bool) []string {
	headingStyle := styleSet.Muted
	if active {
		headingStyle = styleSet.Accent
	}
	lines := []string{headingStyle.Render("BLOCKS")}
	if len(p.Items) == 0 {
		return append(lines, styleSet.Muted.Render("  (all blocks placed)"))
	}
	for idx, a := range p.Items {
		lines = append(lines, renderBlock(styleSet, v, a, "", active && idx == p.Index))
	}
	return lines
}

// RenderSequence renders the numbered blocks of a sequence with the cursor
// on the selected block.
func RenderSequence(styleSet styles.Styles, v *vocab.Vocabulary, seq models.Sequence, cursor int, active bool) []string {
	headingStyle := styleSet.Muted
	if active {
		headingStyle = styleSet.Accent
	}
	lines := []string{headingStyle.Render(fmt.Sprintf("SEQUENCE (%d)", seq.Len()))}
	if seq.IsEmpty() {
		return append(lines, EmptySequence().RenderCompact(styleSet))
	}
	for idx, a := range seq.Actions() {
		lines = append(lines, renderBlock(styleSet, v, a, fmt.Sprintf("%2d. ", idx+1), active && idx == cursor))
	}
	return lines
}

func renderBlock(styleSet styles.Styles, v *vocab.Vocabulary, a models.Action, prefix string, selected bool) string {
	label := truncate(v.Label(a), 40)
	color := ""
	if entry, ok := v.Lookup(a.Kind); ok {
		color = entry.Color
	}
	block := styleSet.Block(color).Render("■ " + label)
	if selected {
		return styleSet.Focus.Render("> "+prefix) + block
	}
	return "  " + styleSet.Muted.Render(prefix) + block
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
