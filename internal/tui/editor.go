package tui

import (
	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/opencode-ai/blockseq/internal/tui/components"
	"github.com/opencode-ai/blockseq/internal/vocab"
)

type focusPane int

const (
	focusPalette focusPane = iota
	focusSequence
)

// shuffleFunc matches (*rand.Rand).Shuffle.
type shuffleFunc func(n int, swap func(i, j int))

// editor holds the block palette and the sequence being built. Every edit
// replaces the sequence with a new value.
type editor struct {
	vocab    *vocab.Vocabulary
	palette  *components.BlockPalette
	sequence models.Sequence
	cursor   int
	focus    focusPane
}

func newEditor(v *vocab.Vocabulary, shuffle shuffleFunc) *editor {
	e := &editor{vocab: v, palette: components.NewBlockPalette(nil)}
	e.reset(shuffle)
	return e
}

// reset empties the sequence and restores the full palette, shuffled when
// the vocabulary asks for it.
func (e *editor) reset(shuffle shuffleFunc) {
	e.sequence = models.NewSequence()
	e.cursor = 0
	e.focus = focusPalette
	e.palette.Reset(e.vocab.PaletteActions())
	if e.vocab.ShufflePalette && shuffle != nil {
		e.palette.Shuffle(shuffle)
	}
}

// load replaces the sequence and keeps only the palette blocks it does not
// already use.
func (e *editor) load(seq models.Sequence) {
	e.sequence = seq
	e.cursor = max(seq.Len()-1, 0)
	e.focus = focusSequence
	e.palette.Reset(paletteRemainder(e.vocab, seq))
}

// add appends the selected palette block to the sequence.
func (e *editor) add() bool {
	a, ok := e.palette.Take()
	if !ok {
		return false
	}
	e.sequence = e.sequence.Append(a)
	e.cursor = e.sequence.Len() - 1
	return true
}

// remove deletes the block under the cursor and returns a fresh copy of it
// to the palette.
func (e *editor) remove() bool {
	if e.sequence.IsEmpty() {
		return false
	}
	removed := e.sequence.At(e.cursor)
	e.sequence = e.sequence.RemoveAt(e.cursor)
	e.cursor = clampCursor(e.cursor, e.sequence.Len())
	e.returnToPalette(removed)
	return true
}

func (e *editor) returnToPalette(a models.Action) {
	limit := 0
	for _, kind := range e.vocab.Palette {
		if kind == a.Kind {
			limit++
		}
	}
	inUse := e.sequence.Count(a.Kind)
	for _, item := range e.palette.Items {
		if item.Kind == a.Kind {
			inUse++
		}
	}
	if inUse >= limit {
		return
	}
	if fresh, err := e.vocab.New(a.Kind); err == nil {
		a = fresh
	}
	e.palette.Return(a)
}

// moveBlock shifts the block under the cursor by delta positions.
func (e *editor) moveBlock(delta int) bool {
	to := e.cursor + delta
	if e.sequence.IsEmpty() || to < 0 || to >= e.sequence.Len() {
		return false
	}
	e.sequence = e.sequence.Move(e.cursor, to)
	e.cursor = to
	return true
}

// cycleDuration steps the duration of a timed block through the allowed
// options.
func (e *editor) cycleDuration(delta int) bool {
	if !e.selectedTimed() {
		return false
	}
	a := e.sequence.At(e.cursor)
	seconds := a.Seconds()
	if delta > 0 {
		seconds = e.vocab.NextDuration(seconds)
	} else {
		seconds = e.vocab.PrevDuration(seconds)
	}
	if seconds == a.Seconds() {
		return false
	}
	e.sequence = e.sequence.Replace(e.cursor, a.WithDuration(seconds))
	return true
}

func (e *editor) selectedTimed() bool {
	if e.focus != focusSequence || e.sequence.IsEmpty() {
		return false
	}
	entry, ok := e.vocab.Lookup(e.sequence.At(e.cursor).Kind)
	return ok && entry.Timed
}

func (e *editor) moveCursor(delta int) {
	if e.focus == focusPalette {
		e.palette.Move(delta)
		return
	}
	e.cursor = clampCursor(e.cursor+delta, e.sequence.Len())
}

func (e *editor) toggleFocus() {
	if e.focus == focusPalette {
		e.focus = focusSequence
	} else {
		e.focus = focusPalette
	}
}

func (e *editor) quickContext(canSwitch bool) components.EditorContext {
	return components.EditorContext{
		PaletteFocused: e.focus == focusPalette,
		PaletteEmpty:   e.palette.Len() == 0,
		SequenceEmpty:  e.sequence.IsEmpty(),
		TimedSelected:  e.selectedTimed(),
		CanSwitch:      canSwitch,
	}
}

// paletteRemainder returns the initial palette minus one block for every
// block already in seq.
func paletteRemainder(v *vocab.Vocabulary, seq models.Sequence) []models.Action {
	remaining := v.PaletteActions()
	for _, a := range seq.Actions() {
		for i, item := range remaining {
			if item.Kind == a.Kind {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}
	return remaining
}

func clampCursor(cursor, length int) int {
	if length == 0 || cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}
