// Package replay builds the frame list used to animate a finalized sequence.
package replay

import "github.com/opencode-ai/blockseq/internal/models"

// VisibleFunc reports whether an action changes the rendered scene.
type VisibleFunc func(models.Action) bool

// ClassifyFunc derives a visual state from a sequence prefix.
type ClassifyFunc func(models.Sequence) models.VisualState

// Build scans seq left to right and emits one frame per visible action,
// each holding every visible action seen so far. The first frame is always
// the empty snapshot, so the result is never empty and snapshot lengths
// strictly increase by one. Build is stateless and may be called again on
// the same input to restart a playback.
func Build(seq models.Sequence, visible VisibleFunc, classify ClassifyFunc) []models.ReplayFrame {
	frames := make([]models.ReplayFrame, 0, seq.Len()+1)
	frames = append(frames, models.ReplayFrame{
		Index:              0,
		SourcePrefixLength: 0,
		Snapshot:           models.Sequence{},
		State:              classify(models.Sequence{}),
	})

	current := make([]models.Action, 0, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		a := seq.At(i)
		if !visible(a) {
			continue
		}
		current = append(current, a)
		snapshot := models.NewSequence(current...)
		frames = append(frames, models.ReplayFrame{
			Index:              len(frames),
			SourcePrefixLength: i + 1,
			Snapshot:           snapshot,
			State:              classify(snapshot),
		})
	}

	return frames
}

// Player steps through frames one at a time. The zero value is not usable;
// create one with NewPlayer.
type Player struct {
	frames []models.ReplayFrame
	pos    int
}

// NewPlayer starts a playback at the first frame.
func NewPlayer(frames []models.ReplayFrame) *Player {
	return &Player{frames: frames}
}

// Current returns the frame being shown.
func (p *Player) Current() (models.ReplayFrame, bool) {
	if p.pos >= len(p.frames) {
		return models.ReplayFrame{}, false
	}
	return p.frames[p.pos], true
}

// Advance moves to the next frame. It returns false once the last frame
// has been reached.
func (p *Player) Advance() bool {
	if p.pos+1 >= len(p.frames) {
		p.pos = max(len(p.frames)-1, 0)
		return false
	}
	p.pos++
	return true
}

// Done reports whether the last frame is showing.
func (p *Player) Done() bool {
	return p.pos >= len(p.frames)-1
}

// Restart rewinds to the first frame.
func (p *Player) Restart() {
	p.pos = 0
}

// Len returns the number of frames.
func (p *Player) Len() int {
	return len(p.frames)
}

// Position returns the index of the current frame.
func (p *Player) Position() int {
	return p.pos
}
