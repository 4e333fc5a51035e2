package models

// VisualState describes what the scene looks like after a sequence prefix.
// It is always derived from a sequence and never stored as a source of truth.
type VisualState string

// String returns the state key.
func (s VisualState) String() string {
	return string(s)
}

// ReplayFrame is one step of an animated playback.
type ReplayFrame struct {
	// Index is the zero-based position of the frame in the playback.
	Index int `json:"index"`

	// SourcePrefixLength is how many actions of the original sequence had
	// been scanned when this frame was produced.
	SourcePrefixLength int `json:"source_prefix_length"`

	// Snapshot holds the visible actions seen so far.
	Snapshot Sequence `json:"snapshot"`

	// State is the visual state classified from Snapshot.
	State VisualState `json:"state"`
}
