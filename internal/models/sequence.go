package models

import (
	"encoding/json"
	"strings"
)

// Sequence is an immutable, ordered list of actions. Position is the
// procedure order. Editing operations return a new Sequence and never
// modify the receiver.
type Sequence struct {
	actions []Action
}

// NewSequence builds a sequence from the given actions.
func NewSequence(actions ...Action) Sequence {
	if len(actions) == 0 {
		return Sequence{}
	}
	copied := make([]Action, len(actions))
	copy(copied, actions)
	return Sequence{actions: copied}
}

// Len returns the number of actions.
func (s Sequence) Len() int {
	return len(s.actions)
}

// IsEmpty reports whether the sequence has no actions.
func (s Sequence) IsEmpty() bool {
	return len(s.actions) == 0
}

// At returns the action at index i.
func (s Sequence) At(i int) Action {
	return s.actions[i]
}

// Actions returns a copy of the underlying actions.
func (s Sequence) Actions() []Action {
	out := make([]Action, len(s.actions))
	copy(out, s.actions)
	return out
}

// Index returns the position of the first action of the given kind, or -1.
func (s Sequence) Index(kind ActionKind) int {
	for i, a := range s.actions {
		if a.Kind == kind {
			return i
		}
	}
	return -1
}

// Has reports whether any action of the given kind is present.
func (s Sequence) Has(kind ActionKind) bool {
	return s.Index(kind) >= 0
}

// Count returns how many actions of the given kind are present.
func (s Sequence) Count(kind ActionKind) int {
	n := 0
	for _, a := range s.actions {
		if a.Kind == kind {
			n++
		}
	}
	return n
}

// Prefix returns the first n actions. n is clamped to [0, Len()].
func (s Sequence) Prefix(n int) Sequence {
	if n <= 0 {
		return Sequence{}
	}
	if n > len(s.actions) {
		n = len(s.actions)
	}
	return NewSequence(s.actions[:n]...)
}

// Append returns a new sequence with the action added at the end.
func (s Sequence) Append(a Action) Sequence {
	return s.InsertAt(len(s.actions), a)
}

// InsertAt returns a new sequence with the action inserted at index i.
// i is clamped to [0, Len()].
func (s Sequence) InsertAt(i int, a Action) Sequence {
	i = clamp(i, 0, len(s.actions))
	out := make([]Action, 0, len(s.actions)+1)
	out = append(out, s.actions[:i]...)
	out = append(out, a)
	out = append(out, s.actions[i:]...)
	return Sequence{actions: out}
}

// RemoveAt returns a new sequence without the action at index i.
// An out-of-range index returns the sequence unchanged.
func (s Sequence) RemoveAt(i int) Sequence {
	if i < 0 || i >= len(s.actions) {
		return s
	}
	out := make([]Action, 0, len(s.actions)-1)
	out = append(out, s.actions[:i]...)
	out = append(out, s.actions[i+1:]...)
	return Sequence{actions: out}
}

// Move returns a new sequence where the action at from ends up at index to.
// to is clamped to the valid range; an out-of-range from is a no-op.
func (s Sequence) Move(from, to int) Sequence {
	if from < 0 || from >= len(s.actions) {
		return s
	}
	a := s.actions[from]
	return s.RemoveAt(from).InsertAt(to, a)
}

// Replace returns a new sequence with the action at index i swapped for a.
func (s Sequence) Replace(i int, a Action) Sequence {
	if i < 0 || i >= len(s.actions) {
		return s
	}
	out := s.Actions()
	out[i] = a
	return Sequence{actions: out}
}

// Filter returns the actions for which keep returns true, in order.
func (s Sequence) Filter(keep func(Action) bool) Sequence {
	out := make([]Action, 0, len(s.actions))
	for _, a := range s.actions {
		if keep(a) {
			out = append(out, a)
		}
	}
	return Sequence{actions: out}
}

// Tokens renders each action as a token string.
func (s Sequence) Tokens() []string {
	tokens := make([]string, len(s.actions))
	for i, a := range s.actions {
		tokens[i] = a.String()
	}
	return tokens
}

// String joins the tokens with arrows.
func (s Sequence) String() string {
	if len(s.actions) == 0 {
		return "(empty)"
	}
	return strings.Join(s.Tokens(), " -> ")
}

// MarshalJSON encodes the sequence as a JSON array of actions.
func (s Sequence) MarshalJSON() ([]byte, error) {
	if s.actions == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.actions)
}

// UnmarshalJSON decodes a JSON array of actions.
func (s *Sequence) UnmarshalJSON(data []byte) error {
	var actions []Action
	if err := json.Unmarshal(data, &actions); err != nil {
		return err
	}
	*s = NewSequence(actions...)
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
