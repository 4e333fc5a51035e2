package models

// Variant tags the narrative result of an evaluation. Each ruleset declares
// its own closed set of variants.
type Variant string

// String returns the variant tag.
func (v Variant) String() string {
	return string(v)
}

// CookTiming is attached only to outcomes that score cook time against the
// target. Exactly one of RemainingSeconds or ExtraSeconds is non-zero.
type CookTiming struct {
	CookedSeconds    int `json:"cooked_seconds"`
	RemainingSeconds int `json:"remaining_seconds,omitempty"`
	ExtraSeconds     int `json:"extra_seconds,omitempty"`
}

// Outcome is the classified result of evaluating a sequence.
type Outcome struct {
	// Ruleset names the rules that produced this outcome.
	Ruleset string `json:"ruleset"`

	// Success is the single pass/fail flag.
	Success bool `json:"success"`

	// Variant is the specific narrative tag.
	Variant Variant `json:"variant"`

	// Message is a short headline.
	Message string `json:"message"`

	// Description explains the result.
	Description string `json:"description"`

	// Emoji is the display cue for the result.
	Emoji string `json:"emoji,omitempty"`

	// Timing is set only for undercooked and overcooked results.
	Timing *CookTiming `json:"timing,omitempty"`

	// Violations lists every rule broken, in check order.
	Violations []string `json:"violations,omitempty"`
}

// HasViolations reports whether any violation was recorded.
func (o Outcome) HasViolations() bool {
	return len(o.Violations) > 0
}
