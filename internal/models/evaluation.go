package models

import "time"

// EvaluationRecord is the journal summary of one evaluation run.
type EvaluationRecord struct {
	ID          string    `json:"id"`
	EvaluatedAt time.Time `json:"evaluated_at"`
	Ruleset     string    `json:"ruleset"`
	Variant     Variant   `json:"variant"`
	Success     bool      `json:"success"`
	Length      int       `json:"length"`
	Violations  int       `json:"violations,omitempty"`
	Source      string    `json:"source,omitempty"`
	Drill       string    `json:"drill,omitempty"`
}

// EvaluationQuery filters journal records.
type EvaluationQuery struct {
	Ruleset *string
	Since   *time.Time
	Until   *time.Time
	Limit   int
}

// VariantCount is the number of runs that ended in a variant.
type VariantCount struct {
	Ruleset string  `json:"ruleset"`
	Variant Variant `json:"variant"`
	Success bool    `json:"success"`
	Count   int     `json:"count"`
}

// EvaluationSummary aggregates journal records.
type EvaluationSummary struct {
	Ruleset     string    `json:"ruleset,omitempty"`
	Total       int       `json:"total"`
	Successes   int       `json:"successes"`
	Drills      int       `json:"drills"`
	PeriodStart time.Time `json:"period_start,omitempty"`
	PeriodEnd   time.Time `json:"period_end,omitempty"`
}

// SuccessRate returns the fraction of successful runs, 0 when empty.
func (s EvaluationSummary) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Successes) / float64(s.Total)
}
