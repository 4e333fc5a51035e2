package ruleset

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/opencode-ai/blockseq/internal/events"
	"github.com/opencode-ai/blockseq/internal/logging"
	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/rs/zerolog"
)

// RecordStore persists evaluation summaries.
type RecordStore interface {
	Create(ctx context.Context, record *models.EvaluationRecord) error
}

// Request describes one evaluation run.
type Request struct {
	// Ruleset names the ruleset; empty uses the service default.
	Ruleset string

	// Sequence is the finalized sequence to evaluate.
	Sequence models.Sequence

	// Source tells where the sequence came from (cli, file:<name>, tui).
	Source string

	// Drill is the drill pattern name when the sequence is a drill.
	Drill string
}

// Result is an evaluated sequence with its playback frames.
type Result struct {
	ID          string               `json:"id"`
	Ruleset     string               `json:"ruleset"`
	EvaluatedAt time.Time            `json:"evaluated_at"`
	Sequence    models.Sequence      `json:"sequence"`
	Outcome     models.Outcome       `json:"outcome"`
	Frames      []models.ReplayFrame `json:"frames"`
	FinalState  models.VisualState   `json:"final_state"`
	Drill       string               `json:"drill,omitempty"`
}

// Service runs evaluations and journals their results.
type Service struct {
	registry       *Registry
	defaultRuleset string
	events         events.Repository
	records        RecordStore
	now            func() time.Time
	logger         zerolog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithEventRepository journals every run as an event.
func WithEventRepository(repo events.Repository) ServiceOption {
	return func(s *Service) {
		s.events = repo
	}
}

// WithRecordStore stores a summary row for every run.
func WithRecordStore(store RecordStore) ServiceOption {
	return func(s *Service) {
		s.records = store
	}
}

// WithDefaultRuleset sets the ruleset used when a request names none.
func WithDefaultRuleset(name string) ServiceOption {
	return func(s *Service) {
		s.defaultRuleset = name
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a Service. A nil registry uses DefaultRegistry.
func NewService(registry *Registry, opts ...ServiceOption) *Service {
	if registry == nil {
		registry = DefaultRegistry
	}
	s := &Service{
		registry: registry,
		now:      time.Now,
		logger:   logging.Component("ruleset"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry returns the registry the service evaluates against.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Resolve returns the named ruleset, or the default when name is empty.
func (s *Service) Resolve(name string) (Ruleset, error) {
	if name == "" {
		name = s.defaultRuleset
	}
	return s.registry.Lookup(name)
}

// Run evaluates a sequence and builds its replay frames. Journal failures
// are logged and do not fail the run.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	rs, err := s.Resolve(req.Ruleset)
	if err != nil {
		return nil, err
	}

	outcome := rs.Evaluate(req.Sequence)
	frames := rs.BuildReplayFrames(req.Sequence)
	result := &Result{
		ID:          uuid.New().String(),
		Ruleset:     rs.Name(),
		EvaluatedAt: s.now().UTC(),
		Sequence:    req.Sequence,
		Outcome:     outcome,
		Frames:      frames,
		FinalState:  rs.ClassifyState(req.Sequence),
		Drill:       req.Drill,
	}

	s.logger.Debug().
		Str("evaluation_id", result.ID).
		Str("ruleset", result.Ruleset).
		Str("variant", string(outcome.Variant)).
		Bool("success", outcome.Success).
		Int("length", req.Sequence.Len()).
		Int("violations", len(outcome.Violations)).
		Str("drill", req.Drill).
		Msg("sequence evaluated")

	s.journal(ctx, req, result)
	return result, nil
}

func (s *Service) journal(ctx context.Context, req Request, result *Result) {
	if s.events != nil {
		err := events.LogSequenceEvaluated(ctx, s.events, models.EvaluatedPayload{
			EvaluationID: result.ID,
			Ruleset:      result.Ruleset,
			Variant:      result.Outcome.Variant,
			Success:      result.Outcome.Success,
			Length:       req.Sequence.Len(),
			Violations:   len(result.Outcome.Violations),
			Source:       req.Source,
			Drill:        req.Drill,
		})
		if err != nil {
			s.logger.Warn().Err(err).Str("evaluation_id", result.ID).Msg("failed to journal evaluation event")
		}
	}

	if s.records != nil {
		err := s.records.Create(ctx, &models.EvaluationRecord{
			ID:          result.ID,
			EvaluatedAt: result.EvaluatedAt,
			Ruleset:     result.Ruleset,
			Variant:     result.Outcome.Variant,
			Success:     result.Outcome.Success,
			Length:      req.Sequence.Len(),
			Violations:  len(result.Outcome.Violations),
			Source:      req.Source,
			Drill:       req.Drill,
		})
		if err != nil {
			s.logger.Warn().Err(err).Str("evaluation_id", result.ID).Msg("failed to store evaluation record")
		}
	}
}

// ClassifyPrefix returns the visual state of the first n actions, for live
// previews while a sequence is being edited.
func (s *Service) ClassifyPrefix(name string, seq models.Sequence, n int) (models.VisualState, error) {
	rs, err := s.Resolve(name)
	if err != nil {
		return "", err
	}
	return rs.ClassifyState(seq.Prefix(n)), nil
}
