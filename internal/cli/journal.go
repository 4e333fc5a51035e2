package cli

import (
	"context"
	"fmt"

	"github.com/opencode-ai/blockseq/internal/db"
	"github.com/opencode-ai/blockseq/internal/events"
	"github.com/opencode-ai/blockseq/internal/logging"
	"github.com/opencode-ai/blockseq/internal/ruleset"
)

// journalEnabled reports whether evaluations should be recorded.
func journalEnabled() bool {
	return !noJournal && GetConfig().Journal.Enabled
}

// openDatabase opens and migrates the evaluation journal.
func openDatabase(ctx context.Context) (*db.DB, error) {
	cfg := GetConfig()
	if cfg.Journal.Path == "" {
		return nil, fmt.Errorf("journal.path is not configured")
	}

	database, err := db.Open(db.DefaultConfig(cfg.Journal.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	if _, err := database.MigrateUp(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate journal: %w", err)
	}
	return database, nil
}

// newService builds an evaluation service. When the journal is enabled the
// returned close function releases the database.
func newService(ctx context.Context) (*ruleset.Service, func(), error) {
	opts := []ruleset.ServiceOption{
		ruleset.WithDefaultRuleset(GetConfig().Ruleset.Default),
	}
	closeFn := func() {}

	if journalEnabled() {
		database, err := openDatabase(ctx)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts,
			ruleset.WithEventRepository(db.NewEventRepository(database)),
			ruleset.WithRecordStore(db.NewEvaluationRepository(database)),
		)
		closeFn = func() { database.Close() }
	}

	return ruleset.NewService(ruleset.DefaultRegistry, opts...), closeFn, nil
}

// journalError records a failed command in the journal. Failures to record
// are only logged.
func journalError(ctx context.Context, errContext string, cause error) {
	if cause == nil || !journalEnabled() {
		return
	}
	logger := logging.Component("cli")

	database, err := openDatabase(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to open journal for error event")
		return
	}
	defer database.Close()

	if err := events.LogError(ctx, db.NewEventRepository(database), errContext, cause); err != nil {
		logger.Warn().Err(err).Str("context", errContext).Msg("failed to journal error")
	}
}
