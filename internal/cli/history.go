package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/opencode-ai/blockseq/internal/db"
	"github.com/opencode-ai/blockseq/internal/events"
	"github.com/opencode-ai/blockseq/internal/models"
	"github.com/spf13/cobra"
)

var (
	historyLimit     int
	historySince     time.Duration
	historyOlderThan time.Duration
	historyEventType string
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyStatsCmd)
	historyCmd.AddCommand(historyEventsCmd)
	historyCmd.AddCommand(historyPruneCmd)

	historyCmd.PersistentFlags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	historyCmd.PersistentFlags().DurationVar(&historySince, "since", 0, "only entries newer than this (e.g. 24h)")
	historyEventsCmd.Flags().StringVar(&historyEventType, "type", "", "only events of this type (e.g. drill.evaluated)")
	historyPruneCmd.Flags().DurationVar(&historyOlderThan, "older-than", 30*24*time.Hour, "delete entries older than this")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent evaluations",
	Long: `Show recent evaluations from the journal.

The journal records the outcome of every evaluation (ruleset, variant,
length, source). The sequences themselves are not stored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		records, err := db.NewEvaluationRepository(database).Query(ctx, historyQuery())
		if err != nil {
			return err
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, records)
		}

		if len(records) == 0 {
			fmt.Println("No evaluations recorded")
			return nil
		}

		rows := make([][]string, 0, len(records))
		for _, record := range records {
			rows = append(rows, []string{
				record.EvaluatedAt.Local().Format("2006-01-02 15:04:05"),
				record.Ruleset,
				formatOutcome(models.Outcome{Success: record.Success, Variant: record.Variant}),
				strconv.Itoa(record.Length),
				sourceLabel(record.Source, record.Drill),
				shortID(record.ID),
			})
		}
		return writeTable(os.Stdout, []string{"TIME", "RULESET", "OUTCOME", "BLOCKS", "SOURCE", "ID"}, rows)
	},
}

// HistoryStats is the payload of `blockseq history stats`.
type HistoryStats struct {
	Summary  *models.EvaluationSummary `json:"summary"`
	Variants []*models.VariantCount    `json:"variants"`
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize evaluations by outcome",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		stats, err := loadHistoryStats(ctx, db.NewEvaluationRepository(database), rulesetName, sinceTime())
		if err != nil {
			return err
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, stats)
		}

		summary := stats.Summary
		fmt.Printf("Evaluations: %d\n", summary.Total)
		fmt.Printf("Successes:   %d (%.0f%%)\n", summary.Successes, summary.SuccessRate()*100)
		fmt.Printf("Drills:      %d\n\n", summary.Drills)

		rows := make([][]string, 0, len(stats.Variants))
		for _, c := range stats.Variants {
			rows = append(rows, []string{
				c.Ruleset,
				formatOutcome(models.Outcome{Success: c.Success, Variant: c.Variant}),
				strconv.Itoa(c.Count),
			})
		}
		return writeTable(os.Stdout, []string{"RULESET", "OUTCOME", "COUNT"}, rows)
	},
}

var historyEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show raw journal events",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		items, err := loadEvents(ctx, db.NewEventRepository(database))
		if err != nil {
			return err
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, items)
		}

		rows := make([][]string, 0, len(items))
		for _, event := range items {
			rows = append(rows, []string{
				event.Timestamp.Local().Format("2006-01-02 15:04:05"),
				string(event.Type),
				event.EntityID,
				eventSummary(event),
			})
		}
		return writeTable(os.Stdout, []string{"TIME", "TYPE", "ENTITY", "DETAIL"}, rows)
	},
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old evaluations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if historyOlderThan <= 0 {
			return fmt.Errorf("--older-than must be positive")
		}

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		step := startProgress("Pruning journal")
		deleted, err := db.NewEvaluationRepository(database).DeleteBefore(ctx, time.Now().Add(-historyOlderThan))
		if err != nil {
			step.Fail(err)
			return err
		}
		step.Done()

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, map[string]int64{"deleted": deleted})
		}
		fmt.Printf("Deleted %d evaluations\n", deleted)
		return nil
	},
}

type historyStore interface {
	Summarize(ctx context.Context, ruleset string, since, until *time.Time) (*models.EvaluationSummary, error)
	CountByVariant(ctx context.Context, ruleset string, limit int) ([]*models.VariantCount, error)
}

func loadHistoryStats(ctx context.Context, store historyStore, ruleset string, since *time.Time) (*HistoryStats, error) {
	summary, err := store.Summarize(ctx, ruleset, since, nil)
	if err != nil {
		return nil, err
	}
	variants, err := store.CountByVariant(ctx, ruleset, historyLimit)
	if err != nil {
		return nil, err
	}
	return &HistoryStats{Summary: summary, Variants: variants}, nil
}

type eventStore interface {
	Recent(ctx context.Context, limit int) ([]*models.Event, error)
	Query(ctx context.Context, q db.EventQuery) (*db.EventPage, error)
}

// loadEvents returns the newest events, or the oldest matching ones when a
// filter is set.
func loadEvents(ctx context.Context, store eventStore) ([]*models.Event, error) {
	q := db.EventQuery{Since: sinceTime(), Limit: historyLimit}
	if historyEventType != "" {
		eventType := models.EventType(historyEventType)
		q.Type = &eventType
	}
	if rulesetName != "" {
		entityType := models.EntityTypeRuleset
		name := rulesetName
		q.EntityType = &entityType
		q.EntityID = &name
	}
	if q.Since == nil && q.Type == nil && q.EntityID == nil {
		return store.Recent(ctx, historyLimit)
	}

	page, err := store.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return page.Events, nil
}

func historyQuery() models.EvaluationQuery {
	q := models.EvaluationQuery{
		Since: sinceTime(),
		Limit: historyLimit,
	}
	if rulesetName != "" {
		name := rulesetName
		q.Ruleset = &name
	}
	return q
}

func sinceTime() *time.Time {
	if historySince <= 0 {
		return nil
	}
	t := time.Now().Add(-historySince)
	return &t
}

func sourceLabel(source, drill string) string {
	if drill != "" {
		return "drill:" + drill
	}
	if source == "" {
		return "-"
	}
	return source
}

func eventSummary(event *models.Event) string {
	switch event.Type {
	case models.EventTypeSequenceEvaluated, models.EventTypeDrillEvaluated:
		payload, err := events.DecodeEvaluated(event)
		if err != nil {
			return err.Error()
		}
		return fmt.Sprintf("%s %s (%d blocks)", payload.Ruleset, payload.Variant, payload.Length)
	default:
		return string(event.Payload)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
