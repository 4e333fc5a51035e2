package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/opencode-ai/blockseq/internal/models"
)

// Evaluation repository errors.
var (
	ErrEvaluationNotFound = errors.New("evaluation not found")
	ErrInvalidEvaluation  = errors.New("invalid evaluation")
)

const evaluationColumns = `id, evaluated_at, ruleset, variant, success, length, violations, source, drill`

// EvaluationRepository stores one summary row per evaluation run.
type EvaluationRepository struct {
	db *DB
}

// NewEvaluationRepository creates a new EvaluationRepository.
func NewEvaluationRepository(db *DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

// Create inserts a record. ID and time are filled in when unset.
func (r *EvaluationRepository) Create(ctx context.Context, record *models.EvaluationRecord) error {
	if record.Ruleset == "" || record.Variant == "" {
		return ErrInvalidEvaluation
	}

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.EvaluatedAt.IsZero() {
		record.EvaluatedAt = time.Now().UTC()
	} else {
		record.EvaluatedAt = record.EvaluatedAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO evaluations (`+evaluationColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		record.ID,
		record.EvaluatedAt.Format(time.RFC3339),
		record.Ruleset,
		string(record.Variant),
		boolToInt(record.Success),
		record.Length,
		record.Violations,
		nullString(record.Source),
		nullString(record.Drill),
	)
	if err != nil {
		return fmt.Errorf("failed to insert evaluation: %w", err)
	}
	return nil
}

// Get retrieves a record by ID.
func (r *EvaluationRepository) Get(ctx context.Context, id string) (*models.EvaluationRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+evaluationColumns+` FROM evaluations WHERE id = ?`, id)
	record, err := scanEvaluation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEvaluationNotFound
	}
	return record, err
}

// Query returns records newest first.
func (r *EvaluationRepository) Query(ctx context.Context, q models.EvaluationQuery) ([]*models.EvaluationRecord, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}

	where, args := evaluationFilter(q.Ruleset, q.Since, q.Until)
	query := `SELECT ` + evaluationColumns + ` FROM evaluations WHERE ` + where +
		` ORDER BY evaluated_at DESC, rowid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluations: %w", err)
	}
	defer rows.Close()

	var records []*models.EvaluationRecord
	for rows.Next() {
		record, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating evaluations: %w", err)
	}
	return records, nil
}

// Summarize aggregates records. An empty ruleset covers all rulesets.
func (r *EvaluationRepository) Summarize(ctx context.Context, ruleset string, since, until *time.Time) (*models.EvaluationSummary, error) {
	var rs *string
	if ruleset != "" {
		rs = &ruleset
	}
	where, args := evaluationFilter(rs, since, until)

	query := `SELECT
		COUNT(*) as total,
		COALESCE(SUM(success), 0) as successes,
		COALESCE(SUM(CASE WHEN drill IS NOT NULL THEN 1 ELSE 0 END), 0) as drills
		FROM evaluations WHERE ` + where

	var summary models.EvaluationSummary
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&summary.Total,
		&summary.Successes,
		&summary.Drills,
	); err != nil {
		return nil, fmt.Errorf("failed to summarize evaluations: %w", err)
	}

	summary.Ruleset = ruleset
	if since != nil {
		summary.PeriodStart = *since
	}
	if until != nil {
		summary.PeriodEnd = *until
	}
	return &summary, nil
}

// CountByVariant returns how often each variant occurred, most frequent first.
func (r *EvaluationRepository) CountByVariant(ctx context.Context, ruleset string, limit int) ([]*models.VariantCount, error) {
	if limit <= 0 {
		limit = 50
	}

	var rs *string
	if ruleset != "" {
		rs = &ruleset
	}
	where, args := evaluationFilter(rs, nil, nil)
	query := `SELECT ruleset, variant, MAX(success), COUNT(*) as n
		FROM evaluations WHERE ` + where + `
		GROUP BY ruleset, variant
		ORDER BY n DESC, ruleset, variant
		LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count variants: %w", err)
	}
	defer rows.Close()

	var counts []*models.VariantCount
	for rows.Next() {
		var c models.VariantCount
		var variant string
		var success int
		if err := rows.Scan(&c.Ruleset, &variant, &success, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan variant count: %w", err)
		}
		c.Variant = models.Variant(variant)
		c.Success = success != 0
		counts = append(counts, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating variant counts: %w", err)
	}
	return counts, nil
}

// DeleteBefore removes records older than cutoff and returns how many.
func (r *EvaluationRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM evaluations WHERE evaluated_at < ?`, cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("failed to delete evaluations: %w", err)
	}
	return result.RowsAffected()
}

func evaluationFilter(ruleset *string, since, until *time.Time) (string, []any) {
	where := `1=1`
	args := []any{}
	if ruleset != nil {
		where += ` AND ruleset = ?`
		args = append(args, *ruleset)
	}
	if since != nil {
		where += ` AND evaluated_at >= ?`
		args = append(args, since.UTC().Format(time.RFC3339))
	}
	if until != nil {
		where += ` AND evaluated_at < ?`
		args = append(args, until.UTC().Format(time.RFC3339))
	}
	return where, args
}

func scanEvaluation(row rowScanner) (*models.EvaluationRecord, error) {
	var record models.EvaluationRecord
	var evaluatedAt, variant string
	var success int
	var source, drill sql.NullString

	if err := row.Scan(
		&record.ID,
		&evaluatedAt,
		&record.Ruleset,
		&variant,
		&success,
		&record.Length,
		&record.Violations,
		&source,
		&drill,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan evaluation: %w", err)
	}

	record.Variant = models.Variant(variant)
	record.Success = success != 0
	record.Source = source.String
	record.Drill = drill.String
	if t, err := time.Parse(time.RFC3339, evaluatedAt); err == nil {
		record.EvaluatedAt = t
	}
	return &record, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
