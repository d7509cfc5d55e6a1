package store

import (
	"context"
	"encoding/json"
	"fmt"

	"financial_report/pkg/core/report"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DefaultRecentLimit caps history queries when the caller passes no limit.
const DefaultRecentLimit = 20

// Querier is the subset of *pgxpool.Pool the repository needs.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// ReportRepo stores every generation outcome, successful or not.
type ReportRepo struct {
	db Querier
}

var _ report.Archive = (*ReportRepo)(nil)

func NewReportRepo(db Querier) *ReportRepo {
	return &ReportRepo{db: db}
}

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS generated_reports (
		id           UUID PRIMARY KEY,
		status       TEXT NOT NULL,
		company      TEXT NOT NULL,
		period       TEXT NOT NULL,
		language     TEXT NOT NULL,
		analysis     TEXT NOT NULL,
		model        TEXT NOT NULL,
		failure_kind TEXT,
		outcome_json JSONB NOT NULL,
		duration_ms  BIGINT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS generated_reports_created_at_idx ON generated_reports (created_at DESC);
`

// EnsureSchema creates the reports table if it does not exist.
func (r *ReportRepo) EnsureSchema(ctx context.Context) error {
	if r.db == nil {
		return fmt.Errorf("database pool not initialized")
	}
	if _, err := r.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Save upserts one outcome keyed by its ID.
func (r *ReportRepo) Save(ctx context.Context, out report.Outcome) error {
	if r.db == nil {
		return fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to marshal outcome: %w", err)
	}

	query := `
		INSERT INTO generated_reports
			(id, status, company, period, language, analysis, model, failure_kind, outcome_json, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id)
		DO UPDATE SET
			status = EXCLUDED.status,
			failure_kind = EXCLUDED.failure_kind,
			outcome_json = EXCLUDED.outcome_json,
			duration_ms = EXCLUDED.duration_ms;
	`

	_, err = r.db.Exec(ctx, query,
		out.ID,
		string(out.Status),
		out.Selection.Company,
		out.Selection.Period(),
		out.Selection.Language,
		out.Selection.Analysis,
		out.Model,
		string(out.FailureKind),
		jsonData,
		out.DurationMs,
		out.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// Recent returns the newest outcomes first. limit <= 0 uses DefaultRecentLimit.
func (r *ReportRepo) Recent(ctx context.Context, limit int) ([]report.Outcome, error) {
	if r.db == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	rows, err := r.db.Query(ctx, `SELECT outcome_json FROM generated_reports ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load reports: %w", err)
	}

	raw, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, fmt.Errorf("failed to scan reports: %w", err)
	}

	outcomes := make([]report.Outcome, 0, len(raw))
	for _, data := range raw {
		var out report.Outcome
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report: %w", err)
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}
