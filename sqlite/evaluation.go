package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/dragnet"
	"github.com/google/uuid"
	"github.com/ncruces/go-sqlite3"
)

// Compile-time interface verification.
var _ dragnet.EvaluationService = (*EvaluationService)(nil)

// EvaluationService implements dragnet.EvaluationService using SQLite.
type EvaluationService struct {
	db *DB
}

// NewEvaluationService creates a new EvaluationService.
func NewEvaluationService(db *DB) *EvaluationService {
	return &EvaluationService{db: db}
}

// CreateEvaluation stores a new evaluation.
// Returns EINVALID if the run already holds an evaluation of the document.
func (s *EvaluationService) CreateEvaluation(ctx context.Context, e *dragnet.Evaluation) error {
	if err := e.Validate(); err != nil {
		return err
	}

	e.ID = uuid.New().String()
	e.CreatedAt = time.Now().UTC()

	var cp, cr, cf sql.NullFloat64
	if e.Comments != nil {
		cp = sql.NullFloat64{Float64: e.Comments.Precision, Valid: true}
		cr = sql.NullFloat64{Float64: e.Comments.Recall, Valid: true}
		cf = sql.NullFloat64{Float64: e.Comments.F1, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO evaluations (id, run_id, document_id, extractor, precision, recall, f1,
			comment_precision, comment_recall, comment_f1, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.RunID, e.DocumentID, e.Extractor, e.Content.Precision, e.Content.Recall, e.Content.F1,
		cp, cr, cf, e.ContentHash, e.CreatedAt.Format(timeFormat))

	if errors.Is(err, sqlite3.CONSTRAINT_UNIQUE) {
		return dragnet.Errorf(dragnet.EINVALID, "run %s already has an evaluation of document %q", e.RunID, e.DocumentID)
	}
	return err
}

// FindEvaluations retrieves evaluations matching the filter, ordered by
// document ID.
func (s *EvaluationService) FindEvaluations(ctx context.Context, filter dragnet.EvaluationFilter) ([]*dragnet.Evaluation, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, run_id, document_id, extractor, precision, recall, f1,
		comment_precision, comment_recall, comment_f1, content_hash, created_at
		FROM evaluations WHERE 1=1`)

	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.DocumentID != nil {
		query.WriteString(" AND document_id = ?")
		args = append(args, *filter.DocumentID)
	}
	if filter.Extractor != nil {
		query.WriteString(" AND extractor = ?")
		args = append(args, *filter.Extractor)
	}

	query.WriteString(" ORDER BY document_id ASC, created_at ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var evals []*dragnet.Evaluation
	for rows.Next() {
		var e dragnet.Evaluation
		var cp, cr, cf sql.NullFloat64
		var createdAt string

		if err := rows.Scan(&e.ID, &e.RunID, &e.DocumentID, &e.Extractor,
			&e.Content.Precision, &e.Content.Recall, &e.Content.F1,
			&cp, &cr, &cf, &e.ContentHash, &createdAt); err != nil {
			return nil, err
		}
		if cp.Valid {
			e.Comments = &dragnet.Score{Precision: cp.Float64, Recall: cr.Float64, F1: cf.Float64}
		}
		if e.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
			return nil, err
		}

		evals = append(evals, &e)
	}

	return evals, rows.Err()
}

const summarizeColumns = `run_id, MIN(extractor), COUNT(*), AVG(precision), AVG(recall), AVG(f1), MIN(created_at)`

// SummarizeRun aggregates the evaluations of a run.
// Returns ENOTFOUND if the run has no evaluations.
func (s *EvaluationService) SummarizeRun(ctx context.Context, runID string) (*dragnet.RunSummary, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+summarizeColumns+`
		FROM evaluations
		WHERE run_id = ?
		GROUP BY run_id
	`, runID)

	sum, err := scanSummary(row)
	if err == sql.ErrNoRows {
		return nil, dragnet.Errorf(dragnet.ENOTFOUND, "run not found")
	}
	return sum, err
}

// ListRuns returns a summary of every run, newest first.
func (s *EvaluationService) ListRuns(ctx context.Context) ([]*dragnet.RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+summarizeColumns+`
		FROM evaluations
		GROUP BY run_id
		ORDER BY MIN(created_at) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*dragnet.RunSummary
	for rows.Next() {
		sum, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, sum)
	}
	return runs, rows.Err()
}

// DeleteRun removes every evaluation of a run.
func (s *EvaluationService) DeleteRun(ctx context.Context, runID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM evaluations WHERE run_id = ?", runID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return dragnet.Errorf(dragnet.ENOTFOUND, "run not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(row scanner) (*dragnet.RunSummary, error) {
	var sum dragnet.RunSummary
	var createdAt string
	if err := row.Scan(&sum.RunID, &sum.Extractor, &sum.Documents,
		&sum.Mean.Precision, &sum.Mean.Recall, &sum.Mean.F1, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if sum.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &sum, nil
}
