package dragnet

import (
	"context"
	"time"
)

// Evaluation is the score of one extractor on one gold document.
type Evaluation struct {
	ID          string    `json:"id"`
	RunID       string    `json:"runId"`
	DocumentID  string    `json:"documentId"`
	Extractor   string    `json:"extractor"`
	Content     Score     `json:"content"`
	Comments    *Score    `json:"comments,omitempty"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the evaluation contains invalid fields.
func (e *Evaluation) Validate() error {
	if e.RunID == "" {
		return Errorf(EINVALID, "evaluation run ID required")
	}
	if e.DocumentID == "" {
		return Errorf(EINVALID, "evaluation document ID required")
	}
	if e.Extractor == "" {
		return Errorf(EINVALID, "evaluation extractor required")
	}
	return nil
}

// RunSummary aggregates the evaluations of one run.
type RunSummary struct {
	RunID     string `json:"runId"`
	Extractor string `json:"extractor"`
	Documents int    `json:"documents"`

	// Mean is the macro-average of per-document content scores.
	Mean Score `json:"mean"`

	CreatedAt time.Time `json:"createdAt"`
}

// EvaluationService represents a service for managing evaluation results.
type EvaluationService interface {
	// CreateEvaluation stores a new evaluation, assigning its ID and timestamp.
	CreateEvaluation(ctx context.Context, e *Evaluation) error

	// FindEvaluations retrieves evaluations matching the filter.
	FindEvaluations(ctx context.Context, filter EvaluationFilter) ([]*Evaluation, error)

	// SummarizeRun aggregates all evaluations of a run.
	// Returns ENOTFOUND if the run has no evaluations.
	SummarizeRun(ctx context.Context, runID string) (*RunSummary, error)

	// ListRuns returns a summary of every run, newest first.
	ListRuns(ctx context.Context) ([]*RunSummary, error)

	// DeleteRun removes all evaluations of a run.
	// Returns ENOTFOUND if the run has no evaluations.
	DeleteRun(ctx context.Context, runID string) error
}

// EvaluationFilter represents a filter for FindEvaluations.
type EvaluationFilter struct {
	RunID      *string `json:"runId"`
	DocumentID *string `json:"documentId"`
	Extractor  *string `json:"extractor"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
