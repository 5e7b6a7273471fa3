package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dragnet"
)

// Ensure LoggingEvaluationService implements dragnet.EvaluationService.
var _ dragnet.EvaluationService = (*LoggingEvaluationService)(nil)

// LoggingEvaluationService wraps an EvaluationService with logging of
// writes and deletions. Reads are delegated silently.
type LoggingEvaluationService struct {
	next   dragnet.EvaluationService
	logger *slog.Logger
}

// NewLoggingEvaluationService creates a new LoggingEvaluationService.
func NewLoggingEvaluationService(next dragnet.EvaluationService, logger *slog.Logger) *LoggingEvaluationService {
	return &LoggingEvaluationService{next: next, logger: logger}
}

func (s *LoggingEvaluationService) CreateEvaluation(ctx context.Context, e *dragnet.Evaluation) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create evaluation",
			"run", e.RunID,
			"document", e.DocumentID,
			"f1", e.Content.F1,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateEvaluation(ctx, e)
}

func (s *LoggingEvaluationService) FindEvaluations(ctx context.Context, filter dragnet.EvaluationFilter) ([]*dragnet.Evaluation, error) {
	return s.next.FindEvaluations(ctx, filter)
}

func (s *LoggingEvaluationService) SummarizeRun(ctx context.Context, runID string) (*dragnet.RunSummary, error) {
	return s.next.SummarizeRun(ctx, runID)
}

func (s *LoggingEvaluationService) ListRuns(ctx context.Context) ([]*dragnet.RunSummary, error) {
	return s.next.ListRuns(ctx)
}

func (s *LoggingEvaluationService) DeleteRun(ctx context.Context, runID string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete run",
			"run", runID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRun(ctx, runID)
}
