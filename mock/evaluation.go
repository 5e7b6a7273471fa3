package mock

import (
	"context"

	"github.com/fwojciec/dragnet"
)

var _ dragnet.EvaluationService = (*EvaluationService)(nil)

// EvaluationService is a mock implementation of dragnet.EvaluationService.
type EvaluationService struct {
	CreateEvaluationFn func(ctx context.Context, e *dragnet.Evaluation) error
	FindEvaluationsFn  func(ctx context.Context, filter dragnet.EvaluationFilter) ([]*dragnet.Evaluation, error)
	SummarizeRunFn     func(ctx context.Context, runID string) (*dragnet.RunSummary, error)
	ListRunsFn         func(ctx context.Context) ([]*dragnet.RunSummary, error)
	DeleteRunFn        func(ctx context.Context, runID string) error
}

func (s *EvaluationService) CreateEvaluation(ctx context.Context, e *dragnet.Evaluation) error {
	return s.CreateEvaluationFn(ctx, e)
}

func (s *EvaluationService) FindEvaluations(ctx context.Context, filter dragnet.EvaluationFilter) ([]*dragnet.Evaluation, error) {
	return s.FindEvaluationsFn(ctx, filter)
}

func (s *EvaluationService) SummarizeRun(ctx context.Context, runID string) (*dragnet.RunSummary, error) {
	return s.SummarizeRunFn(ctx, runID)
}

func (s *EvaluationService) ListRuns(ctx context.Context) ([]*dragnet.RunSummary, error) {
	return s.ListRunsFn(ctx)
}

func (s *EvaluationService) DeleteRun(ctx context.Context, runID string) error {
	return s.DeleteRunFn(ctx, runID)
}
