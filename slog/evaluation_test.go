package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/dragnet"
	"github.com/fwojciec/dragnet/mock"
	dragnetslog "github.com/fwojciec/dragnet/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingEvaluationService(t *testing.T) {
	t.Parallel()

	t.Run("logs created evaluations", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.EvaluationService{
			CreateEvaluationFn: func(ctx context.Context, e *dragnet.Evaluation) error {
				e.ID = "eval-1"
				return nil
			},
		}

		svc := dragnetslog.NewLoggingEvaluationService(inner, logger)
		e := &dragnet.Evaluation{RunID: "run-1", DocumentID: "doc-1", Content: dragnet.Score{F1: 0.5}}
		require.NoError(t, svc.CreateEvaluation(context.Background(), e))

		assert.Equal(t, "eval-1", e.ID)
		output := buf.String()
		assert.Contains(t, output, "run=run-1")
		assert.Contains(t, output, "document=doc-1")
		assert.Contains(t, output, "f1=0.5")
	})

	t.Run("logs deleted runs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.EvaluationService{
			DeleteRunFn: func(ctx context.Context, runID string) error {
				return dragnet.Errorf(dragnet.ENOTFOUND, "run not found")
			},
		}

		err := dragnetslog.NewLoggingEvaluationService(inner, logger).DeleteRun(context.Background(), "run-9")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "delete run")
		assert.Contains(t, output, "run=run-9")
		assert.Contains(t, output, "run not found")
	})

	t.Run("delegates reads", func(t *testing.T) {
		t.Parallel()

		inner := &mock.EvaluationService{
			ListRunsFn: func(ctx context.Context) ([]*dragnet.RunSummary, error) {
				return []*dragnet.RunSummary{{RunID: "run-1"}}, nil
			},
		}

		runs, err := dragnetslog.NewLoggingEvaluationService(inner, slog.Default()).ListRuns(context.Background())

		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "run-1", runs[0].RunID)
	})
}
