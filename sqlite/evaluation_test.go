package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/dragnet"
	"github.com/fwojciec/dragnet/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvaluation(runID, docID string, f1 float64) *dragnet.Evaluation {
	return &dragnet.Evaluation{
		RunID:       runID,
		DocumentID:  docID,
		Extractor:   "dragnet",
		Content:     dragnet.Score{Precision: f1, Recall: f1, F1: f1},
		ContentHash: "00000000000000ff",
	}
}

func TestEvaluationService_CreateEvaluation(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewEvaluationService(setupTestDB(t))
		e := newEvaluation("run-1", "doc-1", 0.5)

		require.NoError(t, svc.CreateEvaluation(context.Background(), e))
		assert.NotEmpty(t, e.ID)
		assert.False(t, e.CreatedAt.IsZero())
	})

	t.Run("returns EINVALID for missing fields", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewEvaluationService(setupTestDB(t))

		err := svc.CreateEvaluation(context.Background(), &dragnet.Evaluation{RunID: "run-1"})
		require.Error(t, err)
		assert.Equal(t, dragnet.EINVALID, dragnet.ErrorCode(err))
	})

	t.Run("returns EINVALID for duplicate document in a run", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewEvaluationService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.CreateEvaluation(ctx, newEvaluation("run-1", "doc-1", 0.5)))

		err := svc.CreateEvaluation(ctx, newEvaluation("run-1", "doc-1", 0.7))
		require.Error(t, err)
		assert.Equal(t, dragnet.EINVALID, dragnet.ErrorCode(err))
	})
}

func TestEvaluationService_FindEvaluations(t *testing.T) {
	t.Parallel()

	t.Run("round-trips comment scores", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewEvaluationService(setupTestDB(t))
		ctx := context.Background()

		withComments := newEvaluation("run-1", "doc-a", 0.8)
		withComments.Comments = &dragnet.Score{Precision: 0.25, Recall: 0.5, F1: 1.0 / 3}
		require.NoError(t, svc.CreateEvaluation(ctx, withComments))
		require.NoError(t, svc.CreateEvaluation(ctx, newEvaluation("run-1", "doc-b", 0.4)))

		runID := "run-1"
		evals, err := svc.FindEvaluations(ctx, dragnet.EvaluationFilter{RunID: &runID})
		require.NoError(t, err)
		require.Len(t, evals, 2)

		assert.Equal(t, "doc-a", evals[0].DocumentID)
		require.NotNil(t, evals[0].Comments)
		assert.InDelta(t, 0.25, evals[0].Comments.Precision, 1e-9)
		assert.InDelta(t, 0.8, evals[0].Content.F1, 1e-9)
		assert.Equal(t, "00000000000000ff", evals[0].ContentHash)
		assert.True(t, withComments.CreatedAt.Equal(evals[0].CreatedAt))

		assert.Equal(t, "doc-b", evals[1].DocumentID)
		assert.Nil(t, evals[1].Comments)
	})

	t.Run("filters by document and paginates", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewEvaluationService(setupTestDB(t))
		ctx := context.Background()
		for _, run := range []string{"run-1", "run-2", "run-3"} {
			require.NoError(t, svc.CreateEvaluation(ctx, newEvaluation(run, "doc-a", 0.5)))
			require.NoError(t, svc.CreateEvaluation(ctx, newEvaluation(run, "doc-b", 0.5)))
		}

		docID := "doc-a"
		evals, err := svc.FindEvaluations(ctx, dragnet.EvaluationFilter{DocumentID: &docID})
		require.NoError(t, err)
		assert.Len(t, evals, 3)

		evals, err = svc.FindEvaluations(ctx, dragnet.EvaluationFilter{Offset: 4})
		require.NoError(t, err)
		assert.Len(t, evals, 2)

		evals, err = svc.FindEvaluations(ctx, dragnet.EvaluationFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, evals, 1)
	})
}

func TestEvaluationService_SummarizeRun(t *testing.T) {
	t.Parallel()

	t.Run("averages per-document scores", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewEvaluationService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.CreateEvaluation(ctx, newEvaluation("run-1", "doc-a", 1.0)))
		require.NoError(t, svc.CreateEvaluation(ctx, newEvaluation("run-1", "doc-b", 0.5)))
		require.NoError(t, svc.CreateEvaluation(ctx, newEvaluation("run-2", "doc-a", 0.0)))

		sum, err := svc.SummarizeRun(ctx, "run-1")
		require.NoError(t, err)
		assert.Equal(t, "run-1", sum.RunID)
		assert.Equal(t, "dragnet", sum.Extractor)
		assert.Equal(t, 2, sum.Documents)
		assert.InDelta(t, 0.75, sum.Mean.F1, 1e-9)
		assert.False(t, sum.CreatedAt.IsZero())
	})

	t.Run("returns ENOTFOUND for unknown run", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewEvaluationService(setupTestDB(t))

		_, err := svc.SummarizeRun(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, dragnet.ENOTFOUND, dragnet.ErrorCode(err))
	})
}

func TestEvaluationService_ListRuns(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewEvaluationService(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, svc.CreateEvaluation(ctx, newEvaluation("older", "doc-a", 1.0)))
	require.NoError(t, svc.CreateEvaluation(ctx, newEvaluation("newer", "doc-a", 0.5)))

	runs, err := svc.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "newer", runs[0].RunID)
	assert.Equal(t, "older", runs[1].RunID)
}

func TestEvaluationService_DeleteRun(t *testing.T) {
	t.Parallel()

	t.Run("removes every evaluation of the run", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewEvaluationService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.CreateEvaluation(ctx, newEvaluation("run-1", "doc-a", 1.0)))
		require.NoError(t, svc.CreateEvaluation(ctx, newEvaluation("run-1", "doc-b", 1.0)))
		require.NoError(t, svc.CreateEvaluation(ctx, newEvaluation("run-2", "doc-a", 1.0)))

		require.NoError(t, svc.DeleteRun(ctx, "run-1"))

		evals, err := svc.FindEvaluations(ctx, dragnet.EvaluationFilter{})
		require.NoError(t, err)
		require.Len(t, evals, 1)
		assert.Equal(t, "run-2", evals[0].RunID)
	})

	t.Run("returns ENOTFOUND for unknown run", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewEvaluationService(setupTestDB(t))

		err := svc.DeleteRun(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, dragnet.ENOTFOUND, dragnet.ErrorCode(err))
	})
}
