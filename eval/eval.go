// Package eval scores an extractor against a gold corpus.
package eval

import (
	"context"
	"fmt"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/dragnet"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Runner evaluates Extractor on every document of Corpus.
type Runner struct {
	Corpus    dragnet.Corpus
	Extractor dragnet.Extractor
	Scorer    dragnet.Scorer

	// Name identifies the extractor in stored evaluations.
	Name string

	// Evaluations stores per-document results when set.
	Evaluations dragnet.EvaluationService

	// Comments also scores extracted comments against the gold comments.
	Comments bool

	// Concurrency caps documents processed at once. Defaults to GOMAXPROCS.
	Concurrency int
}

// Failure records a document that could not be evaluated.
type Failure struct {
	DocumentID string
	Err        error
}

// Report is the outcome of one evaluation run.
type Report struct {
	RunID       string
	Evaluations []*dragnet.Evaluation
	Failures    []Failure

	// Mean is the macro-average of per-document content scores.
	Mean dragnet.Score

	// CommentsMean is the macro-average of comment scores, nil unless
	// comments were scored.
	CommentsMean *dragnet.Score
}

// Run evaluates the documents named by ids, or the whole corpus when ids
// is empty. A document that fails to load or extract is reported in
// Failures and does not stop the run; cancellation and storage errors do.
// Evaluations are stored and reported in corpus order.
func (r *Runner) Run(ctx context.Context, ids ...string) (*Report, error) {
	if r.Corpus == nil || r.Extractor == nil || r.Scorer == nil {
		return nil, dragnet.Errorf(dragnet.EINVALID, "corpus, extractor and scorer required")
	}
	if r.Name == "" {
		return nil, dragnet.Errorf(dragnet.EINVALID, "extractor name required")
	}

	if len(ids) == 0 {
		var err error
		if ids, err = r.Corpus.List(ctx); err != nil {
			return nil, err
		}
	}

	limit := r.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	report := &Report{RunID: uuid.New().String()}
	evals := make([]*dragnet.Evaluation, len(ids))
	errs := make([]error, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			evals[i], errs[i] = r.evaluate(gctx, report.RunID, id)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var content, comments []dragnet.Score
	for i, e := range evals {
		if errs[i] != nil {
			report.Failures = append(report.Failures, Failure{DocumentID: ids[i], Err: errs[i]})
			continue
		}
		if r.Evaluations != nil {
			if err := r.Evaluations.CreateEvaluation(ctx, e); err != nil {
				return nil, fmt.Errorf("failed to store evaluation of %q: %w", e.DocumentID, err)
			}
		}
		report.Evaluations = append(report.Evaluations, e)
		content = append(content, e.Content)
		if e.Comments != nil {
			comments = append(comments, *e.Comments)
		}
	}

	report.Mean = dragnet.MeanScore(content)
	if r.Comments {
		m := dragnet.MeanScore(comments)
		report.CommentsMean = &m
	}
	return report, nil
}

func (r *Runner) evaluate(ctx context.Context, runID, id string) (*dragnet.Evaluation, error) {
	doc, err := r.Corpus.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := r.Extractor.Extract(doc.HTML)
	if err != nil {
		return nil, err
	}

	e := &dragnet.Evaluation{
		RunID:       runID,
		DocumentID:  id,
		Extractor:   r.Name,
		Content:     r.Scorer.Score(res.Content, doc.Content),
		ContentHash: hashContent(res.Content),
	}
	if r.Comments {
		s := r.Scorer.Score(res.Comments, doc.Comments)
		e.Comments = &s
	}
	return e, nil
}

// hashContent returns the hex xxHash of extracted text, so runs can be
// compared for identical output without storing it.
func hashContent(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}
