package main

import (
	"fmt"

	"github.com/fwojciec/dragnet"
	"github.com/fwojciec/dragnet/eval"
	"github.com/fwojciec/dragnet/fs"
)

// Run executes the eval command.
func (c *EvalCmd) Run(deps *Dependencies) error {
	opts := c.Options()
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dragnet.ErrorMessage(err))
		return err
	}
	ext, err := newExtractor(c.ModelFlags, opts, deps.logger())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dragnet.ErrorMessage(err))
		return err
	}

	r := &eval.Runner{
		Corpus:      fs.NewCorpus(c.Corpus),
		Extractor:   ext,
		Scorer:      deps.scorer(opts.TokenBudget),
		Name:        extractorName(c.ModelFlags),
		Comments:    opts.Comments,
		Concurrency: c.Concurrency,
	}
	if !c.NoSave {
		r.Evaluations = deps.Evaluations
	}

	report, err := r.Run(deps.Ctx, c.Docs...)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dragnet.ErrorMessage(err))
		return err
	}

	for _, e := range report.Evaluations {
		fmt.Fprintf(deps.Stdout, "%s  precision=%.4f  recall=%.4f  f1=%.4f\n",
			e.DocumentID, e.Content.Precision, e.Content.Recall, e.Content.F1)
	}
	for _, f := range report.Failures {
		fmt.Fprintf(deps.Stderr, "warning: %s: %s\n", f.DocumentID, f.Err)
	}

	fmt.Fprintf(deps.Stdout, "\nRun %s: %d documents, %d failed\n", report.RunID, len(report.Evaluations), len(report.Failures))
	printScore(deps, "content", report.Mean)
	if report.CommentsMean != nil {
		printScore(deps, "comments", *report.CommentsMean)
	}
	return nil
}
