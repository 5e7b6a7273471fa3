package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/dragnet"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	runs, err := deps.Evaluations.ListRuns(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dragnet.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'dragnet eval' to create one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-11s  %4d docs  f1=%.4f\n",
			r.RunID, r.CreatedAt.Local().Format(time.DateTime), r.Extractor, r.Documents, r.Mean.F1)
	}
	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	sum, err := deps.Evaluations.SummarizeRun(deps.Ctx, c.RunID)
	if dragnet.ErrorCode(err) == dragnet.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'dragnet runs' to see available runs.\n", c.RunID)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dragnet.ErrorMessage(err))
		return err
	}

	evals, err := deps.Evaluations.FindEvaluations(deps.Ctx, dragnet.EvaluationFilter{RunID: &c.RunID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dragnet.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Run %s (%s, %d documents)\n", sum.RunID, sum.Extractor, sum.Documents)
	for _, e := range evals {
		line := fmt.Sprintf("%s  precision=%.4f  recall=%.4f  f1=%.4f", e.DocumentID, e.Content.Precision, e.Content.Recall, e.Content.F1)
		if e.Comments != nil {
			line += fmt.Sprintf("  comments_f1=%.4f", e.Comments.F1)
		}
		fmt.Fprintln(deps.Stdout, line)
	}
	printScore(deps, "mean", sum.Mean)
	return nil
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return dragnet.Errorf(dragnet.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Evaluations.DeleteRun(deps.Ctx, c.RunID); err != nil {
		if dragnet.ErrorCode(err) == dragnet.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'dragnet runs' to see available runs.\n", c.RunID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", dragnet.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %s\n", c.RunID)
	return nil
}
