package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/dragnet"
)

// Run executes the score command.
func (c *ScoreCmd) Run(deps *Dependencies) error {
	candidate, err := os.ReadFile(c.Candidate)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	gold, err := os.ReadFile(c.Gold)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	scorer := deps.scorer(c.Budget)
	candContent, candComments := dragnet.SplitGold(string(candidate))
	goldContent, goldComments := dragnet.SplitGold(string(gold))

	printScore(deps, "content", scorer.Score(candContent, goldContent))
	if c.Comments {
		printScore(deps, "comments", scorer.Score(candComments, goldComments))
	}
	return nil
}

func printScore(deps *Dependencies, label string, s dragnet.Score) {
	fmt.Fprintf(deps.Stdout, "%-8s  precision=%.4f  recall=%.4f  f1=%.4f\n", label, s.Precision, s.Recall, s.F1)
}
