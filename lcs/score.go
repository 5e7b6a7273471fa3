package lcs

import "github.com/fwojciec/dragnet"

// Ensure Scorer implements dragnet.Scorer at compile time.
var _ dragnet.Scorer = (*Scorer)(nil)

// Scorer scores candidate text against gold text by token LCS.
type Scorer struct {
	// Budget truncates both texts to this many tokens. Zero is unlimited.
	Budget int
}

// NewScorer creates a new Scorer with the given token budget.
func NewScorer(budget int) *Scorer {
	return &Scorer{Budget: budget}
}

// Score returns precision (matched / candidate tokens), recall
// (matched / gold tokens) and F1 over the LCS of the two token sequences.
// Because the measure is a subsequence match, whitespace and chunking
// differences between the texts do not affect it.
func (s *Scorer) Score(candidate, gold string) dragnet.Score {
	return Score(candidate, gold, s.Budget)
}

// Score is the function form of Scorer.Score.
func Score(candidate, gold string, budget int) dragnet.Score {
	c := dragnet.Tokenize(candidate)
	g := dragnet.Tokenize(gold)
	al := Align(c, g, budget)
	if budget > 0 {
		c = c[:min(len(c), budget)]
		g = g[:min(len(g), budget)]
	}
	return dragnet.NewScore(al.Length, len(c), len(g))
}
