package mock

import "github.com/fwojciec/dragnet"

var _ dragnet.Scorer = (*Scorer)(nil)

// Scorer is a mock implementation of dragnet.Scorer.
type Scorer struct {
	ScoreFn func(candidate, gold string) dragnet.Score
}

func (s *Scorer) Score(candidate, gold string) dragnet.Score {
	return s.ScoreFn(candidate, gold)
}
