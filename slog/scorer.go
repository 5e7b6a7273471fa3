package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/dragnet"
)

// Ensure LoggingScorer implements dragnet.Scorer.
var _ dragnet.Scorer = (*LoggingScorer)(nil)

// LoggingScorer wraps a Scorer with debug logging.
type LoggingScorer struct {
	next   dragnet.Scorer
	logger *slog.Logger
}

// NewLoggingScorer creates a new LoggingScorer.
func NewLoggingScorer(next dragnet.Scorer, logger *slog.Logger) *LoggingScorer {
	return &LoggingScorer{next: next, logger: logger}
}

// Score delegates to the wrapped scorer and logs the result.
func (s *LoggingScorer) Score(candidate, gold string) (score dragnet.Score) {
	defer func(begin time.Time) {
		s.logger.Debug("score",
			"candidate", len(candidate),
			"gold", len(gold),
			"precision", score.Precision,
			"recall", score.Recall,
			"f1", score.F1,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Score(candidate, gold)
}
