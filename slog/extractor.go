package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/dragnet"
)

// Ensure LoggingExtractor implements dragnet.Extractor.
var _ dragnet.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging of input and
// output sizes.
type LoggingExtractor struct {
	next   dragnet.Extractor
	name   string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. name identifies the
// wrapped extractor in log records.
func NewLoggingExtractor(next dragnet.Extractor, name string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, name: name, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (result *dragnet.ExtractResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"extractor", e.name,
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if result != nil {
			attrs = append(attrs, "content", len(result.Content), "comments", len(result.Comments))
		}
		if err != nil {
			e.logger.Error("extract", append(attrs, "err", err)...)
			return
		}
		e.logger.Debug("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
