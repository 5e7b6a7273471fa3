package fs

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/fwojciec/dragnet"
)

// TrainingWriter writes labeled block features as CSV for an external
// learner. The header row is written before the first record. Each row
// carries the block's matched-token fractions and the 0/1 labels
// thresholded from them.
type TrainingWriter struct {
	w       *csv.Writer
	names   []string
	started bool
}

// NewTrainingWriter creates a TrainingWriter whose feature columns are named
// by names.
func NewTrainingWriter(w io.Writer, names []string) *TrainingWriter {
	return &TrainingWriter{w: csv.NewWriter(w), names: names}
}

// Write appends one row per block of a document.
// Returns EMISMATCH if the feature rows don't match the column names or
// the number of labels.
func (t *TrainingWriter) Write(docID string, m dragnet.FeatureMatrix, labels []dragnet.Label) error {
	if len(m) != len(labels) {
		return dragnet.Errorf(dragnet.EMISMATCH, "document %q has %d feature rows and %d labels", docID, len(m), len(labels))
	}
	if !t.started {
		header := append([]string{"doc_id", "block", "content_fraction", "comment_fraction", "content_label", "comment_label"}, t.names...)
		if err := t.w.Write(header); err != nil {
			return err
		}
		t.started = true
	}

	for i, row := range m {
		if len(row) != len(t.names) {
			return dragnet.Errorf(dragnet.EMISMATCH, "document %q block %d has %d features, want %d", docID, i, len(row), len(t.names))
		}
		l := labels[i]
		rec := make([]string, 0, 6+len(row))
		rec = append(rec, docID, strconv.Itoa(i),
			formatFloat(l.ContentFraction), formatFloat(l.CommentFraction),
			formatBool(l.Content), formatBool(l.Comment))
		for _, v := range row {
			rec = append(rec, formatFloat(v))
		}
		if err := t.w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes buffered rows to the underlying writer.
func (t *TrainingWriter) Flush() error {
	t.w.Flush()
	return t.w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
