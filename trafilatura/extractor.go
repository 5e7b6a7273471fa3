// Package trafilatura provides a go-trafilatura baseline extractor. Unlike
// go-readability, trafilatura separates comments from the main content.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/dragnet"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements dragnet.Extractor at compile time.
var _ dragnet.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content and comment text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns content and comments as text with
// whitespace collapsed.
func (e *Extractor) Extract(rawHTML string) (*dragnet.ExtractResult, error) {
	if rawHTML == "" {
		return nil, dragnet.Errorf(dragnet.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &dragnet.ExtractResult{
		Content:  collapse(result.ContentText),
		Comments: collapse(result.CommentsText),
	}, nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
