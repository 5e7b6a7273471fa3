// Package readability provides a go-readability baseline extractor used to
// compare dragnet models against the Arc90 algorithm.
package readability

import (
	"strings"

	"github.com/fwojciec/dragnet"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements dragnet.Extractor at compile time.
var _ dragnet.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content text from HTML.
// go-readability does not separate comments, so Comments is always empty.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as text with
// whitespace collapsed.
func (e *Extractor) Extract(rawHTML string) (*dragnet.ExtractResult, error) {
	if rawHTML == "" {
		return nil, dragnet.Errorf(dragnet.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &dragnet.ExtractResult{
		Content: strings.Join(strings.Fields(article.TextContent), " "),
	}, nil
}
