package mock

import "github.com/fwojciec/dragnet"

var _ dragnet.Parser = (*Parser)(nil)

// Parser is a mock implementation of dragnet.Parser.
type Parser struct {
	ParseFn func(html string) (*dragnet.Document, error)
}

func (p *Parser) Parse(html string) (*dragnet.Document, error) {
	return p.ParseFn(html)
}

var _ dragnet.Segmenter = (*Segmenter)(nil)

// Segmenter is a mock implementation of dragnet.Segmenter.
type Segmenter struct {
	SegmentFn func(doc *dragnet.Document, opts dragnet.Options) ([]dragnet.Block, error)
}

func (s *Segmenter) Segment(doc *dragnet.Document, opts dragnet.Options) ([]dragnet.Block, error) {
	return s.SegmentFn(doc, opts)
}
