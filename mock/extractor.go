package mock

import "github.com/fwojciec/dragnet"

var _ dragnet.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of dragnet.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*dragnet.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*dragnet.ExtractResult, error) {
	return e.ExtractFn(html)
}
