package mock

import "github.com/fwojciec/dragnet"

var _ dragnet.FeatureExtractor = (*FeatureExtractor)(nil)

// FeatureExtractor is a mock implementation of dragnet.FeatureExtractor.
type FeatureExtractor struct {
	NameFn    func() string
	NamesFn   func(opts dragnet.Options) []string
	ExtractFn func(blocks []dragnet.Block, opts dragnet.Options) (dragnet.FeatureMatrix, error)
}

func (f *FeatureExtractor) Name() string {
	return f.NameFn()
}

func (f *FeatureExtractor) Names(opts dragnet.Options) []string {
	return f.NamesFn(opts)
}

func (f *FeatureExtractor) Extract(blocks []dragnet.Block, opts dragnet.Options) (dragnet.FeatureMatrix, error) {
	return f.ExtractFn(blocks, opts)
}

var _ dragnet.FeatureRegistry = (*FeatureRegistry)(nil)

// FeatureRegistry is a mock implementation of dragnet.FeatureRegistry.
type FeatureRegistry struct {
	GetFn  func(name string) dragnet.FeatureExtractor
	ListFn func() []string
}

func (r *FeatureRegistry) Get(name string) dragnet.FeatureExtractor {
	return r.GetFn(name)
}

func (r *FeatureRegistry) List() []string {
	return r.ListFn()
}
