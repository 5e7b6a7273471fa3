// Package extract runs the dragnet pipeline: segment a document into
// blocks, compute block features, classify blocks with pre-fitted models,
// and assemble the content blocks into text.
package extract

import (
	"context"
	"runtime"
	"strings"

	"github.com/fwojciec/dragnet"
	"github.com/fwojciec/dragnet/blockify"
	"github.com/fwojciec/dragnet/features"
	"github.com/fwojciec/dragnet/html"
	"golang.org/x/sync/errgroup"
)

// Ensure Extractor implements dragnet.Extractor at compile time.
var _ dragnet.Extractor = (*Extractor)(nil)

// Extractor extracts content with a pre-fitted content model and an
// optional comment model. An Extractor is immutable after New and safe for
// concurrent use; each call works on its own document.
type Extractor struct {
	parser    dragnet.Parser
	segmenter dragnet.Segmenter
	registry  dragnet.FeatureRegistry
	opts      dragnet.Options

	content  *pass
	comments *pass

	commentModel *dragnet.WeightModel
}

// pass is one compiled classification pass.
type pass struct {
	classifier *dragnet.Classifier
	features   dragnet.FeatureSet
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithParser sets the parser used by Extract. Defaults to html.Parser.
func WithParser(p dragnet.Parser) Option {
	return func(e *Extractor) {
		e.parser = p
	}
}

// WithSegmenter sets the block segmenter. Defaults to blockify.Segmenter.
func WithSegmenter(s dragnet.Segmenter) Option {
	return func(e *Extractor) {
		e.segmenter = s
	}
}

// WithFeatures sets the registry that resolves model feature families.
// Defaults to features.NewRegistry.
func WithFeatures(r dragnet.FeatureRegistry) Option {
	return func(e *Extractor) {
		e.registry = r
	}
}

// WithOptions sets the extraction options. Defaults to dragnet.DefaultOptions.
func WithOptions(opts dragnet.Options) Option {
	return func(e *Extractor) {
		e.opts = opts
	}
}

// WithCommentModel sets the model of the comment pass. The pass only runs
// when Options.Comments is set.
func WithCommentModel(m *dragnet.WeightModel) Option {
	return func(e *Extractor) {
		e.commentModel = m
	}
}

// New compiles the content model and returns an Extractor.
// Returns EINVALID for invalid models or options, ENOTFOUND for unknown
// feature families, and EMISMATCH if a model's dimensionality disagrees
// with its feature families.
func New(content *dragnet.WeightModel, opts ...Option) (*Extractor, error) {
	e := &Extractor{
		parser:    html.NewParser(),
		segmenter: blockify.NewSegmenter(),
		registry:  features.NewRegistry(),
		opts:      dragnet.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.opts.Validate(); err != nil {
		return nil, err
	}

	var err error
	if e.content, err = e.compile(content); err != nil {
		return nil, err
	}
	if e.opts.Comments {
		if e.commentModel == nil {
			return nil, dragnet.Errorf(dragnet.EINVALID, "comment extraction requires a comment model")
		}
		if e.comments, err = e.compile(e.commentModel); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Extractor) compile(m *dragnet.WeightModel) (*pass, error) {
	c, err := dragnet.NewClassifier(m)
	if err != nil {
		return nil, err
	}

	names := c.Features()
	if len(names) == 0 {
		names = features.DefaultFamilies
	}
	set, err := dragnet.ResolveFeatures(e.registry, names)
	if err != nil {
		return nil, err
	}

	if dim := set.Dim(e.opts); dim != c.Dim() {
		return nil, dragnet.Errorf(dragnet.EMISMATCH, "features %s produce %d dimensions, model expects %d",
			strings.Join(names, "+"), dim, c.Dim())
	}
	return &pass{classifier: c, features: set}, nil
}

// Options returns the extractor's options.
func (e *Extractor) Options() dragnet.Options {
	return e.opts
}

// Extract parses rawHTML and extracts its content.
func (e *Extractor) Extract(rawHTML string) (*dragnet.ExtractResult, error) {
	doc, err := e.parser.Parse(rawHTML)
	if err != nil {
		return nil, err
	}
	return e.ExtractDocument(doc)
}

// ExtractDocument extracts the content of a parsed document. A document
// without blocks yields an empty result and no error.
func (e *Extractor) ExtractDocument(doc *dragnet.Document) (*dragnet.ExtractResult, error) {
	a, err := e.Analyze(doc)
	if err != nil {
		return nil, err
	}
	res := &dragnet.ExtractResult{Content: Assemble(a.Blocks, a.Content, e.opts.Separator)}
	if a.Comments != nil {
		res.Comments = Assemble(a.Blocks, a.Comments, e.opts.Separator)
	}
	return res, nil
}

// ExtractAll extracts independent documents concurrently, at most limit at
// a time (GOMAXPROCS when limit <= 0). Results are in input order. The
// first failure cancels documents not yet started and is returned.
func (e *Extractor) ExtractAll(ctx context.Context, docs []*dragnet.Document, limit int) ([]*dragnet.ExtractResult, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	results := make([]*dragnet.ExtractResult, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := e.ExtractDocument(doc)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Analysis holds the intermediate results of one extraction.
type Analysis struct {
	Blocks   []dragnet.Block
	Features dragnet.FeatureMatrix

	// Content and Comments hold one decision per block. Comments is nil
	// unless the comment pass ran.
	Content  []bool
	Comments []bool
}

// Analyze segments doc, computes features and classifies every block.
func (e *Extractor) Analyze(doc *dragnet.Document) (*Analysis, error) {
	blocks, err := e.segmenter.Segment(doc, e.opts)
	if err != nil {
		return nil, err
	}
	a := &Analysis{Blocks: blocks}
	if len(blocks) == 0 {
		a.Content = []bool{}
		if e.comments != nil {
			a.Comments = []bool{}
		}
		return a, nil
	}

	if a.Features, a.Content, err = e.content.run(blocks, e.opts); err != nil {
		return nil, err
	}
	if e.comments != nil {
		if _, a.Comments, err = e.comments.run(blocks, e.opts); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (p *pass) run(blocks []dragnet.Block, opts dragnet.Options) (dragnet.FeatureMatrix, []bool, error) {
	m, err := p.features.Extract(blocks, opts)
	if err != nil {
		return nil, nil, err
	}
	labels, err := p.classifier.ClassifyAll(m)
	if err != nil {
		return nil, nil, err
	}
	return m, labels, nil
}

// Assemble joins, in document order, the text of every block whose
// decision is true.
func Assemble(blocks []dragnet.Block, keep []bool, sep string) string {
	var parts []string
	for i := range blocks {
		if i < len(keep) && keep[i] {
			parts = append(parts, blocks[i].Text)
		}
	}
	return strings.Join(parts, sep)
}

// Extract is the one-shot form of the pipeline: it compiles the models
// and extracts doc using opts. comments may be nil when opts.Comments is
// false.
func Extract(doc *dragnet.Document, content, comments *dragnet.WeightModel, opts dragnet.Options) (*dragnet.ExtractResult, error) {
	e, err := New(content, WithOptions(opts), WithCommentModel(comments))
	if err != nil {
		return nil, err
	}
	return e.ExtractDocument(doc)
}
