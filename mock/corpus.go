package mock

import (
	"context"

	"github.com/fwojciec/dragnet"
)

var _ dragnet.Corpus = (*Corpus)(nil)

// Corpus is a mock implementation of dragnet.Corpus.
type Corpus struct {
	ListFn func(ctx context.Context) ([]string, error)
	LoadFn func(ctx context.Context, id string) (*dragnet.GoldDocument, error)
}

func (c *Corpus) List(ctx context.Context) ([]string, error) {
	return c.ListFn(ctx)
}

func (c *Corpus) Load(ctx context.Context, id string) (*dragnet.GoldDocument, error) {
	return c.LoadFn(ctx, id)
}
