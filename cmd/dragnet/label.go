package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/dragnet"
	"github.com/fwojciec/dragnet/blockify"
	"github.com/fwojciec/dragnet/features"
	"github.com/fwojciec/dragnet/fs"
	"github.com/fwojciec/dragnet/html"
	"github.com/fwojciec/dragnet/lcs"
)

// Run executes the label command.
func (c *LabelCmd) Run(deps *Dependencies) error {
	opts := c.Options()
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dragnet.ErrorMessage(err))
		return err
	}

	names := c.Features
	if len(names) == 0 {
		names = features.DefaultFamilies
	}
	set, err := dragnet.ResolveFeatures(features.NewRegistry(), names)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dragnet.ErrorMessage(err))
		return err
	}

	out := deps.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return err
		}
		defer f.Close()
		out = f
	}

	corpus := fs.NewCorpus(c.Corpus)
	ids, err := corpus.List(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dragnet.ErrorMessage(err))
		return err
	}

	written, err := c.write(deps, out, corpus, ids, set, opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	fmt.Fprintf(deps.Stderr, "Labeled %d of %d documents\n", written, len(ids))
	return nil
}

func (c *LabelCmd) write(deps *Dependencies, out io.Writer, corpus *fs.Corpus, ids []string, set dragnet.FeatureSet, opts dragnet.Options) (int, error) {
	parser := html.NewParser()
	segmenter := blockify.NewSegmenter()
	w := fs.NewTrainingWriter(out, set.Names(opts))

	written := 0
	for _, id := range ids {
		if err := deps.Ctx.Err(); err != nil {
			return written, err
		}
		gold, err := corpus.Load(deps.Ctx, id)
		if err != nil {
			return written, err
		}

		doc, err := parser.Parse(gold.HTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: skipping %s: %s\n", id, dragnet.ErrorMessage(err))
			continue
		}
		blocks, err := segmenter.Segment(doc, opts)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: skipping %s: %s\n", id, dragnet.ErrorMessage(err))
			continue
		}
		m, err := set.Extract(blocks, opts)
		if err != nil {
			return written, err
		}
		labels := lcs.LabelBlocks(blocks, gold.Content, gold.Comments, opts)
		if err := w.Write(id, m, labels); err != nil {
			return written, err
		}
		written++
	}
	return written, w.Flush()
}
