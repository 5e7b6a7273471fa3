package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/dragnet"
	"golang.org/x/sync/errgroup"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	opts := c.Options()
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dragnet.ErrorMessage(err))
		return err
	}
	ext, err := newExtractor(c.ModelFlags, opts, deps.logger())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dragnet.ErrorMessage(err))
		return err
	}

	results := make([]*dragnet.ExtractResult, len(c.Inputs))
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(max(c.Concurrency, 1))
	for i, input := range c.Inputs {
		g.Go(func() error {
			raw, err := c.read(ctx, deps, input)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			res, err := ext.Extract(raw)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	for i, res := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(deps.Stdout)
			}
			fmt.Fprintf(deps.Stdout, "==> %s <==\n", c.Inputs[i])
		}
		writeResult(deps, res, opts.Comments)
	}
	return nil
}

func (c *ExtractCmd) read(ctx context.Context, deps *Dependencies, input string) (string, error) {
	if isURL(input) {
		if deps.Fetcher == nil {
			return "", dragnet.Errorf(dragnet.EINVALID, "fetching URLs is not available")
		}
		return deps.Fetcher.Fetch(ctx, input)
	}
	b, err := os.ReadFile(input)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// writeResult prints content and, when requested, the comments section in
// the corpus gold-file format.
func writeResult(deps *Dependencies, res *dragnet.ExtractResult, comments bool) {
	if res.Content != "" {
		fmt.Fprintln(deps.Stdout, res.Content)
	}
	if comments {
		fmt.Fprintln(deps.Stdout, dragnet.CommentsMarker)
		if res.Comments != "" {
			fmt.Fprintln(deps.Stdout, res.Comments)
		}
	}
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
