package main

import (
	"log/slog"

	"github.com/fwojciec/dragnet"
	"github.com/fwojciec/dragnet/extract"
	"github.com/fwojciec/dragnet/fs"
	"github.com/fwojciec/dragnet/goquery"
	"github.com/fwojciec/dragnet/html"
	"github.com/fwojciec/dragnet/readability"
	dragnetslog "github.com/fwojciec/dragnet/slog"
	"github.com/fwojciec/dragnet/trafilatura"
)

// newExtractor builds the extractor selected by m, wrapped with logging.
func newExtractor(m ModelFlags, opts dragnet.Options, logger *slog.Logger) (dragnet.Extractor, error) {
	var ext dragnet.Extractor
	switch m.Extractor {
	case "", "dragnet":
		e, err := newModelExtractor(m, opts)
		if err != nil {
			return nil, err
		}
		ext = e
	case "readability":
		ext = readability.NewExtractor()
	case "trafilatura":
		ext = trafilatura.NewExtractor()
	default:
		return nil, dragnet.Errorf(dragnet.EINVALID, "unknown extractor %q", m.Extractor)
	}
	return dragnetslog.NewLoggingExtractor(ext, extractorName(m), logger), nil
}

func newModelExtractor(m ModelFlags, opts dragnet.Options) (*extract.Extractor, error) {
	if m.Model == "" {
		return nil, dragnet.Errorf(dragnet.EINVALID, "the dragnet extractor requires --model")
	}
	content, err := fs.LoadModel(m.Model)
	if err != nil {
		return nil, err
	}

	parser, err := newParser(m)
	if err != nil {
		return nil, err
	}

	options := []extract.Option{
		extract.WithOptions(opts),
		extract.WithParser(parser),
	}
	if opts.Comments {
		if m.CommentModel == "" {
			return nil, dragnet.Errorf(dragnet.EINVALID, "--comments requires --comment-model")
		}
		comments, err := fs.LoadModel(m.CommentModel)
		if err != nil {
			return nil, err
		}
		options = append(options, extract.WithCommentModel(comments))
	}
	return extract.New(content, options...)
}

func newParser(m ModelFlags) (dragnet.Parser, error) {
	if m.Parser == "goquery" {
		if len(m.Remove) == 0 {
			return goquery.NewParser(goquery.DefaultExcludeSelectors...)
		}
		return goquery.NewParser(m.Remove...)
	}
	return html.NewParser(), nil
}

func extractorName(m ModelFlags) string {
	if m.Extractor == "" {
		return "dragnet"
	}
	return m.Extractor
}
