package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/dragnet"
	"github.com/fwojciec/dragnet/lcs"
	dragnetslog "github.com/fwojciec/dragnet/slog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Fetcher     dragnet.Fetcher
	Evaluations dragnet.EvaluationService

	// Scorer overrides the token LCS scorer built from command flags.
	Scorer dragnet.Scorer
}

// logger returns the configured logger, or one that discards records.
func (d *Dependencies) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// scorer returns the configured scorer, or a logged LCS scorer with the
// given token budget.
func (d *Dependencies) scorer(budget int) dragnet.Scorer {
	if d.Scorer != nil {
		return d.Scorer
	}
	return dragnetslog.NewLoggingScorer(lcs.NewScorer(budget), d.logger())
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log debug output to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract main content from HTML files or URLs"`
	Score   ScoreCmd   `cmd:"" help:"Score extracted text against gold text"`
	Label   LabelCmd   `cmd:"" help:"Write labeled block features of a corpus as CSV"`
	Eval    EvalCmd    `cmd:"" help:"Evaluate an extractor on a corpus"`
	Runs    RunsCmd    `cmd:"" help:"List stored evaluation runs"`
	Show    ShowCmd    `cmd:"" help:"Show per-document results of a run"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored evaluation run"`
}

// ModelFlags select the extractor and its model files.
type ModelFlags struct {
	Extractor    string   `short:"e" enum:"dragnet,readability,trafilatura" default:"dragnet" help:"Extractor to use (dragnet, readability, trafilatura)"`
	Model        string   `short:"m" type:"existingfile" help:"Content weight model (JSON), required by the dragnet extractor"`
	CommentModel string   `type:"existingfile" help:"Comment weight model (JSON), required with --comments"`
	Parser       string   `enum:"html,goquery" default:"html" help:"Tag-tree parser (html, goquery)"`
	Remove       []string `help:"CSS selectors removed before segmentation (goquery parser only)"`
}

// OptionFlags map onto dragnet.Options.
type OptionFlags struct {
	Comments       bool    `short:"C" help:"Also extract comments"`
	LineWidth      int     `default:"80" help:"Assumed rendered line width for text density"`
	TokenBudget    int     `default:"0" help:"Truncate alignments to this many tokens (0 = unlimited)"`
	LabelThreshold float64 `default:"0.5" help:"Matched-token fraction above which a block is labeled"`
	Separator      string  `help:"Separator between extracted blocks (default: newline)"`

	SmoothingRadius *int     `help:"Half-width of the tag-ratio smoothing window (default: 1)"`
	BlockTags       []string `help:"Elements whose boundaries start a new block (default: HTML block-level elements)"`
}

// Options returns the default options overridden by the flags.
func (f OptionFlags) Options() dragnet.Options {
	opts := dragnet.DefaultOptions()
	opts.Comments = f.Comments
	if f.LineWidth != 0 {
		opts.LineWidth = f.LineWidth
	}
	opts.TokenBudget = f.TokenBudget
	if f.LabelThreshold != 0 {
		opts.LabelThreshold = f.LabelThreshold
	}
	if f.Separator != "" {
		opts.Separator = f.Separator
	}
	if f.SmoothingRadius != nil {
		opts.SmoothingRadius = *f.SmoothingRadius
	}
	if len(f.BlockTags) > 0 {
		opts.BlockTags = f.BlockTags
	}
	return opts
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Inputs      []string      `arg:"" help:"HTML files or http(s) URLs"`
	Concurrency int           `short:"c" default:"4" help:"Inputs processed at once"`
	RateLimit   float64       `default:"1" help:"Maximum fetches per second (0 = unlimited)"`
	Timeout     time.Duration `default:"10s" help:"Fetch timeout"`

	ModelFlags  `embed:""`
	OptionFlags `embed:""`
}

// ScoreCmd is the "score" subcommand.
type ScoreCmd struct {
	Candidate string `arg:"" type:"existingfile" help:"Extracted text file"`
	Gold      string `arg:"" type:"existingfile" help:"Gold text file, optionally with a comments section"`
	Comments  bool   `short:"C" help:"Also score the comments sections"`
	Budget    int    `default:"0" help:"Truncate both texts to this many tokens (0 = unlimited)"`
}

// LabelCmd is the "label" subcommand.
type LabelCmd struct {
	Corpus   string   `arg:"" type:"existingdir" help:"Corpus directory with HTML/ and Corrected/"`
	Features []string `short:"f" help:"Feature families to compute (default: all)"`
	Output   string   `short:"o" help:"Output CSV file (default: stdout)"`

	OptionFlags `embed:""`
}

// EvalCmd is the "eval" subcommand.
type EvalCmd struct {
	Corpus      string   `arg:"" type:"existingdir" help:"Corpus directory with HTML/ and Corrected/"`
	Docs        []string `short:"d" name:"doc" help:"Evaluate only these document IDs (repeatable)"`
	Concurrency int      `short:"c" default:"4" help:"Documents processed at once"`
	NoSave      bool     `help:"Don't store the run in the database"`

	ModelFlags  `embed:""`
	OptionFlags `embed:""`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	RunID string `arg:"" help:"Run ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	RunID string `arg:"" help:"Run ID"`
	Force bool   `help:"Confirm deletion"`
}
