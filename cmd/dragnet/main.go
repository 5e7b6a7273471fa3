package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/dragnet"
	dragnethttp "github.com/fwojciec/dragnet/http"
	dragnetslog "github.com/fwojciec/dragnet/slog"
	"github.com/fwojciec/dragnet/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database holding evaluation runs. Opened only by commands
	// that read or write runs.
	DB *sqlite.DB

	// Services for end-to-end testing.
	EvaluationService dragnet.EvaluationService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dragnet"),
		kong.Description("Extract main content from HTML pages with pre-fitted block models."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'dragnet --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cmd == "extract" {
		fetcher := dragnethttp.NewFetcher(
			dragnethttp.WithTimeout(cli.Extract.Timeout),
			dragnethttp.WithRateLimit(cli.Extract.RateLimit),
			dragnethttp.WithUserAgent("dragnet/1.0"),
		)
		defer fetcher.Close()
		deps.Fetcher = dragnetslog.NewLoggingFetcher(fetcher, deps.Logger)
	}

	if needsDB(cmd, cli) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DRAGNET_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.EvaluationService = dragnetslog.NewLoggingEvaluationService(sqlite.NewEvaluationService(m.DB), deps.Logger)
		deps.Evaluations = m.EvaluationService
	}

	return kongCtx.Run(deps)
}

func needsDB(cmd string, cli *CLI) bool {
	switch cmd {
	case "eval":
		return !cli.Eval.NoSave
	case "runs", "show", "delete":
		return true
	}
	return false
}

func defaultDBPath() string {
	if path := os.Getenv("DRAGNET_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "dragnet.db"
	}
	dir := filepath.Join(home, ".dragnet")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "dragnet.db")
}
