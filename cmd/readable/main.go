package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/readable"
	"github.com/fwojciec/readable/fs"
	"github.com/fwojciec/readable/goquery"
	"github.com/fwojciec/readable/htmltomarkdown"
	readablehttp "github.com/fwojciec/readable/http"
	"github.com/fwojciec/readable/readability"
	readableslog "github.com/fwojciec/readable/slog"
	"github.com/fwojciec/readable/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ArticleService readable.ArticleService
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
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("readable"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'readable --help' to see available commands")
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

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set READABLE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ArticleService = sqlite.NewArticleService(m.DB)
	deps.DB = m.DB
	deps.Articles = m.ArticleService

	// Wire command-specific dependencies
	if cmd == "extract" {
		var extractor readable.Extractor = readability.NewExtractor(
			readability.WithMinTextLength(cli.Extract.MinTextLength),
			readability.WithRetryLength(cli.Extract.RetryLength),
			readability.WithLogger(logger),
		)
		var fetcher readable.Fetcher = readablehttp.NewFetcher(
			readablehttp.WithLimiter(readablehttp.NewDomainLimiter(1.0)),
		)
		if cli.Verbose {
			extractor = readableslog.NewLoggingExtractor(extractor, logger)
			fetcher = readableslog.NewLoggingFetcher(fetcher, logger)
		}
		defer fetcher.Close()

		deps.Extract = extractor
		deps.Fetcher = fetcher
		deps.Metadata = goquery.NewMetaExtractor()
		deps.Convert = htmltomarkdown.NewConverter()
		if cli.Extract.Out != "" {
			deps.Files = fs.NewWriter(cli.Extract.Out)
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("READABLE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "readable.db"
	}
	dir := filepath.Join(home, ".readable")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "readable.db")
}
