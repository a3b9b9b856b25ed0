package main

import (
	"context"
	"io"

	"github.com/fwojciec/readable"
	"github.com/fwojciec/readable/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Articles readable.ArticleService
	Fetcher  readable.Fetcher
	Extract  readable.Extractor
	Metadata readable.MetadataExtractor
	Convert  readable.Converter
	Files    readable.ArticleWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract main content from HTML files, URLs or stdin"`
	List    ListCmd    `cmd:"" help:"List saved articles"`
	Show    ShowCmd    `cmd:"" help:"Show a saved article"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved article"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Inputs        []string `arg:"" optional:"" help:"HTML files or URLs (reads stdin if none given)"`
	Markdown      bool     `short:"m" help:"Convert extracted content to Markdown"`
	Save          bool     `short:"s" help:"Save extracted articles to the database"`
	Out           string   `short:"o" help:"Write extracted articles as markdown files to this directory"`
	MinTextLength int      `default:"25" help:"Minimum paragraph length considered for scoring"`
	RetryLength   int      `default:"250" help:"Minimum acceptable extraction length before a lenient retry"`
	Concurrency   int      `short:"c" default:"4" help:"Concurrent input limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Article ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Article ID"`
	Force bool   `help:"Confirm deletion"`
}
