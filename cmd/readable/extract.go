package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/readable"
	"golang.org/x/sync/errgroup"
)

// extractResult holds the outcome of processing a single input.
type extractResult struct {
	input   string
	article *readable.Article
	err     error
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	// Stdin mode: single document, nothing to persist against.
	if len(c.Inputs) == 0 {
		if c.Save || c.Out != "" {
			fmt.Fprintf(deps.Stderr, "error: --save and --out require file or URL inputs\n")
			return readable.Errorf(readable.EINVALID, "--save and --out require file or URL inputs")
		}

		html, err := io.ReadAll(deps.Stdin)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}

		article, err := c.process(deps, "stdin", string(html))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
			return err
		}

		fmt.Fprintln(deps.Stdout, article.Content)
		return nil
	}

	// Fan out over inputs, collect results in input order.
	results := make([]extractResult, len(c.Inputs))

	g, gctx := errgroup.WithContext(deps.Ctx)
	if c.Concurrency > 0 {
		g.SetLimit(c.Concurrency)
	}

	for i, input := range c.Inputs {
		g.Go(func() error {
			html, err := c.read(gctx, deps, input)
			if err != nil {
				results[i] = extractResult{input: input, err: err}
				return nil
			}
			article, err := c.process(deps, input, html)
			results[i] = extractResult{input: input, article: article, err: err}
			return nil
		})
	}

	_ = g.Wait()

	var failed int
	for _, result := range results {
		if result.err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", result.input, result.err)
			failed++
			continue
		}

		if c.Save {
			if err := deps.Articles.CreateArticle(deps.Ctx, result.article); err != nil {
				fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", result.input, err)
				failed++
				continue
			}
			fmt.Fprintf(deps.Stdout, "Saved %s (%s)\n", result.input, result.article.ID)
		}
		if deps.Files != nil {
			if err := deps.Files.CreateArticle(deps.Ctx, result.article); err != nil {
				fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", result.input, err)
				failed++
				continue
			}
		}
		if !c.Save && deps.Files == nil {
			fmt.Fprintln(deps.Stdout, result.article.Content)
		}
	}

	if failed == len(c.Inputs) {
		return readable.Errorf(readable.EINTERNAL, "all %d inputs failed", failed)
	}
	return nil
}

// read obtains the raw HTML for an input, fetching URLs and reading
// local paths.
func (c *ExtractCmd) read(ctx context.Context, deps *Dependencies, input string) (string, error) {
	if isURL(input) {
		return deps.Fetcher.Fetch(ctx, input)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// process extracts the main content from raw HTML and assembles an
// article, converting to markdown when requested.
func (c *ExtractCmd) process(deps *Dependencies, source, html string) (*readable.Article, error) {
	result, err := deps.Extract.Extract(html)
	if err != nil {
		return nil, err
	}

	title := result.Title
	if title == "" {
		if meta, err := deps.Metadata.ExtractMetadata(html); err == nil {
			title = meta.Title
		}
	}

	content := result.ContentHTML
	if c.Markdown || c.Save || c.Out != "" {
		content, err = deps.Convert.Convert(content)
		if err != nil {
			return nil, err
		}
	}

	return &readable.Article{
		SourceURL: source,
		Title:     title,
		Content:   content,
	}, nil
}

// isURL reports whether an input should be fetched rather than read
// from disk.
func isURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}
