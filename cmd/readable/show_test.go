package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/readable"
	main "github.com/fwojciec/readable/cmd/readable"
	"github.com/fwojciec/readable/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows article content with source header", func(t *testing.T) {
		t.Parallel()

		articles := &mock.ArticleService{
			FindArticleByIDFn: func(_ context.Context, id string) (*readable.Article, error) {
				return &readable.Article{
					ID:          id,
					Title:       "Hello World",
					SourceURL:   "https://example.com/hello",
					Content:     "The article body.",
					ExtractedAt: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Articles: articles,
		}

		cmd := &main.ShowCmd{ID: "article-123"}
		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "# Hello World")
		assert.Contains(t, output, "Source: https://example.com/hello")
		assert.Contains(t, output, "Extracted: 2026-08-28")
		assert.Contains(t, output, "The article body.")
	})

	t.Run("reports missing article", func(t *testing.T) {
		t.Parallel()

		articles := &mock.ArticleService{
			FindArticleByIDFn: func(_ context.Context, id string) (*readable.Article, error) {
				return nil, readable.Errorf(readable.ENOTFOUND, "article not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Articles: articles,
		}

		cmd := &main.ShowCmd{ID: "no-such-id"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, readable.ENOTFOUND, readable.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
	})
}
