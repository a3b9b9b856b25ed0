package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/readable"
	"github.com/fwojciec/readable/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "simple path",
			url:  "https://example.com/posts/hello-world",
			want: "posts/hello-world.md",
		},
		{
			name: "trailing slash becomes index",
			url:  "https://example.com/posts/",
			want: "posts/index.md",
		},
		{
			name: "root path becomes index",
			url:  "https://example.com/",
			want: "index.md",
		},
		{
			name: "no trailing slash",
			url:  "https://example.com/posts",
			want: "posts.md",
		},
		{
			name: "ignores query string",
			url:  "https://example.com/posts/hello?ref=feed",
			want: "posts/hello.md",
		},
		{
			name: "ignores fragment",
			url:  "https://example.com/posts/hello#comments",
			want: "posts/hello.md",
		},
		{
			name: "root without trailing slash",
			url:  "https://example.com",
			want: "index.md",
		},
		{
			name: "deep nesting",
			url:  "https://example.com/a/b/c/d/e/f",
			want: "a/b/c/d/e/f.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatArticle(t *testing.T) {
	t.Parallel()

	article := &readable.Article{
		SourceURL:   "https://example.com/posts/hello",
		Title:       "Hello",
		Content:     "# Hello\n\nBody text.",
		ExtractedAt: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	}

	got := fs.FormatArticle(article)

	assert.Contains(t, got, "source: https://example.com/posts/hello")
	assert.Contains(t, got, "title: Hello")
	assert.Contains(t, got, "extracted: 2026-08-28")
	assert.Contains(t, got, "# Hello\n\nBody text.")
	assert.True(t, len(got) > 0 && got[0] == '-', "should start with frontmatter")
}

func TestWriter_CreateArticle(t *testing.T) {
	t.Parallel()

	t.Run("writes markdown file with frontmatter", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writer := fs.NewWriter(dir)

		article := &readable.Article{
			SourceURL:   "https://example.com/posts/hello",
			Title:       "Hello",
			Content:     "Body text.",
			ExtractedAt: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
		}

		err := writer.CreateArticle(context.Background(), article)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "posts", "hello.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "title: Hello")
		assert.Contains(t, string(data), "Body text.")
	})

	t.Run("creates nested directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writer := fs.NewWriter(dir)

		article := &readable.Article{
			SourceURL: "https://example.com/a/b/c/post",
			Content:   "deep",
		}

		err := writer.CreateArticle(context.Background(), article)
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "a", "b", "c", "post.md"))
		require.NoError(t, err)
	})

	t.Run("returns error for invalid article", func(t *testing.T) {
		t.Parallel()

		writer := fs.NewWriter(t.TempDir())

		err := writer.CreateArticle(context.Background(), &readable.Article{})
		require.Error(t, err)
		assert.Equal(t, readable.EINVALID, readable.ErrorCode(err))
	})
}
