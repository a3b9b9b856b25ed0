// Package fs provides file-based storage for extracted articles.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/readable"
)

// URLToPath converts an article URL to a relative file path.
// Example: https://example.com/posts/hello-world → posts/hello-world.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Handle root or trailing slash → index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	// Remove leading slash
	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.md in that directory
	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	// Otherwise append .md
	return path + ".md", nil
}

// FormatArticle formats an article with YAML frontmatter.
func FormatArticle(article *readable.Article) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(article.SourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(article.Title)
	b.WriteString("\nextracted: ")
	b.WriteString(article.ExtractedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(article.Content)
	return b.String()
}

// Ensure Writer implements readable.ArticleWriter at compile time.
var _ readable.ArticleWriter = (*Writer)(nil)

// Writer writes articles as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateArticle writes an article to disk as a markdown file.
func (w *Writer) CreateArticle(ctx context.Context, article *readable.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(article.SourceURL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content := FormatArticle(article)
	return os.WriteFile(fullPath, []byte(content), 0644)
}
