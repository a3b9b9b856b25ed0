package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/readable"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ readable.ArticleService = (*ArticleService)(nil)

// ArticleService implements readable.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateArticle stores a new article. The ID, content hash and
// extraction timestamp are assigned here.
func (s *ArticleService) CreateArticle(ctx context.Context, article *readable.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	article.ExtractedAt = time.Now().UTC()
	article.ContentHash = hashContent(article.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (id, source_url, title, content, content_hash, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, article.ID, article.SourceURL, article.Title, article.Content, article.ContentHash,
		article.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*readable.Article, error) {
	var article readable.Article
	var extractedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, content, content_hash, extracted_at
		FROM articles
		WHERE id = ?
	`, id).Scan(&article.ID, &article.SourceURL, &article.Title,
		&article.Content, &article.ContentHash, &extractedAt)

	if err == sql.ErrNoRows {
		return nil, readable.Errorf(readable.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}

	article.ExtractedAt, err = time.Parse(time.RFC3339, extractedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse extracted_at: %w", err)
	}

	return &article, nil
}

// FindArticles retrieves articles matching the filter, most recently
// extracted first.
func (s *ArticleService) FindArticles(ctx context.Context, filter readable.ArticleFilter) ([]*readable.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, title, content, content_hash, extracted_at FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY extracted_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*readable.Article
	for rows.Next() {
		var article readable.Article
		var extractedAt string

		if err := rows.Scan(&article.ID, &article.SourceURL, &article.Title,
			&article.Content, &article.ContentHash, &extractedAt); err != nil {
			return nil, err
		}

		article.ExtractedAt, err = time.Parse(time.RFC3339, extractedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse extracted_at: %w", err)
		}

		articles = append(articles, &article)
	}

	return articles, rows.Err()
}

// DeleteArticle permanently removes an article.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return readable.Errorf(readable.ENOTFOUND, "article not found")
	}

	return nil
}
