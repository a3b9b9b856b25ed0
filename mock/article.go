package mock

import (
	"context"

	"github.com/fwojciec/readable"
)

var _ readable.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of readable.ArticleService.
type ArticleService struct {
	CreateArticleFn   func(ctx context.Context, article *readable.Article) error
	FindArticleByIDFn func(ctx context.Context, id string) (*readable.Article, error)
	FindArticlesFn    func(ctx context.Context, filter readable.ArticleFilter) ([]*readable.Article, error)
	DeleteArticleFn   func(ctx context.Context, id string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *readable.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*readable.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter readable.ArticleFilter) ([]*readable.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return s.DeleteArticleFn(ctx, id)
}

var _ readable.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of readable.ArticleWriter.
type ArticleWriter struct {
	CreateArticleFn func(ctx context.Context, article *readable.Article) error
}

func (w *ArticleWriter) CreateArticle(ctx context.Context, article *readable.Article) error {
	return w.CreateArticleFn(ctx, article)
}
