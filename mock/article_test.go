package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/readable"
	"github.com/fwojciec/readable/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleWriter_CreateArticle(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateArticleFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *readable.Article
		w := &mock.ArticleWriter{
			CreateArticleFn: func(_ context.Context, article *readable.Article) error {
				calledWith = article
				return nil
			},
		}

		article := &readable.Article{
			SourceURL: "https://example.com/post",
			Title:     "Test Post",
			Content:   "Test content",
		}

		err := w.CreateArticle(context.Background(), article)
		require.NoError(t, err)
		assert.Equal(t, article, calledWith)
	})
}
