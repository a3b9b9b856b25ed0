package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/readable"
	main "github.com/fwojciec/readable/cmd/readable"
	"github.com/fwojciec/readable/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force flag", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.DeleteCmd{ID: "article-123"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, readable.EINVALID, readable.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes article with force flag", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		articles := &mock.ArticleService{
			DeleteArticleFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Articles: articles,
		}

		cmd := &main.DeleteCmd{ID: "article-123", Force: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "article-123", deletedID)
		assert.Contains(t, stdout.String(), "Deleted article")
	})

	t.Run("reports missing article", func(t *testing.T) {
		t.Parallel()

		articles := &mock.ArticleService{
			DeleteArticleFn: func(_ context.Context, id string) error {
				return readable.Errorf(readable.ENOTFOUND, "article not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Articles: articles,
		}

		cmd := &main.DeleteCmd{ID: "no-such-id", Force: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "not found")
	})
}
