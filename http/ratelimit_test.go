package http_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/readable"
	readablehttp "github.com/fwojciec/readable/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements readable.DomainLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ readable.DomainLimiter = readablehttp.NewDomainLimiter(1)
	})

	t.Run("allows immediate request when under limit", func(t *testing.T) {
		t.Parallel()

		limiter := readablehttp.NewDomainLimiter(10)

		start := time.Now()
		err := limiter.Wait(context.Background(), "example.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("rate limits requests to same domain", func(t *testing.T) {
		t.Parallel()

		limiter := readablehttp.NewDomainLimiter(10) // 100ms between requests

		err := limiter.Wait(context.Background(), "example.com")
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background(), "example.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("different domains have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := readablehttp.NewDomainLimiter(10)

		err := limiter.Wait(context.Background(), "a.example.com")
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background(), "b.example.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "second domain should not wait")
	})

	t.Run("returns error when context canceled", func(t *testing.T) {
		t.Parallel()

		limiter := readablehttp.NewDomainLimiter(1)

		err := limiter.Wait(context.Background(), "example.com")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err = limiter.Wait(ctx, "example.com")
		require.Error(t, err)
	})
}
