package mock_test

import (
	"context"
	"io"
	"testing"

	"github.com/fwojciec/docscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSites(t *testing.T) {
	t.Parallel()

	fetcher := mock.Sites(map[string]string{
		"https://example.com/": "<html>root</html>",
	})
	ctx := context.Background()

	t.Run("serves known pages", func(t *testing.T) {
		t.Parallel()

		html, err := fetcher.Fetch(ctx, "https://example.com/")
		require.NoError(t, err)
		assert.Equal(t, "<html>root</html>", html)

		body, err := fetcher.Open(ctx, "https://example.com/")
		require.NoError(t, err)
		defer body.Close()
		raw, err := io.ReadAll(body)
		require.NoError(t, err)
		assert.Equal(t, "<html>root</html>", string(raw))
	})

	t.Run("fails unknown pages", func(t *testing.T) {
		t.Parallel()

		_, err := fetcher.Fetch(ctx, "https://example.com/missing")
		require.Error(t, err)

		_, err = fetcher.Open(ctx, "https://example.com/missing")
		require.Error(t, err)
	})
}
