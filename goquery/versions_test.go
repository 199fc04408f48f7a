package goquery_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/goquery"
	"github.com/fwojciec/docscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text    string
		version string
		status  string
	}{
		{"Python 3.13 (stable)", "3.13", "stable"},
		{"Python 3.14 (in development)", "3.14", "in development"},
		{"Python 2.7 (EOL)", "2.7", "EOL"},
		{"All versions", "All versions", ""},
		{"Python 3.13", "Python 3.13", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			version, status := goquery.ParseVersion(tt.text)
			assert.Equal(t, tt.version, version)
			assert.Equal(t, tt.status, status)
		})
	}
}

func TestScraper_LatestVersions(t *testing.T) {
	t.Parallel()

	t.Run("lists every link of the versions list", func(t *testing.T) {
		t.Parallel()

		fetcher := mock.Sites(map[string]string{
			docsURL: docsRoot(
				versionLink("https://docs.python.org/3.14/", "Python 3.14 (in development)"),
				versionLink("https://docs.python.org/3.13/", "Python 3.13 (stable)"),
				versionLink("https://www.python.org/doc/versions/", "All versions"),
			),
		})
		s := goquery.NewScraper(fetcher)

		table, err := s.LatestVersions(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{goquery.DocsLinkColumn, goquery.VersionColumn, goquery.StatusColumn}, table.Header)
		assert.Equal(t, [][]string{
			{"https://docs.python.org/3.14/", "3.14", "in development"},
			{"https://docs.python.org/3.13/", "3.13", "stable"},
			{"https://www.python.org/doc/versions/", "All versions", ""},
		}, table.Rows)
	})

	t.Run("returns list error when no list has the marker", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		fetcher := mock.Sites(map[string]string{
			docsURL: docsRoot(versionLink("https://docs.python.org/3.13/", "Python 3.13 (stable)")),
		})
		s := goquery.NewScraper(fetcher, goquery.WithLogger(logger))

		_, err := s.LatestVersions(context.Background())

		var le *docscrape.ListNotFoundError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, "All versions", le.Marker)
		assert.Equal(t, docscrape.ENOTFOUND, docscrape.ErrorCode(err))
		assert.Contains(t, buf.String(), "version list not found")
	})

	t.Run("returns find error without sidebar", func(t *testing.T) {
		t.Parallel()

		fetcher := mock.Sites(map[string]string{
			docsURL: `<html><body><div class="body"></div></body></html>`,
		})
		s := goquery.NewScraper(fetcher)

		_, err := s.LatestVersions(context.Background())

		var fe *docscrape.FindError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, map[string]string{"class": "sphinxsidebarwrapper"}, fe.Attrs)
	})
}
