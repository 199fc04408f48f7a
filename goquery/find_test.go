package goquery_test

import (
	"regexp"
	"strings"
	"testing"

	pq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *pq.Selection {
	t.Helper()

	doc, err := pq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc.Selection
}

func TestFindTag(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<div id="first" class="note">one</div>
<div class="toctree-wrapper compound">two</div>
<table class="pep-zero-table docutils align-default"><tr><td>cell</td></tr></table>
</body></html>`

	t.Run("returns first match without attrs", func(t *testing.T) {
		t.Parallel()

		found, err := goquery.FindTag(parse(t, html), "div", nil)
		require.NoError(t, err)
		assert.Equal(t, "one", found.Text())
	})

	t.Run("matches single class token", func(t *testing.T) {
		t.Parallel()

		found, err := goquery.FindTag(parse(t, html), "div", map[string]string{"class": "toctree-wrapper"})
		require.NoError(t, err)
		assert.Equal(t, "two", found.Text())
	})

	t.Run("matches full class attribute", func(t *testing.T) {
		t.Parallel()

		found, err := goquery.FindTag(parse(t, html), "table", map[string]string{"class": "pep-zero-table docutils align-default"})
		require.NoError(t, err)
		assert.Equal(t, "cell", found.Text())
	})

	t.Run("matches id exactly", func(t *testing.T) {
		t.Parallel()

		found, err := goquery.FindTag(parse(t, html), "div", map[string]string{"id": "first"})
		require.NoError(t, err)
		assert.Equal(t, "one", found.Text())

		_, err = goquery.FindTag(parse(t, html), "div", map[string]string{"id": "firs"})
		require.Error(t, err)
	})

	t.Run("requires every attribute to match", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.FindTag(parse(t, html), "div", map[string]string{"id": "first", "class": "compound"})
		require.Error(t, err)
	})

	t.Run("returns typed error with search context", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.FindTag(parse(t, html), "section", map[string]string{"id": "pep-content"})

		var fe *docscrape.FindError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "section", fe.Tag)
		assert.Equal(t, map[string]string{"id": "pep-content"}, fe.Attrs)
		assert.Equal(t, docscrape.ENOTFOUND, docscrape.ErrorCode(err))
	})

	t.Run("searches descendants only", func(t *testing.T) {
		t.Parallel()

		div, err := goquery.FindTag(parse(t, html), "div", map[string]string{"id": "first"})
		require.NoError(t, err)

		_, err = goquery.FindTag(div, "div", nil)
		require.Error(t, err)
	})
}

func TestFindTagMatching(t *testing.T) {
	t.Parallel()

	html := `<table class="docutils">
<tr><td><a href="archives/python-3.13-docs-pdf-letter.zip">letter</a></td>
<td><a href="archives/python-3.13-docs-pdf-a4.zip">a4</a></td></tr>
</table>`
	pattern := regexp.MustCompile(`.+pdf-a4\.zip$`)

	t.Run("returns first element whose attribute matches", func(t *testing.T) {
		t.Parallel()

		found, err := goquery.FindTagMatching(parse(t, html), "a", "href", pattern)
		require.NoError(t, err)
		assert.Equal(t, "a4", found.Text())
	})

	t.Run("returns typed error when nothing matches", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.FindTagMatching(parse(t, html), "a", "href", regexp.MustCompile(`\.tar\.bz2$`))

		var fe *docscrape.FindError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "a", fe.Tag)
		assert.Equal(t, `\.tar\.bz2$`, fe.Attrs["href"])
	})
}
