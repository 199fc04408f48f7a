package goquery_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
)

const (
	docsURL = "https://docs.python.org/3/"
	pepURL  = "https://peps.python.org/"
)

// newLogger returns a logger that writes text records to the returned buffer.
func newLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func whatsNewIndex(hrefs ...string) string {
	var b strings.Builder
	b.WriteString(`<html><body><section id="what-s-new-in-python"><h1>What’s New in Python</h1>`)
	b.WriteString(`<div class="toctree-wrapper compound"><ul>`)
	for _, href := range hrefs {
		fmt.Fprintf(&b, `<li class="toctree-l1"><a class="reference internal" href="%s">Article</a>`, href)
		fmt.Fprintf(&b, `<ul><li class="toctree-l2"><a href="%s#summary">Summary</a></li></ul></li>`, href)
	}
	b.WriteString(`</ul></div></section></body></html>`)
	return b.String()
}

func whatsNewArticle(title, editor string) string {
	return fmt.Sprintf(`<html><body><section><h1>%s</h1>
<dl class="field-list simple"><dt>Editor:</dt>
<dd>%s</dd></dl></section></body></html>`, title, editor)
}

func docsRoot(links ...string) string {
	var b strings.Builder
	b.WriteString(`<html><body><div class="sphinxsidebar"><div class="sphinxsidebarwrapper">`)
	b.WriteString(`<ul><li><a href="https://docs.python.org/3/">Documentation home</a></li></ul>`)
	b.WriteString(`<h3>Docs by version</h3><ul>`)
	b.WriteString(strings.Join(links, ""))
	b.WriteString(`</ul></div></div></body></html>`)
	return b.String()
}

func versionLink(href, text string) string {
	return fmt.Sprintf(`<li><a href="%s">%s</a></li>`, href, text)
}

func downloadPage(hrefs ...string) string {
	var b strings.Builder
	b.WriteString(`<html><body><table class="docutils align-default"><thead><tr><th>Format</th></tr></thead><tbody><tr>`)
	for _, href := range hrefs {
		fmt.Fprintf(&b, `<td><a class="reference external" href="%s">Download</a></td>`, href)
	}
	b.WriteString(`</tr></tbody></table></body></html>`)
	return b.String()
}

type pepRow struct {
	code string
	href string
}

func pepIndex(rows ...pepRow) string {
	var b strings.Builder
	b.WriteString(`<html><body><section id="numerical-index"><h2>Numerical Index</h2>`)
	b.WriteString(`<table class="pep-zero-table docutils align-default">`)
	b.WriteString(`<thead><tr><th>Type</th><th>PEP</th><th>Title</th></tr></thead><tbody>`)
	for _, r := range rows {
		fmt.Fprintf(&b, `<tr><td class="pep-zero-type-status"><abbr title="type and status">%s</abbr></td>`, r.code)
		fmt.Fprintf(&b, `<td><a class="pep reference internal" href="%s">1</a></td><td>Title</td></tr>`, r.href)
	}
	b.WriteString(`</tbody></table></section></body></html>`)
	return b.String()
}

func pepPage(status string) string {
	return fmt.Sprintf(`<html><body><section id="pep-content"><h1>PEP</h1>
<dl class="rfc2822 field-list simple">
<dt class="field-odd">Author<span class="colon">:</span></dt>
<dd class="field-odd">Someone</dd>
<dt class="field-even">Status<span class="colon">:</span></dt>
<dd class="field-even"><abbr title="Accepted and complete">%s</abbr></dd>
<dt class="field-odd">Type<span class="colon">:</span></dt>
<dd class="field-odd">Standards Track</dd>
</dl></section></body></html>`, status)
}
