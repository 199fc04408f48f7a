package goquery

import (
	"net/url"

	"github.com/fwojciec/docscrape"
)

// resolveURL resolves href against base.
func resolveURL(base, href string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", docscrape.Errorf(docscrape.EINVALID, "invalid base URL: %v", err)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", docscrape.Errorf(docscrape.EINVALID, "invalid link %q: %v", href, err)
	}
	return b.ResolveReference(ref).String(), nil
}
