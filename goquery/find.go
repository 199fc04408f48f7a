package goquery

import (
	"regexp"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docscrape"
)

// FindTag returns the first descendant of sel named tag whose attributes
// match attrs. A class filter matches either the whole class attribute or
// any single class in it. It returns a *docscrape.FindError if nothing matches.
func FindTag(sel *goquery.Selection, tag string, attrs map[string]string) (*goquery.Selection, error) {
	found := findAll(sel, tag, attrs).First()
	if found.Length() == 0 {
		return nil, &docscrape.FindError{Tag: tag, Attrs: attrs}
	}
	return found, nil
}

// FindTagMatching returns the first descendant of sel named tag whose attr
// value matches pattern anywhere. It returns a *docscrape.FindError if
// nothing matches.
func FindTagMatching(sel *goquery.Selection, tag, attr string, pattern *regexp.Regexp) (*goquery.Selection, error) {
	found := sel.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		value, ok := s.Attr(attr)
		return ok && pattern.MatchString(value)
	}).First()
	if found.Length() == 0 {
		return nil, &docscrape.FindError{Tag: tag, Attrs: map[string]string{attr: pattern.String()}}
	}
	return found, nil
}

// findAll returns every descendant of sel named tag whose attributes match attrs.
func findAll(sel *goquery.Selection, tag string, attrs map[string]string) *goquery.Selection {
	return sel.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return matchAttrs(s, attrs)
	})
}

func matchAttrs(sel *goquery.Selection, attrs map[string]string) bool {
	for name, want := range attrs {
		got, ok := sel.Attr(name)
		if !ok {
			return false
		}
		if got == want {
			continue
		}
		if name == "class" && slices.Contains(strings.Fields(got), want) {
			continue
		}
		return false
	}
	return true
}

// href returns the href attribute of sel.
func href(sel *goquery.Selection) (string, error) {
	value, ok := sel.Attr("href")
	if !ok {
		return "", docscrape.Errorf(docscrape.ENOTFOUND, "<%s> has no href", goquery.NodeName(sel))
	}
	return value, nil
}
