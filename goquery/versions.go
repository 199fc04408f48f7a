package goquery

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docscrape"
)

// Column names of the latest-versions table.
const (
	DocsLinkColumn = "Ссылка на документацию"
	VersionColumn  = "Версия"
	StatusColumn   = "Статус"
)

// allVersionsMarker identifies the sidebar list of documentation versions.
const allVersionsMarker = "All versions"

var versionPattern = regexp.MustCompile(`Python (?P<version>\d\.\d+) \((?P<status>.*)\)`)

// ParseVersion splits link text such as "Python 3.13 (stable)" into its
// version and status. Text that does not match is returned unchanged as
// the version with an empty status.
func ParseVersion(text string) (version, status string) {
	m := versionPattern.FindStringSubmatch(text)
	if m == nil {
		return text, ""
	}
	return m[versionPattern.SubexpIndex("version")], m[versionPattern.SubexpIndex("status")]
}

// LatestVersions lists the documentation versions linked from the sidebar
// of the documentation root, with their release status.
func (s *Scraper) LatestVersions(ctx context.Context) (*docscrape.Table, error) {
	doc, err := s.requirePage(ctx, s.docsURL)
	if err != nil {
		return nil, err
	}

	sidebar, err := s.find(doc.Selection, "div", map[string]string{"class": "sphinxsidebarwrapper"})
	if err != nil {
		return nil, err
	}

	var links *goquery.Selection
	sidebar.Find("ul").EachWithBreak(func(_ int, ul *goquery.Selection) bool {
		if strings.Contains(ul.Text(), allVersionsMarker) {
			links = ul.Find("a")
			return false
		}
		return true
	})
	if links == nil {
		err := &docscrape.ListNotFoundError{Tag: "ul", Marker: allVersionsMarker}
		s.logger.Error("version list not found", "err", err)
		return nil, err
	}

	table := docscrape.NewTable(DocsLinkColumn, VersionColumn, StatusColumn)
	for i := range links.Length() {
		a := links.Eq(i)
		link, err := href(a)
		if err != nil {
			return nil, err
		}
		version, status := ParseVersion(a.Text())
		table.Append(link, version, status)
	}

	return table, nil
}
