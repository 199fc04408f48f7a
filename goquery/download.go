package goquery

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"regexp"

	"github.com/fwojciec/docscrape"
)

var pdfA4Pattern = regexp.MustCompile(`.+pdf-a4\.zip$`)

// Download saves the A4 PDF documentation archive linked from the
// download page into the archive store and returns the saved path.
func (s *Scraper) Download(ctx context.Context) (string, error) {
	if s.archives == nil {
		return "", docscrape.Errorf(docscrape.EINVALID, "archive store required")
	}

	downloadsURL, err := resolveURL(s.docsURL, "download.html")
	if err != nil {
		return "", err
	}

	doc, err := s.requirePage(ctx, downloadsURL)
	if err != nil {
		return "", err
	}

	table, err := s.find(doc.Selection, "table", map[string]string{"class": "docutils"})
	if err != nil {
		return "", err
	}
	a, err := s.findMatching(table, "a", "href", pdfA4Pattern)
	if err != nil {
		return "", err
	}
	ref, err := href(a)
	if err != nil {
		return "", err
	}
	archiveURL, err := resolveURL(downloadsURL, ref)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(archiveURL)
	if err != nil {
		return "", docscrape.Errorf(docscrape.EINVALID, "invalid archive URL: %v", err)
	}
	filename := path.Base(u.Path)

	body, err := s.fetcher.Open(ctx, archiveURL)
	if err != nil {
		s.logger.Error("archive fetch failed", "url", archiveURL, "err", err)
		return "", fmt.Errorf("download %s: %w", archiveURL, err)
	}
	defer body.Close()

	archivePath, err := s.archives.Save(ctx, filename, body)
	if err != nil {
		return "", err
	}

	s.logger.Info("archive saved", "path", archivePath)
	return archivePath, nil
}
