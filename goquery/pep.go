package goquery

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docscrape"
)

// PEP visits every PEP listed in the numerical index, reads the status
// declared on the PEP's own page, and returns a count per status.
// Statuses that disagree with the index's preview code are logged.
// PEPs whose pages cannot be fetched are skipped.
func (s *Scraper) PEP(ctx context.Context) (*docscrape.Table, error) {
	doc, err := s.requirePage(ctx, s.pepURL)
	if err != nil {
		return nil, err
	}

	section, err := s.find(doc.Selection, "section", map[string]string{"id": "numerical-index"})
	if err != nil {
		return nil, err
	}
	index, err := s.find(section, "table", map[string]string{"class": "pep-zero-table docutils align-default"})
	if err != nil {
		return nil, err
	}
	tbody, err := s.find(index, "tbody", nil)
	if err != nil {
		return nil, err
	}
	rows := tbody.Find("tr")

	tally := docscrape.NewTally()
	total := rows.Length()
	for i := range total {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row := rows.Eq(i)
		firstTD, err := s.find(row, "td", nil)
		if err != nil {
			return nil, err
		}
		a, err := s.find(firstTD.Next(), "a", nil)
		if err != nil {
			return nil, err
		}
		ref, err := href(a)
		if err != nil {
			return nil, err
		}
		pepLink, err := resolveURL(s.pepURL, ref)
		if err != nil {
			return nil, err
		}

		if page := s.page(ctx, pepLink); page != nil {
			content, err := s.find(page.Selection, "section", map[string]string{"id": "pep-content"})
			if err != nil {
				return nil, err
			}
			fields, err := s.find(content, "dl", map[string]string{"class": "rfc2822 field-list simple"})
			if err != nil {
				return nil, err
			}

			code := previewCode(firstTD.Text())
			fields.ChildrenFiltered("dt").Each(func(_ int, dt *goquery.Selection) {
				if strings.TrimSpace(dt.Text()) != "Status:" {
					return
				}
				status := strings.TrimSpace(dt.Next().Text())
				tally.Add(status)
				if !docscrape.StatusExpected(code, status) {
					s.logger.Info("status mismatch",
						"url", pepLink,
						"status", status,
						"expected", docscrape.ExpectedStatus[code],
					)
				}
			})
		}

		s.report(pepLink, i+1, total)
	}

	return tally.Table(), nil
}

// previewCode drops the type letter from an index cell such as "SF",
// leaving the status letter. Cells with a single letter yield "".
func previewCode(cell string) string {
	cell = strings.TrimSpace(cell)
	_, size := utf8.DecodeRuneInString(cell)
	return cell[size:]
}
