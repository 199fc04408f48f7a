package goquery

import (
	"context"
	"strings"

	"github.com/fwojciec/docscrape"
)

// Column names of the what's-new table.
const (
	ArticleLinkColumn = "Ссылка на статью"
	TitleColumn       = "Заголовок"
	EditorColumn      = "Редактор, Автор"
)

// WhatsNew lists the "What's New in Python" articles with their titles
// and editor/author lines. Articles that cannot be fetched are skipped.
func (s *Scraper) WhatsNew(ctx context.Context) (*docscrape.Table, error) {
	whatsNewURL, err := resolveURL(s.docsURL, "whatsnew/")
	if err != nil {
		return nil, err
	}

	doc, err := s.requirePage(ctx, whatsNewURL)
	if err != nil {
		return nil, err
	}

	mainSection, err := s.find(doc.Selection, "section", map[string]string{"id": "what-s-new-in-python"})
	if err != nil {
		return nil, err
	}
	wrapper, err := s.find(mainSection, "div", map[string]string{"class": "toctree-wrapper"})
	if err != nil {
		return nil, err
	}
	items := findAll(wrapper, "li", map[string]string{"class": "toctree-l1"})

	table := docscrape.NewTable(ArticleLinkColumn, TitleColumn, EditorColumn)
	total := items.Length()
	for i := range total {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		a, err := s.find(items.Eq(i), "a", nil)
		if err != nil {
			return nil, err
		}
		ref, err := href(a)
		if err != nil {
			return nil, err
		}
		link, err := resolveURL(whatsNewURL, ref)
		if err != nil {
			return nil, err
		}

		if article := s.page(ctx, link); article != nil {
			h1, err := s.find(article.Selection, "h1", nil)
			if err != nil {
				return nil, err
			}
			dl, err := s.find(article.Selection, "dl", nil)
			if err != nil {
				return nil, err
			}
			table.Append(link, h1.Text(), strings.ReplaceAll(dl.Text(), "\n", " "))
		}

		s.report(link, i+1, total)
	}

	return table, nil
}
