package fetcher

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"credcheck/internal/domain"
)

const fallbackTitle = "No title found"

// ExtractDocument turns raw HTML into a normalized Document. Readability
// does the heavy lifting; goquery covers pages it cannot make sense of.
func ExtractDocument(pageURL *url.URL, html []byte) (*domain.Document, error) {
	doc := &domain.Document{
		URL:    pageURL.String(),
		Domain: domain.NormalizeDomain(pageURL.Hostname()),
	}

	article, err := readability.FromReader(bytes.NewReader(html), pageURL)
	if err == nil {
		doc.Title = strings.TrimSpace(article.Title)
		doc.BodyText = normalizeWhitespace(article.TextContent)
	}

	if doc.Title == "" || doc.BodyText == "" {
		title, body, qerr := extractWithGoquery(html)
		if qerr != nil && err != nil {
			// Neither parser could read the page.
			return nil, qerr
		}
		if doc.Title == "" {
			doc.Title = title
		}
		if doc.BodyText == "" {
			doc.BodyText = body
		}
	}

	if doc.Title == "" {
		doc.Title = fallbackTitle
	}
	return doc, nil
}

// extractWithGoquery pulls the title tag and paragraph text the way a basic
// scraper would: scripts, styles and chrome stripped, p/article joined.
func extractWithGoquery(html []byte) (title, body string, err error) {
	gq, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return "", "", err
	}

	title = strings.TrimSpace(gq.Find("title").First().Text())

	gq.Find("script, style, nav, footer, header").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	var parts []string
	gq.Find("p, article").Each(func(i int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	return title, normalizeWhitespace(strings.Join(parts, " ")), nil
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
