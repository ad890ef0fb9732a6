package scraper

import (
	"bytes"
	"net/url"

	"codeberg.org/readeck/go-readability/v2"
)

// readabilityFallback fills the title, description and language of page
// with what readability finds in the document. It needs an absolute URL.
func readabilityFallback(page *Page, data []byte, pageURL *url.URL) {
	if pageURL == nil {
		u, err := url.Parse(page.URL)
		if err != nil || !u.IsAbs() {
			return
		}
		pageURL = u
	}

	p := readability.NewParser()
	article, err := p.Parse(bytes.NewReader(data), pageURL)
	if err != nil {
		return
	}

	page.Title = firstNonEmpty(page.Title, cleanText(article.Title()))
	page.Description = firstNonEmpty(page.Description,
		cleanText(article.Excerpt()))
	page.Lang = firstNonEmpty(page.Lang, article.Language())
}
