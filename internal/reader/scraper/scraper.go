// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package scraper extracts feed-like metadata and a list of posts from an
// arbitrary HTML page.
package scraper // import "feedmill.app/internal/reader/scraper"

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"feedmill.app/internal/reader/encoding"
	"feedmill.app/internal/reader/sanitizer"
)

const maxSnippetLength = 300

var feedMimeTypes = []string{
	"application/rss+xml",
	"application/atom+xml",
	"application/feed+json",
	"application/json",
	"application/rdf+xml",
}

// Page is the metadata of an HTML page.
type Page struct {
	Title       string
	Description string
	URL         string
	AltURL      string
	ImageURL    string
	UpdatedAt   string
	Lang        string
	Posts       []Post
}

// Post is an article found in an HTML page.
type Post struct {
	URL      string
	Title    string
	Snippet  string
	ImageURL string
	Date     string
}

// Extract reads the metadata and the posts of the HTML document data.
// pageURL is optional, it's used to resolve relative URLs when the document
// has no <base>.
func Extract(data []byte, pageURL *url.URL) (*Page, error) {
	r, err := encoding.NewCharsetReader(bytes.NewReader(data), "text/html")
	if err != nil {
		return nil, fmt.Errorf("reader/scraper: %w", err)
	}

	utf8, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reader/scraper: read html document: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(utf8))
	if err != nil {
		return nil, fmt.Errorf("reader/scraper: parse html document: %w", err)
	}

	base := baseURL(doc, pageURL)
	page := &Page{
		Title: firstNonEmpty(meta(doc, "og:title"),
			cleanText(doc.Find("head title").First().Text())),
		Description: firstNonEmpty(meta(doc, "description"),
			meta(doc, "og:description")),
		URL: resolve(base, firstNonEmpty(
			attr(doc, `link[rel="canonical"]`, "href"), meta(doc, "og:url"))),
		AltURL:   resolve(base, alternateFeed(doc)),
		ImageURL: resolve(base, firstNonEmpty(meta(doc, "og:image"), meta(doc, "twitter:image"))),
		UpdatedAt: firstNonEmpty(meta(doc, "article:modified_time"),
			meta(doc, "og:updated_time"), meta(doc, "last-modified")),
		Lang: attr(doc, "html", "lang"),
	}

	if page.URL == "" && pageURL != nil {
		page.URL = pageURL.String()
	}
	page.Posts = posts(doc, base)

	if page.Title == "" || page.Description == "" || page.Lang == "" {
		readabilityFallback(page, utf8, pageURL)
	}
	return page, nil
}

func baseURL(doc *goquery.Document, pageURL *url.URL) *url.URL {
	href := attr(doc, "head base[href]", "href")
	if href == "" {
		return pageURL
	}

	u, err := url.Parse(href)
	if err != nil {
		return pageURL
	}
	if pageURL != nil {
		u = pageURL.ResolveReference(u)
	}
	if !u.IsAbs() {
		return pageURL
	}
	return u
}

func alternateFeed(doc *goquery.Document) string {
	var href string
	doc.Find(`link[rel="alternate"][href]`).EachWithBreak(
		func(_ int, s *goquery.Selection) bool {
			mimeType := strings.ToLower(strings.TrimSpace(s.AttrOr("type", "")))
			for _, t := range feedMimeTypes {
				if mimeType == t {
					href = strings.TrimSpace(s.AttrOr("href", ""))
					return href == ""
				}
			}
			return true
		})
	return href
}

func posts(doc *goquery.Document, base *url.URL) []Post {
	selection := doc.Find("article")
	if selection.Length() == 0 {
		selection = doc.Find(".h-entry, .post, .entry")
	}

	var items []Post
	seen := make(map[string]struct{})
	selection.Each(func(_ int, s *goquery.Selection) {
		post, ok := newPost(s, base)
		if !ok {
			return
		}
		if post.URL != "" {
			if _, found := seen[post.URL]; found {
				return
			}
			seen[post.URL] = struct{}{}
		}
		items = append(items, post)
	})
	return items
}

func newPost(s *goquery.Selection, base *url.URL) (Post, bool) {
	heading := s.Find("h1, h2, h3, h4").First()
	link := heading.Find("a[href]").First()
	if link.Length() == 0 {
		link = s.Find("a[href]").First()
	}

	post := Post{
		URL:      resolve(base, link.AttrOr("href", "")),
		Title:    firstNonEmpty(cleanText(heading.Text()), cleanText(link.Text())),
		ImageURL: resolve(base, s.Find("img[src]").First().AttrOr("src", "")),
		Date:     strings.TrimSpace(s.Find("time[datetime]").First().AttrOr("datetime", "")),
	}

	if paragraph, err := s.Find("p").First().Html(); err == nil {
		post.Snippet = html.UnescapeString(
			sanitizer.TruncateHTML(paragraph, maxSnippetLength))
	}
	return post, post.Title != "" || post.URL != ""
}

func meta(doc *goquery.Document, name string) string {
	selector := fmt.Sprintf("meta[property=%q], meta[name=%q]", name, name)
	return cleanText(doc.Find(selector).First().AttrOr("content", ""))
}

func attr(doc *goquery.Document, selector, name string) string {
	return strings.TrimSpace(doc.Find(selector).First().AttrOr(name, ""))
}

func resolve(base *url.URL, ref string) string {
	if ref == "" || base == nil {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}

func cleanText(s string) string { return strings.Join(strings.Fields(s), " ") }

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}
