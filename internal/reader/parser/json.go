// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"feedmill.app/internal/model"
	"feedmill.app/internal/reader/date"
	"feedmill.app/internal/reader/category"
	"feedmill.app/internal/reader/sanitizer"
)

var jsonFeedVersion = regexp.MustCompile(`^https?://jsonfeed\.org/version/1`)

type jsonFeed struct {
	cfg  *Config
	root gjson.Result
}

func parseJSON(b []byte, c *Config) (*model.Feed, error) {
	if !gjson.ValidBytes(b) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidFeed)
	}

	root := gjson.ParseBytes(b)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: JSON Feed is not an object", ErrInvalidFeed)
	}

	if version := root.Get("version").String(); !jsonFeedVersion.MatchString(version) {
		return nil, fmt.Errorf("%w: unsupported JSON Feed version %q",
			ErrInvalidFeed, version)
	}

	if !root.Get("items").IsArray() {
		return nil, fmt.Errorf("%w: JSON Feed without items", ErrInvalidFeed)
	}

	p := jsonFeed{cfg: c, root: root}
	return p.Feed(), nil
}

func (self *jsonFeed) Feed() *model.Feed {
	feed := model.NewFeed(model.FeedTypeJSON)
	feed.Lang = jsonString(self.root, "language")
	feed.Title = jsonString(self.root, "title")
	feed.Description = jsonString(self.root, "description")
	feed.SiteURL = jsonString(self.root, "home_page_url")
	feed.FeedURL = jsonString(self.root, "feed_url")
	feed.ImageURL = firstNonEmpty(jsonString(self.root, "icon"),
		jsonString(self.root, "favicon"))
	feed.Etag = firstNonEmpty(jsonString(self.root, "etag"),
		jsonString(self.root, "id"))
	feed.UpdatedAt = date.First(jsonString(self.root, "updated"))
	feed.SetItems(mapItems(self.cfg.ItemConcurrency,
		self.root.Get("items").Array(), self.item))
	return feed
}

func (self *jsonFeed) item(r gjson.Result) *model.Item {
	item := &model.Item{
		ID: firstNonEmpty(jsonString(r, "etag"), jsonString(r, "id"),
			jsonString(r, "url")),
		URL:        firstNonEmpty(jsonString(r, "url"), jsonString(r, "external_url")),
		Lang:       jsonString(r, "language"),
		Title:      jsonString(r, "title"),
		Author:     firstNonEmpty(jsonString(r, "author.name"), jsonString(r, "authors.0.name")),
		Content:    sanitizer.SanitizeContent(jsonString(r, "content_html")),
		Snippet:    jsonString(r, "content_text"),
		Summary:    jsonString(r, "summary"),
		Categories: category.Flatten(jsonValues(r.Get("tags"))),
		ImageURL:   firstNonEmpty(jsonString(r, "image"), jsonString(r, "banner_image")),
		CreatedAt:  date.First(jsonString(r, "date_published")),
		UpdatedAt:  date.First(jsonString(r, "date_modified")),
		Media:      jsonAttachments(r.Get("attachments")),
	}

	if item.Snippet == "" && item.Content != "" {
		item.Snippet = sanitizer.Snippet(item.Content)
	}
	return item
}

// jsonString returns the trimmed scalar at path. Objects, arrays and nulls
// give an empty string.
func jsonString(r gjson.Result, path string) string {
	v := r.Get(path)
	switch v.Type {
	case gjson.String, gjson.Number, gjson.True, gjson.False:
		return strings.TrimSpace(v.String())
	}
	return ""
}

func jsonValues(r gjson.Result) []any {
	if !r.IsArray() {
		if r.Type == gjson.String {
			return []any{r.String()}
		}
		return nil
	}

	var values []any
	for _, v := range r.Array() {
		values = append(values, v.Value())
	}
	return values
}

func jsonAttachments(r gjson.Result) model.EnclosureList {
	var list model.EnclosureList
	for _, a := range r.Array() {
		list = list.Append(model.Enclosure{
			URL:    jsonString(a, "url"),
			Length: max(a.Get("size_in_bytes").Int(), 0),
			Type:   jsonString(a, "mime_type"),
		})
	}
	return list
}
