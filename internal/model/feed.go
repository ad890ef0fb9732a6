// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package model // import "feedmill.app/internal/model"

import "maps"

// Feed types.
const (
	FeedTypeRSS  = "rss"
	FeedTypeAtom = "atom"
	FeedTypeJSON = "json"
	FeedTypeHTML = "html"
)

// Feed is the canonical, format-agnostic representation of a syndication
// document.
type Feed struct {
	Type        string  `json:"type"`
	Lang        string  `json:"lang,omitempty"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	SiteURL     string  `json:"siteUrl,omitempty"`
	FeedURL     string  `json:"feedUrl,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Etag        string  `json:"etag,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
	Items       []*Item `json:"items"`
	ITunes      Meta    `json:"itunes,omitempty"`
	Meta        Meta    `json:"meta,omitempty"`
}

func NewFeed(feedType string) *Feed {
	return &Feed{Type: feedType, Items: []*Item{}}
}

// Clone returns a copy of the feed, which items, slices and maps can be
// changed without touching the original. Values stored in Meta are not
// copied.
func (self *Feed) Clone() *Feed {
	feed := *self
	feed.ITunes = maps.Clone(self.ITunes)
	feed.Meta = maps.Clone(self.Meta)
	feed.Items = make([]*Item, len(self.Items))
	for i, item := range self.Items {
		feed.Items[i] = item.Clone()
	}
	return &feed
}

// Len returns the number of items.
func (self *Feed) Len() int { return len(self.Items) }

// SetItems replaces the item list and keeps it non-nil.
func (self *Feed) SetItems(items []*Item) {
	if items == nil {
		items = []*Item{}
	}
	self.Items = items
}
