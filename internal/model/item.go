// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package model // import "feedmill.app/internal/model"

import (
	"maps"
	"slices"
)

// Item represents one entry of a feed.
type Item struct {
	ID          string        `json:"id,omitempty"`
	URL         string        `json:"url,omitempty"`
	Lang        string        `json:"lang,omitempty"`
	Title       string        `json:"title,omitempty"`
	Author      string        `json:"author,omitempty"`
	Content     string        `json:"content,omitempty"`
	Snippet     string        `json:"snippet,omitempty"`
	Summary     string        `json:"summary,omitempty"`
	Categories  []string      `json:"categories,omitempty"`
	CommentsURL string        `json:"commentsUrl,omitempty"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	CreatedAt   string        `json:"createdAt,omitempty"`
	UpdatedAt   string        `json:"updatedAt,omitempty"`
	Media       EnclosureList `json:"media,omitempty"`
	Meta        Meta          `json:"meta,omitempty"`
}

// Clone returns a copy of the item with its own slices and Meta map.
func (self *Item) Clone() *Item {
	item := *self
	item.Categories = slices.Clone(self.Categories)
	item.Media = slices.Clone(self.Media)
	item.Meta = maps.Clone(self.Meta)
	return &item
}

// Date returns the creation date, or the update date when the item has no
// creation date.
func (self *Item) Date() string {
	if self.CreatedAt != "" {
		return self.CreatedAt
	}
	return self.UpdatedAt
}
