// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package model // import "feedmill.app/internal/model"

import "strings"

// Enclosure represents an attachment.
type Enclosure struct {
	URL    string `json:"url"`
	Length int64  `json:"length,omitempty"`
	Type   string `json:"type,omitempty"`
}

// IsImage reports whether the MIME type, like "image/png" or just "image",
// is an image one.
func (self *Enclosure) IsImage() bool {
	return strings.HasPrefix(strings.ToLower(self.Type), "image")
}

// EnclosureList represents a list of attachments.
type EnclosureList []Enclosure

// Contains reports whether an attachment with the given URL is in the list.
func (self EnclosureList) Contains(u string) bool {
	for i := range self {
		if self[i].URL == u {
			return true
		}
	}
	return false
}

// Append adds enclosures with a non-empty URL which are not in the list yet.
func (self EnclosureList) Append(items ...Enclosure) EnclosureList {
	for _, e := range items {
		if e.URL != "" && !self.Contains(e.URL) {
			self = append(self, e)
		}
	}
	return self
}
