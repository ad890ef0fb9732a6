// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package media // import "feedmill.app/internal/reader/media"

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"feedmill.app/internal/model"
	"feedmill.app/internal/reader/fields"
	"feedmill.app/internal/reader/sanitizer"
	"feedmill.app/internal/reader/xmltree"
)

// ImageURL picks the representative image of an entry from the values
// selected by fields.Image. content is the sanitized entry content; when
// empty, the selected content is sanitized and used instead. The first
// match wins:
//
//  1. image
//  2. media:thumbnail
//  3. media:content of an image type
//  4. the same two inside media:group
//  5. itunes:image
//  6. the first <img> of the content
//  7. enclosure of an image type
func ImageURL(v fields.Values, content string) string {
	if u := imageValue(v.First("image")); u != "" {
		return u
	}

	if u := thumbnail(v.Nodes("media:thumbnail")); u != "" {
		return u
	}

	if u := mediaContentImage(v.Nodes("media:content")); u != "" {
		return u
	}

	for _, group := range v.Nodes("media:group") {
		if u := thumbnail(group.All("media:thumbnail")); u != "" {
			return u
		}
		if u := mediaContentImage(group.All("media:content")); u != "" {
			return u
		}
	}

	if itunes := v.First("itunes:image"); itunes != nil {
		if u := firstNonEmpty(itunes.Attr("href"), itunes.Attr("url"),
			itunes.Text()); u != "" {
			return u
		}
	}

	if content == "" {
		content = sanitizer.SanitizeContent(v.Content("content"))
	}
	if u := ContentImage(content); u != "" {
		return u
	}

	for _, node := range v.Nodes("enclosure") {
		e := model.Enclosure{URL: node.Attr("url"), Type: node.Attr("type")}
		if e.URL != "" && e.IsImage() {
			return e.URL
		}
	}
	return ""
}

// ContentImage returns the source of the first image in the HTML fragment s.
func ContentImage(s string) string {
	if !strings.Contains(s, "<img") {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return ""
	}

	var src string
	doc.Find("img[src]").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src = strings.TrimSpace(img.AttrOr("src", ""))
		return src == ""
	})
	return src
}

// imageValue reads an image given as text, as an url child or as an
// url/href attribute.
func imageValue(node *xmltree.Node) string {
	if node == nil {
		return ""
	}
	if !node.HasChildren() {
		if s := node.Text(); s != "" {
			return s
		}
	}
	return firstNonEmpty(node.First("url").Text(), node.Attr("href"),
		node.Attr("url"), node.First("href").Text())
}

func thumbnail(nodes []*xmltree.Node) string {
	for _, node := range nodes {
		if u := node.Attr("url"); u != "" {
			return u
		}
	}
	return ""
}

func mediaContentImage(nodes []*xmltree.Node) string {
	for _, node := range nodes {
		if (&model.Enclosure{Type: node.Attr("type")}).IsImage() ||
			strings.EqualFold(node.Attr("medium"), "image") {
			if u := node.Attr("url"); u != "" {
				return u
			}
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}
