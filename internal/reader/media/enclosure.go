// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package media // import "feedmill.app/internal/reader/media"

import (
	"strconv"
	"strings"

	"feedmill.app/internal/model"
	"feedmill.app/internal/reader/xmltree"
)

// Enclosures returns the attachments of an entry: RSS enclosures, Atom
// links with the enclosure relation and Media RSS contents, in this order.
// Attachments without URL and repeated URLs are dropped.
func Enclosures(item *xmltree.Node) model.EnclosureList {
	var list model.EnclosureList
	for _, node := range item.All("enclosure") {
		list = list.Append(model.Enclosure{
			URL:    node.Attr("url"),
			Length: parseLength(node.Attr("length")),
			Type:   node.Attr("type"),
		})
	}

	for _, node := range item.All("enc:enclosure") {
		list = list.Append(model.Enclosure{
			URL:    firstNonEmpty(node.Attr("rdf:resource"), node.Attr("url")),
			Length: parseLength(firstNonEmpty(node.Attr("enc:length"), node.Attr("length"))),
			Type:   firstNonEmpty(node.Attr("enc:type"), node.Attr("type")),
		})
	}

	for _, link := range item.All("link") {
		if strings.EqualFold(link.Attr("rel"), "enclosure") {
			list = list.Append(model.Enclosure{
				URL:    link.Attr("href"),
				Length: parseLength(link.Attr("length")),
				Type:   link.Attr("type"),
			})
		}
	}

	list = appendMediaContent(list, item.All("media:content"))
	for _, group := range item.All("media:group") {
		list = appendMediaContent(list, group.All("media:content"))
	}
	return list
}

func appendMediaContent(list model.EnclosureList, nodes []*xmltree.Node,
) model.EnclosureList {
	for _, node := range nodes {
		list = list.Append(model.Enclosure{
			URL:    node.Attr("url"),
			Length: parseLength(node.Attr("fileSize")),
			Type:   node.Attr("type"),
		})
	}
	return list
}

func parseLength(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
