// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"feedmill.app/internal/model"
	"feedmill.app/internal/reader/date"
	"feedmill.app/internal/reader/fields"
	"feedmill.app/internal/reader/xmltree"
)

type atomFeed struct {
	cfg  *Config
	doc  *xmltree.Document
	root *xmltree.Node
}

func newAtomFeed(doc *xmltree.Document, root *xmltree.Node, c *Config,
) *atomFeed {
	return &atomFeed{cfg: c, doc: doc, root: root}
}

func (self *atomFeed) Feed() *model.Feed {
	v := fields.Copy(self.root, fields.Feed)
	links := self.root.All("link")

	feed := model.NewFeed(model.FeedTypeAtom)
	feed.Lang = firstNonEmpty(v.Text("lang"), self.root.Attr("xml:lang"))
	feed.Title = decodeText(v.First("title"))
	feed.Description = firstNonEmpty(decodeText(v.First("description")),
		decodeText(self.root.First("subtitle")))
	feed.SiteURL = getLink(links, "alternate", 0)
	feed.FeedURL = getLink(links, "self", 1)
	feed.ImageURL = firstNonEmpty(v.Text("image"),
		self.root.First("logo").Text(), self.root.First("icon").Text())
	feed.Etag = v.Text("etag")
	feed.UpdatedAt = date.First(v.Text("updatedAt"))
	feed.Meta = feedMeta(v, self.root.First("rights"))
	feed.SetItems(mapItems(self.cfg.ItemConcurrency, self.root.All("entry"),
		self.entry))
	return feed
}

func (self *atomFeed) entry(node *xmltree.Node) *model.Item {
	item := newItem(node)
	item.CreatedAt = item.Date()
	if item.CommentsURL == "" {
		item.CommentsURL = getLink(node.All("link"), "replies", -1)
	}
	return item
}
