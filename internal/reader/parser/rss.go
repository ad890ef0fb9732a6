// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"strings"

	"feedmill.app/internal/model"
	"feedmill.app/internal/reader/date"
	"feedmill.app/internal/reader/fields"
	"feedmill.app/internal/reader/itunes"
	"feedmill.app/internal/reader/xmltree"
)

type rssFeed struct {
	cfg     *Config
	doc     *xmltree.Document
	version RSSVersion

	channel *xmltree.Node
	items   []*xmltree.Node
	image   *xmltree.Node
}

func newRSSFeed(doc *xmltree.Document, version RSSVersion, c *Config,
) *rssFeed {
	self := &rssFeed{cfg: c, doc: doc, version: version}
	if rdf := doc.Element("rdf:RDF"); version == RSS1 && rdf != nil {
		self.channel = rdf.First("channel")
		self.items = rdf.All("item")
		self.image = rdf.First("image")
		if len(self.items) == 0 {
			self.items = self.channel.All("item")
		}
		return self
	}

	self.channel = doc.Root.Path("rss", "channel")
	self.items = self.channel.All("item")
	return self
}

func (self *rssFeed) Feed() *model.Feed {
	v := fields.Copy(self.channel, fields.Feed)

	feed := model.NewFeed(model.FeedTypeRSS)
	feed.Lang = v.Text("lang")
	feed.Title = decodeText(v.First("title"))
	feed.Description = decodeText(v.First("description"))
	links := v.Nodes("link")
	feed.SiteURL = firstNonEmpty(linkText(links), linkURL(links))
	feed.FeedURL = firstNonEmpty(getLink(v.Nodes("atom:link"), "self", 0),
		getLink(hrefLinks(links), "self", -1), v.Text("source"))
	feed.ImageURL = self.imageURL(v.First("image"))
	feed.Etag = v.Text("etag")
	feed.UpdatedAt = date.First(v.Text("updatedAt"))
	feed.Meta = feedMeta(v)
	feed.SetItems(mapItems(self.cfg.ItemConcurrency, self.items, self.item))

	if self.version == RSS2 && self.doc.Declares(itunes.Prefix, itunes.Namespace) {
		itunes.Decorate(feed, self.channel)
	}
	return feed
}

// imageURL reads the channel image: the url of <image> wins over its link,
// a plain text <image> is used as is, and itunes:image is the last resort.
func (self *rssFeed) imageURL(image *xmltree.Node) string {
	if u := imageURL(self.image); u != "" {
		return u
	}
	if u := imageURL(image); u != "" {
		return u
	}

	itunesImage := self.channel.First(itunes.Prefix + ":image")
	return firstNonEmpty(itunesImage.Attr("href"), itunesImage.Text())
}

func imageURL(image *xmltree.Node) string {
	if image == nil {
		return ""
	}

	u := firstNonEmpty(image.First("url").Text(), image.First("link").Text())
	if u == "" && !image.HasChildren() {
		u = image.Text()
	}
	return firstNonEmpty(u, image.Attr("rdf:resource"), image.Attr("href"))
}

func (self *rssFeed) item(node *xmltree.Node) *model.Item {
	item := newItem(node)
	if item.URL == "" {
		item.URL = permalink(node.First("guid"))
	}
	return item
}

// permalink returns the guid when it's a permanent absolute URL.
func permalink(guid *xmltree.Node) string {
	isPermaLink := guid.Attr("isPermaLink")
	if isPermaLink != "" && !strings.EqualFold(isPermaLink, "true") {
		return ""
	}

	s := guid.Text()
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return s
	}
	return ""
}
