// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package itunes reads the podcast metadata of the iTunes RSS namespace.
package itunes // import "feedmill.app/internal/reader/itunes"

import (
	"strings"

	ext "github.com/mmcdole/gofeed/extensions"

	"feedmill.app/internal/model"
	"feedmill.app/internal/reader/xmltree"
)

const (
	Prefix    = "itunes"
	Namespace = "http://www.itunes.com/dtds/podcast-1.0.dtd"
)

// Category is a podcast category with its subcategories.
type Category struct {
	Name string        `json:"name"`
	Subs []Subcategory `json:"subs,omitempty"`
}

type Subcategory struct {
	Name string `json:"name"`
}

// Owner of a podcast.
type Owner struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Decorate fills feed.ITunes from the iTunes elements of channel. Canonical
// fields of feed are left alone.
func Decorate(feed *model.Feed, channel *xmltree.Node) {
	extensions := channel.Extensions(Prefix)
	if len(extensions) == 0 {
		return
	}

	podcast := ext.NewITunesFeedExtension(extensions)
	m := feed.ITunes
	if owner := podcast.Owner; owner != nil && (owner.Name != "" || owner.Email != "") {
		m = m.Set("owner", Owner{Name: owner.Name, Email: owner.Email})
	}
	m = m.Set("image", podcast.Image)

	names, categories := Categories(channel)
	m = m.Set("categories", names)
	if len(categories) != 0 {
		m = m.Set("categoriesWithSubs", categories)
	}
	m = m.Set("keywords", Keywords(channel))

	m = m.Set("author", podcast.Author).
		Set("subtitle", podcast.Subtitle).
		Set("summary", podcast.Summary).
		Set("explicit", podcast.Explicit).
		Set("type", channel.First(Prefix+":type").Text()).
		Set("complete", podcast.Complete).
		Set("newFeedUrl", podcast.NewFeedURL).
		Set("block", podcast.Block)
	feed.ITunes = m
}

// Categories returns the names of the top level categories of channel and
// the categories with their subcategories.
func Categories(channel *xmltree.Node) ([]string, []Category) {
	var names []string
	var categories []Category
	for _, node := range channel.All(Prefix + ":category") {
		name := categoryName(node)
		if name == "" {
			continue
		}
		names = append(names, name)

		c := Category{Name: name}
		for _, sub := range node.All(Prefix + ":category") {
			if name := categoryName(sub); name != "" {
				c.Subs = append(c.Subs, Subcategory{Name: name})
			}
		}
		categories = append(categories, c)
	}
	return names, categories
}

func categoryName(node *xmltree.Node) string {
	if s := node.Attr("text"); s != "" {
		return s
	}
	return node.Text()
}

// Keywords returns the podcast keywords. Repeated keyword elements give one
// keyword each, a single element holds a comma separated list.
func Keywords(channel *xmltree.Node) []string {
	nodes := channel.All(Prefix + ":keywords")
	var keywords []string
	switch len(nodes) {
	case 0:
	case 1:
		for s := range strings.SplitSeq(nodes[0].Text(), ",") {
			if s = strings.TrimSpace(s); s != "" {
				keywords = append(keywords, s)
			}
		}
	default:
		for _, node := range nodes {
			if s := categoryName(node); s != "" {
				keywords = append(keywords, s)
			}
		}
	}
	return keywords
}

// ItemMeta returns the iTunes fields of an episode, or nil if it has none.
func ItemMeta(item *xmltree.Node) *ext.ITunesItemExtension {
	if !item.HasPrefix(Prefix) {
		return nil
	}
	return ext.NewITunesItemExtension(item.Extensions(Prefix))
}
