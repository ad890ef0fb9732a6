package parser

import (
	"feedmill.app/internal/model"
	"feedmill.app/internal/reader/date"
	"feedmill.app/internal/reader/category"
	"feedmill.app/internal/reader/fields"
	"feedmill.app/internal/reader/itunes"
	"feedmill.app/internal/reader/media"
	"feedmill.app/internal/reader/sanitizer"
	"feedmill.app/internal/reader/xmltree"
)

// newItem builds the format independent part of an Atom entry or a RSS
// item.
func newItem(node *xmltree.Node) *model.Item {
	v := fields.Copy(node, fields.Item)
	item := &model.Item{
		ID:          v.Text("id"),
		URL:         linkURL(v.Nodes("url")),
		Lang:        firstNonEmpty(v.Text("lang"), node.Attr("xml:lang")),
		Title:       decodeText(v.First("title")),
		Author:      author(v.First("author")),
		Summary:     sanitizer.SanitizeContent(v.Content("summary")),
		Categories:  category.Flatten(v.Nodes("category")),
		CommentsURL: v.Text("comments"),
		CreatedAt:   date.First(v.Text("createdAt")),
		UpdatedAt:   date.First(v.Text("updatedAt")),
		Media:       media.Enclosures(node),
	}

	content := v.Content("description")
	if s := v.Content("content"); s != "" {
		content = s
	}
	if s := v.First("group").First("media:description").Content(); s != "" {
		content = s
	}

	item.Content = sanitizer.SanitizeContent(content)
	if item.Content != "" {
		item.Snippet = sanitizer.Snippet(item.Content)
	}

	item.ImageURL = media.ImageURL(fields.Copy(node, fields.Image), item.Content)
	item.Meta = itemMeta(node, v.First("group"))
	return item
}

// itemMeta collects iTunes and Media RSS metadata of an item.
func itemMeta(node, group *xmltree.Node) model.Meta {
	var m model.Meta
	if episode := itunes.ItemMeta(node); episode != nil {
		m = m.Set("itunes", episode)
	}

	if group != nil {
		community := group.First("media:community")
		m = m.Set("media", model.Meta(nil).
			Set("title", decodeText(group.First("media:title"))).
			Set("description", group.First("media:description").Text()).
			Set("thumbnail", group.First("media:thumbnail").Attr("url")).
			Set("content", group.First("media:content").Attr("url")).
			Set("views", community.First("media:statistics").Attr("views")).
			Set("rating", community.First("media:starRating").Attr("average")))
	}
	return m
}
