package parser

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"feedmill.app/internal/model"
	"feedmill.app/internal/reader/fields"
	"feedmill.app/internal/reader/sanitizer"
	"feedmill.app/internal/reader/xmltree"
)

func parseXML(b []byte, c *Config) (*model.Feed, error) {
	doc, err := xmltree.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFeed, err)
	}

	if root := doc.Element("feed"); root != nil {
		return newAtomFeed(doc, root, c).Feed(), nil
	}

	version := rssVersion(doc, c.DefaultRSS)
	if version == RSSUnknown {
		return nil, fmt.Errorf("%w: unknown RSS version", ErrInvalidFeed)
	}

	rss := newRSSFeed(doc, version, c)
	if rss.channel == nil {
		return nil, fmt.Errorf("%w: RSS without channel", ErrInvalidFeed)
	}
	return rss.Feed(), nil
}

// rssVersion detects the RSS version of doc: <rss version="2.x">, then
// <rdf:RDF>, then <rss version="0.9x">, then def for other <rss> documents.
func rssVersion(doc *xmltree.Document, def RSSVersion) RSSVersion {
	rss := doc.Element("rss")
	version := rss.Attr("version")
	switch {
	case rss != nil && strings.HasPrefix(version, "2"):
		return RSS2
	case doc.Element("rdf:RDF") != nil:
		return RSS1
	case rss == nil:
		return RSSUnknown
	case strings.Contains(version, "0.9"):
		return RSS09
	}
	return def
}

// getLink returns the href of the first link with the relation rel. A link
// without relation is an alternate link. When nothing matches, it falls back
// to the link at index fallback, if that link has no relation.
func getLink(links []*xmltree.Node, rel string, fallback int) string {
	for _, link := range links {
		linkRel := link.Attr("rel")
		if linkRel == "" {
			linkRel = "alternate"
		}
		if strings.EqualFold(linkRel, rel) {
			if href := link.Attr("href"); href != "" {
				return href
			}
		}
	}

	if fallback >= 0 && fallback < len(links) && links[fallback].Attr("rel") == "" {
		return links[fallback].Attr("href")
	}
	return ""
}

// linkURL reads Atom style links, with href, and RSS style links, with text.
// An alternate href wins.
func linkURL(links []*xmltree.Node) string {
	return firstNonEmpty(getLink(links, "alternate", 0), linkText(links))
}

// linkText returns the text of the first RSS style link.
func linkText(links []*xmltree.Node) string {
	for _, link := range links {
		if s := link.Text(); s != "" {
			return s
		}
	}
	return ""
}

// hrefLinks returns Atom style links, like <link xmlns="http://www.w3.org/2005/Atom"
// rel="self" href="..."/> inside a RSS channel.
func hrefLinks(links []*xmltree.Node) []*xmltree.Node {
	var hrefs []*xmltree.Node
	for _, link := range links {
		if link.Attr("href") != "" {
			hrefs = append(hrefs, link)
		}
	}
	return hrefs
}

// decodeText returns the text of node with markup removed and entities
// decoded.
func decodeText(node *xmltree.Node) string {
	if node == nil {
		return ""
	}

	s := node.Text()
	switch node.Attr("type") {
	case "html", "xhtml", "text/html", "application/xhtml+xml":
		s = sanitizer.StripTags(node.Content())
	default:
		if node.HasChildren() {
			s = sanitizer.StripTags(node.Content())
		}
	}
	return strings.TrimSpace(html.UnescapeString(s))
}

func author(node *xmltree.Node) string {
	if node == nil {
		return ""
	}
	return html.UnescapeString(firstNonEmpty(node.First("name").Text(),
		node.Text(), node.First("email").Text()))
}

func feedMeta(v fields.Values, more ...*xmltree.Node) model.Meta {
	copyright := decodeText(v.First("copyright"))
	for _, node := range more {
		copyright = firstNonEmpty(copyright, decodeText(node))
	}
	return model.Meta(nil).Set("copyright", copyright)
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}
