// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package xmltree // import "feedmill.app/internal/reader/xmltree"

import (
	"strings"

	ext "github.com/mmcdole/gofeed/extensions"
)

// Node is an element of the tree. All methods accept a nil receiver, so
// lookups can be chained without checks.
type Node struct {
	Name  string
	Attrs map[string]string

	// Value is the character data directly inside the element.
	Value string

	// Raw is the inner markup, it's set only for elements with child
	// elements.
	Raw string

	Children map[string][]*Node
}

func newNode(name string) *Node {
	return &Node{
		Name:     name,
		Attrs:    map[string]string{},
		Children: map[string][]*Node{},
	}
}

// First returns the first child element with the given name.
func (self *Node) First(name string) *Node {
	if nodes := self.All(name); len(nodes) != 0 {
		return nodes[0]
	}
	return nil
}

// All returns all child elements with the given name, in document order.
func (self *Node) All(name string) []*Node {
	if self == nil {
		return nil
	}
	return self.Children[name]
}

// Path follows the first child of every name.
func (self *Node) Path(names ...string) *Node {
	node := self
	for _, name := range names {
		if node = node.First(name); node == nil {
			return nil
		}
	}
	return node
}

func (self *Node) HasChildren() bool { return self != nil && len(self.Children) != 0 }

// HasPrefix reports whether the node has a child element with the namespace
// prefix.
func (self *Node) HasPrefix(prefix string) bool {
	if self == nil {
		return false
	}
	for name := range self.Children {
		if strings.HasPrefix(name, prefix+":") {
			return true
		}
	}
	return false
}

// Attr returns the trimmed value of the attribute.
func (self *Node) Attr(name string) string {
	if self == nil {
		return ""
	}
	return strings.TrimSpace(self.Attrs[name])
}

// Text returns the trimmed character data of the element.
func (self *Node) Text() string {
	if self == nil {
		return ""
	}
	return strings.TrimSpace(self.Value)
}

// Content returns the inner markup of elements with child elements, like
// unescaped HTML or XHTML content, and the text of others.
func (self *Node) Content() string {
	if self == nil {
		return ""
	}
	if self.Raw != "" {
		return strings.TrimSpace(self.Raw)
	}
	return self.Text()
}

// Extensions converts children with the namespace prefix into gofeed
// extensions keyed by local name.
func (self *Node) Extensions(prefix string) map[string][]ext.Extension {
	if self == nil {
		return nil
	}

	extensions := map[string][]ext.Extension{}
	for name, nodes := range self.Children {
		local, ok := strings.CutPrefix(name, prefix+":")
		if !ok {
			continue
		}
		for _, node := range nodes {
			extensions[local] = append(extensions[local], node.extension(local))
		}
	}
	return extensions
}

func (self *Node) extension(name string) ext.Extension {
	e := ext.Extension{
		Name:     name,
		Value:    self.Text(),
		Attrs:    make(map[string]string, len(self.Attrs)),
		Children: make(map[string][]ext.Extension, len(self.Children)),
	}

	for k, v := range self.Attrs {
		e.Attrs[localName(k)] = v
	}

	for childName, nodes := range self.Children {
		local := localName(childName)
		for _, node := range nodes {
			e.Children[local] = append(e.Children[local], node.extension(local))
		}
	}
	return e
}

func localName(name string) string {
	if _, local, ok := strings.Cut(name, ":"); ok {
		return local
	}
	return name
}
