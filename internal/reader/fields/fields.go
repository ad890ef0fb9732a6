// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package fields copies source elements into canonical keys following
// ordered tables. Later table entries overwrite earlier ones when their
// source is present, so the order of a table is its precedence.
package fields // import "feedmill.app/internal/reader/fields"

import "feedmill.app/internal/reader/xmltree"

// Field maps the source element From to the destination key To.
type Field struct {
	From string
	To   string
}

// Name returns a Field copying an element under its own name.
func Name(name string) Field { return Field{From: name, To: name} }

// Map returns a Field copying the element from under the key to.
func Map(from, to string) Field { return Field{From: from, To: to} }

// Values holds the elements selected by a table.
type Values map[string][]*xmltree.Node

// Copy selects the children of n listed in table. A present source
// unconditionally replaces what an earlier entry stored under the same key.
func Copy(n *xmltree.Node, table []Field) Values {
	values := make(Values, len(table))
	for _, f := range table {
		if nodes := n.All(f.From); len(nodes) != 0 {
			values[f.To] = nodes
		}
	}
	return values
}

func (self Values) Nodes(key string) []*xmltree.Node { return self[key] }

// First returns the first element stored under key.
func (self Values) First(key string) *xmltree.Node {
	if nodes := self[key]; len(nodes) != 0 {
		return nodes[0]
	}
	return nil
}

// Text returns the trimmed text of the first element stored under key.
func (self Values) Text(key string) string { return self.First(key).Text() }

// Content returns the inner markup, or the text, of the first element stored
// under key.
func (self Values) Content(key string) string {
	return self.First(key).Content()
}
