// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package xmltree folds an XML document into a generic tree keyed by
// qualified element names, like "dc:title" or "rdf:RDF". It is tolerant of
// malformed markup: parsing stops at the first syntax error and keeps what
// was built so far.
package xmltree // import "feedmill.app/internal/reader/xmltree"

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"

	"feedmill.app/internal/reader/encoding"
)

var ErrNoElements = errors.New("reader/xmltree: document has no elements")

// Document is a parsed XML document.
type Document struct {
	// Root is a synthetic node, its children are the top-level elements.
	Root *Node

	// Namespaces maps every declared prefix to its URI. The default namespace
	// has an empty prefix.
	Namespaces map[string]string
}

// Element returns the top-level element with the given name, or nil.
func (self *Document) Element(name string) *Node { return self.Root.First(name) }

// Declares reports whether the document declares the namespace prefix or the
// namespace uri.
func (self *Document) Declares(prefix, uri string) bool {
	if _, ok := self.Namespaces[prefix]; ok && prefix != "" {
		return true
	}
	for _, v := range self.Namespaces {
		if strings.EqualFold(strings.TrimSpace(v), uri) {
			return true
		}
	}
	return false
}

// Parse builds a Document from data. Documents with a non UTF-8 encoding in
// their XML declaration are converted first. It returns ErrNoElements when
// not a single element could be read.
func Parse(data []byte) (*Document, error) {
	if utf8, err := encoding.XMLToUTF8(data); err == nil {
		data = utf8
	}

	d := xml.NewDecoder(bytes.NewReader(data))
	d.Strict = false
	d.Entity = xml.HTMLEntity
	d.CharsetReader = encoding.PassThrough

	b := newBuilder(data)
	for {
		offset := d.InputOffset()
		tok, err := d.RawToken()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			b.start(t, d.InputOffset())
		case xml.EndElement:
			b.end(t, offset)
		case xml.CharData:
			b.text(t)
		}
	}
	b.finish(d.InputOffset())

	if len(b.doc.Root.Children) == 0 {
		return nil, ErrNoElements
	}
	return b.doc, nil
}

type builder struct {
	data  []byte
	doc   *Document
	stack []*frame
}

type frame struct {
	node        *Node
	start       int64
	text        strings.Builder
	hasChildren bool
}

func newBuilder(data []byte) *builder {
	doc := &Document{Root: newNode(""), Namespaces: map[string]string{}}
	return &builder{
		data:  data,
		doc:   doc,
		stack: []*frame{{node: doc.Root}},
	}
}

func (self *builder) start(t xml.StartElement, offset int64) {
	node := newNode(qualifiedName(t.Name))
	for _, attr := range t.Attr {
		switch {
		case attr.Name.Space == "xmlns":
			self.doc.Namespaces[attr.Name.Local] = attr.Value
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			self.doc.Namespaces[""] = attr.Value
		}
		node.Attrs[qualifiedName(attr.Name)] = attr.Value
	}

	parent := self.stack[len(self.stack)-1]
	parent.hasChildren = true
	parent.node.Children[node.Name] = append(parent.node.Children[node.Name], node)
	self.stack = append(self.stack, &frame{node: node, start: offset})
}

// end closes the nearest open element with the same name. End tags without
// an open element are ignored.
func (self *builder) end(t xml.EndElement, offset int64) {
	name := qualifiedName(t.Name)
	for i := len(self.stack) - 1; i > 0; i-- {
		if self.stack[i].node.Name != name {
			continue
		}
		for j := len(self.stack) - 1; j >= i; j-- {
			self.close(self.stack[j], offset)
		}
		self.stack = self.stack[:i]
		return
	}
}

func (self *builder) text(t xml.CharData) {
	if len(self.stack) > 1 {
		self.stack[len(self.stack)-1].text.Write(t)
	}
}

func (self *builder) finish(offset int64) {
	for i := len(self.stack) - 1; i > 0; i-- {
		self.close(self.stack[i], offset)
	}
	self.stack = self.stack[:1]
}

func (self *builder) close(f *frame, end int64) {
	f.node.Value = f.text.String()
	if !f.hasChildren {
		return
	}
	end = min(end, int64(len(self.data)))
	if f.start < end {
		f.node.Raw = string(self.data[f.start:end])
	}
}

func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}
