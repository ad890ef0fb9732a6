// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sanitizer

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	lineBreakElements = map[atom.Atom]struct{}{
		atom.Address:    {},
		atom.Article:    {},
		atom.Aside:      {},
		atom.Blockquote: {},
		atom.Br:         {},
		atom.Dd:         {},
		atom.Div:        {},
		atom.Dl:         {},
		atom.Dt:         {},
		atom.Figcaption: {},
		atom.Figure:     {},
		atom.Footer:     {},
		atom.H1:         {},
		atom.H2:         {},
		atom.H3:         {},
		atom.H4:         {},
		atom.H5:         {},
		atom.H6:         {},
		atom.Header:     {},
		atom.Hr:         {},
		atom.Li:         {},
		atom.Ol:         {},
		atom.P:          {},
		atom.Pre:        {},
		atom.Section:    {},
		atom.Table:      {},
		atom.Tr:         {},
		atom.Ul:         {},
	}

	skipContentElements = map[atom.Atom]struct{}{
		atom.Script:   {},
		atom.Style:    {},
		atom.Template: {},
		atom.Noscript: {},
	}
)

// Snippet returns the plain text of the HTML fragment s. Block elements
// start new lines, whitespace inside a line collapses to single spaces and
// blank lines are dropped.
func Snippet(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	var b strings.Builder
	var skip int
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return collapseLines(b.String())
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if _, ok := skipContentElements[a]; ok {
				switch {
				case tt == html.StartTagToken:
					skip++
				case tt == html.EndTagToken && skip > 0:
					skip--
				}
			}
			if _, ok := lineBreakElements[a]; ok {
				b.WriteByte('\n')
			}
		}
	}
}

func collapseLines(s string) string {
	lines := strings.Split(s, "\n")
	text := lines[:0]
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			text = append(text, line)
		}
	}
	return strings.Join(text, "\n")
}
