// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package category // import "feedmill.app/internal/reader/category"

import (
	"strings"

	"feedmill.app/internal/reader/xmltree"
)

// Flatten turns any category representation into a flat list of names.
// Lists are flattened recursively, strings are split on commas and tags
// yield their "term", else "text", else their text content. Names are
// trimmed, empty names dropped and duplicates kept.
func Flatten(v any) []string {
	var names []string
	flatten(v, &names)
	return names
}

func flatten(v any, names *[]string) {
	switch v := v.(type) {
	case nil:
	case string:
		appendSplit(v, names)
	case []string:
		for _, s := range v {
			appendSplit(s, names)
		}
	case *xmltree.Node:
		if v != nil {
			appendSplit(firstNonEmpty(v.Attr("term"), v.Attr("text"), v.Text()),
				names)
		}
	case []*xmltree.Node:
		for _, node := range v {
			flatten(node, names)
		}
	case []any:
		for _, item := range v {
			flatten(item, names)
		}
	case map[string]any:
		for _, key := range []string{"term", "text", "_", "#text"} {
			if s, ok := v[key].(string); ok && strings.TrimSpace(s) != "" {
				appendSplit(s, names)
				return
			}
		}
	case map[string]string:
		for _, key := range []string{"term", "text", "_", "#text"} {
			if s := v[key]; strings.TrimSpace(s) != "" {
				appendSplit(s, names)
				return
			}
		}
	}
}

func appendSplit(s string, names *[]string) {
	for name := range strings.SplitSeq(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			*names = append(*names, name)
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}
