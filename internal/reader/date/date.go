// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package date // import "feedmill.app/internal/reader/date"

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ISO8601 is the layout of normalized dates: UTC with millisecond precision.
const ISO8601 = "2006-01-02T15:04:05.000Z"

// Parse parses a date in any of the formats found in feeds. Dates without time
// zone are in UTC.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil || t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}

// Normalize returns s as an ISO-8601 date, or false if s is not a date.
func Normalize(s string) (string, bool) {
	t, ok := Parse(s)
	if !ok {
		return "", false
	}
	return Format(t), true
}

// Format renders t as an ISO-8601 date.
func Format(t time.Time) string { return t.UTC().Format(ISO8601) }

// First returns the first of values which normalizes to a date.
func First(values ...string) string {
	for _, s := range values {
		if iso, ok := Normalize(s); ok {
			return iso
		}
	}
	return ""
}
