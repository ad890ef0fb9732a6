// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sanitizer

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripTracking(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		refHost  string
	}{
		{
			name:     "tracking parameters",
			input:    "https://example.com/page?id=123&utm_source=newsletter&utm_medium=email&fbclid=abc123",
			expected: "https://example.com/page?id=123",
		},
		{
			name:     "only tracking parameters",
			input:    "https://example.com/page?utm_source=newsletter&utm_medium=email",
			expected: "https://example.com/page",
		},
		{
			name:     "no tracking parameters",
			input:    "https://example.com/page?id=123&foo=bar",
			expected: "https://example.com/page?id=123&foo=bar",
		},
		{
			name:     "mixed case tracking parameters",
			input:    "https://example.com/page?UTM_SOURCE=newsletter&utm_MEDIUM=email",
			expected: "https://example.com/page",
		},
		{
			name:     "fragment kept",
			input:    "https://example.com/page?id=123&utm_source=newsletter#section1",
			expected: "https://example.com/page?id=123#section1",
		},
		{
			name:     "encoded characters",
			input:    "https://example.com/page?name=John%20Doe&utm_source=newsletter",
			expected: "https://example.com/page?name=John+Doe",
		},
		{
			name:     "ref parameter for another host",
			input:    "https://example.com/page?ref=test.com",
			refHost:  "example.com",
			expected: "https://example.com/page?ref=test.com",
		},
		{
			name:     "ref parameter for own host",
			input:    "https://example.com/page?ref=example.com",
			refHost:  "example.com",
			expected: "https://example.com/page",
		},
		{
			name:     "non-standard query",
			input:    "https://example.com/foo.jpg?crop/1420x708/format/webp",
			expected: "https://example.com/foo.jpg?crop/1420x708/format/webp",
		},
		{
			name:     "matomo",
			input:    "https://example.com/?mtm_campaign=promo&mtm_source=newsletter",
			expected: "https://example.com/",
		},
		{
			name:     "readwise",
			input:    "https://example.com/?__readwiseLocation=x",
			expected: "https://example.com/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.input)
			require.NoError(t, err)

			StripTracking(u, tt.refHost)
			assert.Equal(t, tt.expected, u.String())
		})
	}
}

func TestStripTrackingURL(t *testing.T) {
	assert.Equal(t, "https://example.com/a?b=c",
		StripTrackingURL("https://example.com/a?b=c&utm_campaign=x"))
	assert.Equal(t, "https://example.com/a?b=c",
		StripTrackingURL("https://example.com/a?b=c"))
	assert.Equal(t, "://bad", StripTrackingURL("://bad"))
}
