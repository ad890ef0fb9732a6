// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedmill.app/internal/reader/fields"
	"feedmill.app/internal/reader/xmltree"
)

func imageValues(t *testing.T, item string) fields.Values {
	t.Helper()
	doc, err := xmltree.Parse([]byte(item))
	require.NoError(t, err)
	return fields.Copy(doc.Element("item"), fields.Image)
}

func TestImageURL(t *testing.T) {
	tests := []struct {
		name     string
		item     string
		content  string
		expected string
	}{
		{
			name:     "image text",
			item:     `<item><image>https://example.org/a.png</image><media:thumbnail url="https://example.org/b.png"/></item>`,
			expected: "https://example.org/a.png",
		},
		{
			name:     "image url child",
			item:     `<item><image><url>https://example.org/a.png</url><link>https://example.org/</link></image></item>`,
			expected: "https://example.org/a.png",
		},
		{
			name:     "thumbnail beats itunes image",
			item:     `<item><itunes:image href="https://example.org/itunes.jpg"/><media:thumbnail url="https://example.org/thumb.jpg"/></item>`,
			expected: "https://example.org/thumb.jpg",
		},
		{
			name:     "media content of image type",
			item:     `<item><media:content url="https://example.org/v.mp4" type="video/mp4"/><media:content url="https://example.org/c.jpg" type="image/jpeg"/></item>`,
			expected: "https://example.org/c.jpg",
		},
		{
			name:     "media content with image medium",
			item:     `<item><media:content url="https://example.org/c.jpg" medium="image"/></item>`,
			expected: "https://example.org/c.jpg",
		},
		{
			name:     "media group thumbnail",
			item:     `<item><media:group><media:thumbnail url="https://i.ytimg.com/vi/x/hqdefault.jpg"/></media:group></item>`,
			expected: "https://i.ytimg.com/vi/x/hqdefault.jpg",
		},
		{
			name:     "itunes image",
			item:     `<item><itunes:image href="https://example.org/itunes.jpg"/><enclosure url="https://example.org/e.jpg" type="image/jpeg"/></item>`,
			expected: "https://example.org/itunes.jpg",
		},
		{
			name:     "content image",
			item:     `<item><enclosure url="https://example.org/e.jpg" type="image/jpeg"/></item>`,
			content:  `<p>Text <img src="https://example.org/inline.png"/></p>`,
			expected: "https://example.org/inline.png",
		},
		{
			name:     "selected content image",
			item:     `<item><description><![CDATA[<p><img src="https://example.org/desc.png"></p>]]></description></item>`,
			expected: "https://example.org/desc.png",
		},
		{
			name:     "image enclosure",
			item:     `<item><enclosure url="https://example.org/a.mp3" type="audio/mpeg"/><enclosure url="https://example.org/e.jpg" type="image/jpeg"/></item>`,
			expected: "https://example.org/e.jpg",
		},
		{
			name: "nothing",
			item: `<item><title>No image</title></item>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ImageURL(imageValues(t, tt.item), tt.content))
		})
	}
}

func TestContentImage(t *testing.T) {
	assert.Equal(t, "https://example.org/b.png",
		ContentImage(`<img alt="no source"><img src="https://example.org/b.png"><img src="https://example.org/c.png">`))
	assert.Empty(t, ContentImage("<p>no images</p>"))
	assert.Empty(t, ContentImage(""))
}
