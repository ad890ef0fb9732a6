// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedmill.app/internal/model"
	"feedmill.app/internal/reader/xmltree"
)

func TestEnclosures(t *testing.T) {
	doc, err := xmltree.Parse([]byte(`<item>
<enclosure url="https://example.org/a.mp3" length="1234" type="audio/mpeg"/>
<enclosure url="" type="audio/mpeg"/>
<enc:enclosure rdf:resource="https://example.org/b.ogg" enc:length="oops" enc:type="audio/ogg"/>
<link rel="enclosure" href="https://example.org/c.mp4" type="video/mp4" length="99"/>
<link rel="alternate" href="https://example.org/post"/>
<media:group>
	<media:content url="https://example.org/d.mp4" fileSize="10" type="video/mp4"/>
	<media:content url="https://example.org/a.mp3" type="audio/mpeg"/>
</media:group>
</item>`))
	require.NoError(t, err)

	assert.Equal(t, model.EnclosureList{
		{URL: "https://example.org/a.mp3", Length: 1234, Type: "audio/mpeg"},
		{URL: "https://example.org/b.ogg", Type: "audio/ogg"},
		{URL: "https://example.org/c.mp4", Length: 99, Type: "video/mp4"},
		{URL: "https://example.org/d.mp4", Length: 10, Type: "video/mp4"},
	}, Enclosures(doc.Element("item")))
}

func TestEnclosures_None(t *testing.T) {
	assert.Nil(t, Enclosures(nil))
}
