// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package atom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedmill.app/internal/model"
	"feedmill.app/internal/reader/parser"
)

func TestParseAtomSample(t *testing.T) {
	data := `<?xml version="1.0" encoding="utf-8"?>
		<feed xmlns="http://www.w3.org/2005/Atom" xml:lang="en">
			<title>Example Feed</title>
			<subtitle>A subtitle.</subtitle>
			<link href="http://example.org/feed/" rel="self" />
			<link href="http://example.org/" />
			<logo>http://example.org/logo.png</logo>
			<icon>http://example.org/favicon.ico</icon>
			<rights>Copyright (c) 2003, Mark Pilgrim</rights>
			<id>urn:uuid:60a76c80-d399-11d9-b91C-0003939e0af6</id>
			<updated>2003-12-13T18:30:02Z</updated>
			<entry>
				<title>Atom-Powered Robots Run Amok</title>
				<link href="http://example.org/2003/12/13/atom03" />
				<link rel="replies" href="http://example.org/2003/12/13/atom03/comments" />
				<link rel="enclosure" type="audio/mpeg" length="1337" href="http://example.org/audio.mp3" />
				<id>urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a</id>
				<updated>2003-12-13T18:30:02Z</updated>
				<summary>Some text.</summary>
				<author>
					<name>John Doe</name>
					<email>johndoe@example.com</email>
				</author>
				<category term="robots" />
				<category term="tech, news" />
			</entry>
		</feed>`

	feed, err := parser.ParseString(data)
	require.NoError(t, err)

	assert.Equal(t, model.FeedTypeAtom, feed.Type)
	assert.Equal(t, "Example Feed", feed.Title)
	assert.Equal(t, "A subtitle.", feed.Description)
	assert.Equal(t, "http://example.org/", feed.SiteURL)
	assert.Equal(t, "http://example.org/feed/", feed.FeedURL)
	assert.Equal(t, "http://example.org/logo.png", feed.ImageURL)
	assert.Equal(t, "en", feed.Lang)
	assert.Equal(t, "2003-12-13T18:30:02.000Z", feed.UpdatedAt)
	assert.Equal(t, "Copyright (c) 2003, Mark Pilgrim", feed.Meta.String("copyright"))
	require.Len(t, feed.Items, 1)

	item := feed.Items[0]
	assert.Equal(t, "urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a", item.ID)
	assert.Equal(t, "http://example.org/2003/12/13/atom03", item.URL)
	assert.Equal(t, "Atom-Powered Robots Run Amok", item.Title)
	assert.Equal(t, "John Doe", item.Author)
	assert.Equal(t, "Some text.", item.Summary)
	assert.Equal(t, []string{"robots", "tech", "news"}, item.Categories)
	assert.Equal(t, "http://example.org/2003/12/13/atom03/comments", item.CommentsURL)
	assert.Equal(t, "2003-12-13T18:30:02.000Z", item.CreatedAt,
		"updated is used when published is missing")
	assert.Equal(t, "2003-12-13T18:30:02.000Z", item.UpdatedAt)
	assert.Equal(t, model.EnclosureList{
		{URL: "http://example.org/audio.mp3", Length: 1337, Type: "audio/mpeg"},
	}, item.Media)
	assert.Empty(t, item.Content)
	assert.Empty(t, item.Snippet)
}

func TestParseAtom_content(t *testing.T) {
	data := `<?xml version="1.0" encoding="utf-8"?>
		<feed xmlns="http://www.w3.org/2005/Atom">
			<entry>
				<title type="html">&lt;b&gt;Bold&lt;/b&gt; &amp;amp; title</title>
				<published>2024-05-01T12:00:00+02:00</published>
				<updated>2024-05-02T12:00:00Z</updated>
				<content type="html">&lt;p&gt;Hello &lt;img src="http://example.org/a.png"&gt;&lt;/p&gt;&lt;style&gt;p{}&lt;/style&gt;</content>
			</entry>
			<entry>
				<title type="xhtml"><div xmlns="http://www.w3.org/1999/xhtml">An <em>XHTML</em> title</div></title>
				<content type="xhtml">
					<div xmlns="http://www.w3.org/1999/xhtml">
						<p>First paragraph.</p>
						<p>Second <strong>paragraph</strong>.</p>
					</div>
				</content>
				<author><email>jane@example.com</email></author>
			</entry>
		</feed>`

	feed, err := parser.ParseString(data)
	require.NoError(t, err)
	require.Len(t, feed.Items, 2)

	item := feed.Items[0]
	assert.Equal(t, "Bold & title", item.Title)
	assert.Equal(t, "2024-05-01T10:00:00.000Z", item.CreatedAt)
	assert.Equal(t, "2024-05-02T12:00:00.000Z", item.UpdatedAt)
	assert.Contains(t, item.Content, `src="http://example.org/a.png"`)
	assert.NotContains(t, item.Content, "<style>")
	assert.Equal(t, "Hello", item.Snippet)
	assert.Equal(t, "http://example.org/a.png", item.ImageURL)

	item = feed.Items[1]
	assert.Equal(t, "An XHTML title", item.Title)
	assert.Equal(t, "jane@example.com", item.Author)
	assert.Contains(t, item.Content, "<p>First paragraph.</p>")
	assert.Equal(t, "First paragraph.\nSecond paragraph.", item.Snippet)
}

func TestParseAtom_links(t *testing.T) {
	tests := []struct {
		name    string
		links   string
		siteURL string
		feedURL string
	}{
		{
			name: "relations",
			links: `<link rel="self" href="https://example.org/atom"/>
				<link rel="alternate" type="text/html" href="https://example.org/"/>`,
			siteURL: "https://example.org/",
			feedURL: "https://example.org/atom",
		},
		{
			name: "positional",
			links: `<link href="https://example.org/"/>
				<link href="https://example.org/atom"/>`,
			siteURL: "https://example.org/",
			feedURL: "https://example.org/atom",
		},
		{
			name:    "self only",
			links:   `<link rel="self" href="https://example.org/atom"/>`,
			feedURL: "https://example.org/atom",
		},
		{
			name: "none",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed, err := parser.ParseString(`<?xml version="1.0"?>
				<feed xmlns="http://www.w3.org/2005/Atom">` + tt.links + `</feed>`)
			require.NoError(t, err)
			assert.Equal(t, tt.siteURL, feed.SiteURL)
			assert.Equal(t, tt.feedURL, feed.FeedURL)
			assert.NotNil(t, feed.Items)
		})
	}
}

func TestParseAtom_mediaThumbnail(t *testing.T) {
	data := `<?xml version="1.0" encoding="UTF-8"?>
		<feed xmlns="http://www.w3.org/2005/Atom"
			xmlns:media="http://search.yahoo.com/mrss/"
			xmlns:yt="http://www.youtube.com/xml/schemas/2015">
			<title>Channel</title>
			<entry>
				<id>yt:video:1</id>
				<title>Video</title>
				<link rel="alternate" href="https://www.youtube.com/watch?v=1"/>
				<media:group>
					<media:title>Video</media:title>
					<media:content url="https://www.youtube.com/v/1" type="application/x-shockwave-flash" width="640" height="390"/>
					<media:thumbnail url="https://i.ytimg.com/vi/1/hqdefault.jpg" width="480" height="360"/>
					<media:description>Line one
Line two</media:description>
				</media:group>
			</entry>
		</feed>`

	feed, err := parser.ParseString(data)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)

	item := feed.Items[0]
	assert.Equal(t, "https://www.youtube.com/watch?v=1", item.URL)
	assert.Equal(t, "https://i.ytimg.com/vi/1/hqdefault.jpg", item.ImageURL)
	assert.Equal(t, "Line one\nLine two", item.Content)
	assert.Equal(t, "Line one\nLine two", item.Snippet)
	assert.Equal(t, model.EnclosureList{
		{URL: "https://www.youtube.com/v/1", Type: "application/x-shockwave-flash"},
	}, item.Media)
}
