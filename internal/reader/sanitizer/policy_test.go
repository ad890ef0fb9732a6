package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "plain text",
			title: "Foo bar baz",
			want:  "Foo bar baz",
		},
		{
			name:  "with html",
			title: "Foo <string>bar</strong> baz",
			want:  "Foo bar baz",
		},
		{
			name:  "with spaces",
			title: " Foo bar <b>baz</b>",
			want:  "Foo bar baz",
		},
		{
			name:  "with entities",
			title: "&amp;Foo &lt; bar &gt; baz",
			want:  "&amp;Foo &lt; bar &gt; baz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.title))
		})
	}
}

func TestSanitizeContent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "valid input",
			input:    `<p>This is a <strong>text</strong> with an image: <img src="http://example.org/" alt="Test" loading="lazy">.</p>`,
			expected: `<p>This is a <strong>text</strong> with an image: <img src="http://example.org/" alt="Test" loading="lazy"/>.</p>`,
		},
		{
			name:     "with html and body",
			input:    `<html><head></head><body><p>This is a <strong>text</strong>.</p></body></html>`,
			expected: `<p>This is a <strong>text</strong>.</p>`,
		},
		{
			name:     "script removed with its content",
			input:    `<p>Hello</p><script>alert("x")</script>`,
			expected: `<p>Hello</p>`,
		},
		{
			name:     "style and link removed",
			input:    `<style>p{color:red}</style><link rel="stylesheet" href="https://example.org/s.css"><p>Hi</p>`,
			expected: `<p>Hi</p>`,
		},
		{
			name:     "incorrect width and height",
			input:    `<img src="https://example.org/image.png" width="10px" height="20px">`,
			expected: `<img src="https://example.org/image.png" loading="lazy"/>`,
		},
		{
			name:  "img with text data url",
			input: `<img src="data:text/plain;base64,SGVsbG8sIFdvcmxkIQ==" alt="Example"/>`,
		},
		{
			name:     "img with data url",
			input:    `<img src="data:image/gif;base64,test" alt="Example">`,
			expected: `<img src="data:image/gif;base64,test" alt="Example" loading="lazy"/>`,
		},
		{
			name:     "fetchpriority high",
			input:    `<img src="https://example.org/image.png" fetchpriority="high">`,
			expected: `<img src="https://example.org/image.png" fetchpriority="high" loading="lazy"/>`,
		},
		{
			name:     "invalid decoding",
			input:    `<img src="https://example.org/image.png" decoding="invalid">`,
			expected: `<img src="https://example.org/image.png" loading="lazy"/>`,
		},
		{
			name:     "non img with decoding",
			input:    `<p decoding="async">Text</p>`,
			expected: `<p>Text</p>`,
		},
		{
			name:  "iframe removed",
			input: `<iframe src="https://www.youtube.com/embed/123"></iframe>`,
		},
		{
			name:  "empty",
			input: "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeContent(tt.input))
		})
	}
}
