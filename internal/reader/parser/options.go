package parser

import (
	"fmt"
	"net/url"
	"strings"
)

// RSSVersion is a version of the RSS family.
type RSSVersion string

const (
	RSSUnknown RSSVersion = ""
	RSS09      RSSVersion = "0.9"
	RSS1       RSSVersion = "1"
	RSS2       RSSVersion = "2"
)

// ParseRSSVersion converts s, like "2.0" or "0.91", into a RSSVersion. An
// empty s gives RSSUnknown.
func ParseRSSVersion(s string) (RSSVersion, error) {
	switch s = strings.TrimSpace(s); {
	case s == "":
		return RSSUnknown, nil
	case strings.HasPrefix(s, "2"):
		return RSS2, nil
	case strings.HasPrefix(s, "1"):
		return RSS1, nil
	case strings.HasPrefix(s, "0.9"):
		return RSS09, nil
	}
	return RSSUnknown, fmt.Errorf("reader/parser: unsupported RSS version %q", s)
}

type Config struct {
	BaseURL         *url.URL
	StripTracking   bool
	DefaultRSS      RSSVersion
	ItemConcurrency int
}

type Option func(*Config)

func NewConfig(opts ...Option) *Config {
	c := &Config{}
	for _, fn := range opts {
		fn(c)
	}
	return c
}

// WithBaseURL resolves relative URLs of the feed against rawURL. Relative
// URLs of items are resolved against the site URL of the feed, if it's
// absolute. Unparsable or relative base URLs are ignored.
func WithBaseURL(rawURL string) Option {
	return func(c *Config) {
		if u, err := url.Parse(strings.TrimSpace(rawURL)); err == nil && u.IsAbs() {
			c.BaseURL = u
		}
	}
}

// WithStripTracking removes tracking parameters from item and comments URLs.
func WithStripTracking(enabled bool) Option {
	return func(c *Config) { c.StripTracking = enabled }
}

// WithDefaultRSS sets the version assumed for <rss> documents without a
// known version.
func WithDefaultRSS(v RSSVersion) Option {
	return func(c *Config) { c.DefaultRSS = v }
}

// WithItemConcurrency maps items with up to n goroutines. The order of items
// doesn't change.
func WithItemConcurrency(n int) Option {
	return func(c *Config) { c.ItemConcurrency = n }
}
