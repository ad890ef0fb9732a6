package parser

import (
	"net/url"

	"feedmill.app/internal/model"
	"feedmill.app/internal/reader/sanitizer"
)

func (self *Config) postProcess(feed *model.Feed) {
	if self.BaseURL != nil {
		resolveURLs(feed, self.BaseURL)
	}
	if self.StripTracking {
		stripTracking(feed)
	}
}

// resolveURLs makes relative URLs of feed absolute. Feed URLs are resolved
// against base, item URLs against the site URL when it's absolute.
func resolveURLs(feed *model.Feed, base *url.URL) {
	feed.SiteURL = absoluteURL(base, feed.SiteURL)
	feed.FeedURL = absoluteURL(base, feed.FeedURL)
	feed.ImageURL = absoluteURL(base, feed.ImageURL)

	itemBase := base
	if u, err := url.Parse(feed.SiteURL); err == nil && u.IsAbs() {
		itemBase = u
	}

	for _, item := range feed.Items {
		item.URL = absoluteURL(itemBase, item.URL)
		item.CommentsURL = absoluteURL(itemBase, item.CommentsURL)
		item.ImageURL = absoluteURL(itemBase, item.ImageURL)
		for i := range item.Media {
			item.Media[i].URL = absoluteURL(itemBase, item.Media[i].URL)
		}
	}
}

func absoluteURL(base *url.URL, rawURL string) string {
	if rawURL == "" {
		return rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.IsAbs() {
		return rawURL
	}
	return base.ResolveReference(u).String()
}

// stripTracking removes tracking parameters from item links. A "ref"
// parameter is considered tracking when it names the site or the feed host.
func stripTracking(feed *model.Feed) {
	var hosts []string
	for _, rawURL := range []string{feed.SiteURL, feed.FeedURL} {
		if u, err := url.Parse(rawURL); err == nil && u.Hostname() != "" {
			hosts = append(hosts, u.Hostname())
		}
	}

	for _, item := range feed.Items {
		item.URL = sanitizer.StripTrackingURL(item.URL, hosts...)
		item.CommentsURL = sanitizer.StripTrackingURL(item.CommentsURL, hosts...)
	}
}
