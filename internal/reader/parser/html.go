package parser

import (
	"fmt"

	"feedmill.app/internal/model"
	"feedmill.app/internal/reader/date"
	"feedmill.app/internal/reader/scraper"
)

func parseHTML(b []byte, c *Config) (*model.Feed, error) {
	page, err := scraper.Extract(b, c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFeed, err)
	}

	if page.Title == "" || page.Description == "" || page.URL == "" ||
		len(page.Posts) == 0 {
		return nil, fmt.Errorf(
			"%w: HTML page without title, description, URL or posts",
			ErrInvalidFeed)
	}

	feed := model.NewFeed(model.FeedTypeHTML)
	feed.Lang = page.Lang
	feed.Title = page.Title
	feed.Description = page.Description
	feed.SiteURL = page.URL
	feed.FeedURL = page.AltURL
	feed.ImageURL = page.ImageURL
	feed.UpdatedAt = date.First(page.UpdatedAt)
	feed.SetItems(mapItems(c.ItemConcurrency, page.Posts, htmlItem))
	return feed, nil
}

func htmlItem(post scraper.Post) *model.Item {
	return &model.Item{
		ID:        post.URL,
		URL:       post.URL,
		Title:     post.Title,
		Snippet:   post.Snippet,
		ImageURL:  post.ImageURL,
		CreatedAt: date.First(post.Date),
	}
}
