package parser

import (
	"golang.org/x/sync/errgroup"

	"feedmill.app/internal/model"
)

// mapItems converts every source entry into an item, keeping the order of
// src. With limit > 1 entries are converted concurrently.
func mapItems[T any](limit int, src []T, fn func(T) *model.Item) []*model.Item {
	items := make([]*model.Item, len(src))
	if limit < 2 || len(src) < 2 {
		for i, v := range src {
			items[i] = fn(v)
		}
		return items
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for i, v := range src {
		g.Go(func() error {
			items[i] = fn(v)
			return nil
		})
	}
	_ = g.Wait()
	return items
}
