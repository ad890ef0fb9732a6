// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package worker // import "feedmill.app/internal/worker"

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"feedmill.app/internal/logging"
	"feedmill.app/internal/model"
	"feedmill.app/internal/reader/parser"
)

// Document is a named raw document.
type Document struct {
	Name string
	Data []byte
}

// Result is the outcome of parsing a Document. Results of identical
// documents get their own copies of the same Feed.
type Result struct {
	Name    string
	Format  parser.Format
	Feed    *model.Feed
	Err     error
	Elapsed time.Duration

	// Shared is true when the feed was parsed for another, identical,
	// document.
	Shared bool
}

type parseFunc func(data []byte, opts ...parser.Option) (*model.Feed, error)

// Pool parses batches of documents with a bounded number of goroutines.
type Pool struct {
	size  int
	opts  []parser.Option
	parse parseFunc
}

// NewPool creates a pool of size workers, which parse documents with opts.
func NewPool(size int, opts ...parser.Option) *Pool {
	return &Pool{size: max(size, 1), opts: opts, parse: parser.Parse}
}

// Parse parses docs and returns their results in the same order. Identical
// documents are parsed once. When ctx is canceled, documents not started
// yet get ctx.Err() as their error.
func (self *Pool) Parse(ctx context.Context, docs []Document) []Result {
	log := logging.FromContext(ctx).With(slog.Int("documents", len(docs)))
	log.Debug("worker: created a batch of documents",
		slog.Int("workers", self.size))

	results := make([]Result, len(docs))
	cache := new(feedCache).Init()
	startTime := time.Now()

	var g errgroup.Group
	g.SetLimit(self.size)
	items := makeItems(docs)
	for i := range items {
		item := &items[i]
		if err := ctx.Err(); err != nil {
			results[item.index] = item.canceled(err)
			continue
		}
		g.Go(func() error {
			results[item.index] = self.parseItem(ctx, item, cache)
			return nil
		})
	}
	_ = g.Wait()

	hit, miss := cache.Stats()
	log.Debug("worker: parsed a batch of documents",
		slog.Uint64("parsed", miss), slog.Uint64("duplicates", hit),
		slog.Duration("elapsed", time.Since(startTime)))
	return results
}

func (self *Pool) parseItem(ctx context.Context, item *queueItem,
	cache *feedCache,
) Result {
	log := logging.FromContext(ctx).With(slog.String("document", item.Name))
	if err := ctx.Err(); err != nil {
		log.Debug("worker: document skipped", slog.Any("error", err))
		return item.canceled(err)
	}

	startTime := time.Now()
	p, shared := cache.Parse(item.Data, func() (*model.Feed, error) {
		return self.parse(item.Data, self.opts...)
	})

	r := item.result(p.feed, p.err, time.Since(startTime))
	r.Shared = shared
	if shared && r.Feed != nil {
		r.Feed = r.Feed.Clone()
	}
	observe(&r)

	if r.Err != nil {
		log.Debug("worker: document is not a feed",
			slog.String("format", r.Format.String()), slog.Any("error", r.Err))
		return r
	}
	log.Debug("worker: document parsed",
		slog.String("format", r.Format.String()),
		slog.String("type", r.Feed.Type),
		slog.Int("items", r.Feed.Len()),
		slog.Bool("shared", shared),
		slog.Duration("elapsed", r.Elapsed))
	return r
}
