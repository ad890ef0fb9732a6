package worker

import (
	"errors"
	"time"

	"feedmill.app/internal/metric"
	"feedmill.app/internal/model"
	"feedmill.app/internal/reader/parser"
)

type queueItem struct {
	Document

	index  int
	format parser.Format
}

func makeItems(docs []Document) []queueItem {
	items := make([]queueItem, len(docs))
	for i, doc := range docs {
		items[i] = queueItem{
			Document: doc,
			index:    i,
			format:   parser.DetectFormat(doc.Data),
		}
	}
	return items
}

func (self *queueItem) result(feed *model.Feed, err error, elapsed time.Duration,
) Result {
	return Result{
		Name:    self.Name,
		Format:  self.format,
		Feed:    feed,
		Err:     err,
		Elapsed: elapsed,
	}
}

func (self *queueItem) canceled(err error) Result {
	return self.result(nil, err, 0)
}

func observe(r *Result) {
	status := metric.StatusSuccess
	switch {
	case errors.Is(r.Err, parser.ErrNotFeed):
		status = metric.StatusNotFeed
	case r.Err != nil:
		status = metric.StatusError
	}

	var items int
	if r.Feed != nil && !r.Shared {
		items = r.Feed.Len()
	}
	if r.Shared {
		metric.DuplicateDocumentsTotal.Inc()
	}
	metric.ObserveDocument(r.Format.String(), status, items, r.Elapsed)
}
