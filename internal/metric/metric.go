// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package metric // import "feedmill.app/internal/metric"

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "feedmill"

// Status label values.
const (
	StatusSuccess = "success"
	StatusNotFeed = "not_feed"
	StatusError   = "error"
)

// Prometheus Metrics.
var (
	DocumentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_total",
			Help:      "Parsed documents by detected format and outcome",
		},
		[]string{"format", "status"},
	)

	ParseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "parse_duration_seconds",
			Help:      "Processing time to parse a document",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		},
		[]string{"format"},
	)

	ItemsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_total",
			Help:      "Items extracted from parsed feeds",
		},
	)

	DuplicateDocumentsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_documents_total",
			Help:      "Documents parsed once for multiple identical inputs",
		},
	)
)

func collectors() []prometheus.Collector {
	return []prometheus.Collector{
		DocumentsTotal, ParseDuration, ItemsTotal, DuplicateDocumentsTotal,
	}
}

// Register registers all feedmill collectors with reg.
func Register(reg prometheus.Registerer) error {
	for _, c := range collectors() {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("metric: register collector: %w", err)
		}
	}
	return nil
}

// ObserveDocument records the outcome of parsing one document.
func ObserveDocument(format, status string, items int, elapsed time.Duration) {
	DocumentsTotal.WithLabelValues(format, status).Inc()
	ParseDuration.WithLabelValues(format).Observe(elapsed.Seconds())
	if items > 0 {
		ItemsTotal.Add(float64(items))
	}
}

// WriteTextfile writes the metrics of a new registry with all feedmill
// collectors to filename, in the format of the node exporter textfile
// collector.
func WriteTextfile(filename string) error {
	reg := prometheus.NewRegistry()
	if err := Register(reg); err != nil {
		return err
	}

	if err := prometheus.WriteToTextfile(filename, reg); err != nil {
		return fmt.Errorf("metric: write %q: %w", filename, err)
	}
	return nil
}
