// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config // import "feedmill.app/internal/config"

import (
	"fmt"
	"maps"
	"runtime"
	"slices"
	"strings"

	"feedmill.app/internal/reader/parser"
)

// Option contains a key to value map of a single option. It may be used to
// output debug strings.
type Option struct {
	Key   string
	Value any
}

// Options contains configuration options.
type Options struct {
	env EnvOptions

	defaultRSS parser.RSSVersion
}

type EnvOptions struct {
	LogFile           string `env:"LOG_FILE" yaml:"log_file" validate:"required"`
	LogDateTime       bool   `env:"LOG_DATE_TIME" yaml:"log_date_time"`
	LogFormat         string `env:"LOG_FORMAT" yaml:"log_format" validate:"required,oneof=human json text"`
	LogLevel          string `env:"LOG_LEVEL" yaml:"log_level" validate:"required,oneof=debug info warning error"`
	WorkerPoolSize    int    `env:"WORKER_POOL_SIZE" yaml:"worker_pool_size" validate:"min=1"`
	ItemConcurrency   int    `env:"ITEM_CONCURRENCY" yaml:"item_concurrency" validate:"min=0"`
	BaseURL           string `env:"BASE_URL" yaml:"base_url" validate:"omitempty,http_url"`
	StripTracking     bool   `env:"STRIP_TRACKING" yaml:"strip_tracking"`
	DefaultRSSVersion string `env:"DEFAULT_RSS_VERSION" yaml:"default_rss_version" validate:"omitempty,oneof=0.9 1 2"`
	MetricsFile       string `env:"METRICS_FILE" yaml:"metrics_file"`
	PrettyOutput      bool   `env:"PRETTY_OUTPUT" yaml:"pretty_output"`
}

// NewOptions returns Options with default values.
func NewOptions() *Options {
	return &Options{
		env: EnvOptions{
			LogFile:        "stderr",
			LogFormat:      "text",
			LogLevel:       "info",
			WorkerPoolSize: runtime.GOMAXPROCS(0),
		},
	}
}

func (o *Options) init() error {
	o.env.BaseURL = strings.TrimSpace(o.env.BaseURL)
	if err := o.validate(); err != nil {
		return err
	}

	v, err := parser.ParseRSSVersion(o.env.DefaultRSSVersion)
	if err != nil {
		return fmt.Errorf("config: invalid DEFAULT_RSS_VERSION: %w", err)
	}
	o.defaultRSS = v
	return nil
}

func (o *Options) validate() error {
	if err := Validator().Struct(&o.env); err != nil {
		return fmt.Errorf("config: failed validate: %w", err)
	}
	return nil
}

func (o *Options) LogFile() string { return o.env.LogFile }

// LogDateTime returns true if the date/time should be displayed in log
// messages.
func (o *Options) LogDateTime() bool { return o.env.LogDateTime }

// LogFormat returns the log format.
func (o *Options) LogFormat() string { return o.env.LogFormat }

// LogLevel returns the log level.
func (o *Options) LogLevel() string { return o.env.LogLevel }

// SetLogLevel sets the log level.
func (o *Options) SetLogLevel(level string) { o.env.LogLevel = level }

// WorkerPoolSize returns the number of documents parsed concurrently.
func (o *Options) WorkerPoolSize() int { return o.env.WorkerPoolSize }

// ItemConcurrency returns the number of goroutines mapping items of one
// document. Values below 2 map items sequentially.
func (o *Options) ItemConcurrency() int { return o.env.ItemConcurrency }

func (o *Options) BaseURL() string { return o.env.BaseURL }

func (o *Options) StripTracking() bool { return o.env.StripTracking }

// DefaultRSSVersion returns the RSS version assumed for documents without a
// known version.
func (o *Options) DefaultRSSVersion() parser.RSSVersion { return o.defaultRSS }

// MetricsFile returns the name of the file to write metrics to, in textfile
// collector format. Empty if metrics aren't written.
func (o *Options) MetricsFile() string { return o.env.MetricsFile }

func (o *Options) HasMetricsFile() bool { return o.env.MetricsFile != "" }

func (o *Options) PrettyOutput() bool { return o.env.PrettyOutput }

// ParserOptions returns the parser options configured by o.
func (o *Options) ParserOptions() []parser.Option {
	opts := []parser.Option{
		parser.WithStripTracking(o.StripTracking()),
		parser.WithItemConcurrency(o.ItemConcurrency()),
	}
	if o.BaseURL() != "" {
		opts = append(opts, parser.WithBaseURL(o.BaseURL()))
	}
	if o.DefaultRSSVersion() != parser.RSSUnknown {
		opts = append(opts, parser.WithDefaultRSS(o.DefaultRSSVersion()))
	}
	return opts
}

// SortedOptions returns options as a list of key value pairs, sorted by keys.
func (o *Options) SortedOptions() []Option {
	keyValues := map[string]any{
		"BASE_URL":            o.BaseURL(),
		"DEFAULT_RSS_VERSION": string(o.DefaultRSSVersion()),
		"ITEM_CONCURRENCY":    o.ItemConcurrency(),
		"LOG_DATE_TIME":       o.LogDateTime(),
		"LOG_FILE":            o.LogFile(),
		"LOG_FORMAT":          o.LogFormat(),
		"LOG_LEVEL":           o.LogLevel(),
		"METRICS_FILE":        o.MetricsFile(),
		"PRETTY_OUTPUT":       o.PrettyOutput(),
		"STRIP_TRACKING":      o.StripTracking(),
		"WORKER_POOL_SIZE":    o.WorkerPoolSize(),
	}

	sortedKeys := slices.Sorted(maps.Keys(keyValues))
	sortedOptions := make([]Option, len(sortedKeys))
	for i, key := range sortedKeys {
		sortedOptions[i] = Option{Key: key, Value: keyValues[key]}
	}
	return sortedOptions
}

func (o *Options) String() string {
	var builder strings.Builder
	for _, option := range o.SortedOptions() {
		fmt.Fprintf(&builder, "%s=%v\n", option.Key, option.Value)
	}
	return builder.String()
}
