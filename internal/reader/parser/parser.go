// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package parser // import "feedmill.app/internal/reader/parser"

import (
	"errors"
	"fmt"

	"feedmill.app/internal/model"
)

var (
	// ErrNotFeed is returned for every document which doesn't yield a feed.
	ErrNotFeed = errors.New("reader/parser: not a feed")

	ErrFeedFormatNotDetected = fmt.Errorf(
		"%w: unable to detect feed format", ErrNotFeed)

	ErrInvalidFeed = fmt.Errorf("%w: invalid feed", ErrNotFeed)
)

// Parse analyzes data and returns a normalized feed. When data is not a feed
// it returns an error matching ErrNotFeed: ErrFeedFormatNotDetected for
// unrecognized documents and ErrInvalidFeed for recognized, but structurally
// invalid ones.
func Parse(data []byte, opts ...Option) (*model.Feed, error) {
	c := NewConfig(opts...)

	var feed *model.Feed
	var err error
	switch DetectFormat(data) {
	case FormatJSON:
		feed, err = parseJSON(data, c)
	case FormatXML:
		feed, err = parseXML(data, c)
	case FormatHTML:
		feed, err = parseHTML(data, c)
	default:
		return nil, ErrFeedFormatNotDetected
	}

	if err != nil {
		return nil, err
	}
	c.postProcess(feed)
	return feed, nil
}

// ParseString is Parse for text.
func ParseString(s string, opts ...Option) (*model.Feed, error) {
	return Parse([]byte(s), opts...)
}
