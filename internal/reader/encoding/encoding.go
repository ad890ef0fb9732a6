// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package encoding // import "feedmill.app/internal/reader/encoding"

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
)

var xmlEncodingRegex = regexp.MustCompile(
	`^\s*<\?xml[^>]*?encoding\s*=\s*["']([A-Za-z0-9._:-]+)["']`)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// NewCharsetReader returns an io.Reader that converts the content of r to
// UTF-8.
//
// Only the first 1024 bytes are used to detect the encoding. If the <meta
// charset> tag is not found in the first 1024 bytes and the content is plain
// ASCII, charset.DetermineEncoding returns "windows-1252", which is a superset
// of ASCII.
func NewCharsetReader(r io.Reader, contentType string) (io.Reader, error) {
	reader, err := charset.NewReader(r, contentType)
	switch {
	case errors.Is(err, io.EOF):
		return r, nil
	case err != nil:
		return nil, fmt.Errorf(
			"reader/encoding: new charset reader with contentType=%q: %w",
			contentType, err)
	}
	return reader, nil
}

// XMLEncoding returns the encoding label from the XML declaration of b, or
// an empty string if there is none.
func XMLEncoding(b []byte) string {
	b = bytes.TrimPrefix(b, utf8BOM)
	if len(b) > 1024 {
		b = b[:1024]
	}
	if m := xmlEncodingRegex.FindSubmatch(b); m != nil {
		return strings.ToLower(string(m[1]))
	}
	return ""
}

// XMLToUTF8 converts b to UTF-8 using the encoding declared in its XML
// declaration. Documents without declared encoding, or declared as UTF-8, are
// returned as is, minus the BOM.
func XMLToUTF8(b []byte) ([]byte, error) {
	label := XMLEncoding(b)
	switch label {
	case "", "utf-8", "utf8", "us-ascii", "ascii":
		return bytes.TrimPrefix(b, utf8BOM), nil
	}

	r, err := charset.NewReaderLabel(label, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf(
			"reader/encoding: unsupported xml encoding %q: %w", label, err)
	}

	utf8, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reader/encoding: convert from %q: %w", label, err)
	}
	return utf8, nil
}

// PassThrough is an xml.Decoder CharsetReader for documents already converted
// to UTF-8 by XMLToUTF8.
func PassThrough(_ string, input io.Reader) (io.Reader, error) {
	return input, nil
}
