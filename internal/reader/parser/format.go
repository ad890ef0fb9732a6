package parser

import (
	"bytes"
	"unicode"
)

// Format is the syntax family of a document.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatXML
	FormatHTML
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func (self Format) String() string {
	switch self {
	case FormatJSON:
		return "json"
	case FormatXML:
		return "xml"
	case FormatHTML:
		return "html"
	}
	return "unknown"
}

// DetectFormat looks at the first characters of data, ignoring a BOM and
// leading whitespace:
//
//	{        JSON
//	<? <r    XML
//	<! <h    HTML
func DetectFormat(data []byte) Format {
	data = bytes.TrimPrefix(data, utf8BOM)
	data = bytes.TrimLeftFunc(data, unicode.IsSpace)

	switch {
	case bytes.HasPrefix(data, []byte("{")):
		return FormatJSON
	case bytes.HasPrefix(data, []byte("<?")), bytes.HasPrefix(data, []byte("<r")):
		return FormatXML
	case bytes.HasPrefix(data, []byte("<!")), bytes.HasPrefix(data, []byte("<h")):
		return FormatHTML
	}
	return FormatUnknown
}
