// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package date

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2020-01-01T00:00:00Z", "2020-01-01T00:00:00.000Z"},
		{"2020-01-01T02:30:00+02:00", "2020-01-01T00:30:00.000Z"},
		{"2003-12-13T18:30:02.25Z", "2003-12-13T18:30:02.250Z"},
		{"Mon, 02 Jan 2006 15:04:05 GMT", "2006-01-02T15:04:05.000Z"},
		{"Mon, 02 Jan 2006 15:04:05 -0700", "2006-01-02T22:04:05.000Z"},
		{"  Tue, 10 Jun 2003 04:00:00 +0000 ", "2003-06-10T04:00:00.000Z"},
		{"2006-01-02", "2006-01-02T00:00:00.000Z"},
		{"2006-01-02 15:04:05", "2006-01-02T15:04:05.000Z"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Normalize(tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalize_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "not a date", "yesterday-ish"} {
		got, ok := Normalize(input)
		assert.False(t, ok, "input %q", input)
		assert.Empty(t, got)
	}
}

func TestFormat(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	assert.Equal(t, "2020-01-01T00:00:00.000Z",
		Format(time.Date(2020, 1, 1, 3, 0, 0, 0, loc)))
}

func TestFirst(t *testing.T) {
	assert.Equal(t, "2020-01-01T00:00:00.000Z",
		First("", "garbage", "2020-01-01T00:00:00Z", "2021-01-01"))
	assert.Empty(t, First("", "garbage"))
}
