// Copyright 2025 The critstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crittab

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rzozowski/critstat/critcat"
)

func TestToText(t *testing.T) {
	b := NewBuilder(critcat.Default())
	add(b,
		parseRec("rzozowski", "star", 100),
		parseRec("regex", "star", 50),
	)

	var buf bytes.Buffer
	require.NoError(t, b.ToTables(opts).ToText(&buf))

	want := "# Benchmark Results\n" +
		"\n" +
		"## Regex Parsing Performance\n" +
		"\n" +
		"| Category | rzozowski | regex | Ratio (rzozowski/regex) |\n" +
		"|----------|-----------|-------|-------------------------|\n" +
		"| Simple | 100.00 ns | 50.00 ns | 2.00 |\n" +
		"\n" +
		"## Regex Matching Performance (valid inputs)\n" +
		"\n" +
		"| Category | rzozowski | regex | Ratio (rzozowski/regex) |\n" +
		"|----------|-----------|-------|-------------------------|\n" +
		"\n" +
		"## Regex Matching Performance (invalid inputs)\n" +
		"\n" +
		"| Category | rzozowski | regex | Ratio (rzozowski/regex) |\n" +
		"|----------|-----------|-------|-------------------------|\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestToTextUnitScaling(t *testing.T) {
	b := NewBuilder(critcat.Default())
	add(b,
		matchRec("rzozowski", "valid", "email", 2500000),
		matchRec("regex", "valid", "email", 2000000),
	)

	var buf bytes.Buffer
	require.NoError(t, b.ToTables(opts).ToText(&buf))
	assert.Contains(t, buf.String(), "| Complex | 2.50 ms | 2.00 ms | 1.25 |\n")
}

func TestToTextGeomeanRow(t *testing.T) {
	b := NewBuilder(critcat.Default())
	add(b,
		parseRec("rzozowski", "star", 100),
		parseRec("regex", "star", 50),
		parseRec("rzozowski", "count", 400),
		parseRec("regex", "count", 200),
	)

	var buf bytes.Buffer
	require.NoError(t, b.ToTables(opts).ToText(&buf))
	assert.Contains(t, buf.String(), "| geomean | 200.00 ns | 100.00 ns | 2.00 |\n")
}

func TestToCSV(t *testing.T) {
	b := NewBuilder(critcat.Default())
	add(b,
		parseRec("rzozowski", "star", 100),
		parseRec("regex", "star", 50),
	)

	var buf bytes.Buffer
	require.NoError(t, b.ToTables(opts).ToCSV(&buf))

	want := "Regex Parsing Performance\n" +
		"category,rzozowski (ns),regex (ns),ratio (rzozowski/regex)\n" +
		"Simple,100.00,50.00,2.00\n" +
		"\n" +
		"Regex Matching Performance (valid inputs)\n" +
		"category,rzozowski (ns),regex (ns),ratio (rzozowski/regex)\n" +
		"\n" +
		"Regex Matching Performance (invalid inputs)\n" +
		"category,rzozowski (ns),regex (ns),ratio (rzozowski/regex)\n"
	assert.Equal(t, want, buf.String())
}
