// Copyright 2025 The critstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crittab aggregates benchmark records and presents them as
// implementation comparison tables.
package crittab

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/rzozowski/critstat/critcat"
	"github.com/rzozowski/critstat/critfmt"
)

// A Key identifies one sample bucket. Parse buckets carry an empty
// Validity.
type Key struct {
	Kind     critfmt.Kind
	Validity string
	Impl     string
	Cat      critcat.Category
}

// A Builder accumulates per-run median timings into sample buckets
// keyed by (kind, validity, implementation, category).
type Builder struct {
	catalog *critcat.Catalog

	// cells maps each key to the timings observed for it. A bucket
	// is created on first insert and only ever grows; insertion
	// order never affects the summaries computed from it.
	cells map[Key][]float64
}

// NewBuilder returns a Builder that classifies patterns with catalog.
func NewBuilder(catalog *critcat.Catalog) *Builder {
	return &Builder{
		catalog: catalog,
		cells:   make(map[Key][]float64),
	}
}

// Add folds one record into the builder. Repeated runs of the same
// benchmark each contribute one sample and weigh equally in the later
// mean; there is no per-pattern normalization.
func (b *Builder) Add(rec *critfmt.Record) {
	key := Key{
		Kind: rec.Kind,
		Impl: rec.Impl,
		Cat:  b.catalog.Category(rec.Pattern),
	}
	if rec.Kind == critfmt.KindMatch {
		key.Validity = rec.Validity
	}
	b.cells[key] = append(b.cells[key], rec.MedianNs)
}

// TableOpts configures table construction.
type TableOpts struct {
	// ImplA and ImplB are the implementation labels of the first and
	// second value columns. The ratio column is ImplA/ImplB.
	ImplA, ImplB string
}

// A Row is one category comparison within a table.
type Row struct {
	Cat   critcat.Category
	AMean float64 // arithmetic mean of ImplA's samples, in ns
	BMean float64 // arithmetic mean of ImplB's samples, in ns
	Ratio float64 // AMean / BMean
}

// A Table compares the two implementations for one benchmark kind and,
// for match benchmarks, one input validity.
type Table struct {
	Title string
	Opts  TableOpts

	// Rows holds one entry per category for which both
	// implementations have data, in critcat.RenderOrder.
	Rows []Row

	// HasSummary indicates the geomean summary fields are valid. A
	// summary is computed only when the table has at least two rows.
	HasSummary bool
	ASummary   float64 // geomean of the rows' AMean values
	BSummary   float64 // geomean of the rows' BMean values
	RatioSum   float64 // geomean of the rows' ratios
}

// Tables is the full report, in fixed order: parse, match on valid
// inputs, match on invalid inputs.
type Tables struct {
	Tables []*Table
}

// ToTables finalizes the builder into the three report tables.
func (b *Builder) ToTables(opts TableOpts) *Tables {
	return &Tables{Tables: []*Table{
		b.table("Regex Parsing Performance", critfmt.KindParse, "", opts),
		b.table("Regex Matching Performance (valid inputs)", critfmt.KindMatch, critfmt.ValidityValid, opts),
		b.table("Regex Matching Performance (invalid inputs)", critfmt.KindMatch, critfmt.ValidityInvalid, opts),
	}}
}

func (b *Builder) table(title string, kind critfmt.Kind, validity string, opts TableOpts) *Table {
	t := &Table{Title: title, Opts: opts}
	var aMeans, bMeans, ratios []float64
	for _, cat := range critcat.RenderOrder {
		aXs, aok := b.cells[Key{kind, validity, opts.ImplA, cat}]
		bXs, bok := b.cells[Key{kind, validity, opts.ImplB, cat}]
		if !aok || !bok {
			// One-sided categories are omitted, not zero-filled.
			continue
		}
		row := Row{
			Cat:   cat,
			AMean: stats.Mean(aXs),
			BMean: stats.Mean(bXs),
		}
		row.Ratio = row.AMean / row.BMean
		t.Rows = append(t.Rows, row)
		aMeans = append(aMeans, row.AMean)
		bMeans = append(bMeans, row.BMean)
		ratios = append(ratios, row.Ratio)
	}
	if len(t.Rows) > 1 {
		t.HasSummary = true
		t.ASummary = stats.GeoMean(aMeans)
		t.BSummary = stats.GeoMean(bMeans)
		t.RatioSum = stats.GeoMean(ratios)
	}
	return t
}
