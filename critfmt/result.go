// Copyright 2025 The critstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package critfmt locates completed benchmark results in a criterion
// output directory tree.
//
// criterion (the Rust benchmarking harness) records each benchmark's
// current run under a "new" snapshot directory containing an
// estimates.json file. This package walks such a tree, recognizes the
// regex comparison suite's layout, and yields one Record per completed
// run. It is designed to be used with the crittab package, which
// aggregates Records into comparison tables.
package critfmt

// A Kind identifies which benchmark family a record came from.
type Kind int

const (
	// KindParse is a regex parsing benchmark.
	KindParse Kind = iota
	// KindMatch is a regex matching benchmark.
	KindMatch
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindMatch:
		return "match"
	}
	return "?"
}

// Validity values for match records. Parse records have no validity.
const (
	ValidityValid   = "valid"
	ValidityInvalid = "invalid"
	// ValidityUnknown marks a match record whose directory segment had
	// no validity suffix. Such records aggregate but never land in a
	// rendered validity bucket.
	ValidityUnknown = "unknown"
)

// A Record is one completed benchmark measurement, identified by the
// path segments that led to its result file.
//
// Records yielded by a Walker are reused between calls to Scan; a
// caller should copy anything it needs to retain.
type Record struct {
	// Kind is the benchmark family.
	Kind Kind

	// Impl is the label of the regex engine implementation measured
	// by this run.
	Impl string

	// Pattern is the name of the regex test case.
	Pattern string

	// Validity is ValidityValid, ValidityInvalid, or ValidityUnknown
	// for match records, and "" for parse records.
	Validity string

	// MedianNs is the run's median duration in nanoseconds, as
	// reported by the harness.
	MedianNs float64

	// Path is the result file this record was read from. It is
	// purely diagnostic.
	Path string
}
