// Copyright 2025 The critstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Layout of the criterion tree this walker recognizes:
//
//	<root>/regex_parse/<impl>/<pattern>/new/estimates.json
//	<root>/regex_matches/<impl>-<validity>/<pattern>/new/estimates.json
//
// Only the "new" snapshot holds the current run; "base" and "change"
// snapshots in the same tree are historical and ignored.
const (
	parseDir   = "regex_parse"
	matchDir   = "regex_matches"
	markerDir  = "new"
	resultFile = "estimates.json"
)

// A MalformedArtifactError reports a result file that could not be
// read or did not carry the required median estimate.
type MalformedArtifactError struct {
	Path string
	Msg  string
}

func (e *MalformedArtifactError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

// A Walker yields the completed benchmark results under a criterion
// output root.
//
// Its API is modeled on bufio.Scanner. The Walker retains ownership of
// the Record it yields; a caller should copy anything it needs to
// retain across calls to Scan.
//
// A missing root or a root with no completed results is an empty
// sequence, not an error. A result file that exists but cannot be
// decoded is a fatal error: Scan returns false and Err reports the
// offending file.
type Walker struct {
	root    string
	paths   []string
	started bool
	record  Record
	err     error
}

// NewWalker returns a Walker over the criterion tree rooted at root.
func NewWalker(root string) *Walker {
	return &Walker{root: root}
}

// Scan advances to the next completed result and reports whether one
// was found. When Scan returns false, the caller should use Err to
// distinguish the end of the tree from a fatal error.
func (w *Walker) Scan() bool {
	if !w.started {
		w.started = true
		w.err = w.collect()
	}
	if w.err != nil {
		return false
	}
	for len(w.paths) > 0 {
		path := w.paths[0]
		w.paths = w.paths[1:]
		ok, err := w.read(path)
		if err != nil {
			w.err = err
			return false
		}
		if !ok {
			// Not part of the recognized suite layout.
			continue
		}
		return true
	}
	return false
}

// Record returns the result read by the last call to Scan. The Walker
// will overwrite it on the next call to Scan.
func (w *Walker) Record() *Record {
	return &w.record
}

// Err returns the first fatal error encountered by the Walker.
func (w *Walker) Err() error {
	return w.err
}

// collect gathers the candidate result file paths in one pass so that
// reading a file during Scan cannot perturb the traversal.
func (w *Walker) collect() error {
	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == resultFile && filepath.Base(filepath.Dir(path)) == markerDir {
			w.paths = append(w.paths, path)
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		// An absent root means no results, not a failure.
		return nil
	}
	return err
}

// estimates is the slice of criterion's estimates.json this tool
// consumes. Pointer fields distinguish a missing field from zero.
type estimates struct {
	Median *struct {
		PointEstimate *float64 `json:"point_estimate"`
	} `json:"median"`
}

// read decodes one candidate result file into w.record. It reports
// ok=false for files whose path does not match the suite layout.
func (w *Walker) read(path string) (ok bool, err error) {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false, err
	}
	// <kind>/<segment>/<pattern>/new/estimates.json
	segs := strings.Split(filepath.ToSlash(rel), "/")
	if len(segs) != 5 {
		return false, nil
	}

	rec := Record{Pattern: segs[2], Path: path}
	switch segs[0] {
	case parseDir:
		rec.Kind = KindParse
		rec.Impl = segs[1]
	case matchDir:
		rec.Kind = KindMatch
		impl, validity, found := strings.Cut(segs[1], "-")
		if !found {
			// Permissive: a segment without a validity suffix
			// still aggregates, under a sentinel validity.
			validity = ValidityUnknown
		}
		rec.Impl = impl
		rec.Validity = validity
	default:
		return false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, &MalformedArtifactError{path, fmt.Sprintf("reading result: %s", err)}
	}
	var est estimates
	if err := json.Unmarshal(data, &est); err != nil {
		return false, &MalformedArtifactError{path, fmt.Sprintf("decoding result: %s", err)}
	}
	if est.Median == nil || est.Median.PointEstimate == nil {
		return false, &MalformedArtifactError{path, "missing median.point_estimate"}
	}
	rec.MedianNs = *est.Median.PointEstimate

	w.record = rec
	return true, nil
}
