// Copyright 2025 The critstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package critunit formats nanosecond timings in a human-readable
// unit.
package critunit

import "fmt"

// Scale renders a nanosecond duration with two decimal places in the
// largest fitting unit: values below 1e3 in ns, below 1e6 in μs, and
// everything else in ms. The boundaries are inclusive on the larger
// unit, so 1000 renders as "1.00 μs".
func Scale(ns float64) string {
	switch {
	case ns < 1e3:
		return fmt.Sprintf("%.2f ns", ns)
	case ns < 1e6:
		return fmt.Sprintf("%.2f μs", ns/1e3)
	default:
		return fmt.Sprintf("%.2f ms", ns/1e6)
	}
}
