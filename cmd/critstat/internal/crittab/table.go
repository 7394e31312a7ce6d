// Copyright 2025 The critstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crittab

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/rzozowski/critstat/critunit"
)

// ToText renders the report as markdown pipe tables. Tables with no
// rows render header-only.
func (t *Tables) ToText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# Benchmark Results\n\n"); err != nil {
		return err
	}
	for _, table := range t.Tables {
		if err := table.ToText(w); err != nil {
			return err
		}
	}
	return nil
}

// ToText renders one table, ending with a blank line.
func (t *Table) ToText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "## %s\n\n", t.Title); err != nil {
		return err
	}

	hdr := []string{
		"Category",
		t.Opts.ImplA,
		t.Opts.ImplB,
		fmt.Sprintf("Ratio (%s/%s)", t.Opts.ImplA, t.Opts.ImplB),
	}
	var b strings.Builder
	b.WriteString("|")
	for _, h := range hdr {
		b.WriteString(" ")
		b.WriteString(h)
		b.WriteString(" |")
	}
	b.WriteString("\n|")
	for _, h := range hdr {
		b.WriteString(strings.Repeat("-", len(h)+2))
		b.WriteString("|")
	}
	b.WriteString("\n")

	for _, row := range t.Rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %.2f |\n",
			row.Cat.Label(),
			critunit.Scale(row.AMean),
			critunit.Scale(row.BMean),
			row.Ratio)
	}
	if t.HasSummary {
		fmt.Fprintf(&b, "| geomean | %s | %s | %.2f |\n",
			critunit.Scale(t.ASummary),
			critunit.Scale(t.BSummary),
			t.RatioSum)
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// ToCSV renders the report as comma-separated values, one block per
// table with the unscaled nanosecond means.
func (t *Tables) ToCSV(w io.Writer) error {
	o := csv.NewWriter(w)
	for i, table := range t.Tables {
		if i > 0 {
			o.Write([]string{""})
		}
		table.toCSV(o)
	}
	o.Flush()
	return o.Error()
}

func (t *Table) toCSV(o *csv.Writer) {
	o.Write([]string{t.Title})
	o.Write([]string{
		"category",
		t.Opts.ImplA + " (ns)",
		t.Opts.ImplB + " (ns)",
		fmt.Sprintf("ratio (%s/%s)", t.Opts.ImplA, t.Opts.ImplB),
	})
	for _, row := range t.Rows {
		o.Write([]string{
			row.Cat.Label(),
			fmt.Sprintf("%.2f", row.AMean),
			fmt.Sprintf("%.2f", row.BMean),
			fmt.Sprintf("%.2f", row.Ratio),
		})
	}
	if t.HasSummary {
		o.Write([]string{
			"geomean",
			fmt.Sprintf("%.2f", t.ASummary),
			fmt.Sprintf("%.2f", t.BSummary),
			fmt.Sprintf("%.2f", t.RatioSum),
		})
	}
}
