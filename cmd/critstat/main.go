// Copyright 2025 The critstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Critstat summarizes criterion benchmark results that compare two
// regex engine implementations.
//
// Usage:
//
//	critstat [flags]
//
// critstat walks a criterion output directory (by default
// "target/criterion") produced by the regex comparison suite, which
// benchmarks every test pattern twice per axis: once per
// implementation for parsing, and once per implementation and input
// validity for matching. Each completed run leaves an estimates.json
// file under a "new" snapshot directory; critstat reads the median
// point estimate from each.
//
// Patterns are grouped into three complexity categories (simple,
// intermediate, complex) by a fixed catalog, and all recorded runs in
// a category are averaged per implementation. The report is three
// markdown tables on standard output, in order: parsing performance,
// matching performance on valid inputs, matching performance on
// invalid inputs. Each row shows the two implementations' mean times
// scaled to a readable unit and their ratio; a geomean summary row is
// added when a table has more than one category.
//
// The two column labels default to the suite's implementations,
// "rzozowski" and "regex", and can be overridden with -a and -b. A
// category appears in a table only when both implementations have data
// for it.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/rzozowski/critstat/cmd/critstat/internal/crittab"
	"github.com/rzozowski/critstat/critcat"
	"github.com/rzozowski/critstat/critfmt"
)

const (
	defaultRoot  = "target/criterion"
	defaultImplA = "rzozowski"
	defaultImplB = "regex"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: critstat [flags]

critstat summarizes the criterion results of the regex comparison
suite as three markdown tables: parsing performance, and matching
performance on valid and on invalid inputs. Within each table,
benchmark patterns are grouped into fixed complexity categories and
the two implementations' category means are compared.
`)
	flag.PrintDefaults()
}

// fileConfig mirrors the flag settings in TOML form. Explicit flags
// take precedence over file values.
type fileConfig struct {
	Root   string `toml:"root"`
	ImplA  string `toml:"impl_a"`
	ImplB  string `toml:"impl_b"`
	Format string `toml:"format"`
}

func main() {
	if err := critstat(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "critstat: %s\n", err)
		os.Exit(1)
	}
}

func critstat(w, wErr io.Writer, args []string) error {
	flags := flag.FlagSet{Usage: usage}
	flagConfig := flags.String("config", "", "load settings from TOML `file`; explicit flags win")
	flagRoot := flags.String("root", defaultRoot, "criterion output `dir` to scan")
	flagA := flags.String("a", defaultImplA, "implementation `label` of the first value column")
	flagB := flags.String("b", defaultImplB, "implementation `label` of the second value column")
	flagFormat := flags.String("format", "text", "print results in `format`:\n  text - markdown tables\n  csv  - comma-separated values\n")
	flags.Parse(args)

	if flags.NArg() > 0 {
		usage()
		os.Exit(2)
	}

	if *flagConfig != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(*flagConfig, &fc); err != nil {
			return fmt.Errorf("loading -config: %w", err)
		}
		set := make(map[string]bool)
		flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
		apply := func(name string, dst *string, val string) {
			if !set[name] && val != "" {
				*dst = val
			}
		}
		apply("root", flagRoot, fc.Root)
		apply("a", flagA, fc.ImplA)
		apply("b", flagB, fc.ImplB)
		apply("format", flagFormat, fc.Format)
	}

	var format func(t *crittab.Tables) error
	switch *flagFormat {
	default:
		return fmt.Errorf("-format must be text or csv")
	case "text":
		format = func(t *crittab.Tables) error { return t.ToText(w) }
	case "csv":
		format = func(t *crittab.Tables) error { return t.ToCSV(w) }
	}

	stat := crittab.NewBuilder(critcat.Default())
	walker := critfmt.NewWalker(*flagRoot)
	for walker.Scan() {
		rec := walker.Record()
		if rec.Kind == critfmt.KindMatch && rec.Validity == critfmt.ValidityUnknown {
			// Warn but keep going; the record can never reach a
			// rendered validity bucket.
			fmt.Fprintf(wErr, "%s: no validity suffix in implementation segment\n", rec.Path)
		}
		stat.Add(rec)
	}
	if err := walker.Err(); err != nil {
		return err
	}

	return format(stat.ToTables(crittab.TableOpts{ImplA: *flagA, ImplB: *flagB}))
}
