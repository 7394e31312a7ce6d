// Copyright 2025 The critstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package critcat classifies benchmark patterns into complexity
// categories.
//
// The regex benchmark suite exercises a fixed catalog of patterns.
// Reports group them into three complexity buckets so that many
// patterns collapse into a small comparison. The catalog is static: a
// pattern name outside it classifies as Unknown and never appears in
// rendered output.
package critcat

// A Category is the complexity bucket of one benchmark pattern.
type Category int

const (
	Unknown Category = iota
	Simple
	Intermediate
	Complex
)

func (c Category) String() string {
	switch c {
	case Simple:
		return "simple"
	case Intermediate:
		return "intermediate"
	case Complex:
		return "complex"
	}
	return "unknown"
}

// Label returns the capitalized category name used in report rows.
func (c Category) Label() string {
	switch c {
	case Simple:
		return "Simple"
	case Intermediate:
		return "Intermediate"
	case Complex:
		return "Complex"
	}
	return "Unknown"
}

// RenderOrder is the fixed order in which categories appear in report
// tables. Unknown is never rendered.
var RenderOrder = []Category{Simple, Intermediate, Complex}

// A Catalog maps pattern names to their categories. It is immutable
// after construction; build one with NewCatalog or Default and pass it
// explicitly to consumers.
type Catalog struct {
	byName map[string]Category
}

// NewCatalog builds a Catalog from three disjoint pattern name lists.
// A name must not appear in more than one list; NewCatalog panics if
// one does, since the lists are compiled-in constants.
func NewCatalog(simple, intermediate, complex []string) *Catalog {
	c := &Catalog{byName: make(map[string]Category)}
	add := func(names []string, cat Category) {
		for _, name := range names {
			if prev, ok := c.byName[name]; ok {
				panic("critcat: pattern " + name + " listed under both " + prev.String() + " and " + cat.String())
			}
			c.byName[name] = cat
		}
	}
	add(simple, Simple)
	add(intermediate, Intermediate)
	add(complex, Complex)
	return c
}

// Category returns the category of pattern, or Unknown if the pattern
// is not in the catalog.
func (c *Catalog) Category(pattern string) Category {
	return c.byName[pattern]
}

// Default returns the catalog of the regex benchmark suite.
func Default() *Catalog {
	return NewCatalog(
		[]string{"concatenation", "alternation", "star", "plus", "question", "class"},
		[]string{"special_char_sequences", "count", "nested_star"},
		[]string{"deep_nesting", "complex_count", "complex_class", "exponential_plus", "email"},
	)
}
