// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// Entry is one named value of a [Table].
type Entry[T constraints.Integer] struct {
	Name  string
	Value T
	Desc  string
}

// Table is an ordered table of enumerator names and values.
// Several names may share a value and lookups in either
// direction return the first match in declaration order,
// so naming stays deterministic under aliases.
type Table[T constraints.Integer] struct {
	base    []*Table[T]
	entries []Entry[T]
}

// NewTable returns a new table that starts with the entries of the
// given base tables, in order. This is how an enum that extends
// another one inherits its names. The bases are resolved on every
// lookup, so entries added to a base later are inherited as well.
func NewTable[T constraints.Integer](base ...*Table[T]) *Table[T] {
	tb := &Table[T]{}
	for _, b := range base {
		if b != nil {
			tb.base = append(tb.base, b)
		}
	}
	return tb
}

// Add appends a named value to the table and returns the table
// so that declarations can be chained.
func (tb *Table[T]) Add(name string, value T, desc string) *Table[T] {
	tb.entries = append(tb.entries, Entry[T]{Name: name, Value: value, Desc: desc})
	return tb
}

// All returns an iterator over the entries of the base tables
// followed by the entries of the table itself.
func (tb *Table[T]) All() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		tb.each(yield)
	}
}

func (tb *Table[T]) each(yield func(Entry[T]) bool) bool {
	for _, b := range tb.base {
		if !b.each(yield) {
			return false
		}
	}
	for _, e := range tb.entries {
		if !yield(e) {
			return false
		}
	}
	return true
}

// Name returns the name of the first entry with the given value.
func (tb *Table[T]) Name(v T) (string, bool) {
	for e := range tb.All() {
		if e.Value == v {
			return e.Name, true
		}
	}
	return "", false
}

// Value returns the value of the first entry with the given name.
func (tb *Table[T]) Value(name string) (T, bool) {
	for e := range tb.All() {
		if e.Name == name {
			return e.Value, true
		}
	}
	return 0, false
}

// Desc returns the description of the first entry with the given name.
func (tb *Table[T]) Desc(name string) string {
	for e := range tb.All() {
		if e.Name == name {
			return e.Desc
		}
	}
	return ""
}

// Entries returns a copy of the entries in declaration order.
func (tb *Table[T]) Entries() []Entry[T] {
	return slices.Collect(tb.All())
}

// Names returns the entry names in declaration order.
func (tb *Table[T]) Names() []string {
	var names []string
	for e := range tb.All() {
		names = append(names, e.Name)
	}
	return names
}

// Len returns the number of entries.
func (tb *Table[T]) Len() int {
	n := len(tb.entries)
	for _, b := range tb.base {
		n += b.Len()
	}
	return n
}
