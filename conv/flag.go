// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conv

import (
	"strings"

	"cogentcore.org/rtti/enums"
	"golang.org/x/exp/constraints"
)

// FlagType is the converter for a set of bit flags with an ordered
// name table. A value is written as the names of the table entries
// whose bits are all set, joined by "|" in table order; entries that
// share a value are named once, and bits not covered by any entry
// are appended as a number.
type FlagType[T constraints.Integer] struct {
	EnumType[T]
}

// Flag returns the converter for a flag set with the given
// type name and name table.
func Flag[T constraints.Integer](name string, table *enums.Table[T]) *FlagType[T] {
	return &FlagType[T]{EnumType[T]{name: name, table: table}}
}

func (c *FlagType[T]) TypeID() TypeID { return TypeFlag }

func (c *FlagType[T]) ToString(v T) string {
	if v == 0 {
		if name, ok := c.table.Name(0); ok {
			return name
		}
		return "0"
	}
	var names []string
	seen := map[T]bool{}
	rest := v
	for _, e := range c.table.Entries() {
		if e.Value == 0 || seen[e.Value] || v&e.Value != e.Value {
			continue
		}
		seen[e.Value] = true
		names = append(names, e.Name)
		rest &^= e.Value
	}
	if rest != 0 {
		names = append(names, formatInteger(rest))
	}
	return strings.Join(names, "|")
}

func (c *FlagType[T]) FromString(s string) T {
	var v T
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if fv, ok := c.table.Value(part); ok {
			v |= fv
		} else {
			v |= parseInteger[T](part)
		}
	}
	return v
}
