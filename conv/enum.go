// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conv

import (
	"strconv"
	"strings"

	"cogentcore.org/rtti/enums"
	"golang.org/x/exp/constraints"
)

// EnumType is the converter for an integer enumeration with an
// ordered name table. A value is named by the first table entry
// with that value, and a name resolves to the first entry with that
// name. Values without a name are written as numbers, and strings
// that are not names are parsed as numbers.
type EnumType[T constraints.Integer] struct {
	name  string
	table *enums.Table[T]
}

// Enum returns the converter for an enumeration with the given
// type name and name table.
func Enum[T constraints.Integer](name string, table *enums.Table[T]) *EnumType[T] {
	return &EnumType[T]{name: name, table: table}
}

// Table returns the name table of the enumeration.
func (c *EnumType[T]) Table() *enums.Table[T] { return c.table }

func (c *EnumType[T]) TypeID() TypeID   { return TypeEnum }
func (c *EnumType[T]) TypeName() string { return c.name }

func (c *EnumType[T]) ToString(v T) string {
	if name, ok := c.table.Name(v); ok {
		return name
	}
	return formatInteger(v)
}

func (c *EnumType[T]) FromString(s string) T {
	s = strings.TrimSpace(s)
	if v, ok := c.table.Value(s); ok {
		return v
	}
	return parseInteger[T](s)
}

func (c *EnumType[T]) ToBool(v T) bool         { return v != 0 }
func (c *EnumType[T]) FromBool(b bool) T       { return T(boolToInt(b)) }
func (c *EnumType[T]) ToInt64(v T) int64       { return int64(v) }
func (c *EnumType[T]) FromInt64(i int64) T     { return T(i) }
func (c *EnumType[T]) ToUint64(v T) uint64     { return uint64(v) }
func (c *EnumType[T]) FromUint64(u uint64) T   { return T(u) }
func (c *EnumType[T]) ToFloat32(v T) float32   { return float32(v) }
func (c *EnumType[T]) FromFloat32(f float32) T { return floatToInteger[T](float64(f)) }
func (c *EnumType[T]) ToFloat64(v T) float64   { return float64(v) }
func (c *EnumType[T]) FromFloat64(f float64) T { return floatToInteger[T](f) }
func (c *EnumType[T]) Equal(a, b T) bool       { return a == b }

func isSigned[T constraints.Integer]() bool {
	var z T
	return z-1 < z
}

func formatInteger[T constraints.Integer](v T) string {
	if isSigned[T]() {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

func parseInteger[T constraints.Integer](s string) T {
	if isSigned[T]() {
		return T(ParseInt(s))
	}
	return T(ParseUint(s))
}

func floatToInteger[T constraints.Integer](f float64) T {
	if isSigned[T]() {
		return T(FloatToInt64(f))
	}
	return T(FloatToUint64(f))
}
