// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package conv provides total conversions between supported value types
// and strings, bools, integers of every width and floats. No conversion
// fails: values that cannot be represented are truncated, saturated or
// replaced by the zero value of the destination type.
package conv

import (
	"reflect"
)

// Type is the converter for values of type T.
// The narrow integer widths are derived from the 64-bit forms
// by [ToInt8], [FromInt8] and friends.
type Type[T any] interface {
	// TypeID returns the primitive representation of T.
	TypeID() TypeID

	// TypeName returns the name of T as used in signatures.
	TypeName() string

	ToString(v T) string
	FromString(s string) T
	ToBool(v T) bool
	FromBool(b bool) T
	ToInt64(v T) int64
	FromInt64(i int64) T
	ToUint64(v T) uint64
	FromUint64(u uint64) T
	ToFloat32(v T) float32
	FromFloat32(f float32) T
	ToFloat64(v T) float64
	FromFloat64(f float64) T

	// Equal returns whether two values are the same.
	Equal(a, b T) bool
}

// DynType is the type-erased form of [Type], operating on values
// boxed in an any. Values of the wrong type are treated as the zero value.
type DynType interface {
	TypeID() TypeID
	TypeName() string

	// ReflectType returns the Go type this converter is for.
	ReflectType() reflect.Type

	// Zero returns the zero value of the type.
	Zero() any

	ToString(v any) string
	FromString(s string) any
	ToBool(v any) bool
	FromBool(b bool) any
	ToInt64(v any) int64
	FromInt64(i int64) any
	ToUint64(v any) uint64
	FromUint64(u uint64) any
	ToFloat64(v any) float64
	FromFloat64(f float64) any
	Equal(a, b any) bool
}

// ToInt returns v as an int.
func ToInt[T any](t Type[T], v T) int { return int(t.ToInt64(v)) }

// ToInt8 returns v as an int8, truncating the 64-bit value.
func ToInt8[T any](t Type[T], v T) int8 { return int8(t.ToInt64(v)) }

// ToInt16 returns v as an int16, truncating the 64-bit value.
func ToInt16[T any](t Type[T], v T) int16 { return int16(t.ToInt64(v)) }

// ToInt32 returns v as an int32, truncating the 64-bit value.
func ToInt32[T any](t Type[T], v T) int32 { return int32(t.ToInt64(v)) }

// ToUint returns v as a uint.
func ToUint[T any](t Type[T], v T) uint { return uint(t.ToUint64(v)) }

// ToUint8 returns v as a uint8, truncating the 64-bit value.
func ToUint8[T any](t Type[T], v T) uint8 { return uint8(t.ToUint64(v)) }

// ToUint16 returns v as a uint16, truncating the 64-bit value.
func ToUint16[T any](t Type[T], v T) uint16 { return uint16(t.ToUint64(v)) }

// ToUint32 returns v as a uint32, truncating the 64-bit value.
func ToUint32[T any](t Type[T], v T) uint32 { return uint32(t.ToUint64(v)) }

// ToUintptr returns v as a uintptr.
func ToUintptr[T any](t Type[T], v T) uintptr { return uintptr(t.ToUint64(v)) }

func FromInt[T any](t Type[T], x int) T         { return t.FromInt64(int64(x)) }
func FromInt8[T any](t Type[T], x int8) T       { return t.FromInt64(int64(x)) }
func FromInt16[T any](t Type[T], x int16) T     { return t.FromInt64(int64(x)) }
func FromInt32[T any](t Type[T], x int32) T     { return t.FromInt64(int64(x)) }
func FromUint[T any](t Type[T], x uint) T       { return t.FromUint64(uint64(x)) }
func FromUint8[T any](t Type[T], x uint8) T     { return t.FromUint64(uint64(x)) }
func FromUint16[T any](t Type[T], x uint16) T   { return t.FromUint64(uint64(x)) }
func FromUint32[T any](t Type[T], x uint32) T   { return t.FromUint64(uint64(x)) }
func FromUintptr[T any](t Type[T], x uintptr) T { return t.FromUint64(uint64(x)) }

// Dyn returns the type-erased form of the given converter.
func Dyn[T any](t Type[T]) DynType {
	if d, ok := t.(*typed[T]); ok {
		return d.dyn
	}
	return &erased[T]{t: t, rt: reflect.TypeFor[T]()}
}

// erased implements [DynType] on top of a [Type].
type erased[T any] struct {
	t  Type[T]
	rt reflect.Type
}

func (e *erased[T]) Zero() any {
	var z T
	return z
}

func unbox[T any](v any) T {
	tv, _ := v.(T)
	return tv
}

func (e *erased[T]) TypeID() TypeID            { return e.t.TypeID() }
func (e *erased[T]) TypeName() string          { return e.t.TypeName() }
func (e *erased[T]) ReflectType() reflect.Type { return e.rt }
func (e *erased[T]) ToString(v any) string     { return e.t.ToString(unbox[T](v)) }
func (e *erased[T]) FromString(s string) any   { return e.t.FromString(s) }
func (e *erased[T]) ToBool(v any) bool         { return e.t.ToBool(unbox[T](v)) }
func (e *erased[T]) FromBool(b bool) any       { return e.t.FromBool(b) }
func (e *erased[T]) ToInt64(v any) int64       { return e.t.ToInt64(unbox[T](v)) }
func (e *erased[T]) FromInt64(i int64) any     { return e.t.FromInt64(i) }
func (e *erased[T]) ToUint64(v any) uint64     { return e.t.ToUint64(unbox[T](v)) }
func (e *erased[T]) FromUint64(u uint64) any   { return e.t.FromUint64(u) }
func (e *erased[T]) ToFloat64(v any) float64   { return e.t.ToFloat64(unbox[T](v)) }
func (e *erased[T]) FromFloat64(f float64) any { return e.t.FromFloat64(f) }
func (e *erased[T]) Equal(a, b any) bool       { return e.t.Equal(unbox[T](a), unbox[T](b)) }

// typed implements [Type] on top of a [DynType]. It is how the
// converters built by reflection are given back to generic code.
type typed[T any] struct {
	dyn DynType
}

func (d *typed[T]) TypeID() TypeID          { return d.dyn.TypeID() }
func (d *typed[T]) TypeName() string        { return d.dyn.TypeName() }
func (d *typed[T]) ToString(v T) string     { return d.dyn.ToString(v) }
func (d *typed[T]) FromString(s string) T   { return unbox[T](d.dyn.FromString(s)) }
func (d *typed[T]) ToBool(v T) bool         { return d.dyn.ToBool(v) }
func (d *typed[T]) FromBool(b bool) T       { return unbox[T](d.dyn.FromBool(b)) }
func (d *typed[T]) ToInt64(v T) int64       { return d.dyn.ToInt64(v) }
func (d *typed[T]) FromInt64(i int64) T     { return unbox[T](d.dyn.FromInt64(i)) }
func (d *typed[T]) ToUint64(v T) uint64     { return d.dyn.ToUint64(v) }
func (d *typed[T]) FromUint64(u uint64) T   { return unbox[T](d.dyn.FromUint64(u)) }
func (d *typed[T]) ToFloat32(v T) float32   { return float32(d.dyn.ToFloat64(v)) }
func (d *typed[T]) FromFloat32(f float32) T { return unbox[T](d.dyn.FromFloat64(float64(f))) }
func (d *typed[T]) ToFloat64(v T) float64   { return d.dyn.ToFloat64(v) }
func (d *typed[T]) FromFloat64(f float64) T { return unbox[T](d.dyn.FromFloat64(f)) }
func (d *typed[T]) Equal(a, b T) bool       { return d.dyn.Equal(a, b) }
