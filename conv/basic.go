// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conv

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Signed is the converter for the signed integer types.
type Signed[T constraints.Signed] struct {
	ID   TypeID
	Name string
}

func (c Signed[T]) TypeID() TypeID          { return c.ID }
func (c Signed[T]) TypeName() string        { return c.Name }
func (c Signed[T]) ToString(v T) string     { return strconv.FormatInt(int64(v), 10) }
func (c Signed[T]) FromString(s string) T   { return T(ParseInt(s)) }
func (c Signed[T]) ToBool(v T) bool         { return v != 0 }
func (c Signed[T]) FromBool(b bool) T       { return T(boolToInt(b)) }
func (c Signed[T]) ToInt64(v T) int64       { return int64(v) }
func (c Signed[T]) FromInt64(i int64) T     { return T(i) }
func (c Signed[T]) ToUint64(v T) uint64     { return uint64(v) }
func (c Signed[T]) FromUint64(u uint64) T   { return T(u) }
func (c Signed[T]) ToFloat32(v T) float32   { return float32(v) }
func (c Signed[T]) FromFloat32(f float32) T { return T(FloatToInt64(float64(f))) }
func (c Signed[T]) ToFloat64(v T) float64   { return float64(v) }
func (c Signed[T]) FromFloat64(f float64) T { return T(FloatToInt64(f)) }
func (c Signed[T]) Equal(a, b T) bool       { return a == b }

// Unsigned is the converter for the unsigned integer types.
type Unsigned[T constraints.Unsigned] struct {
	ID   TypeID
	Name string
}

func (c Unsigned[T]) TypeID() TypeID          { return c.ID }
func (c Unsigned[T]) TypeName() string        { return c.Name }
func (c Unsigned[T]) ToString(v T) string     { return strconv.FormatUint(uint64(v), 10) }
func (c Unsigned[T]) FromString(s string) T   { return T(ParseUint(s)) }
func (c Unsigned[T]) ToBool(v T) bool         { return v != 0 }
func (c Unsigned[T]) FromBool(b bool) T       { return T(boolToInt(b)) }
func (c Unsigned[T]) ToInt64(v T) int64       { return int64(v) }
func (c Unsigned[T]) FromInt64(i int64) T     { return T(i) }
func (c Unsigned[T]) ToUint64(v T) uint64     { return uint64(v) }
func (c Unsigned[T]) FromUint64(u uint64) T   { return T(u) }
func (c Unsigned[T]) ToFloat32(v T) float32   { return float32(v) }
func (c Unsigned[T]) FromFloat32(f float32) T { return T(FloatToUint64(float64(f))) }
func (c Unsigned[T]) ToFloat64(v T) float64   { return float64(v) }
func (c Unsigned[T]) FromFloat64(f float64) T { return T(FloatToUint64(f)) }
func (c Unsigned[T]) Equal(a, b T) bool       { return a == b }

// Float is the converter for float32 and float64.
// Strings use the shortest form that round-trips at Bits precision.
type Float[T constraints.Float] struct {
	ID   TypeID
	Name string
	Bits int
}

func (c Float[T]) TypeID() TypeID          { return c.ID }
func (c Float[T]) TypeName() string        { return c.Name }
func (c Float[T]) ToString(v T) string     { return FormatFloat(float64(v), c.Bits) }
func (c Float[T]) FromString(s string) T   { return T(ParseFloat(s, c.Bits)) }
func (c Float[T]) ToBool(v T) bool         { return v != 0 }
func (c Float[T]) FromBool(b bool) T       { return T(boolToInt(b)) }
func (c Float[T]) ToInt64(v T) int64       { return FloatToInt64(float64(v)) }
func (c Float[T]) FromInt64(i int64) T     { return T(i) }
func (c Float[T]) ToUint64(v T) uint64     { return FloatToUint64(float64(v)) }
func (c Float[T]) FromUint64(u uint64) T   { return T(u) }
func (c Float[T]) ToFloat32(v T) float32   { return float32(v) }
func (c Float[T]) FromFloat32(f float32) T { return T(f) }
func (c Float[T]) ToFloat64(v T) float64   { return float64(v) }
func (c Float[T]) FromFloat64(f float64) T { return T(f) }

// Equal treats two NaNs as equal so that a NaN default is recognized.
func (c Float[T]) Equal(a, b T) bool {
	return a == b || math.IsNaN(float64(a)) && math.IsNaN(float64(b))
}

// Bool is the converter for bool.
type Bool struct{}

func (Bool) TypeID() TypeID             { return TypeBool }
func (Bool) TypeName() string           { return "bool" }
func (Bool) ToString(v bool) string     { return FormatBool(v) }
func (Bool) FromString(s string) bool   { return ParseBool(s) }
func (Bool) ToBool(v bool) bool         { return v }
func (Bool) FromBool(b bool) bool       { return b }
func (Bool) ToInt64(v bool) int64       { return boolToInt(v) }
func (Bool) FromInt64(i int64) bool     { return i != 0 }
func (Bool) ToUint64(v bool) uint64     { return uint64(boolToInt(v)) }
func (Bool) FromUint64(u uint64) bool   { return u != 0 }
func (Bool) ToFloat32(v bool) float32   { return float32(boolToInt(v)) }
func (Bool) FromFloat32(f float32) bool { return f != 0 }
func (Bool) ToFloat64(v bool) float64   { return float64(boolToInt(v)) }
func (Bool) FromFloat64(f float64) bool { return f != 0 }
func (Bool) Equal(a, b bool) bool       { return a == b }

// String is the converter for string. Numbers are parsed
// from and formatted to their decimal text.
type String struct{}

func (String) TypeID() TypeID               { return TypeString }
func (String) TypeName() string             { return "string" }
func (String) ToString(v string) string     { return v }
func (String) FromString(s string) string   { return s }
func (String) ToBool(v string) bool         { return ParseBool(v) }
func (String) FromBool(b bool) string       { return FormatBool(b) }
func (String) ToInt64(v string) int64       { return ParseInt(v) }
func (String) FromInt64(i int64) string     { return strconv.FormatInt(i, 10) }
func (String) ToUint64(v string) uint64     { return ParseUint(v) }
func (String) FromUint64(u uint64) string   { return strconv.FormatUint(u, 10) }
func (String) ToFloat32(v string) float32   { return float32(ParseFloat(v, 32)) }
func (String) FromFloat32(f float32) string { return FormatFloat(float64(f), 32) }
func (String) ToFloat64(v string) float64   { return ParseFloat(v, 64) }
func (String) FromFloat64(f float64) string { return FormatFloat(f, 64) }
func (String) Equal(a, b string) bool       { return a == b }

// Void is the type of an absent value, used as the return type
// of functions that do not return anything.
type Void struct{}

// VoidType is the converter for [Void]; every conversion yields zero.
type VoidType struct{}

func (VoidType) TypeID() TypeID           { return TypeVoid }
func (VoidType) TypeName() string         { return "void" }
func (VoidType) ToString(Void) string     { return "" }
func (VoidType) FromString(string) Void   { return Void{} }
func (VoidType) ToBool(Void) bool         { return false }
func (VoidType) FromBool(bool) Void       { return Void{} }
func (VoidType) ToInt64(Void) int64       { return 0 }
func (VoidType) FromInt64(int64) Void     { return Void{} }
func (VoidType) ToUint64(Void) uint64     { return 0 }
func (VoidType) FromUint64(uint64) Void   { return Void{} }
func (VoidType) ToFloat32(Void) float32   { return 0 }
func (VoidType) FromFloat32(float32) Void { return Void{} }
func (VoidType) ToFloat64(Void) float64   { return 0 }
func (VoidType) FromFloat64(float64) Void { return Void{} }
func (VoidType) Equal(a, b Void) bool     { return true }

func init() {
	Register[bool](Bool{})
	Register[string](String{})
	Register[Void](VoidType{})
	Register[int](Signed[int]{TypeInt, "int"})
	Register[int8](Signed[int8]{TypeInt8, "int8"})
	Register[int16](Signed[int16]{TypeInt16, "int16"})
	Register[int32](Signed[int32]{TypeInt32, "int32"})
	Register[int64](Signed[int64]{TypeInt64, "int64"})
	Register[uint](Unsigned[uint]{TypeUint, "uint"})
	Register[uint8](Unsigned[uint8]{TypeUint8, "uint8"})
	Register[uint16](Unsigned[uint16]{TypeUint16, "uint16"})
	Register[uint32](Unsigned[uint32]{TypeUint32, "uint32"})
	Register[uint64](Unsigned[uint64]{TypeUint64, "uint64"})
	Register[uintptr](Unsigned[uintptr]{TypeUintptr, "uintptr"})
	Register[float32](Float[float32]{TypeFloat32, "float32", 32})
	Register[float64](Float[float64]{TypeFloat64, "float64", 64})
}
