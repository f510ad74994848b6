// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"cogentcore.org/rtti/conv"
)

// DynVar is the type-erased interface of a typed variable.
// Every representation can be read and written whatever the type
// of the variable is, using the conversions of package conv.
// Setters never fail, and they do nothing on read-only variables.
type DynVar interface {
	// TypeID returns the primitive representation of the value.
	TypeID() conv.TypeID

	// TypeName returns the name of the type of the value.
	TypeName() string

	// IsDefault returns whether the value equals the default.
	IsDefault() bool

	// SetDefault sets the value to the default.
	SetDefault()

	// Default returns the default as a string.
	Default() string

	// SetVar sets the value from another variable of any type,
	// by parsing the string form of its value.
	SetVar(other DynVar)

	Bool() bool
	SetBool(v bool)
	Int() int
	SetInt(v int)
	Int8() int8
	SetInt8(v int8)
	Int16() int16
	SetInt16(v int16)
	Int32() int32
	SetInt32(v int32)
	Int64() int64
	SetInt64(v int64)
	Uint() uint
	SetUint(v uint)
	Uint8() uint8
	SetUint8(v uint8)
	Uint16() uint16
	SetUint16(v uint16)
	Uint32() uint32
	SetUint32(v uint32)
	Uint64() uint64
	SetUint64(v uint64)
	Uintptr() uintptr
	SetUintptr(v uintptr)
	Float32() float32
	SetFloat32(v float32)
	Float64() float64
	SetFloat64(v float64)
	String() string
	SetString(v string)
}
