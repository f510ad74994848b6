// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conv

//go:generate core generate

// TypeID identifies the primitive representation of a convertible type.
type TypeID int32 //enums:enum -trim-prefix Type

const (
	// TypeInvalid is a type with no conversions.
	TypeInvalid TypeID = iota

	// TypeVoid is the absent return value of a function.
	TypeVoid

	TypeBool
	TypeInt
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUint
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeUintptr
	TypeFloat32
	TypeFloat64
	TypeString

	// TypeObject is a reference to a reflected object.
	TypeObject

	// TypeEnum is an enumeration backed by an integer.
	TypeEnum

	// TypeFlag is a set of bit flags backed by an integer.
	TypeFlag
)

// IsNumeric returns whether values of the type are integers or floats.
func (id TypeID) IsNumeric() bool {
	return id >= TypeInt && id <= TypeFloat64 || id == TypeEnum || id == TypeFlag
}
