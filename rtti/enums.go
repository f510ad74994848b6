// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

//go:generate core generate

// AccessKind is the write policy of a variable.
type AccessKind int32 //enums:enum -trim-prefix Access

const (
	// AccessReadWrite variables can be set.
	AccessReadWrite AccessKind = iota

	// AccessReadOnly variables ignore every set.
	AccessReadOnly
)

// StorageKind is where the value of a variable lives.
type StorageKind int32 //enums:enum -trim-prefix Storage

const (
	// StorageDirect values are stored in the variable itself.
	StorageDirect StorageKind = iota

	// StorageGetSet values are read and written through
	// getter and setter methods of the owner.
	StorageGetSet

	// StorageModifyAttr values are those of an attribute
	// declared by a base class.
	StorageModifyAttr
)

// MemberKind is the kind of a class member.
type MemberKind int32 //enums:enum -trim-prefix Member

const (
	MemberAttribute MemberKind = iota
	MemberMethod
	MemberSignal
	MemberSlot
	MemberConstructor
)

// ValuesMode selects which attributes [ObjectBase.Values] writes.
type ValuesMode int32 //enums:enum

const (
	// WithDefault writes all attributes.
	WithDefault ValuesMode = iota

	// NoDefault skips attributes that have their default value.
	NoDefault
)
