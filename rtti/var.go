// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"cogentcore.org/rtti/conv"
)

// Var is a variable of type T with access policy A.
// Its value is stored inline unless a [Storage] is bound to it.
// The zero value is a variable whose value and default are the
// zero value of T.
type Var[T any, A Access] struct {
	value T
	def   T
	store Storage[T]
	kind  StorageKind
	conv  conv.Type[T]
}

// NewVar returns a new variable with the given default,
// which is also its initial value.
func NewVar[T any, A Access](def T) *Var[T, A] {
	return &Var[T, A]{value: def, def: def}
}

// NewVarStorage returns a new variable with the given default
// whose value lives in the given storage. The storage is not
// set to the default.
func NewVarStorage[T any, A Access](def T, s Storage[T]) *Var[T, A] {
	v := &Var[T, A]{def: def}
	v.bind(s, StorageGetSet)
	return v
}

func (v *Var[T, A]) bind(s Storage[T], kind StorageKind) {
	v.store = s
	v.kind = kind
}

func (v *Var[T, A]) converter() conv.Type[T] {
	if v.conv == nil {
		v.conv = converterFor[T]()
	}
	return v.conv
}

// Get returns the value.
func (v *Var[T, A]) Get() T {
	if v.store != nil {
		return v.store.Get()
	}
	return v.value
}

// Set sets the value, unless the variable is read-only.
func (v *Var[T, A]) Set(x T) {
	var a A
	if !a.Writable() {
		return
	}
	v.Store(x)
}

// Store sets the value regardless of the access policy.
// It is for the owner of a read-only variable.
func (v *Var[T, A]) Store(x T) {
	if v.store != nil {
		v.store.Set(x)
		return
	}
	v.value = x
}

// DefaultValue returns the default value.
func (v *Var[T, A]) DefaultValue() T {
	return v.def
}

// Access returns the kind of access policy of the variable.
func (v *Var[T, A]) Access() AccessKind {
	return accessKind[A]()
}

// Storage returns the kind of storage of the variable.
func (v *Var[T, A]) Storage() StorageKind {
	return v.kind
}

func (v *Var[T, A]) TypeID() conv.TypeID { return v.converter().TypeID() }
func (v *Var[T, A]) TypeName() string    { return v.converter().TypeName() }

func (v *Var[T, A]) IsDefault() bool {
	return v.converter().Equal(v.Get(), v.def)
}

func (v *Var[T, A]) SetDefault() { v.Set(v.def) }

func (v *Var[T, A]) Default() string {
	return v.converter().ToString(v.def)
}

func (v *Var[T, A]) SetVar(other DynVar) {
	v.SetString(other.String())
}

func (v *Var[T, A]) Bool() bool           { return v.converter().ToBool(v.Get()) }
func (v *Var[T, A]) SetBool(x bool)       { v.Set(v.converter().FromBool(x)) }
func (v *Var[T, A]) Int() int             { return conv.ToInt(v.converter(), v.Get()) }
func (v *Var[T, A]) SetInt(x int)         { v.Set(conv.FromInt(v.converter(), x)) }
func (v *Var[T, A]) Int8() int8           { return conv.ToInt8(v.converter(), v.Get()) }
func (v *Var[T, A]) SetInt8(x int8)       { v.Set(conv.FromInt8(v.converter(), x)) }
func (v *Var[T, A]) Int16() int16         { return conv.ToInt16(v.converter(), v.Get()) }
func (v *Var[T, A]) SetInt16(x int16)     { v.Set(conv.FromInt16(v.converter(), x)) }
func (v *Var[T, A]) Int32() int32         { return conv.ToInt32(v.converter(), v.Get()) }
func (v *Var[T, A]) SetInt32(x int32)     { v.Set(conv.FromInt32(v.converter(), x)) }
func (v *Var[T, A]) Int64() int64         { return v.converter().ToInt64(v.Get()) }
func (v *Var[T, A]) SetInt64(x int64)     { v.Set(v.converter().FromInt64(x)) }
func (v *Var[T, A]) Uint() uint           { return conv.ToUint(v.converter(), v.Get()) }
func (v *Var[T, A]) SetUint(x uint)       { v.Set(conv.FromUint(v.converter(), x)) }
func (v *Var[T, A]) Uint8() uint8         { return conv.ToUint8(v.converter(), v.Get()) }
func (v *Var[T, A]) SetUint8(x uint8)     { v.Set(conv.FromUint8(v.converter(), x)) }
func (v *Var[T, A]) Uint16() uint16       { return conv.ToUint16(v.converter(), v.Get()) }
func (v *Var[T, A]) SetUint16(x uint16)   { v.Set(conv.FromUint16(v.converter(), x)) }
func (v *Var[T, A]) Uint32() uint32       { return conv.ToUint32(v.converter(), v.Get()) }
func (v *Var[T, A]) SetUint32(x uint32)   { v.Set(conv.FromUint32(v.converter(), x)) }
func (v *Var[T, A]) Uint64() uint64       { return v.converter().ToUint64(v.Get()) }
func (v *Var[T, A]) SetUint64(x uint64)   { v.Set(v.converter().FromUint64(x)) }
func (v *Var[T, A]) Uintptr() uintptr     { return conv.ToUintptr(v.converter(), v.Get()) }
func (v *Var[T, A]) SetUintptr(x uintptr) { v.Set(conv.FromUintptr(v.converter(), x)) }
func (v *Var[T, A]) Float32() float32     { return v.converter().ToFloat32(v.Get()) }
func (v *Var[T, A]) SetFloat32(x float32) { v.Set(v.converter().FromFloat32(x)) }
func (v *Var[T, A]) Float64() float64     { return v.converter().ToFloat64(v.Get()) }
func (v *Var[T, A]) SetFloat64(x float64) { v.Set(v.converter().FromFloat64(x)) }
func (v *Var[T, A]) String() string       { return v.converter().ToString(v.Get()) }
func (v *Var[T, A]) SetString(x string)   { v.Set(v.converter().FromString(x)) }
