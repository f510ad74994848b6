// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"reflect"

	"cogentcore.org/rtti/base/reflectx"
	"cogentcore.org/rtti/conv"
	"github.com/google/uuid"
)

// objectConverter converts object references to and from their
// handles. It is registered while the variables of this package are
// initialized, so that the declarations of classes in this package
// already see it.
var objectConverter = registerObjectConverter()

var objectInterface = reflect.TypeFor[Object]()

func registerObjectConverter() conv.Type[Object] {
	t := objectType{}
	conv.RegisterInterface[Object](t)
	return t
}

// converterFor returns the converter for values of type T.
func converterFor[T any]() conv.Type[T] {
	if t, ok := objectConverter.(conv.Type[T]); ok {
		return t
	}
	return conv.For[T]()
}

// dynConverter returns the type-erased converter for the given type.
func dynConverter(rt reflect.Type) conv.DynType {
	if rt == objectInterface {
		return conv.Dyn(objectConverter)
	}
	return conv.ForType(rt)
}

// typeName returns the name of the given type in signatures.
// All object references are named Object.
func typeName(rt reflect.Type) string {
	if rt == nil {
		return "nil"
	}
	if rt.Implements(objectInterface) {
		return objectConverter.TypeName()
	}
	return conv.NameOf(rt)
}

// objectType is the converter for [Object] references. An object
// is written as its handle, and a nil object as the empty string.
type objectType struct{}

func isNilObject(obj Object) bool {
	return obj == nil || reflectx.IsNil(reflect.ValueOf(obj))
}

func (objectType) TypeID() conv.TypeID { return conv.TypeObject }
func (objectType) TypeName() string    { return "Object" }

func (objectType) ToString(v Object) string {
	if isNilObject(v) {
		return ""
	}
	return v.Handle().String()
}

func (objectType) FromString(s string) Object {
	h, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return ObjectByHandle(h)
}

func (objectType) ToBool(v Object) bool       { return !isNilObject(v) }
func (objectType) FromBool(bool) Object       { return nil }
func (objectType) ToInt64(Object) int64       { return 0 }
func (objectType) FromInt64(int64) Object     { return nil }
func (objectType) ToUint64(Object) uint64     { return 0 }
func (objectType) FromUint64(uint64) Object   { return nil }
func (objectType) ToFloat32(Object) float32   { return 0 }
func (objectType) FromFloat32(float32) Object { return nil }
func (objectType) ToFloat64(Object) float64   { return 0 }
func (objectType) FromFloat64(float64) Object { return nil }

func (objectType) Equal(a, b Object) bool {
	if isNilObject(a) || isNilObject(b) {
		return isNilObject(a) == isNilObject(b)
	}
	return a.This() == b.This()
}
