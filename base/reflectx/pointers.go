// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
)

// IsNil returns whether the given value is invalid or a nil
// pointer, interface, map, slice, func or channel.
func IsNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// ValueOrZero returns a value holding x converted to typ, or the zero
// value of typ if x is nil. It returns false if x is not assignable
// or convertible to typ.
func ValueOrZero(x any, typ reflect.Type) (reflect.Value, bool) {
	if x == nil {
		return reflect.Zero(typ), true
	}
	v := reflect.ValueOf(x)
	if v.Type().AssignableTo(typ) {
		return v, true
	}
	if typ.Kind() != reflect.Interface && v.Type().ConvertibleTo(typ) && v.Kind() == typ.Kind() {
		return v.Convert(typ), true
	}
	return reflect.Value{}, false
}

// Assignable returns whether x can be assigned to a variable of
// type typ without conversion. A nil x is assignable to types
// that have nil values.
func Assignable(x any, typ reflect.Type) bool {
	if x == nil {
		switch typ.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return true
		}
		return false
	}
	return reflect.TypeOf(x).AssignableTo(typ)
}
