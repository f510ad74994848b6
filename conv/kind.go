// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conv

import (
	"reflect"
	"strconv"

	"cogentcore.org/rtti/enums"
)

// kindType converts values of a named type by the reflect kind of
// its underlying type, so that a type like `type Meters float32`
// converts as its float32.
type kindType struct {
	rt reflect.Type
	id TypeID
}

var kindIDs = map[reflect.Kind]TypeID{
	reflect.Bool:    TypeBool,
	reflect.Int:     TypeInt,
	reflect.Int8:    TypeInt8,
	reflect.Int16:   TypeInt16,
	reflect.Int32:   TypeInt32,
	reflect.Int64:   TypeInt64,
	reflect.Uint:    TypeUint,
	reflect.Uint8:   TypeUint8,
	reflect.Uint16:  TypeUint16,
	reflect.Uint32:  TypeUint32,
	reflect.Uint64:  TypeUint64,
	reflect.Uintptr: TypeUintptr,
	reflect.Float32: TypeFloat32,
	reflect.Float64: TypeFloat64,
	reflect.String:  TypeString,
}

func (k *kindType) TypeID() TypeID            { return k.id }
func (k *kindType) ReflectType() reflect.Type { return k.rt }
func (k *kindType) Zero() any                 { return reflect.Zero(k.rt).Interface() }

// TypeName returns the package-qualified name of the type, such as
// samples.LightFlags, so that types of the same name in different
// packages have different signatures. Predeclared types keep their
// bare names.
func (k *kindType) TypeName() string {
	if k.rt.PkgPath() == "" {
		return k.rt.Name()
	}
	return k.rt.String()
}

// value returns v as a value of the type, or the zero value.
func (k *kindType) value(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Type() != k.rt {
		return reflect.Zero(k.rt)
	}
	return rv
}

func (k *kindType) bits() int {
	if k.rt.Kind() == reflect.Float32 {
		return 32
	}
	return 64
}

func (k *kindType) ToString(v any) string {
	rv := k.value(v)
	switch {
	case rv.CanInt():
		return strconv.FormatInt(rv.Int(), 10)
	case rv.CanUint():
		return strconv.FormatUint(rv.Uint(), 10)
	case rv.CanFloat():
		return FormatFloat(rv.Float(), k.bits())
	case rv.Kind() == reflect.Bool:
		return FormatBool(rv.Bool())
	}
	return rv.String()
}

func (k *kindType) FromString(s string) any {
	rv := reflect.New(k.rt).Elem()
	switch {
	case rv.CanInt():
		rv.SetInt(ParseInt(s))
	case rv.CanUint():
		rv.SetUint(ParseUint(s))
	case rv.CanFloat():
		rv.SetFloat(ParseFloat(s, k.bits()))
	case rv.Kind() == reflect.Bool:
		rv.SetBool(ParseBool(s))
	default:
		rv.SetString(s)
	}
	return rv.Interface()
}

func (k *kindType) ToInt64(v any) int64 {
	rv := k.value(v)
	switch {
	case rv.CanInt():
		return rv.Int()
	case rv.CanUint():
		return int64(rv.Uint())
	case rv.CanFloat():
		return FloatToInt64(rv.Float())
	case rv.Kind() == reflect.Bool:
		return boolToInt(rv.Bool())
	}
	return ParseInt(rv.String())
}

func (k *kindType) FromInt64(i int64) any {
	rv := reflect.New(k.rt).Elem()
	switch {
	case rv.CanInt():
		rv.SetInt(i)
	case rv.CanUint():
		rv.SetUint(uint64(i))
	case rv.CanFloat():
		rv.SetFloat(float64(i))
	case rv.Kind() == reflect.Bool:
		rv.SetBool(i != 0)
	default:
		rv.SetString(strconv.FormatInt(i, 10))
	}
	return rv.Interface()
}

func (k *kindType) ToUint64(v any) uint64 {
	rv := k.value(v)
	switch {
	case rv.CanUint():
		return rv.Uint()
	case rv.CanFloat():
		return FloatToUint64(rv.Float())
	case rv.Kind() == reflect.String:
		return ParseUint(rv.String())
	}
	return uint64(k.ToInt64(v))
}

func (k *kindType) FromUint64(u uint64) any {
	rv := reflect.New(k.rt).Elem()
	switch {
	case rv.CanUint():
		rv.SetUint(u)
	case rv.CanFloat():
		rv.SetFloat(float64(u))
	case rv.Kind() == reflect.String:
		rv.SetString(strconv.FormatUint(u, 10))
	default:
		return k.FromInt64(int64(u))
	}
	return rv.Interface()
}

func (k *kindType) ToFloat64(v any) float64 {
	rv := k.value(v)
	switch {
	case rv.CanFloat():
		return rv.Float()
	case rv.CanUint():
		return float64(rv.Uint())
	case rv.Kind() == reflect.String:
		return ParseFloat(rv.String(), 64)
	}
	return float64(k.ToInt64(v))
}

func (k *kindType) FromFloat64(f float64) any {
	rv := reflect.New(k.rt).Elem()
	switch {
	case rv.CanFloat():
		rv.SetFloat(f)
	case rv.CanInt():
		rv.SetInt(FloatToInt64(f))
	case rv.CanUint():
		rv.SetUint(FloatToUint64(f))
	case rv.Kind() == reflect.Bool:
		rv.SetBool(f != 0)
	default:
		rv.SetString(FormatFloat(f, 64))
	}
	return rv.Interface()
}

func (k *kindType) ToBool(v any) bool {
	rv := k.value(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return ParseBool(rv.String())
	}
	return k.ToFloat64(v) != 0
}

func (k *kindType) FromBool(b bool) any {
	rv := reflect.New(k.rt).Elem()
	switch rv.Kind() {
	case reflect.Bool:
		rv.SetBool(b)
		return rv.Interface()
	case reflect.String:
		rv.SetString(FormatBool(b))
		return rv.Interface()
	}
	return k.FromInt64(boolToInt(b))
}

func (k *kindType) Equal(a, b any) bool {
	return k.value(a).Equal(k.value(b))
}

// enumType converts a type whose pointer implements
// [enums.EnumSetter] through its own generated methods. Strings
// that are not valid names are parsed as numbers.
type enumType struct {
	kindType
}

func (e *enumType) setter() (reflect.Value, enums.EnumSetter) {
	pv := reflect.New(e.rt)
	return pv, pv.Interface().(enums.EnumSetter)
}

func (e *enumType) ToString(v any) string {
	pv, es := e.setter()
	pv.Elem().Set(e.value(v))
	return es.String()
}

func (e *enumType) FromString(s string) any {
	pv, es := e.setter()
	if err := es.SetString(s); err != nil {
		es.SetInt64(ParseInt(s))
	}
	return pv.Elem().Interface()
}

// invalidType is the converter for unsupported types.
// All of its conversions yield zero values.
type invalidType struct {
	rt reflect.Type
}

func (n *invalidType) TypeID() TypeID            { return TypeInvalid }
func (n *invalidType) TypeName() string          { return n.rt.String() }
func (n *invalidType) ReflectType() reflect.Type { return n.rt }
func (n *invalidType) Zero() any                 { return reflect.Zero(n.rt).Interface() }
func (n *invalidType) ToString(any) string       { return "" }
func (n *invalidType) FromString(string) any     { return n.Zero() }
func (n *invalidType) ToBool(any) bool           { return false }
func (n *invalidType) FromBool(bool) any         { return n.Zero() }
func (n *invalidType) ToInt64(any) int64         { return 0 }
func (n *invalidType) FromInt64(int64) any       { return n.Zero() }
func (n *invalidType) ToUint64(any) uint64       { return 0 }
func (n *invalidType) FromUint64(uint64) any     { return n.Zero() }
func (n *invalidType) ToFloat64(any) float64     { return 0 }
func (n *invalidType) FromFloat64(float64) any   { return n.Zero() }
func (n *invalidType) Equal(a, b any) bool       { return true }
