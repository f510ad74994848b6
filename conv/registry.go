// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conv

import (
	"log/slog"
	"reflect"

	"cogentcore.org/rtti/enums"
)

var (
	// converters records the converter for every type that has been
	// registered or looked up, keyed by its reflect type.
	converters = map[reflect.Type]DynType{}

	// typedConverters holds the [Type] values behind converters,
	// as an any that is a Type[T] for the key type T.
	typedConverters = map[reflect.Type]any{}

	// interfaces are the registered interface converters, in
	// registration order.
	interfaces []DynType

	enumSetterType = reflect.TypeFor[enums.EnumSetter]()
	bitFlagType    = reflect.TypeFor[enums.BitFlagSetter]()
)

// Register sets the converter for type T, replacing any existing one.
// It is typically called in an init function.
func Register[T any](t Type[T]) {
	rt := reflect.TypeFor[T]()
	if _, has := converters[rt]; has {
		slog.Debug("conv.Register: replacing converter", "type", rt.String())
	}
	converters[rt] = Dyn(t)
	typedConverters[rt] = t
}

// RegisterInterface sets the converter for interface type I,
// which is also used for every type that implements I and has
// no converter of its own. Such types share the name of I.
func RegisterInterface[I any](t Type[I]) {
	rt := reflect.TypeFor[I]()
	if rt.Kind() != reflect.Interface {
		slog.Debug("conv.RegisterInterface: not an interface type", "type", rt.String())
		return
	}
	Register(t)
	interfaces = append(interfaces, converters[rt])
}

// For returns the converter for type T. Types that have not been
// registered get a converter derived from their methods or
// underlying kind, and unsupported types get one that only
// yields zero values.
func For[T any]() Type[T] {
	rt := reflect.TypeFor[T]()
	if t, ok := typedConverters[rt]; ok {
		return t.(Type[T])
	}
	t := &typed[T]{dyn: ForType(rt)}
	typedConverters[rt] = t
	return t
}

// ForType returns the type-erased converter for the given type.
func ForType(rt reflect.Type) DynType {
	if d, ok := converters[rt]; ok {
		return d
	}
	d := derive(rt)
	converters[rt] = d
	return d
}

// NameOf returns the name of the given type as used in signatures.
func NameOf(rt reflect.Type) string {
	return ForType(rt).TypeName()
}

// derive builds the converter for an unregistered type.
func derive(rt reflect.Type) DynType {
	for _, it := range interfaces {
		if rt.Implements(it.ReflectType()) {
			return &implementer{DynType: it, rt: rt}
		}
	}
	if rt.Kind() != reflect.Pointer && rt.Kind() != reflect.Interface && reflect.PointerTo(rt).Implements(enumSetterType) {
		id := TypeEnum
		if reflect.PointerTo(rt).Implements(bitFlagType) {
			id = TypeFlag
		}
		if _, ok := kindIDs[rt.Kind()]; ok {
			return &enumType{kindType{rt: rt, id: id}}
		}
	}
	if id, ok := kindIDs[rt.Kind()]; ok {
		return &kindType{rt: rt, id: id}
	}
	slog.Debug("conv: no conversions for type", "type", rt.String())
	return &invalidType{rt: rt}
}

// implementer is the converter for a type that implements a
// registered interface. Parsed values that are not of the
// type become its zero value.
type implementer struct {
	DynType
	rt reflect.Type
}

func (im *implementer) ReflectType() reflect.Type { return im.rt }
func (im *implementer) Zero() any                 { return reflect.Zero(im.rt).Interface() }

func (im *implementer) check(v any) any {
	if v != nil && reflect.TypeOf(v) == im.rt {
		return v
	}
	return im.Zero()
}

func (im *implementer) FromString(s string) any   { return im.check(im.DynType.FromString(s)) }
func (im *implementer) FromBool(b bool) any       { return im.check(im.DynType.FromBool(b)) }
func (im *implementer) FromInt64(i int64) any     { return im.check(im.DynType.FromInt64(i)) }
func (im *implementer) FromUint64(u uint64) any   { return im.check(im.DynType.FromUint64(u)) }
func (im *implementer) FromFloat64(f float64) any { return im.check(im.DynType.FromFloat64(f)) }
