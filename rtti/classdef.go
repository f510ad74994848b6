// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"cogentcore.org/rtti/base/metadata"
	"github.com/google/uuid"
)

// ClassDef declares the reflected surface of the Go type C, which
// must embed [ObjectBase] directly or through its base class. A
// ClassDef is created once per type by [NewClass] in a package-level
// variable, and its members are added by [AddAttribute], [AddMethod],
// [AddConstructor], [AddSignal] and [AddSlot] in the same way:
//
//	var LightClass = rtti.NewClass[Light]("Light", "A light source", "Object")
//
//	var _ = rtti.AddAttribute(LightClass, "Color", func(l *Light) *rtti.Attribute[string, rtti.ReadWrite] {
//		return &l.Color
//	}, "white", "Light color", "")
//
// The [Class] descriptor of C is created from the ClassDef on first use.
type ClassDef[C any] struct {
	info  *classInfo
	inits []func(*C)
}

// classInfo is the part of a class declaration that does not
// depend on its Go type.
type classInfo struct {
	name        string
	description string
	baseName    string
	export      bool
	props       metadata.Data
	module      *Module
	goType      reflect.Type
	members     members

	// base and upcast link to the declaration of the base class
	// and the embedded base of an object. They are set by [Extends],
	// or resolved on first use from the base name.
	base   *classInfo
	upcast func(obj any) any

	initOwn func(obj any)

	instance *Class
	shutdown bool
}

// NewClass returns a new declaration of the class with the given
// name, description and base class name for the Go type C. The class
// belongs to the module of the calling package. Classes are exported
// to the registry unless [ClassDef.Internal] is called.
// NewClass panics if *C does not implement [Object].
func NewClass[C any](name, description, base string) *ClassDef[C] {
	rt := reflect.TypeFor[C]()
	if rt.Kind() != reflect.Struct || !reflect.PointerTo(rt).Implements(objectInterface) {
		panic(fmt.Sprintf("rtti.NewClass: class %s: *%v does not implement rtti.Object", name, rt))
	}
	d := &ClassDef[C]{}
	d.info = &classInfo{
		name:        name,
		description: description,
		baseName:    base,
		export:      true,
		module:      moduleFor(callerPackage()),
		goType:      rt,
		initOwn: func(obj any) {
			d.initOwn(obj.(*C))
		},
	}
	declare(d.info)
	return d
}

// Extends links the class declared by def to the class declared by
// base, whose type B must be embedded in C, so that the embedding is
// checked by the compiler. up returns the embedded B of a C. It panics
// if base is not the base class named by def.
func Extends[C, B any](def *ClassDef[C], base *ClassDef[B], up func(*C) *B) *ClassDef[C] {
	if def.info.baseName != base.info.name {
		panic(fmt.Sprintf("rtti.Extends: the base class of %s is %q, not %q", def.info.name, def.info.baseName, base.info.name))
	}
	def.info.base = base.info
	def.info.upcast = func(obj any) any {
		return up(obj.(*C))
	}
	memberGen++
	return def
}

// Internal marks the class as not exported, so that it is not
// added to the registry.
func (d *ClassDef[C]) Internal() *ClassDef[C] {
	d.info.export = false
	if d.info.instance != nil {
		unregister(d.info.instance)
	}
	return d
}

// Property sets a named property of the class.
func (d *ClassDef[C]) Property(name string, value any) *ClassDef[C] {
	d.info.props.Set(name, value)
	return d
}

// Name returns the name of the class.
func (d *ClassDef[C]) Name() string {
	return d.info.name
}

// Get returns the class descriptor, creating and registering it on
// first use. It returns the same descriptor until [ClassDef.Shutdown]
// is called, and nil after that.
func (d *ClassDef[C]) Get() *Class {
	return d.info.class()
}

// Shutdown destroys the class descriptor and unregisters it. The
// descriptor is never created again.
func (d *ClassDef[C]) Shutdown() {
	d.info.destroy()
}

// Init initializes an object of the class: it sets up the
// attributes, signals and slots of the class and its base classes,
// and the object identity. It must be called on every object that
// is not created by [ClassDef.New] or a constructor.
func (d *ClassDef[C]) Init(c *C) {
	d.info.initMembers(c)
	obj := any(c).(Object)
	ob := obj.AsObject()
	ob.this = obj
	ob.class = d.info.class()
	if ob.handle == uuid.Nil {
		ob.handle = newHandle(c)
	}
}

// New returns a new initialized object of the class.
func (d *ClassDef[C]) New() *C {
	c := new(C)
	d.Init(c)
	return c
}

func (d *ClassDef[C]) initOwn(c *C) {
	for _, init := range d.inits {
		init(c)
	}
}

func (ci *classInfo) class() *Class {
	if ci.shutdown {
		return nil
	}
	if ci.instance == nil {
		ci.instance = &Class{info: ci}
		if ci.export {
			register(ci.instance)
		}
	}
	return ci.instance
}

func (ci *classInfo) destroy() {
	if ci.instance != nil {
		unregister(ci.instance)
		ci.instance = nil
	}
	ci.shutdown = true
}

// initMembers initializes the members of the base classes and then
// the own members of the class, for obj of the Go type of the class.
func (ci *classInfo) initMembers(obj any) {
	if base, up := ci.baseLink(); base != nil {
		base.initMembers(up(obj))
	}
	ci.initOwn(obj)
}

// baseInfo returns the declaration of the base class, or nil.
func (ci *classInfo) baseInfo() *classInfo {
	if ci.base != nil {
		return ci.base
	}
	if ci.baseName == "" {
		return nil
	}
	b := declared[ci.baseName]
	if b == ci {
		return nil
	}
	return b
}

// baseLink returns the declaration of the base class and the function
// returning the embedded base of an object, or nil if the base class
// is unknown or not embedded.
func (ci *classInfo) baseLink() (*classInfo, func(obj any) any) {
	b := ci.baseInfo()
	if b == nil {
		return nil, nil
	}
	if ci.upcast != nil && ci.base == b {
		return b, ci.upcast
	}
	path := embedPath(ci.goType, b.goType)
	if path == nil {
		slog.Debug("rtti: base class is not embedded", "class", ci.name, "base", b.name)
		return nil, nil
	}
	ci.base = b
	ci.upcast = func(obj any) any {
		return reflect.ValueOf(obj).Elem().FieldByIndex(path).Addr().Interface()
	}
	return b, ci.upcast
}

// embedPath returns the index path of the field of type to embedded
// in struct type from, at any depth, or nil if there is none.
func embedPath(from, to reflect.Type) []int {
	type node struct {
		typ  reflect.Type
		path []int
	}
	queue := []node{{typ: from}}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.typ.Kind() != reflect.Struct {
			continue
		}
		for i := range n.typ.NumField() {
			f := n.typ.Field(i)
			if !f.Anonymous {
				continue
			}
			path := append(slices.Clone(n.path), i)
			if f.Type == to {
				return path
			}
			queue = append(queue, node{typ: f.Type, path: path})
		}
	}
	return nil
}

// castTo returns the C of the given object: the object itself, or
// its embedded C found through its base classes. It returns nil if
// the object has no C.
func castTo[C any](obj Object) *C {
	this := obj.This()
	if isNilObject(this) {
		this = obj
	}
	var v any = this
	if c, ok := v.(*C); ok {
		return c
	}
	if cls := this.Class(); cls != nil && reflect.TypeOf(v).Elem() == cls.info.goType {
		for ci := cls.info; ; {
			base, up := ci.baseLink()
			if base == nil {
				break
			}
			v = up(v)
			if c, ok := v.(*C); ok {
				return c
			}
			ci = base
		}
	}
	rt := reflect.TypeOf(this).Elem()
	if path := embedPath(rt, reflect.TypeFor[C]()); path != nil {
		return reflect.ValueOf(this).Elem().FieldByIndex(path).Addr().Interface().(*C)
	}
	return nil
}
