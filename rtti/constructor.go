// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"fmt"
	"log/slog"
	"reflect"

	"cogentcore.org/rtti/params"
)

// ConstructorDesc describes a constructor of a class: a function
// that returns a new instance of the class as an [Object].
type ConstructorDesc struct {
	Member
	fn   *Func
	init func(obj any)
}

// AddConstructor declares a constructor of class C. The function
// fn must return a *C; its signature is that of fn with the result
// written as Object, such as "Object(string)". Objects returned by
// fn that have not been initialized are initialized by Create.
func AddConstructor[C any](def *ClassDef[C], name string, fn any, description, annotation string) *ConstructorDesc {
	f := NewFunc(fn)
	if f.ReturnType() != reflect.TypeFor[*C]() {
		panic(fmt.Sprintf("rtti: class %s: constructor %s must return *%s, not %v", def.info.name, name, def.info.goType.Name(), f.ReturnType()))
	}
	d := &ConstructorDesc{
		Member: Member{Name: name, Description: description, Annotation: annotation, Kind: MemberConstructor, info: def.info},
		fn:     f,
		init: func(obj any) {
			def.Init(obj.(*C))
		},
	}
	addMember(def.info, &def.info.members.ctors, &d.Member, d)
	return d
}

// Signature returns the signature of the constructor.
func (d *ConstructorDesc) Signature() string { return d.fn.Signature() }

// Func returns the function of the constructor.
func (d *ConstructorDesc) Func() *Func { return d.fn }

// IsDefault returns whether the constructor has no parameters.
func (d *ConstructorDesc) IsDefault() bool { return d.fn.NumParams() == 0 }

// NewParams returns zero-valued params for the constructor.
func (d *ConstructorDesc) NewParams() *Params { return d.fn.NewParams() }

// Create returns a new object built with the given params,
// or nil if the params have another signature.
func (d *ConstructorDesc) Create(p *Params) Object {
	if err := d.fn.TryCall(p); err != nil {
		slog.Debug("rtti.ConstructorDesc.Create: no object created", "class", d.info.name, "constructor", d.Name, "err", err)
		return nil
	}
	return d.result(p)
}

// CreateString returns a new object built with params given
// in their textual form.
func (d *ConstructorDesc) CreateString(s string) Object {
	p := d.fn.ParamsFromString(s)
	d.fn.invoke(p)
	return d.result(p)
}

// CreateXML returns a new object built with params given
// by the attributes and children of an element.
func (d *ConstructorDesc) CreateXML(e *params.Element) Object {
	p := d.fn.ParamsFromXML(e)
	d.fn.invoke(p)
	return d.result(p)
}

func (d *ConstructorDesc) result(p *Params) Object {
	obj, _ := p.ret.(Object)
	if isNilObject(obj) {
		return nil
	}
	if obj.AsObject().this == nil {
		d.init(obj)
	}
	return obj.This()
}
