// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"fmt"
	"reflect"
)

// MethodDesc describes a method of a class.
type MethodDesc struct {
	Member
	fn   *Func
	sig  string
	recv func(obj Object) any
}

// AddMethod declares a method of class C given by a method
// expression such as (*Light).SetColor, whose first parameter
// is the receiver. The signature of the method does not include
// the receiver.
func AddMethod[C any](def *ClassDef[C], name string, method any, description, annotation string) *MethodDesc {
	f := NewFunc(method)
	checkReceiver[C](def, name, f)
	d := &MethodDesc{
		Member: Member{Name: name, Description: description, Annotation: annotation, Kind: MemberMethod, info: def.info},
		fn:     f,
		sig:    funcSignature(f.ftype, 1),
		recv: func(obj Object) any {
			if c := castTo[C](obj); c != nil {
				return c
			}
			return nil
		},
	}
	addMember(def.info, &def.info.members.methods, &d.Member, d)
	return d
}

func checkReceiver[C any](def *ClassDef[C], name string, f *Func) {
	if f.NumParams() < 1 || f.ParamType(0) != reflect.TypeFor[*C]() {
		panic(fmt.Sprintf("rtti: class %s: the first parameter of %s must be *%s", def.info.name, name, def.info.goType.Name()))
	}
}

// Func returns the function of the method, with the receiver
// as its first parameter.
func (d *MethodDesc) Func() *Func { return d.fn }

// Signature returns the signature of the method without its receiver.
func (d *MethodDesc) Signature() string { return d.sig }

// Method returns the method bound to the given object, or nil
// if the object is not an instance of the declaring class.
func (d *MethodDesc) Method(obj Object) DynFunc {
	if isNilObject(obj) {
		return nil
	}
	recv := d.recv(obj)
	if recv == nil {
		return nil
	}
	return d.fn.Bind(recv)
}
