// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"fmt"
	"log/slog"
	"reflect"

	"cogentcore.org/rtti/base/reflectx"
	"cogentcore.org/rtti/params"
)

// Func is a [DynFunc] for a Go function value of any number of
// parameters and at most one result. A method expression such as
// (*Light).SetRadius can be bound to a receiver with [Func.Bind],
// after which the receiver is no longer part of the signature.
type Func struct {
	fn    reflect.Value
	ftype reflect.Type
	recv  reflect.Value
	skip  int
	sig   string
}

var _ DynFunc = (*Func)(nil)

// NewFunc returns a new [Func] for the given function value.
// It panics if fn is not a function, is variadic, or has
// more than one result.
func NewFunc(fn any) *Func {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		panic(fmt.Sprintf("rtti.NewFunc: %T is not a function", fn))
	}
	ft := v.Type()
	if ft.IsVariadic() {
		panic(fmt.Sprintf("rtti.NewFunc: variadic function %v is not supported", ft))
	}
	if ft.NumOut() > 1 {
		panic(fmt.Sprintf("rtti.NewFunc: function %v has more than one result", ft))
	}
	return &Func{fn: v, ftype: ft, sig: funcSignature(ft, 0)}
}

// Bind returns a copy of the function with its first parameter
// bound to the given receiver.
func (f *Func) Bind(recv any) *Func {
	if f.ftype.NumIn()-f.skip < 1 {
		panic(fmt.Sprintf("rtti.Func.Bind: function %v has no parameter to bind", f.ftype))
	}
	rv, ok := reflectx.ValueOrZero(recv, f.ftype.In(f.skip))
	if !ok {
		panic(fmt.Sprintf("rtti.Func.Bind: cannot bind %T to %v", recv, f.ftype.In(f.skip)))
	}
	return &Func{fn: f.fn, ftype: f.ftype, recv: rv, skip: f.skip + 1, sig: funcSignature(f.ftype, f.skip+1)}
}

func (f *Func) Signature() string { return f.sig }

func (f *Func) NumParams() int { return f.ftype.NumIn() - f.skip }

func (f *Func) ParamType(i int) reflect.Type { return f.ftype.In(f.skip + i) }

func (f *Func) ReturnType() reflect.Type {
	if f.ftype.NumOut() == 0 {
		return nil
	}
	return f.ftype.Out(0)
}

// HasReturn returns whether the function has a result.
func (f *Func) HasReturn() bool { return f.ftype.NumOut() == 1 }

func (f *Func) NewParams() *Params {
	return zeroParams(f.sig, f.ReturnType(), f.paramTypes()...)
}

func (f *Func) paramTypes() []reflect.Type {
	types := make([]reflect.Type, f.NumParams())
	for i := range types {
		types[i] = f.ParamType(i)
	}
	return types
}

// TryCall calls the function with the given params. The params
// must have the signature of the function, and each argument must
// be assignable to its parameter: types of the same name declared
// in different scopes have the same signature but are not.
func (f *Func) TryCall(p *Params) error {
	if err := p.check(f.sig, f.paramTypes()); err != nil {
		return err
	}
	f.invoke(p)
	return nil
}

func (f *Func) Call(p *Params) {
	if err := f.TryCall(p); err != nil {
		slog.Debug("rtti.Func.Call: ignoring call", "err", err)
	}
}

// invoke calls the function with params of its signature.
func (f *Func) invoke(p *Params) {
	in := make([]reflect.Value, 0, f.ftype.NumIn())
	if f.skip > 0 {
		in = append(in, f.recv)
	}
	for i, a := range p.args {
		pt := f.ParamType(i)
		v, ok := reflectx.ValueOrZero(a, pt)
		if !ok {
			v = reflect.Zero(pt)
		}
		in = append(in, v)
	}
	out := f.fn.Call(in)
	if len(out) == 1 {
		p.ret = out[0].Interface()
	}
}

// ParamsFromList returns params of the signature of the function
// with the arguments parsed from the given list. Arguments are
// matched by [params.ArgName] or by position, and missing ones
// are zero.
func (f *Func) ParamsFromList(l params.List) *Params {
	p := f.NewParams()
	p.parse(l, f.paramTypes()...)
	return p
}

// ParamsFromString returns params parsed from the textual form
// of a parameter list.
func (f *Func) ParamsFromString(s string) *Params {
	return f.ParamsFromList(params.Parse(s))
}

// ParamsFromXML returns params parsed from the attributes and
// children of the given element.
func (f *Func) ParamsFromXML(e *params.Element) *Params {
	if e == nil {
		return f.NewParams()
	}
	return f.ParamsFromList(e.Params())
}

func (f *Func) CallString(s string) { f.invoke(f.ParamsFromString(s)) }

func (f *Func) CallXML(e *params.Element) { f.invoke(f.ParamsFromXML(e)) }

func (f *Func) CallWithReturn(s string) string {
	p := f.ParamsFromString(s)
	f.invoke(p)
	return f.returnString(p)
}

func (f *Func) CallXMLWithReturn(e *params.Element) string {
	p := f.ParamsFromXML(e)
	f.invoke(p)
	return f.returnString(p)
}

func (f *Func) returnString(p *Params) string {
	rt := f.ReturnType()
	if rt == nil {
		return ""
	}
	return dynConverter(rt).ToString(p.ret)
}
