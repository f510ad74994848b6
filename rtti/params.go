// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"fmt"
	"reflect"

	"cogentcore.org/rtti/base/reflectx"
	"cogentcore.org/rtti/params"
)

// Params are the boxed arguments and return value of a function call,
// tagged with the signature they were built for. A function only
// accepts params whose signature equals its own.
type Params struct {
	signature string
	args      []any
	ret       any
}

// NewParams returns params for a call returning R with the given
// arguments. The signature is built from the dynamic types of the
// arguments, so they must have exactly the types of the parameters
// of the function to call. Use [conv.Void] for R if the function
// returns nothing.
func NewParams[R any](args ...any) *Params {
	types := make([]reflect.Type, len(args))
	for i, a := range args {
		types[i] = reflect.TypeOf(a)
	}
	var r R
	return &Params{signature: Signature(reflect.TypeFor[R](), types...), args: args, ret: r}
}

// zeroParams returns params of the given signature holding
// the zero values of the given types.
func zeroParams(sig string, ret reflect.Type, types ...reflect.Type) *Params {
	p := &Params{signature: sig, args: make([]any, len(types))}
	for i, t := range types {
		p.args[i] = reflect.Zero(t).Interface()
	}
	if ret != nil {
		p.ret = reflect.Zero(ret).Interface()
	}
	return p
}

// parse sets the arguments of the given types from a parameter list.
// Arguments are matched by [params.ArgName] or by position, and
// missing ones are left unchanged.
func (p *Params) parse(l params.List, types ...reflect.Type) {
	for i, t := range types {
		s, ok := l.Arg(i)
		if !ok {
			continue
		}
		v := dynConverter(t).FromString(s)
		if !reflectx.Assignable(v, t) {
			v = reflect.Zero(t).Interface()
		}
		p.args[i] = v
	}
}

// check returns [ErrSignatureMismatch] unless the params have the
// given signature and each argument is assignable to its type.
// Types of the same name declared in different scopes have the
// same signature, so the names alone are not enough.
func (p *Params) check(sig string, types []reflect.Type) error {
	if p == nil || p.signature != sig || len(p.args) != len(types) {
		return fmt.Errorf("%w: %s called with %s", ErrSignatureMismatch, sig, p.Signature())
	}
	for i, a := range p.args {
		if !reflectx.Assignable(a, types[i]) {
			return fmt.Errorf("%w: %s called with %T for parameter %d of type %v", ErrSignatureMismatch, sig, a, i, types[i])
		}
	}
	return nil
}

// Signature returns the signature the params were built for.
func (p *Params) Signature() string {
	if p == nil {
		return ""
	}
	return p.signature
}

// Len returns the number of arguments.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.args)
}

// Arg returns the argument with the given index, or nil.
func (p *Params) Arg(i int) any {
	if i < 0 || i >= p.Len() {
		return nil
	}
	return p.args[i]
}

// SetArg sets the argument with the given index.
func (p *Params) SetArg(i int, v any) {
	if i >= 0 && i < p.Len() {
		p.args[i] = v
	}
}

// Return returns the return value set by the last call.
func (p *Params) Return() any {
	if p == nil {
		return nil
	}
	return p.ret
}

// Arg returns the argument of p with the given index as a T,
// or the zero value if it is not a T.
func Arg[T any](p *Params, i int) T {
	v, _ := p.Arg(i).(T)
	return v
}

// Return returns the return value of p as an R,
// or the zero value if it is not an R.
func Return[R any](p *Params) R {
	v, _ := p.Return().(R)
	return v
}
