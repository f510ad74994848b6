// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"reflect"

	"cogentcore.org/rtti/params"
)

// DynFunc is the type-erased interface of a callable: a function,
// a method bound to an object, a constructor or a slot. Calls whose
// parameters have another signature than the callable do nothing;
// TryCall reports them.
type DynFunc interface {
	// Signature returns the canonical signature of the callable,
	// such as "void(int32,string)".
	Signature() string

	// ReturnType returns the type of the result, or nil if there is none.
	ReturnType() reflect.Type

	// NumParams returns the number of parameters.
	NumParams() int

	// ParamType returns the type of the parameter with the given index.
	ParamType(i int) reflect.Type

	// NewParams returns zero-valued params with the signature of the callable.
	NewParams() *Params

	// Call calls with the given params and stores the result in them.
	Call(p *Params)

	// TryCall is like Call, but returns [ErrSignatureMismatch]
	// instead of ignoring params of another signature.
	TryCall(p *Params) error

	// CallString calls with the textual form of a parameter list.
	CallString(s string)

	// CallXML calls with the parameters given by an element.
	CallXML(e *params.Element)

	// CallWithReturn calls with the textual form of a parameter list
	// and returns the result as a string, or "" if there is none.
	CallWithReturn(s string) string

	// CallXMLWithReturn calls with the parameters given by an element
	// and returns the result as a string, or "" if there is none.
	CallXMLWithReturn(e *params.Element) string
}
