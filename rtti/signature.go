// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"reflect"
	"strings"

	"cogentcore.org/rtti/base/errors"
	lru "github.com/hashicorp/golang-lru/v2"
)

// signatureKey identifies the signature of a function type
// with its first skip parameters bound.
type signatureKey struct {
	typ  reflect.Type
	skip int
}

// signatures caches the signatures of function types.
var signatures = errors.Must1(lru.New[signatureKey, string](1024))

// Signature returns the canonical signature of a function with the
// given return type and parameter types: the return type name followed
// by the parameter type names in parentheses, separated by commas and
// without spaces, such as "void(int32,string)". A nil or [conv.Void]
// return type is written as void.
func Signature(ret reflect.Type, params ...reflect.Type) string {
	var b strings.Builder
	if ret == nil {
		b.WriteString("void")
	} else {
		b.WriteString(typeName(ret))
	}
	b.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(typeName(p))
	}
	b.WriteByte(')')
	return b.String()
}

// funcSignature returns the signature of the given function type
// with its first skip parameters bound.
func funcSignature(ft reflect.Type, skip int) string {
	key := signatureKey{typ: ft, skip: skip}
	if sig, ok := signatures.Get(key); ok {
		return sig
	}
	var ret reflect.Type
	if ft.NumOut() == 1 {
		ret = ft.Out(0)
	}
	params := make([]reflect.Type, 0, ft.NumIn()-skip)
	for i := skip; i < ft.NumIn(); i++ {
		params = append(params, ft.In(i))
	}
	sig := Signature(ret, params...)
	signatures.Add(key, sig)
	return sig
}
