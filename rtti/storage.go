// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

// Storage holds the value of a variable outside of the variable.
// A [Var] without a Storage keeps its value inline.
type Storage[T any] interface {
	Get() T
	Set(v T)
}

// StorageStrategy decides where the value of an attribute of a
// class C lives. It is bound to each object when the object is
// initialized. The inline strategy is the absence of one.
type StorageStrategy[C, T any] interface {
	// Kind returns the kind of storage.
	Kind() StorageKind

	// Bind returns the storage for the given object.
	Bind(obj *C) Storage[T]
}

// GetSet returns a strategy that reads and writes the value through
// a getter and a setter of the owner, typically method expressions
// such as (*Light).Radius and (*Light).SetRadius. A nil setter makes
// the value read-only.
func GetSet[C, T any](get func(*C) T, set func(*C, T)) StorageStrategy[C, T] {
	return &getSet[C, T]{get: get, set: set}
}

type getSet[C, T any] struct {
	get func(*C) T
	set func(*C, T)
}

func (gs *getSet[C, T]) Kind() StorageKind { return StorageGetSet }

func (gs *getSet[C, T]) Bind(obj *C) Storage[T] {
	return &boundGetSet[C, T]{obj: obj, getSet: gs}
}

type boundGetSet[C, T any] struct {
	obj *C
	*getSet[C, T]
}

func (b *boundGetSet[C, T]) Get() T {
	return b.get(b.obj)
}

func (b *boundGetSet[C, T]) Set(v T) {
	if b.set != nil {
		b.set(b.obj, v)
	}
}

// ModifyAttr returns a strategy that forwards to an attribute declared
// by a base class B, found through the embedding path up. It lets a
// derived class expose the base attribute under its own descriptor,
// for example with another default or access policy.
func ModifyAttr[C, B, T any, A Access](up func(*C) *B, field func(*B) *Attribute[T, A]) StorageStrategy[C, T] {
	return &modifyAttr[C, B, T, A]{up: up, field: field}
}

type modifyAttr[C, B, T any, A Access] struct {
	up    func(*C) *B
	field func(*B) *Attribute[T, A]
}

func (m *modifyAttr[C, B, T, A]) Kind() StorageKind { return StorageModifyAttr }

func (m *modifyAttr[C, B, T, A]) Bind(obj *C) Storage[T] {
	return m.field(m.up(obj))
}
