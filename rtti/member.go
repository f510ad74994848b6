// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"fmt"

	"cogentcore.org/rtti/base/keylist"
)

// Member is the information shared by all member descriptors.
type Member struct {
	// Name is the name of the member, unique among the members
	// of the same kind of its class.
	Name string

	// Description is a human-readable description of the member.
	Description string

	// Annotation is a free-form string for tooling.
	Annotation string

	// Kind is the kind of the member.
	Kind MemberKind

	info *classInfo
}

// Class returns the class that declares the member.
func (m *Member) Class() *Class {
	return m.info.class()
}

// members are the member descriptors of a class, in declaration order.
type members struct {
	attrs   keylist.List[string, *AttrDesc]
	methods keylist.List[string, *MethodDesc]
	signals keylist.List[string, *SignalDesc]
	slots   keylist.List[string, *SlotDesc]
	ctors   keylist.List[string, *ConstructorDesc]
}

// addMember adds a member to one of the member lists of a class.
// Declaring two members of the same kind and name is a programming
// error, so it panics.
func addMember[V any](info *classInfo, kl *keylist.List[string, V], m *Member, v V) {
	if err := kl.Add(m.Name, v); err != nil {
		panic(fmt.Sprintf("rtti: class %s: duplicate %s %q", info.name, m.Kind, m.Name))
	}
	memberGen++
}

// inherit returns the members of a class with the given own members
// and the merged members of its base. Own members replace base
// members of the same name in place. Constructors are not inherited.
func inherit(own, base *members) *members {
	m := &members{}
	if base != nil {
		m.attrs = *base.attrs.Clone()
		m.methods = *base.methods.Clone()
		m.signals = *base.signals.Clone()
		m.slots = *base.slots.Clone()
	}
	override(&m.attrs, &own.attrs)
	override(&m.methods, &own.methods)
	override(&m.signals, &own.signals)
	override(&m.slots, &own.slots)
	m.ctors = *own.ctors.Clone()
	return m
}

func override[V any](dst, src *keylist.List[string, V]) {
	for k, v := range src.All() {
		dst.Set(k, v)
	}
}
