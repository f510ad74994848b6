// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"fmt"

	"cogentcore.org/rtti/conv"
)

// Attribute is a [Var] that is a reflected field of an object.
// It is set up by the Init method of the class that declares it,
// which gives it its default, owner and descriptor.
type Attribute[T any, A Access] struct {
	Var[T, A]
	desc  *AttrDesc
	owner Object
}

// Desc returns the descriptor of the attribute,
// or nil if the attribute has not been initialized.
func (a *Attribute[T, A]) Desc() *AttrDesc {
	return a.desc
}

// Owner returns the object the attribute belongs to.
func (a *Attribute[T, A]) Owner() Object {
	if a.owner == nil {
		return nil
	}
	return a.owner.This()
}

// AttrDesc describes an attribute of a class.
type AttrDesc struct {
	Member

	// TypeID is the primitive representation of the value.
	TypeID conv.TypeID

	// TypeName is the name of the type of the value.
	TypeName string

	// Default is the default value as a string.
	Default string

	// Access is the write policy of the attribute.
	Access AccessKind

	// Storage is where the value of the attribute lives.
	Storage StorageKind

	get func(obj Object) DynVar
}

// Attribute returns the attribute of the given object, or nil
// if the object is not an instance of the declaring class.
func (d *AttrDesc) Attribute(obj Object) DynVar {
	if isNilObject(obj) {
		return nil
	}
	return d.get(obj)
}

// AddAttribute declares an attribute of class C with the given name
// and default, whose value is the field of C returned by field.
// The value is stored in the attribute unless a storage strategy
// is given. It panics if the default does not survive the round
// trip through its string form.
func AddAttribute[C, T any, A Access](def *ClassDef[C], name string, field func(*C) *Attribute[T, A], defVal T, description, annotation string, storage ...StorageStrategy[C, T]) *AttrDesc {
	t := converterFor[T]()
	defStr := t.ToString(defVal)
	if !t.Equal(t.FromString(defStr), defVal) {
		panic(fmt.Sprintf("rtti: class %s: default %q of attribute %s does not convert to %s", def.info.name, defStr, name, t.TypeName()))
	}
	var strategy StorageStrategy[C, T]
	if len(storage) > 0 {
		strategy = storage[0]
	}
	d := &AttrDesc{
		Member:   Member{Name: name, Description: description, Annotation: annotation, Kind: MemberAttribute, info: def.info},
		TypeID:   t.TypeID(),
		TypeName: t.TypeName(),
		Default:  defStr,
		Access:   accessKind[A](),
		Storage:  StorageDirect,
	}
	if strategy != nil {
		d.Storage = strategy.Kind()
	}
	d.get = func(obj Object) DynVar {
		c := castTo[C](obj)
		if c == nil {
			return nil
		}
		return field(c)
	}
	addMember(def.info, &def.info.members.attrs, &d.Member, d)
	def.inits = append(def.inits, func(c *C) {
		a := field(c)
		a.desc = d
		a.owner = any(c).(Object)
		a.def = defVal
		a.conv = t
		if strategy == nil {
			a.bind(nil, StorageDirect)
			a.value = defVal
			return
		}
		a.bind(strategy.Bind(c), strategy.Kind())
		if strategy.Kind() == StorageModifyAttr {
			a.Store(defVal)
		}
	})
	return d
}
