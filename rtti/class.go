// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"reflect"
	"slices"

	"cogentcore.org/rtti/base/metadata"
	"github.com/iancoleman/strcase"
)

// Class is the descriptor of a reflected class. It is created by
// the Get method of the [ClassDef] declaring the class.
//
// The members of a class include those of its base classes, except
// for the constructors. A member declared with the same name as a
// base member replaces it at the position of the base member.
type Class struct {
	info *classInfo

	merged    *members
	mergedGen int
	merging   bool
}

func (c *Class) String() string {
	return c.info.name
}

// Name returns the name of the class.
func (c *Class) Name() string { return c.info.name }

// IDName returns the kebab-case name of the class, for use in IDs.
func (c *Class) IDName() string { return strcase.ToKebab(c.info.name) }

// Description returns the description of the class.
func (c *Class) Description() string { return c.info.description }

// Module returns the module the class belongs to.
func (c *Class) Module() *Module { return c.info.module }

// BaseName returns the name of the base class, or "".
func (c *Class) BaseName() string { return c.info.baseName }

// GoType returns the Go type of the objects of the class.
func (c *Class) GoType() reflect.Type { return c.info.goType }

// IsExported returns whether the class is in the registry.
func (c *Class) IsExported() bool { return c.info.export }

// Properties returns the properties of the class.
func (c *Class) Properties() metadata.Data { return c.info.props }

// Property returns the named property as a string, or "".
func (c *Class) Property(name string) string { return c.info.props.String(name) }

// Base returns the base class, or nil if the class has none or
// the base class is not known.
func (c *Class) Base() *Class {
	if b := c.info.baseInfo(); b != nil {
		return b.class()
	}
	if c.info.baseName == "" {
		return nil
	}
	return ClassByName(c.info.baseName)
}

// IsDerivedFrom returns whether the class is derived from the
// named class, directly or through its bases.
func (c *Class) IsDerivedFrom(name string) bool {
	seen := map[*Class]bool{c: true}
	for b := c.Base(); b != nil && !seen[b]; b = b.Base() {
		if b.info.name == name {
			return true
		}
		seen[b] = true
	}
	return false
}

// members returns the merged members of the class and its bases.
func (c *Class) members() *members {
	if c.merged != nil && c.mergedGen == memberGen {
		return c.merged
	}
	if c.merging {
		return &c.info.members
	}
	c.merging = true
	var base *members
	if b := c.Base(); b != nil {
		base = b.members()
	}
	c.merging = false
	c.merged = inherit(&c.info.members, base)
	c.mergedGen = memberGen
	return c.merged
}

// Attributes returns the attribute descriptors of the class.
func (c *Class) Attributes() []*AttrDesc { return slices.Clone(c.members().attrs.Values) }

// Attribute returns the named attribute descriptor, or nil.
func (c *Class) Attribute(name string) *AttrDesc { return c.members().attrs.At(name) }

// Methods returns the method descriptors of the class.
func (c *Class) Methods() []*MethodDesc { return slices.Clone(c.members().methods.Values) }

// Method returns the named method descriptor, or nil.
func (c *Class) Method(name string) *MethodDesc { return c.members().methods.At(name) }

// Signals returns the signal descriptors of the class.
func (c *Class) Signals() []*SignalDesc { return slices.Clone(c.members().signals.Values) }

// Signal returns the named signal descriptor, or nil.
func (c *Class) Signal(name string) *SignalDesc { return c.members().signals.At(name) }

// Slots returns the slot descriptors of the class.
func (c *Class) Slots() []*SlotDesc { return slices.Clone(c.members().slots.Values) }

// Slot returns the named slot descriptor, or nil.
func (c *Class) Slot(name string) *SlotDesc { return c.members().slots.At(name) }

// Constructors returns the constructor descriptors of the class.
func (c *Class) Constructors() []*ConstructorDesc { return slices.Clone(c.members().ctors.Values) }

// Constructor returns the named constructor descriptor, or nil.
func (c *Class) Constructor(name string) *ConstructorDesc { return c.members().ctors.At(name) }

// HasConstructor returns whether the class has a constructor.
// Classes without one are abstract.
func (c *Class) HasConstructor() bool { return c.members().ctors.Len() > 0 }

// HasDefaultConstructor returns whether the class has a constructor
// without parameters.
func (c *Class) HasDefaultConstructor() bool { return c.DefaultConstructor() != nil }

// DefaultConstructor returns the first constructor without
// parameters, or nil.
func (c *Class) DefaultConstructor() *ConstructorDesc {
	for _, d := range c.members().ctors.Values {
		if d.IsDefault() {
			return d
		}
	}
	return nil
}

// Create returns a new object made by the default constructor,
// or nil if the class has none.
func (c *Class) Create() Object {
	d := c.DefaultConstructor()
	if d == nil {
		return nil
	}
	return d.Create(d.NewParams())
}

// CreateParams returns a new object made by the first constructor
// of the signature of the given params, or nil if there is none.
func (c *Class) CreateParams(p *Params) Object {
	for _, d := range c.members().ctors.Values {
		if d.Signature() == p.Signature() {
			return d.Create(p)
		}
	}
	return nil
}

// CreateNamed returns a new object made by the named constructor,
// or nil if there is no such constructor or it has another signature.
func (c *Class) CreateNamed(name string, p *Params) Object {
	d := c.Constructor(name)
	if d == nil {
		return nil
	}
	return d.Create(p)
}

// CreateString returns a new object made by the named constructor
// with params given in their textual form, or nil if there is no
// such constructor.
func (c *Class) CreateString(name, params string) Object {
	d := c.Constructor(name)
	if d == nil {
		return nil
	}
	return d.CreateString(params)
}
