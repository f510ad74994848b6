// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"fmt"

	"cogentcore.org/rtti/params"
	"github.com/google/uuid"
)

// Object is the interface of all objects of reflected classes.
// It is implemented by embedding [ObjectBase].
type Object interface {
	// AsObject returns the embedded [ObjectBase].
	AsObject() *ObjectBase

	// This returns the object as its most derived type,
	// or nil if it has not been initialized.
	This() Object

	// Class returns the class of the object.
	Class() *Class

	// Handle returns the unique handle of the object.
	Handle() uuid.UUID
}

// ObjectBase is the base of all objects. It gives an object access
// to its members by name.
type ObjectBase struct {
	this   Object
	class  *Class
	handle uuid.UUID
}

var rttiModule = RegisterModule("rtti", "Cogent Core", "BSD-3-Clause", "Run-time type information")

// ObjectClass is the root class of all classes.
var ObjectClass = NewClass[ObjectBase]("Object", "Object base class", "")

func (o *ObjectBase) AsObject() *ObjectBase { return o }
func (o *ObjectBase) This() Object          { return o.this }
func (o *ObjectBase) Class() *Class         { return o.class }
func (o *ObjectBase) Handle() uuid.UUID     { return o.handle }

// IsInstanceOf returns whether the object is of the named class
// or a class derived from it.
func (o *ObjectBase) IsInstanceOf(className string) bool {
	if o.class == nil {
		return false
	}
	return o.class.Name() == className || o.class.IsDerivedFrom(className)
}

// Attribute returns the named attribute, or nil.
func (o *ObjectBase) Attribute(name string) DynVar {
	if o.class == nil {
		return nil
	}
	d := o.class.Attribute(name)
	if d == nil {
		return nil
	}
	return d.Attribute(o.this)
}

// Attributes returns all attributes in declaration order.
func (o *ObjectBase) Attributes() []DynVar {
	if o.class == nil {
		return nil
	}
	var res []DynVar
	for _, d := range o.class.Attributes() {
		if a := d.Attribute(o.this); a != nil {
			res = append(res, a)
		}
	}
	return res
}

// Method returns the named method bound to the object, or nil.
func (o *ObjectBase) Method(name string) DynFunc {
	if o.class == nil {
		return nil
	}
	d := o.class.Method(name)
	if d == nil {
		return nil
	}
	return d.Method(o.this)
}

// Signal returns the event of the named signal, or nil.
func (o *ObjectBase) Signal(name string) *Event {
	if o.class == nil {
		return nil
	}
	d := o.class.Signal(name)
	if d == nil {
		return nil
	}
	return d.Event(o.this)
}

// Slot returns the handler of the named slot, or nil.
func (o *ObjectBase) Slot(name string) *EventHandler {
	if o.class == nil {
		return nil
	}
	d := o.class.Slot(name)
	if d == nil {
		return nil
	}
	return d.Slot(o.this)
}

// SetAttribute sets the named attribute from a string.
func (o *ObjectBase) SetAttribute(name, value string) {
	if a := o.Attribute(name); a != nil {
		a.SetString(value)
	}
}

// SetAttributeVar sets the named attribute from another variable.
func (o *ObjectBase) SetAttributeVar(name string, v DynVar) {
	if a := o.Attribute(name); a != nil {
		a.SetVar(v)
	}
}

// SetAttributeDefault sets the named attribute to its default.
func (o *ObjectBase) SetAttributeDefault(name string) {
	if a := o.Attribute(name); a != nil {
		a.SetDefault()
	}
}

// CallMethod calls the named method with the given params.
func (o *ObjectBase) CallMethod(name string, p *Params) {
	if m := o.Method(name); m != nil {
		m.Call(p)
	}
}

// TryCallMethod is like CallMethod, but returns an error if there
// is no such method or the params have another signature.
func (o *ObjectBase) TryCallMethod(name string, p *Params) error {
	m := o.Method(name)
	if m == nil {
		return fmt.Errorf("%w: method %q", ErrUnknownMember, name)
	}
	return m.TryCall(p)
}

// CallMethodString calls the named method with params given in
// their textual form.
func (o *ObjectBase) CallMethodString(name, s string) {
	if m := o.Method(name); m != nil {
		m.CallString(s)
	}
}

// CallMethodXML calls the named method with params given by the
// attributes and children of an element.
func (o *ObjectBase) CallMethodXML(name string, e *params.Element) {
	if m := o.Method(name); m != nil {
		m.CallXML(e)
	}
}

// CallMethodWithReturn calls the named method with params given in
// their textual form and returns the result as a string.
func (o *ObjectBase) CallMethodWithReturn(name, s string) string {
	if m := o.Method(name); m != nil {
		return m.CallWithReturn(s)
	}
	return ""
}

// Values returns the attributes of the object in the textual form
// of a parameter list, such as `Name="Lamp" Radius="2.5"`.
// With [NoDefault], attributes with their default value are left out.
func (o *ObjectBase) Values(mode ValuesMode) string {
	var l params.List
	o.eachValue(mode, func(name, value string) {
		l = append(l, params.Param{Name: name, Value: value})
	})
	return l.String()
}

func (o *ObjectBase) eachValue(mode ValuesMode, fun func(name, value string)) {
	if o.class == nil {
		return
	}
	for _, d := range o.class.Attributes() {
		a := d.Attribute(o.this)
		if a == nil || mode == NoDefault && a.IsDefault() {
			continue
		}
		fun(d.Name, a.String())
	}
}

// SetValues sets attributes from the textual form of a parameter
// list. Unknown names and positional values are ignored.
func (o *ObjectBase) SetValues(s string) {
	o.setValues(params.Parse(s))
}

func (o *ObjectBase) setValues(l params.List) {
	for _, p := range l {
		if p.Name != "" {
			o.SetAttribute(p.Name, p.Value)
		}
	}
}

// ValuesXML sets the attributes of the object as attributes of
// the given element. A nil element is left alone.
func (o *ObjectBase) ValuesXML(e *params.Element, mode ValuesMode) {
	if e == nil {
		return
	}
	o.eachValue(mode, e.SetAttr)
}

// SetValuesXML sets attributes from the attributes and children
// of the given element.
func (o *ObjectBase) SetValuesXML(e *params.Element) {
	if e != nil {
		o.setValues(e.Params())
	}
}

// SetDefaultValues sets all attributes to their defaults.
func (o *ObjectBase) SetDefaultValues() {
	for _, a := range o.Attributes() {
		a.SetDefault()
	}
}

// ToString returns the attributes that do not have their default
// value in the textual form of a parameter list.
func (o *ObjectBase) ToString() string {
	return o.Values(NoDefault)
}

// FromString sets attributes from the textual form of a parameter list.
func (o *ObjectBase) FromString(s string) {
	o.SetValues(s)
}

// ToXML returns an element named after the class of the object,
// with the attributes that do not have their default value.
func (o *ObjectBase) ToXML() *params.Element {
	name := "Object"
	if o.class != nil {
		name = o.class.Name()
	}
	e := params.NewElement(name)
	o.ValuesXML(e, NoDefault)
	return e
}

// FromXML sets attributes from the given element.
func (o *ObjectBase) FromXML(e *params.Element) {
	o.SetValuesXML(e)
}
