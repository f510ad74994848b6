// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"fmt"
	"reflect"
)

// SignalDesc describes a signal of a class, an [Event] field.
type SignalDesc struct {
	Member
	sig string
	get func(obj Object) *Event
}

// AddSignal declares a signal of class C with the given parameter
// types, whose event is the field of C returned by field.
func AddSignal[C any](def *ClassDef[C], name string, field func(*C) *Event, description, annotation string, types ...reflect.Type) *SignalDesc {
	d := &SignalDesc{
		Member: Member{Name: name, Description: description, Annotation: annotation, Kind: MemberSignal, info: def.info},
		sig:    Signature(nil, types...),
		get: func(obj Object) *Event {
			c := castTo[C](obj)
			if c == nil {
				return nil
			}
			return field(c)
		},
	}
	addMember(def.info, &def.info.members.signals, &d.Member, d)
	def.inits = append(def.inits, func(c *C) {
		field(c).setTypes(types)
	})
	return d
}

// Signature returns the signature of the signal.
func (d *SignalDesc) Signature() string { return d.sig }

// Event returns the event of the given object, or nil if the
// object is not an instance of the declaring class.
func (d *SignalDesc) Event(obj Object) *Event {
	if isNilObject(obj) {
		return nil
	}
	return d.get(obj)
}

// SlotDesc describes a slot of a class, an [EventHandler] field
// calling a method of the object.
type SlotDesc struct {
	Member
	sig string
	get func(obj Object) *EventHandler
}

// AddSlot declares a slot of class C, whose handler is the field
// of C returned by field and calls the given method expression.
// The method must not have a result.
func AddSlot[C any](def *ClassDef[C], name string, field func(*C) *EventHandler, method any, description, annotation string) *SlotDesc {
	f := NewFunc(method)
	checkReceiver[C](def, name, f)
	if f.HasReturn() {
		panic(fmt.Sprintf("rtti: class %s: slot %s has a result", def.info.name, name))
	}
	d := &SlotDesc{
		Member: Member{Name: name, Description: description, Annotation: annotation, Kind: MemberSlot, info: def.info},
		sig:    funcSignature(f.ftype, 1),
		get: func(obj Object) *EventHandler {
			c := castTo[C](obj)
			if c == nil {
				return nil
			}
			return field(c)
		},
	}
	addMember(def.info, &def.info.members.slots, &d.Member, d)
	def.inits = append(def.inits, func(c *C) {
		*field(c) = EventHandler{fn: f.Bind(c)}
	})
	return d
}

// Signature returns the signature of the slot.
func (d *SlotDesc) Signature() string { return d.sig }

// Slot returns the handler of the given object, or nil if the
// object is not an instance of the declaring class.
func (d *SlotDesc) Slot(obj Object) *EventHandler {
	if isNilObject(obj) {
		return nil
	}
	return d.get(obj)
}
