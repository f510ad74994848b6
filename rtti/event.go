// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"cogentcore.org/rtti/params"
)

// Event is a signal: a list of connected [EventHandler]s that are
// called in connection order whenever the event is emitted. All
// handlers have the signature of the event, "void(" followed by the
// parameter types of the event.
type Event struct {
	types    []reflect.Type
	sig      string
	handlers []*EventHandler
}

// NewEvent returns a new event with the given parameter types.
func NewEvent(types ...reflect.Type) *Event {
	e := &Event{}
	e.setTypes(types)
	return e
}

func (e *Event) setTypes(types []reflect.Type) {
	e.types = types
	e.sig = Signature(nil, types...)
}

// Signature returns the signature of the event.
func (e *Event) Signature() string {
	if e.sig == "" {
		e.sig = Signature(nil, e.types...)
	}
	return e.sig
}

// Connect connects the given handler to the event. Handlers of
// another signature and handlers that are already connected are
// not connected.
func (e *Event) Connect(h *EventHandler) {
	if err := e.TryConnect(h); err != nil {
		slog.Debug("rtti.Event.Connect: not connected", "err", err)
	}
}

// TryConnect is like Connect, but returns [ErrSignatureMismatch]
// for a handler of another signature.
func (e *Event) TryConnect(h *EventHandler) error {
	if h == nil || h.fn == nil {
		return fmt.Errorf("%w: nil handler for %s", ErrSignatureMismatch, e.Signature())
	}
	if h.Signature() != e.Signature() {
		return fmt.Errorf("%w: handler %s for %s", ErrSignatureMismatch, h.Signature(), e.Signature())
	}
	if !slices.Contains(e.handlers, h) {
		e.handlers = append(e.handlers, h)
	}
	return nil
}

// Disconnect disconnects the given handler.
func (e *Event) Disconnect(h *EventHandler) {
	e.handlers = slices.DeleteFunc(e.handlers, func(c *EventHandler) bool { return c == h })
}

// DisconnectAll disconnects all handlers.
func (e *Event) DisconnectAll() {
	e.handlers = nil
}

// NumConnections returns the number of connected handlers.
func (e *Event) NumConnections() int {
	return len(e.handlers)
}

// NewParams returns zero-valued params with the signature of the event.
func (e *Event) NewParams() *Params {
	return zeroParams(e.Signature(), nil, e.types...)
}

// Emit calls all handlers with the given arguments, which must
// have exactly the parameter types of the event.
func (e *Event) Emit(args ...any) {
	types := make([]reflect.Type, len(args))
	for i, a := range args {
		types[i] = reflect.TypeOf(a)
	}
	e.EmitParams(&Params{signature: Signature(nil, types...), args: args})
}

// EmitParams calls all handlers with the given params.
// Params of another signature are ignored.
func (e *Event) EmitParams(p *Params) {
	if err := p.check(e.Signature(), e.types); err != nil {
		slog.Debug("rtti.Event.Emit: ignoring params", "err", err)
		return
	}
	for _, h := range slices.Clone(e.handlers) {
		h.fn.invoke(p)
	}
}

// EmitString calls all handlers with params given in their
// textual form.
func (e *Event) EmitString(s string) {
	p := e.NewParams()
	p.parse(params.Parse(s), e.types...)
	e.EmitParams(p)
}

// EmitXML calls all handlers with params given by the attributes
// and children of an element.
func (e *Event) EmitXML(el *params.Element) {
	p := e.NewParams()
	if el != nil {
		p.parse(el.Params(), e.types...)
	}
	e.EmitParams(p)
}

// EventHandler is a slot: a function without result that can be
// connected to events of its signature.
type EventHandler struct {
	fn *Func
}

// NewEventHandler returns a new handler calling the given function.
// It panics if fn is not a function without result.
func NewEventHandler(fn any) *EventHandler {
	f := NewFunc(fn)
	if f.HasReturn() {
		panic(fmt.Sprintf("rtti.NewEventHandler: handler %v has a result", f.ftype))
	}
	return &EventHandler{fn: f}
}

// Signature returns the signature of the handler.
func (h *EventHandler) Signature() string {
	if h.fn == nil {
		return Signature(nil)
	}
	return h.fn.Signature()
}

// Func returns the function of the handler.
func (h *EventHandler) Func() *Func {
	return h.fn
}
