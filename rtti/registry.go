// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"cogentcore.org/rtti/base/errors"
	"cogentcore.org/rtti/base/keylist"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// The registry is the process-wide set of exported classes. Like
// class declaration, it must only be used from one goroutine at a
// time; declaration normally happens during package initialization.
var (
	// declared are all class declarations by name, including
	// internal ones. The first declaration of a name wins.
	declared = map[string]*classInfo{}

	// declarations are all class declarations in declaration order.
	declarations []*classInfo

	// pending are the declarations whose class has not been
	// created yet.
	pending []*classInfo

	// classes are the registered classes in registration order.
	classes keylist.List[string, *Class]

	// memberGen is incremented whenever members or class links change,
	// invalidating the merged members of all classes.
	memberGen int

	// ClassLoaded is emitted with the class after a class is registered.
	ClassLoaded = NewEvent(reflect.TypeFor[*Class]())

	// ClassUnloaded is emitted with the class before a class is unregistered.
	ClassUnloaded = NewEvent(reflect.TypeFor[*Class]())
)

// declare records a new class declaration.
func declare(ci *classInfo) {
	if prev, has := declared[ci.name]; has {
		errors.Log(fmt.Errorf("rtti: class %q of %s is already declared by %s", ci.name, ci.module.Package, prev.module.Package))
	} else {
		declared[ci.name] = ci
	}
	declarations = append(declarations, ci)
	pending = append(pending, ci)
}

// drain creates the classes of all pending declarations.
func drain() {
	for len(pending) > 0 {
		ci := pending[0]
		pending = pending[1:]
		ci.class()
	}
}

func register(c *Class) {
	if prev, has := classes.AtTry(c.info.name); has {
		if prev != c {
			errors.Log(fmt.Errorf("rtti: class %q of %s is already registered by %s", c.info.name, c.info.module.Package, prev.info.module.Package))
		}
		return
	}
	classes.Set(c.info.name, c)
	memberGen++
	ClassLoaded.Emit(c)
}

func unregister(c *Class) {
	if prev, has := classes.AtTry(c.info.name); !has || prev != c {
		return
	}
	ClassUnloaded.Emit(c)
	classes.DeleteByKey(c.info.name)
	memberGen++
}

// OnClassLoaded connects a function to [ClassLoaded] and returns
// the handler, for use with [Event.Disconnect].
func OnClassLoaded(fun func(c *Class)) *EventHandler {
	h := NewEventHandler(fun)
	ClassLoaded.Connect(h)
	return h
}

// OnClassUnloaded connects a function to [ClassUnloaded] and returns
// the handler, for use with [Event.Disconnect].
func OnClassUnloaded(fun func(c *Class)) *EventHandler {
	h := NewEventHandler(fun)
	ClassUnloaded.Connect(h)
	return h
}

// ClassByName returns the registered class with the given name,
// or nil if there is none.
func ClassByName(name string) *Class {
	drain()
	return classes.At(name)
}

// ClassByNameTry is like [ClassByName], but returns an error
// if there is no class with the given name.
func ClassByNameTry(name string) (*Class, error) {
	if c := ClassByName(name); c != nil {
		return c, nil
	}
	if s := Suggest(name, 1); len(s) > 0 {
		return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownClass, name, s[0])
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownClass, name)
}

// Classes returns all registered classes in registration order.
func Classes() []*Class {
	drain()
	return slices.Clone(classes.Values)
}

// FindOptions are the options of [FindClasses].
type FindOptions struct {
	// Recursive includes classes derived from the base class
	// indirectly, not only its direct subclasses.
	Recursive bool

	// IncludeBase includes the base class itself.
	IncludeBase bool

	// IncludeAbstract includes classes without constructors.
	IncludeAbstract bool

	// Module only includes classes of the module with this ID,
	// if it is not zero.
	Module int
}

// FindClasses returns the registered classes derived from the named
// base class, in registration order. An empty base name matches all
// classes.
func FindClasses(base string, opts FindOptions) []*Class {
	drain()
	var res []*Class
	for _, c := range classes.Values {
		if opts.Module != 0 && c.info.module.ID != opts.Module {
			continue
		}
		if !opts.IncludeAbstract && !c.HasConstructor() {
			continue
		}
		switch {
		case base == "":
		case c.info.name == base:
			if !opts.IncludeBase {
				continue
			}
		case opts.Recursive:
			if !c.IsDerivedFrom(base) {
				continue
			}
		default:
			if c.info.baseName != base {
				continue
			}
		}
		res = append(res, c)
	}
	return res
}

// Suggest returns up to n names of registered classes that are
// most similar to the given name, the most similar first.
func Suggest(name string, n int) []string {
	drain()
	type match struct {
		name  string
		score float64
	}
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	var ms []match
	for _, k := range classes.Keys {
		if s := strutil.Similarity(name, k, lev); s > 0 {
			ms = append(ms, match{k, s})
		}
	}
	slices.SortStableFunc(ms, func(a, b match) int {
		return cmp.Compare(b.score, a.score)
	})
	res := make([]string, 0, min(n, len(ms)))
	for _, m := range ms[:min(n, len(ms))] {
		res = append(res, m.name)
	}
	return res
}

// Modules returns all modules in order of their IDs.
func Modules() []*Module {
	return slices.Clone(modules)
}

// ModuleByID returns the module with the given ID, or nil.
func ModuleByID(id int) *Module {
	i := id - firstModuleID
	if i < 0 || i >= len(modules) {
		return nil
	}
	return modules[i]
}

// ModuleByName returns the first module with the given name, or nil.
func ModuleByName(name string) *Module {
	for _, m := range modules {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Create returns a new object of the named class made by its
// default constructor, or nil if there is no such class or it
// has no default constructor.
func Create(className string) Object {
	c := ClassByName(className)
	if c == nil {
		return nil
	}
	return c.Create()
}

// TryCreate is like [Create], but returns an error instead of nil.
func TryCreate(className string) (Object, error) {
	c, err := ClassByNameTry(className)
	if err != nil {
		return nil, err
	}
	if !c.HasDefaultConstructor() {
		return nil, fmt.Errorf("%w: class %s has no default constructor", ErrUnknownMember, className)
	}
	return c.Create(), nil
}

// Shutdown destroys all class descriptors, which are not created
// again. It is meant to be called once when the program ends.
func Shutdown() {
	pending = nil
	for _, ci := range slices.Backward(declarations) {
		ci.destroy()
	}
}
