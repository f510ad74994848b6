// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"path"
	"runtime"
	"strings"

	"cogentcore.org/rtti/base/errors"
	"github.com/Masterminds/semver/v3"
)

// firstModuleID is the ID of the first module.
const firstModuleID = 10000

// Module is a Go package that declares classes.
type Module struct {
	// ID is the process-unique ID of the module, assigned the first
	// time the package declares a class or registers itself.
	ID int

	// Package is the import path of the package.
	Package string

	// Name is the name of the module, by default the last element
	// of its import path.
	Name string

	Vendor      string
	License     string
	Description string

	// Version is the optional semantic version of the module.
	Version *semver.Version
}

var (
	// modules are all modules in order of their IDs.
	modules []*Module

	// modulesByPackage are the modules keyed by import path.
	modulesByPackage = map[string]*Module{}
)

// RegisterModule sets the information of the module of the calling
// package and returns it. It is typically called once per package
// in a package-level variable declaration.
func RegisterModule(name, vendor, license, description string) *Module {
	m := moduleFor(callerPackage())
	m.Name = name
	m.Vendor = vendor
	m.License = license
	m.Description = description
	return m
}

// SetVersion sets the semantic version of the module.
// An invalid version is logged and ignored.
func (m *Module) SetVersion(version string) *Module {
	v, err := semver.NewVersion(version)
	if errors.Log(err) == nil {
		m.Version = v
	}
	return m
}

// Classes returns the registered classes of the module.
func (m *Module) Classes() []*Class {
	return FindClasses("", FindOptions{Recursive: true, IncludeAbstract: true, Module: m.ID})
}

func (m *Module) String() string {
	return m.Name
}

// moduleFor returns the module of the given package,
// creating it if it does not exist yet.
func moduleFor(pkg string) *Module {
	if m, ok := modulesByPackage[pkg]; ok {
		return m
	}
	m := &Module{ID: firstModuleID + len(modules), Package: pkg, Name: path.Base(pkg)}
	modules = append(modules, m)
	modulesByPackage[pkg] = m
	return m
}

// callerPackage returns the import path of the package of the
// function calling the function that calls callerPackage.
func callerPackage() string {
	pcs := make([]uintptr, 8)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	frames.Next()
	f, _ := frames.Next()
	return funcPackage(f.Function)
}

// funcPackage returns the import path of the package of the function
// with the given fully qualified name, such as
// "cogentcore.org/rtti/samples.init" or "main.(*T).Method".
func funcPackage(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	dir, base := "", name
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		dir, base = name[:i+1], name[i+1:]
	}
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return dir + base
}
