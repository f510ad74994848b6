// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"runtime"
	"sync"
	"weak"

	"github.com/google/uuid"
)

// handles maps the handles of live objects to functions returning
// the objects. Entries are removed when their object is collected,
// which happens on another goroutine.
var handles sync.Map

// newHandle returns a new handle for the given object, which does
// not keep the object alive.
func newHandle[C any](c *C) uuid.UUID {
	h := uuid.New()
	wp := weak.Make(c)
	handles.Store(h, func() Object {
		p := wp.Value()
		if p == nil {
			return nil
		}
		return any(p).(Object)
	})
	runtime.AddCleanup(c, func(h uuid.UUID) {
		handles.Delete(h)
	}, h)
	return h
}

// ObjectByHandle returns the live object with the given handle,
// or nil if there is none.
func ObjectByHandle(h uuid.UUID) Object {
	v, ok := handles.Load(h)
	if !ok {
		return nil
	}
	return v.(func() Object)()
}
