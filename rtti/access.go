// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

// Access is the write policy of a [Var], given as its type argument.
// The policy types carry no data, so the choice costs nothing at
// run time beyond one constant method call.
type Access interface {
	// Writable returns whether Set changes the value.
	Writable() bool
}

// ReadWrite is the [Access] policy of variables that can be set.
type ReadWrite struct{}

func (ReadWrite) Writable() bool { return true }

// ReadOnly is the [Access] policy of variables whose Set is a no-op.
type ReadOnly struct{}

func (ReadOnly) Writable() bool { return false }

// accessKind returns the kind of the access policy A.
func accessKind[A Access]() AccessKind {
	var a A
	if a.Writable() {
		return AccessReadWrite
	}
	return AccessReadOnly
}
