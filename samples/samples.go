// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package samples declares a small module of reflected light classes.
// Between them they use every kind of attribute storage and access,
// enumeration and bit flag attributes, methods with and without
// results, several constructors, signals and slots. The rtti command
// and the tests use them as a reference.
package samples

//go:generate core generate

import (
	"cogentcore.org/rtti/rtti"
)

// Module is the module of the sample classes.
var Module = rtti.RegisterModule("samples", "Cogent Core", "BSD-3-Clause", "Sample light classes").SetVersion("0.1.0")
