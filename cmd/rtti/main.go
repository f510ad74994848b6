// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rtti lists, describes and exercises the reflected classes
// linked into it.
package main

import (
	"os"

	"cogentcore.org/rtti/cmd/rtti/cmd"
	"cogentcore.org/rtti/rtti"
	_ "cogentcore.org/rtti/samples"
)

func main() {
	err := cmd.Root().Execute()
	rtti.Shutdown()
	if err != nil {
		os.Exit(1)
	}
}
