// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"
	"log/slog"

	"cogentcore.org/rtti/base/logx"
	"github.com/charmbracelet/log"
)

// setLogger makes a charm logger writing to w the default slog
// handler, so that the diagnostics of the rtti packages show up.
func setLogger(w io.Writer, verbose bool) {
	if verbose {
		logx.UserLevel = slog.LevelDebug
	}
	l := log.NewWithOptions(w, log.Options{
		Prefix: "rtti",
		Level:  log.Level(logx.UserLevel),
	})
	logx.SetDefaultLogger(l)
}
