// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default logging level used by the
// reflection system and its tools. The default level is selected
// by build tags: "debug" enables diagnostic messages such as
// signature mismatches, and "release" only reports errors.
package logx

import (
	"log/slog"
)

// UserLevel is the verbosity [slog.Level] that the user has selected.
// It is set by [SetDefaultLogger] and by the command line tools.
var UserLevel = defaultUserLevel

// Level is the [slog.LevelVar] that controls the default logger
// installed by [SetDefaultLogger].
var Level = new(slog.LevelVar)

// SetDefaultLogger sets the default slog handler to the given one,
// with its level controlled by [Level], which is set to [UserLevel].
// If h is nil, a text handler writing to standard error is used.
func SetDefaultLogger(h slog.Handler) {
	Level.Set(UserLevel)
	if h == nil {
		h = slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: Level})
	}
	slog.SetDefault(slog.New(h))
}

// Debugging returns whether diagnostic messages are enabled,
// which is the case when [UserLevel] is [slog.LevelDebug] or lower.
func Debugging() bool {
	return UserLevel <= slog.LevelDebug
}
