// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetDefaultLogger(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)
	defer func(l slog.Level) { UserLevel = l }(UserLevel)

	var b bytes.Buffer
	UserLevel = slog.LevelWarn
	SetDefaultLogger(slog.NewTextHandler(&b, &slog.HandlerOptions{Level: Level}))
	assert.False(t, Debugging())
	slog.Info("hidden")
	slog.Warn("shown")
	assert.NotContains(t, b.String(), "hidden")
	assert.Contains(t, b.String(), "shown")

	UserLevel = slog.LevelDebug
	assert.True(t, Debugging())
	SetDefaultLogger(slog.NewTextHandler(&b, &slog.HandlerOptions{Level: Level}))
	slog.Debug("details")
	assert.Contains(t, b.String(), "details")
}
