// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("boom")
	assert.Equal(t, err, Log(err))
	assert.True(t, Is(Log(err), err))
}

func TestMust(t *testing.T) {
	assert.Equal(t, 5, Must1(5, nil))
	assert.Panics(t, func() { Must1(5, New("boom")) })
}

func TestCallerInfo(t *testing.T) {
	ci := func() string { return CallerInfo() }()
	assert.True(t, strings.Contains(ci, "errors_test.go"), ci)
}
