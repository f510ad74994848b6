// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package.
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// These are re-exported from the standard library errors
// package so that this package can be used in its place.
var (
	New = errors.New
	Is  = errors.Is
)

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	return errors.Log(MyFunc(v))
//	// or
//	if errors.Log(MyFunc(v)) != nil {
//		// do something
//	}
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// CallerInfo returns string information about the caller
// of the function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name() + " " + file + ":" + strconv.Itoa(line)
}

// Must1 panics if the given error is non-nil, and otherwise returns the given value.
// It is for initialization that cannot fail in a correct program.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
