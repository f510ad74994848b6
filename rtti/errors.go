// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import "cogentcore.org/rtti/base/errors"

var (
	// ErrSignatureMismatch is returned when the boxed parameters of a
	// call have another signature than the function.
	ErrSignatureMismatch = errors.New("signature mismatch")

	// ErrUnknownClass is returned for a class name that is not registered.
	ErrUnknownClass = errors.New("unknown class")

	// ErrUnknownMember is returned for a member name that a class does not have.
	ErrUnknownMember = errors.New("unknown member")
)
