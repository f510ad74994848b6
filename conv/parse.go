// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conv

import (
	"math"
	"strconv"
	"strings"

	"cogentcore.org/rtti/base/errors"
)

// These are the total string and float conversions that all
// converters share. None of them fail: anything that does not
// parse yields zero.

// ParseInt parses s as a signed integer. Base prefixes (0x, 0o, 0b)
// and underscores are accepted, values out of range saturate, and
// strings that only parse as unsigned integers or floats are
// converted from those.
func ParseInt(s string) int64 {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 0, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return i
	}
	if f, ok := parseFloat(s, 64); ok {
		return FloatToInt64(f)
	}
	return 0
}

// ParseUint parses s as an unsigned integer. Negative integers
// wrap around as in a two's complement cast.
func ParseUint(s string) uint64 {
	s = strings.TrimSpace(s)
	if u, err := strconv.ParseUint(s, 0, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return u
	}
	if i, err := strconv.ParseInt(s, 0, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return uint64(i)
	}
	if f, ok := parseFloat(s, 64); ok {
		return FloatToUint64(f)
	}
	return 0
}

// ParseFloat parses s as a float of the given bit size (32 or 64).
func ParseFloat(s string, bits int) float64 {
	f, _ := parseFloat(strings.TrimSpace(s), bits)
	return f
}

func parseFloat(s string, bits int) (float64, bool) {
	f, err := strconv.ParseFloat(s, bits)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return f, true
	}
	return 0, false
}

// ParseBool parses s as a bool. All of the [strconv.ParseBool] forms
// are accepted, and any other string is true if it is a nonzero number.
func ParseBool(s string) bool {
	s = strings.TrimSpace(s)
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if f, ok := parseFloat(s, 64); ok {
		return f != 0
	}
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return i != 0
	}
	return false
}

// FormatBool returns "true" or "false".
func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}

// FormatFloat formats f with the shortest representation
// that parses back to the same float of the given bit size.
func FormatFloat(f float64, bits int) string {
	return strconv.FormatFloat(f, 'g', -1, bits)
}

// FloatToInt64 converts f to an int64: NaN is zero, values
// beyond the int64 range saturate, and the rest truncate
// toward zero.
func FloatToInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

// FloatToUint64 converts f to a uint64: NaN is zero, values
// beyond the uint64 range saturate, and negative values go
// through [FloatToInt64] and wrap.
func FloatToUint64(f float64) uint64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxUint64:
		return math.MaxUint64
	case f < 0:
		return uint64(FloatToInt64(f))
	}
	return uint64(f)
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
