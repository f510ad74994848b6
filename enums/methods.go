// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"cogentcore.org/rtti/base/errors"
	"gopkg.in/yaml.v3"
)

// This file contains implementations of enumgen methods.

// EnumConstraint is the generic type constraint that all enums satisfy.
type EnumConstraint interface {
	Enum
	comparable
}

// BitFlagConstraint is the generic type constraint that all bit flags satisfy.
type BitFlagConstraint interface {
	BitFlag
	comparable
}

// String returns the string representation of the given
// enum value with the given map.
func String[T EnumConstraint](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(i.Int64(), 10)
}

// BitFlagString returns the string representation of the given bit flag value
// with the given values available.
func BitFlagString[T BitFlagConstraint](i T, values []T) string {
	str := ""
	for _, ie := range values {
		if i.HasFlag(ie) {
			ies := ie.BitIndexString()
			if str == "" {
				str = ies
			} else {
				str += "|" + ies
			}
		}
	}
	return str
}

// SetString sets the given enum value from its string representation, the map from
// enum names to values, and the name of the enum type, which is used for the error message.
func SetString[T EnumConstraint](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringOr sets the given bit flag value from its string representation while
// preserving any bit flags already set.
func SetStringOr[T BitFlagConstraint, S BitFlagSetter](i S, s string, valueMap map[string]T, typeName string) error {
	flags := strings.Split(s, "|")
	for _, flag := range flags {
		if val, ok := valueMap[flag]; ok {
			i.SetFlag(true, val)
		} else if flag == "" {
			continue
		} else {
			return fmt.Errorf("%q is not a valid value for type %s", flag, typeName)
		}
	}
	return nil
}

// Desc returns the description of the given enum value.
func Desc[T EnumConstraint](i T, descMap map[T]string) string {
	if str, ok := descMap[i]; ok {
		return str
	}
	return i.String()
}

// Values returns the given values as [Enum]s.
func Values[T EnumConstraint](values []T) []Enum {
	res := make([]Enum, len(values))
	for i, val := range values {
		res[i] = val
	}
	return res
}

// HasFlag returns whether this bit flag value has the given bit flag set.
func HasFlag(i *int64, f BitFlag) bool {
	return atomic.LoadInt64(i)&(1<<uint32(f.Int64())) != 0
}

// SetFlag sets the value of the given flags in these flags to the given value.
func SetFlag(i *int64, on bool, f ...BitFlag) {
	var mask int64
	for _, v := range f {
		mask |= 1 << v.Int64()
	}
	in := atomic.LoadInt64(i)
	if on {
		in |= mask
		atomic.StoreInt64(i, in)
	} else {
		in &^= mask
		atomic.StoreInt64(i, in)
	}
}

// UnmarshalText loads the enum from the given text.
// It logs any error instead of returning it to prevent
// one modified enum from tanking an entire object loading operation.
func UnmarshalText[T EnumSetter](i T, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		errors.Log(fmt.Errorf("error unmarshaling %s: %w", typeName, err))
	}
	return nil
}

// UnmarshalYAML loads the enum from the given yaml node.
// It logs any error instead of returning it to prevent
// one modified enum from tanking an entire object loading operation.
func UnmarshalYAML[T EnumSetter](i T, value *yaml.Node, typeName string) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if err := i.SetString(s); err != nil {
		errors.Log(fmt.Errorf("error unmarshaling %s: %w", typeName, err))
	}
	return nil
}
