// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type lightType uint8

func TestTableFirstMatch(t *testing.T) {
	tb := NewTable[lightType]().
		Add("Point", 0, "Omni light").
		Add("Spot", 1, "Cone light").
		Add("Cone", 1, "Alias of Spot").
		Add("Spot", 2, "Shadowed name")

	name, ok := tb.Name(1)
	assert.True(t, ok)
	assert.Equal(t, "Spot", name)

	v, ok := tb.Value("Spot")
	assert.True(t, ok)
	assert.Equal(t, lightType(1), v)

	v, ok = tb.Value("Cone")
	assert.True(t, ok)
	assert.Equal(t, lightType(1), v)

	name, ok = tb.Name(2)
	assert.True(t, ok)
	assert.Equal(t, "Spot", name)

	_, ok = tb.Name(7)
	assert.False(t, ok)
	_, ok = tb.Value("Area")
	assert.False(t, ok)

	assert.Equal(t, "Cone light", tb.Desc("Spot"))
	assert.Equal(t, 4, tb.Len())
	assert.Equal(t, []string{"Point", "Spot", "Cone", "Spot"}, tb.Names())
}

func TestTableBase(t *testing.T) {
	base := NewTable[int32]().Add("None", 0, "").Add("One", 1, "")
	ext := NewTable(base).Add("Two", 2, "").Add("Uno", 1, "")
	assert.Equal(t, 2, base.Len())
	assert.Equal(t, 4, ext.Len())
	name, _ := ext.Name(1)
	assert.Equal(t, "One", name)

	entries := ext.Entries()
	entries[0].Name = "changed"
	name, _ = ext.Name(0)
	assert.Equal(t, "None", name)
}

func TestTableBaseLate(t *testing.T) {
	base := NewTable[int32]().Add("None", 0, "")
	ext := NewTable(base, nil).Add("Two", 2, "")
	base.Add("One", 1, "Added after the extension")

	name, ok := ext.Name(1)
	assert.True(t, ok)
	assert.Equal(t, "One", name)
	assert.Equal(t, "Added after the extension", ext.Desc("One"))
	assert.Equal(t, []string{"None", "One", "Two"}, ext.Names())
	assert.Equal(t, 3, ext.Len())

	deep := NewTable(ext).Add("Three", 3, "")
	base.Add("Uno", 1, "")
	v, ok := deep.Value("Uno")
	assert.True(t, ok)
	assert.Equal(t, int32(1), v)
	assert.Equal(t, []string{"None", "One", "Uno", "Two", "Three"}, deep.Names())

	var first []string
	for e := range deep.All() {
		first = append(first, e.Name)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"None", "One"}, first)
}
