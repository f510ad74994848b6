// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	var kl List[string, int]
	assert.Equal(t, 0, kl.Len())
	require.NoError(t, kl.Add("a", 1))
	require.NoError(t, kl.Add("b", 2))
	assert.Error(t, kl.Add("a", 3))
	kl.Set("c", 3)
	kl.Set("a", 10)

	assert.Equal(t, []string{"a", "b", "c"}, kl.Keys)
	assert.Equal(t, []int{10, 2, 3}, kl.Values)
	assert.Equal(t, 10, kl.At("a"))
	_, ok := kl.AtTry("z")
	assert.False(t, ok)
	assert.Equal(t, 1, kl.indexByKey("b"))
	assert.Equal(t, -1, kl.indexByKey("z"))

	assert.True(t, kl.DeleteByKey("b"))
	assert.False(t, kl.DeleteByKey("b"))
	assert.Equal(t, 1, kl.indexByKey("c"))
	assert.Equal(t, "{a: 10, c: 3, }", kl.String())
}

func TestClone(t *testing.T) {
	kl := New[string, int]()
	kl.Set("x", 1)
	cl := kl.Clone()
	cl.Set("y", 2)
	cl.Set("x", 5)
	assert.Equal(t, 1, kl.Len())
	assert.Equal(t, 1, kl.At("x"))
	assert.Equal(t, 5, cl.At("x"))

	var keys []string
	for k := range cl.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"x", "y"}, keys)

	var nl *List[string, int]
	assert.Equal(t, 0, nl.Len())
	assert.Equal(t, 0, nl.Clone().Len())
}
