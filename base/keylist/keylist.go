// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package keylist implements an ordered list (slice) of items,
with a map from a key (e.g., names) to indexes,
to support fast lookup by name.
It is used for the member collections of class descriptors,
where enumeration must follow declaration order while lookup
is by member name.
*/
package keylist

import (
	"fmt"
	"iter"
	"slices"
)

// List implements an ordered list (slice) of Values,
// with a map from a key (e.g., names) to indexes,
// to support fast lookup by name.
// The zero value is an empty list ready to use.
type List[K comparable, V any] struct {
	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in same order as [List.Values]
	Keys []K

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

// New returns a new [List].  The zero value
// is usable without initialization, so this is
// just a simple standard convenience method.
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

func (kl *List[K, V]) makeIndexes() {
	kl.indexes = make(map[K]int, len(kl.Keys))
	for i, k := range kl.Keys {
		kl.indexes[k] = i
	}
}

// initIndexes ensures that the index map exists.
func (kl *List[K, V]) initIndexes() {
	if kl.indexes == nil {
		kl.makeIndexes()
	}
}

// Reset resets the list, removing any existing elements.
func (kl *List[K, V]) Reset() {
	kl.Values = nil
	kl.Keys = nil
	kl.indexes = nil
}

// Set sets given key to given value, adding to the end of the list
// if not already present, and otherwise replacing with this new value
// at the position of the existing one.
// This is the same semantics as a Go map.
// See [List.Add] for version that only adds and does not replace.
func (kl *List[K, V]) Set(key K, val V) {
	kl.initIndexes()
	if idx, ok := kl.indexes[key]; ok {
		kl.Values[idx] = val
		return
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
}

// Add adds an item to the list with given key.
// An error is returned if the key is already on the list.
// See [List.Set] for a method that automatically replaces.
func (kl *List[K, V]) Add(key K, val V) error {
	kl.initIndexes()
	if _, ok := kl.indexes[key]; ok {
		return fmt.Errorf("keylist.Add: key %v is already on the list", key)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
	return nil
}

// At returns the value corresponding to the given key,
// with a zero value returned for a missing key. See [List.AtTry]
// for one that returns a bool for missing keys.
func (kl *List[K, V]) At(key K) V {
	v, _ := kl.AtTry(key)
	return v
}

// AtTry returns the value corresponding to the given key,
// with false returned for a missing key, in case the zero value
// is not diagnostic.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	if kl == nil {
		var zv V
		return zv, false
	}
	kl.initIndexes()
	idx, ok := kl.indexes[key]
	if ok {
		return kl.Values[idx], true
	}
	var zv V
	return zv, false
}

// indexByKey returns the index of the given key, with a -1 for missing key.
func (kl *List[K, V]) indexByKey(key K) int {
	if kl == nil {
		return -1
	}
	kl.initIndexes()
	idx, ok := kl.indexes[key]
	if !ok {
		return -1
	}
	return idx
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// DeleteByKey deletes the item with the given key,
// returning false if it does not find it.
// This is relatively slow because it needs to regenerate the
// index map.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	idx := kl.indexByKey(key)
	if idx < 0 {
		return false
	}
	kl.Keys = slices.Delete(kl.Keys, idx, idx+1)
	kl.Values = slices.Delete(kl.Values, idx, idx+1)
	kl.makeIndexes()
	return true
}

// Clone returns a copy of the list that shares no slices with it.
func (kl *List[K, V]) Clone() *List[K, V] {
	if kl == nil {
		return New[K, V]()
	}
	return &List[K, V]{Keys: slices.Clone(kl.Keys), Values: slices.Clone(kl.Values)}
}

// All returns an iterator over the keys and values in list order.
func (kl *List[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if kl == nil {
			return
		}
		for i, v := range kl.Values {
			if !yield(kl.Keys[i], v) {
				return
			}
		}
	}
}

// String returns a string representation of the list.
func (kl *List[K, V]) String() string {
	sv := "{"
	for i, v := range kl.Values {
		sv += fmt.Sprintf("%v", kl.Keys[i]) + ": " + fmt.Sprintf("%v", v) + ", "
	}
	sv += "}"
	return sv
}
