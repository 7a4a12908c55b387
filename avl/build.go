// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"iter"
)

// Collect - build a map from a sequence of pairs, later pairs
// overwrite earlier ones with the same key
func Collect[K cmp.Ordered, V any](seq iter.Seq2[K, V]) *Map[K, V] {
	m := New[K, V]()
	m.Extend(seq)
	return m
}

// CollectFunc - as Collect but ordered by a comparison function
func CollectFunc[K, V any](compare func(a K, b K) int, seq iter.Seq2[K, V]) *Map[K, V] {
	m := NewFunc[K, V](compare)
	m.Extend(seq)
	return m
}

// Extend - insert every pair of a sequence
//
// returns the number of keys that were not already present
func (m *Map[K, V]) Extend(seq iter.Seq2[K, V]) int {
	added := 0
	for k, v := range seq {
		if _, replaced := m.Insert(k, v); !replaced {
			added += 1
		}
	}
	return added
}
