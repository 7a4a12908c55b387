// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// All - range over key/value pairs in ascending key order
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.IterInOrder()
		for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// AllMut - range over keys and pointers to their values in ascending key order
func (m *Map[K, V]) AllMut() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		it := m.IterMut()
		for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys - range over keys in ascending order
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		it := m.IterInOrder()
		for k, _, ok := it.Next(); ok; k, _, ok = it.Next() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values - range over values in ascending key order
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		it := m.IterInOrder()
		for _, v, ok := it.Next(); ok; _, v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// BreadthFirst - range over key/value pairs in level order
func (m *Map[K, V]) BreadthFirst() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.IterBreadthFirst()
		for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// All - range over the remaining owned pairs
//
// stopping early leaves the rest in the iterator
func (it *DrainIterator[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
			if !yield(k, v) {
				return
			}
		}
	}
}
