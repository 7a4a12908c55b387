// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avlmap/fault"
)

// Map - type to hold the root node of a tree
type Map[K, V any] struct {
	root     *node[K, V]
	count    int
	compare  func(K, K) int
	modified uint64 // changes on every structural mutation
}

// New - create an initially empty map ordered by the natural order of K
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{
		compare: cmp.Compare[K],
	}
}

// NewFunc - create an initially empty map ordered by a comparison
// function returning a negative number, zero or a positive number when
// a is less than, equal to or greater than b.  The function must be a
// total order; keys comparing equal are the same key.
func NewFunc[K, V any](compare func(a K, b K) int) *Map[K, V] {
	if nil == compare {
		fault.Panic("avl: nil comparison function")
	}
	return &Map[K, V]{
		compare: compare,
	}
}

// IsEmpty - true if map contains no data
func (m *Map[K, V]) IsEmpty() bool {
	return 0 == m.count
}

// Len - number of nodes currently in the map
func (m *Map[K, V]) Len() int {
	return m.count
}

// Height - height of the tree, zero when empty
func (m *Map[K, V]) Height() int {
	return m.root.safeHeight()
}

// Clear - remove all nodes
//
// the tree is dismantled iteratively, unlinking every node so that a
// value pointer retained by the caller does not keep the rest of the
// tree reachable
func (m *Map[K, V]) Clear() {
	if nil != m.root {
		stack := make([]*node[K, V], 0, m.root.height+1)
		stack = append(stack, m.root)
		m.root = nil
		for n := len(stack); n > 0; n = len(stack) {
			p := stack[n-1]
			stack = stack[:n-1]
			if l := p.take(left); nil != l {
				stack = append(stack, l)
			}
			if r := p.take(right); nil != r {
				stack = append(stack, r)
			}
		}
	}
	m.count = 0
	m.modified += 1
}

// panic if an iterator created at modification state "seen" is used
// after the tree structure changed
func (m *Map[K, V]) verify(seen uint64) {
	if seen != m.modified {
		fault.Panic("avl: map modified during iteration")
	}
}
