// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// one level of a descent: a detached node and the link that was followed
type step[K, V any] struct {
	parent *node[K, V]
	side   direction
}

// Insert - insert a new node into the map or replace the value of an
// existing node
//
// returns the previous value and true if the key was already present,
// otherwise the zero value and false
func (m *Map[K, V]) Insert(key K, value V) (V, bool) {
	path := make([]step[K, V], 0, m.Height())

	p := m.root
	m.root = nil
	for nil != p {
		c := m.compare(key, p.key)
		if 0 == c {
			// same shape, no heights change
			previous := p.value
			p.value = value
			m.root = reattach(path, p, false)
			return previous, true
		}
		side := right
		if c < 0 {
			side = left
		}
		path = append(path, step[K, V]{parent: p, side: side})
		p = p.take(side)
	}

	m.root = reattach(path, newNode(key, value), true)
	m.count += 1
	m.modified += 1

	var zero V
	return zero, false
}

// unwind a descent path, putting each child back into its parent's
// link and optionally rebalancing the parent before it is attached
// one level up
//
// returns the root of the rebuilt tree
func reattach[K, V any](path []step[K, V], child *node[K, V], rebalance bool) *node[K, V] {
	for i := len(path) - 1; i >= 0; i -= 1 {
		parent := path[i].parent
		parent.put(path[i].side, child)
		if rebalance {
			parent = balanceSubtree(parent)
		}
		child = parent
	}
	return child
}
