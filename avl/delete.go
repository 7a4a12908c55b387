// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific item from the map
//
// returns the removed value and true, or the zero value and false if
// the key was not present
func (m *Map[K, V]) Remove(key K) (V, bool) {
	path := make([]step[K, V], 0, m.Height())

	p := m.root
	m.root = nil
	for nil != p {
		c := m.compare(key, p.key)
		if 0 == c {
			break
		}
		side := right
		if c < 0 {
			side = left
		}
		path = append(path, step[K, V]{parent: p, side: side})
		p = p.take(side)
	}

	if nil == p { // key not in tree
		m.root = reattach(path, nil, false)
		var zero V
		return zero, false
	}

	m.count -= 1
	m.modified += 1

	// every ancestor lost height on one side, so retrace the whole
	// path just as insert does
	m.root = reattach(path, splice(p), true)

	return p.value, true
}

// unlink a node and build the sub-tree that replaces it
func splice[K, V any](q *node[K, V]) *node[K, V] {
	l := q.take(left)
	r := q.take(right)

	switch {
	case nil == l && nil == r: // leaf
		return nil

	case nil == r: // only a left sub-tree
		return l

	case nil == l: // only a right sub-tree
		return r

	case nil == r.left: // successor is the right child
		r.put(left, l)
		return balanceSubtree(r)
	}

	// successor is the leftmost node of the right sub-tree
	spine := make([]step[K, V], 0, r.height)
	parent := r
	successor := parent.take(left)
	for nil != successor.left {
		spine = append(spine, step[K, V]{parent: parent, side: left})
		parent = successor
		successor = parent.take(left)
	}
	parent.put(left, successor.take(right))

	successor.put(left, l)
	successor.put(right, reattach(spine, balanceSubtree(parent), true))
	return balanceSubtree(successor)
}
