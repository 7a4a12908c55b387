// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - true if the key is present
func (m *Map[K, V]) Contains(key K) bool {
	return nil != m.search(key)
}

// Get - find a specific item
func (m *Map[K, V]) Get(key K) (V, bool) {
	if p := m.search(key); nil != p {
		return p.value, true
	}
	var zero V
	return zero, false
}

// GetMut - pointer to the value stored for a key, nil if not present
//
// the pointer may be used to update the value in place; it remains
// valid until the key is removed or the map is cleared
func (m *Map[K, V]) GetMut(key K) *V {
	if p := m.search(key); nil != p {
		return &p.value
	}
	return nil
}

func (m *Map[K, V]) search(key K) *node[K, V] {
	p := m.root
	for nil != p {
		switch c := m.compare(key, p.key); {
		case c < 0: // key < p.key
			p = p.left
		case c > 0: // key > p.key
			p = p.right
		default:
			return p
		}
	}
	return nil
}
