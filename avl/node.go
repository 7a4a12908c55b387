// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// which child link of a node
type direction int

const (
	left direction = iota
	right
)

// a node in the tree
type node[K, V any] struct {
	left   *node[K, V] // left sub-tree
	right  *node[K, V] // right sub-tree
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // 1 for a leaf
}

// allocate a new leaf node
func newNode[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{
		key:    key,
		value:  value,
		height: 1,
	}
}

// height of a possibly empty sub-tree
func (p *node[K, V]) safeHeight() int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute the cached height from the children
func (p *node[K, V]) update() {
	p.height = 1 + max(p.left.safeHeight(), p.right.safeHeight())
}

// balance factor: height(right) - height(left)
func (p *node[K, V]) balance() int {
	if nil == p {
		return 0
	}
	return p.right.safeHeight() - p.left.safeHeight()
}

// detach a child sub-tree leaving the link empty
func (p *node[K, V]) take(d direction) *node[K, V] {
	var child *node[K, V]
	if left == d {
		child, p.left = p.left, nil
	} else {
		child, p.right = p.right, nil
	}
	return child
}

// attach a child sub-tree
func (p *node[K, V]) put(d direction, child *node[K, V]) {
	if left == d {
		p.left = child
	} else {
		p.right = child
	}
}
