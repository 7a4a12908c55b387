// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// rotate right, turning (root (pivot a b) c) into (pivot a (root b c))
// returns the new sub-tree root
func rotateRight[K, V any](root *node[K, V]) *node[K, V] {
	pivot := root.take(left)
	if nil == pivot {
		fault.Panicf("avl: rotate right at key: %v without a left child", root.key)
	}
	root.put(left, pivot.take(right))
	root.update()
	pivot.put(right, root)
	pivot.update()
	return pivot
}

// rotate left, turning (root a (pivot b c)) into (pivot (root a b) c)
// returns the new sub-tree root
func rotateLeft[K, V any](root *node[K, V]) *node[K, V] {
	pivot := root.take(right)
	if nil == pivot {
		fault.Panicf("avl: rotate left at key: %v without a right child", root.key)
	}
	root.put(right, pivot.take(left))
	root.update()
	pivot.put(left, root)
	pivot.update()
	return pivot
}

// restore the height and balance of a sub-tree whose children are
// already balanced and differ in height by at most two
// returns the possibly different sub-tree root
func balanceSubtree[K, V any](root *node[K, V]) *node[K, V] {
	root.update()

	switch b := root.balance(); b {
	case -1, 0, +1:
		return root

	case -2: // left heavy
		if root.left.balance() > 0 {
			// double LR rotation
			root.put(left, rotateLeft(root.take(left)))
		}
		// a left child balance of 0 only occurs after a removal
		// and needs the single LL rotation
		return rotateRight(root)

	case +2: // right heavy
		if root.right.balance() < 0 {
			// double RL rotation
			root.put(right, rotateRight(root.take(right)))
		}
		return rotateLeft(root)

	default:
		fault.Panicf("avl: balance: %d out of range at key: %v", b, root.key)
	}
	return root
}
