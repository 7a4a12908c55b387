// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avlmap/fault"
)

// a node with its nearest ancestors on the left and right, which
// bound the keys that may appear in its sub-tree
type bounded[K, V any] struct {
	p    *node[K, V]
	low  *node[K, V]
	high *node[K, V]
}

// Check - verify ordering, balance, cached heights and the node count
//
// returns nil for a consistent tree, otherwise an error that
// fault.IsErrInvalid recognises
func (m *Map[K, V]) Check() error {
	if nil == m.root {
		if 0 != m.count {
			return fmt.Errorf("empty tree with length: %d  %w", m.count, fault.ErrCountMismatch)
		}
		return nil
	}

	queue := make([]bounded[K, V], 1, max(m.count, 1))
	queue[0] = bounded[K, V]{p: m.root}
	for i := 0; i < len(queue); i += 1 {
		b := queue[i]
		p := b.p
		if nil != b.low && m.compare(b.low.key, p.key) >= 0 {
			return fmt.Errorf("key: %v not above: %v  %w", p.key, b.low.key, fault.ErrOrderViolation)
		}
		if nil != b.high && m.compare(p.key, b.high.key) >= 0 {
			return fmt.Errorf("key: %v not below: %v  %w", p.key, b.high.key, fault.ErrOrderViolation)
		}
		if nil != p.left {
			queue = append(queue, bounded[K, V]{p: p.left, low: b.low, high: p})
		}
		if nil != p.right {
			queue = append(queue, bounded[K, V]{p: p.right, low: p, high: b.high})
		}
	}

	if len(queue) != m.count {
		return fmt.Errorf("nodes: %d  length: %d  %w", len(queue), m.count, fault.ErrCountMismatch)
	}

	// children always follow their parent in the queue, so walking it
	// backwards checks every child height before the parent uses it
	for i := len(queue) - 1; i >= 0; i -= 1 {
		p := queue[i].p
		hl := p.left.safeHeight()
		hr := p.right.safeHeight()
		if expected := 1 + max(hl, hr); expected != p.height {
			return fmt.Errorf("key: %v  height: %d  expected: %d  %w", p.key, p.height, expected, fault.ErrHeightMismatch)
		}
		if hr-hl > 1 || hl-hr > 1 {
			return fmt.Errorf("key: %v  balance: %+d  %w", p.key, hr-hl, fault.ErrBalanceViolation)
		}
	}
	return nil
}
