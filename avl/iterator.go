// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// how far the in-order walk has progressed through a node
type visit int

const (
	unvisited   visit = iota // left sub-tree not yet entered
	leftDone                 // left sub-tree finished
	nodeYielded              // key and value returned
	rightDone                // right sub-tree finished
)

type visitFrame[K, V any] struct {
	p     *node[K, V]
	state visit
}

// InOrderIterator - ascending key order over a borrowed map
type InOrderIterator[K, V any] struct {
	m     *Map[K, V]
	seen  uint64
	stack []visitFrame[K, V]
}

// Iter - iterate key/value pairs in ascending key order
func (m *Map[K, V]) Iter() *InOrderIterator[K, V] {
	return m.IterInOrder()
}

// IterInOrder - iterate key/value pairs in ascending key order
func (m *Map[K, V]) IterInOrder() *InOrderIterator[K, V] {
	it := &InOrderIterator[K, V]{
		m:    m,
		seen: m.modified,
	}
	if nil != m.root {
		it.stack = make([]visitFrame[K, V], 1, m.root.height+1)
		it.stack[0] = visitFrame[K, V]{p: m.root}
	}
	return it
}

// Next - the next pair, ok is false once the map is exhausted
func (it *InOrderIterator[K, V]) Next() (key K, value V, ok bool) {
	if 0 != len(it.stack) {
		it.m.verify(it.seen)
	}
	for n := len(it.stack); n > 0; n = len(it.stack) {
		top := &it.stack[n-1]
		p := top.p
		switch top.state {
		case unvisited:
			top.state = leftDone
			if nil != p.left {
				it.stack = append(it.stack, visitFrame[K, V]{p: p.left})
			}
		case leftDone:
			top.state = nodeYielded
			return p.key, p.value, true
		case nodeYielded:
			top.state = rightDone
			if nil != p.right {
				it.stack = append(it.stack, visitFrame[K, V]{p: p.right})
			}
		case rightDone:
			it.stack[n-1] = visitFrame[K, V]{}
			it.stack = it.stack[:n-1]
		}
	}
	return
}

// a node opened by the mutable walk: each part is handed out once
// and then cleared from the frame
type mutFrame[K, V any] struct {
	left  *node[K, V]
	entry *node[K, V]
	right *node[K, V]
}

func openFrame[K, V any](p *node[K, V]) mutFrame[K, V] {
	return mutFrame[K, V]{
		left:  p.left,
		entry: p,
		right: p.right,
	}
}

// MutIterator - ascending key order with values updatable in place
//
// the iterator must have exclusive use of the map for its whole
// lifetime: no other reads or writes may be interleaved
type MutIterator[K, V any] struct {
	m     *Map[K, V]
	seen  uint64
	stack []mutFrame[K, V]
}

// IterMut - iterate keys with pointers to their values in ascending key order
func (m *Map[K, V]) IterMut() *MutIterator[K, V] {
	it := &MutIterator[K, V]{
		m:    m,
		seen: m.modified,
	}
	if nil != m.root {
		it.stack = make([]mutFrame[K, V], 1, m.root.height+1)
		it.stack[0] = openFrame(m.root)
	}
	return it
}

// Next - the next key and a pointer to its value, ok is false once the
// map is exhausted
func (it *MutIterator[K, V]) Next() (key K, value *V, ok bool) {
	if 0 != len(it.stack) {
		it.m.verify(it.seen)
	}
	for n := len(it.stack); n > 0; n = len(it.stack) {
		top := &it.stack[n-1]

		if l := top.left; nil != l {
			top.left = nil
			it.stack = append(it.stack, openFrame(l))
			continue
		}

		if e := top.entry; nil != e {
			top.entry = nil
			return e.key, &e.value, true
		}

		if r := top.right; nil != r {
			top.right = nil
			it.stack = append(it.stack, openFrame(r))
			continue
		}

		it.stack = it.stack[:n-1]
	}
	return
}

// BreadthFirstIterator - level order, left to right within a level
type BreadthFirstIterator[K, V any] struct {
	m     *Map[K, V]
	seen  uint64
	queue []*node[K, V]
	head  int
}

// IterBreadthFirst - iterate key/value pairs a level at a time starting at the root
func (m *Map[K, V]) IterBreadthFirst() *BreadthFirstIterator[K, V] {
	it := &BreadthFirstIterator[K, V]{
		m:    m,
		seen: m.modified,
	}
	if nil != m.root {
		it.queue = make([]*node[K, V], 1, m.count)
		it.queue[0] = m.root
	}
	return it
}

// Next - the next pair, ok is false once the map is exhausted
func (it *BreadthFirstIterator[K, V]) Next() (key K, value V, ok bool) {
	if it.head == len(it.queue) {
		return
	}
	it.m.verify(it.seen)

	p := it.queue[it.head]
	it.queue[it.head] = nil
	it.head += 1

	if nil != p.left {
		it.queue = append(it.queue, p.left)
	}
	if nil != p.right {
		it.queue = append(it.queue, p.right)
	}
	return p.key, p.value, true
}

// DrainIterator - consumes the nodes of a map in ascending key order
type DrainIterator[K, V any] struct {
	stack     []*node[K, V]
	remaining int
}

// Drain - take every node out of the map
//
// the map is empty as soon as Drain returns and may be reused; the
// iterator owns the nodes and unlinks each one as it is returned
func (m *Map[K, V]) Drain() *DrainIterator[K, V] {
	it := &DrainIterator[K, V]{
		remaining: m.count,
	}
	if nil != m.root {
		it.stack = make([]*node[K, V], 1, m.root.height+1)
		it.stack[0] = m.root
	}
	m.root = nil
	m.count = 0
	m.modified += 1
	return it
}

// Len - number of pairs not yet returned
func (it *DrainIterator[K, V]) Len() int {
	return it.remaining
}

// Next - the next owned pair, ok is false once all nodes are consumed
func (it *DrainIterator[K, V]) Next() (key K, value V, ok bool) {
	for n := len(it.stack); n > 0; n = len(it.stack) {
		top := it.stack[n-1]

		if l := top.take(left); nil != l {
			it.stack = append(it.stack, l)
			continue
		}

		// no left sub-tree: this is the smallest remaining key
		if r := top.take(right); nil != r {
			it.stack[n-1] = r
		} else {
			it.stack[n-1] = nil
			it.stack = it.stack[:n-1]
		}
		it.remaining -= 1
		return top.key, top.value, true
	}
	return
}
