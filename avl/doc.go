// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an ordered map held in an AVL balanced tree
//
// Note: an individual map is not thread safe, so either access only
//       in a single go routine or use a mutex to restrict access.
//       Read-only iterators may run alongside other reads, but any
//       insert of a new key, remove or clear invalidates them.
//
// Every subtree has exactly one owner: either the map root or a
// child link of its parent.  Insert and Remove detach the nodes along
// the search path, rebuild the path bottom-up and rebalance each
// ancestor as it is reattached, so no operation or iterator recurses
// and tree depth never affects stack usage.
//
// Nodes are never copied: removing a node with two children moves the
// in-order successor node into its place, so a value pointer obtained
// from GetMut stays valid until its own key is removed.
package avl
