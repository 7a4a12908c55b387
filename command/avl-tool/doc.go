// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-tool - exercise the avl map from the command line
//
// monotonic and fuzz stress the balancing code and verify the tree
// after every stage, load builds a map from a LevelDB key range and
// lists it in key or breadth-first order.
package main
