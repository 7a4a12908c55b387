// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

func runMonotonic(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	return monotonic(m.w, count)
}

// three ascending passes, the later two only overwrite, then one
// descending pass into the cleared map
func monotonic(w io.Writer, count int) error {
	tree := avl.New[int, int]()

	for pass := 0; pass < 3; pass += 1 {
		for i := 0; i < count; i += 1 {
			_, replaced := tree.Insert(i, pass)
			if replaced != (pass > 0) {
				return fmt.Errorf("pass: %d  key: %d  replaced: %t", pass, i, replaced)
			}
		}
	}
	if err := verifyMonotonic(w, "ascending", tree, count); nil != err {
		return err
	}

	tree.Clear()
	for i := count - 1; i >= 0; i -= 1 {
		tree.Insert(i, i)
	}
	return verifyMonotonic(w, "descending", tree, count)
}

func verifyMonotonic(w io.Writer, title string, tree *avl.Map[int, int], count int) error {
	if err := tree.Check(); nil != err {
		return fmt.Errorf("%s: %w", title, err)
	}
	if tree.Len() != count {
		return fmt.Errorf("%s: length: %d  expected: %d: %w", title, tree.Len(), count, fault.ErrCountMismatch)
	}
	fmt.Fprintf(w, "%s: count: %d  height: %d\n", title, tree.Len(), tree.Height())
	depth := tree.Print(w, false)
	if depth != tree.Height() {
		return fmt.Errorf("%s: depth: %d  height: %d: %w", title, depth, tree.Height(), fault.ErrHeightMismatch)
	}
	return nil
}
