// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"

	"github.com/bitmark-inc/avlmap/avl"
)

func Example() {
	m := avl.New[int, string]()
	m.Insert(10, "test")
	m.Insert(-25, "test2")
	m.Insert(4, "hello")
	m.Insert(15, "is it working")

	if old, replaced := m.Insert(15, "123"); replaced {
		fmt.Println("replaced:", old)
	}
	if v := m.GetMut(4); nil != v {
		*v += ", world"
	}
	if v, ok := m.Remove(-25); ok {
		fmt.Println("removed:", v)
	}

	for k, v := range m.All() {
		fmt.Printf("%d: %q\n", k, v)
	}
	// Output:
	// replaced: is it working
	// removed: test2
	// 4: "hello, world"
	// 10: "test"
	// 15: "123"
}

func ExampleMap_IterBreadthFirst() {
	m := avl.New[string, int]()
	for i, k := range []string{"a", "b", "c", "d", "e"} {
		m.Insert(k, i)
	}

	it := m.IterBreadthFirst()
	for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
		fmt.Print(k, "=", v, " ")
	}
	fmt.Println()
	// Output:
	// b=1 a=0 d=3 c=2 e=4
}

func ExampleMap_Drain() {
	m := avl.New[int, string]()
	m.Insert(2, "two")
	m.Insert(1, "one")

	it := m.Drain()
	fmt.Println("left in map:", m.Len())
	for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
		fmt.Println(k, v)
	}
	// Output:
	// left in map: 0
	// 1 one
	// 2 two
}
