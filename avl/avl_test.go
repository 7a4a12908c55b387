// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"sort"
	"testing"

	"github.com/bitmark-inc/avlmap/avl"
)

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"3630", "1427", "5843", "9549", "5433",
		"1274", "9034", "4724", "6179", "5072",
		"9272", "4030", "4205", "3363", "8582",
		"1720", "0506", "8382", "6774", "1042",

		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []string{
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271",
		"4786", "4145", "1066", "4366", "6716",
		"8579", "1012", "5935", "8278", "5761",
		"1871", "6257", "2649", "8643", "1239",
		"3416", "6146", "7127", "9517", "5788",
		"9025", "6880", "9064", "4849", "4503",
		"4898", "6815", "8811", "6745", "6907",
		"7503", "9869", "5491", "9940", "5955",
		"3764", "3254", "8048", "5339", "2406",
		"3137", "0251", "0486", "4202", "1844",
		"1741", "7154", "4286", "5160", "9472",
		"2998", "1935", "4758", "6478", "9572",
		"9254", "6848", "3126", "1848", "7692",
		"2791", "1504", "3469", "9701", "5077",
		"7928", "7978", "5383", "4319", "8197",
		"9227", "1166", "4216", "0866", "1791",
		"5395", "4310", "4452", "6140", "1494",
		"8859", "3394", "5507", "7295", "5408",
		"7789", "8237", "6990", "6882", "8243",
		"8894", "4352", "6727", "7019", "3126",
		"3102", "2948", "8242", "5027", "8892",
		"3492", "1323", "1101", "4526", "5177",
		"6175", "6664", "2742", "6094", "9877",
		"2534", "2105", "6588", "9982", "3696",
		"3480", "2244", "7487", "2844", "3199",
		"5829", "6952", "6915", "0905", "7615",
	}

	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

// dump the tree to the test output when a check fails
func failTree(t *testing.T, tree *avl.Map[string, string], err error) {
	t.Helper()
	depth := tree.Print(os.Stdout, true)
	t.Logf("depth: %d", depth)
	t.Fatalf("inconsistent tree: %s", err)
}

func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[string]struct{})

		tree := avl.New[string, string]()
		for _, key := range addList {
			tree.Insert(key, "data:"+key)
		}

		if err := tree.Check(); nil != err {
			failTree(t, tree, err)
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			dv, ok := tree.Remove(key)
			ev := "data:" + key
			if !ok || dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
		}

		if err := tree.Check(); nil != err {
			failTree(t, tree, err)
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			dv, ok := tree.Remove(key)
			ev := "data:" + key
			if !ok || dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
		}
		if !tree.IsEmpty() {
			failTree(t, tree, fmt.Errorf("remaining nodes: %d", tree.Len()))
		}
	}
}

// traverse the tree in order to check the iterators
func doTraverse(t *testing.T, addList []string) {

	unique := make(map[string]struct{})
	tree := avl.New[string, string]()
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(key, "data:"+key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	n := 0
	it := tree.Iter()
	for key, value, ok := it.Next(); ok; key, value, ok = it.Next() {
		if n >= len(expected) {
			t.Fatalf("extra item: %q", key)
		}
		if key != expected[n] {
			t.Fatalf("next item: actual: %q  expected: %q", key, expected[n])
		}
		if value != "data:"+key {
			t.Fatalf("next value: actual: %q  expected: %q", value, "data:"+key)
		}
		n += 1
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Len() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Len(), n)
	}

	// breadth first must see the same set
	seen := make(map[string]struct{})
	bf := tree.IterBreadthFirst()
	for key, _, ok := bf.Next(); ok; key, _, ok = bf.Next() {
		if _, ok := seen[key]; ok {
			t.Fatalf("breadth first repeated: %q", key)
		}
		seen[key] = struct{}{}
	}
	if len(seen) != len(expected) {
		t.Fatalf("breadth first count: actual: %d  expected: %d", len(seen), len(expected))
	}

	// delete remainder
	for _, key := range expected {
		tree.Remove(key)
	}

	if !tree.IsEmpty() {
		failTree(t, tree, fmt.Errorf("remaining nodes: %d", tree.Len()))
	}
	if 0 != tree.Len() {
		t.Fatalf("remaining count not zero: %d", tree.Len())
	}
}

// fetch each item by key, before and after deleting half of them
func doGet(t *testing.T, addList []string) {

	unique := make(map[string]struct{})
	tree := avl.New[string, string]()
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(key, "data:"+key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	if len(expected) != tree.Len() {
		t.Fatalf("expected: %d items, but tree count: %d", len(expected), tree.Len())
	}

	for index, key := range expected {
		value, ok := tree.Get(key)
		if !ok {
			t.Fatalf("[%d] key: %q not in tree", index, key)
		}
		if "data:"+key != value {
			t.Fatalf("[%d]: expected: %q but found: %q", index, "data:"+key, value)
		}
		if !tree.Contains(key) {
			t.Fatalf("[%d]: contains: %q returned false", index, key)
		}
	}

	// delete even elements
	for index, key := range expected {
		if 0 == index%2 {
			tree.Remove(key)
		}
	}

	if err := tree.Check(); nil != err {
		failTree(t, tree, err)
	}

	// check odd elements are all present and even ones are gone
	for index, key := range expected {
		_, ok := tree.Get(key)
		if 0 == index%2 && ok {
			t.Fatalf("[%d] key: %q still in tree", index, key)
		}
		if 1 == index%2 && !ok {
			t.Fatalf("[%d] key: %q not in tree", index, key)
		}
	}
	if (len(expected))/2 != tree.Len() {
		t.Fatalf("after delete: %d items, expected: %d", tree.Len(), len(expected)/2)
	}
}

func makeKey() string {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return fmt.Sprintf("%04d", n%10000)
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New[string, string]()
	d := make([]string, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key, "data:"+key)
	}

	if err := tree.Check(); nil != err {
		failTree(t, tree, err)
	}

	for _, key := range d {
		tree.Remove(key)
		if err := tree.Check(); nil != err {
			failTree(t, tree, err)
		}
	}

	// add back the test value, keys are four digits so this one is unique
	const testKey = "500"
	const testValue = "just testing data: test 500 value"
	tree.Insert(testKey, testValue)

	if err := tree.Check(); nil != err {
		failTree(t, tree, err)
	}

	doTraverse(t, d)
	doGet(t, d)

	// check that test value is searchable
	tv, ok := tree.Get(testKey)
	if !ok {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if testValue != tv {
		t.Fatalf("test value mismatch: actual: %q  expected: %q", tv, testValue)
	}

	// delete the test value, and check it return the correct
	// value and is no longer in the tree
	value, _ := tree.Remove(testKey)
	if value != testValue {
		t.Fatalf("delete value mismatch: actual: %q  expected: %q", value, testValue)
	}
	if tree.Contains(testKey) {
		t.Fatalf("test key not deleted")
	}
}

// check that inserted nodes can be overwritten
// and that values keep constant address when tree is re-balanced
func TestOverwriteAndNodeStability(t *testing.T) {
	addList := []string{
		"01", "02", "03", "04", "05",
		"06", "07", "08", "09", "10",
	}

	tree := avl.New[string, string]()
	for _, key := range addList {
		tree.Insert(key, "data:"+key)
	}

	if err := tree.Check(); nil != err {
		failTree(t, tree, err)
	}

	// overwrite a key
	const oKey = "05"
	const newData = "new content for 05"
	old, replaced := tree.Insert(oKey, newData)
	if !replaced || "data:05" != old {
		t.Fatalf("overwrite returned: %q, %v", old, replaced)
	}
	if len(addList) != tree.Len() {
		t.Fatalf("overwrite changed count to: %d", tree.Len())
	}

	// check overwrite
	v1 := tree.GetMut(oKey)
	if nil == v1 {
		t.Fatalf("key: %q missing", oKey)
	}
	if newData != *v1 {
		t.Fatalf("node data actual: %q  expected: %q", *v1, newData)
	}

	// delete nodes so the oKey node moves: "04" is the root and "05"
	// its successor
	for _, dKey := range []string{"04", "06", "03"} {
		tree.Remove(dKey)
	}

	// ensure node did not move
	v2 := tree.GetMut(oKey)
	if v1 != v2 {
		t.Fatalf("node moved from: %p → %p", v1, v2)
	}
	if err := tree.Check(); nil != err {
		failTree(t, tree, err)
	}
}
