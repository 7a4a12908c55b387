// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/avlmap/fault"
)

// key order names accepted by Comparator
const (
	LexicalOrder = "lexical"
	NumericOrder = "numeric"
)

// Comparator - return the key comparison function for a named order
func Comparator(order string) (func(a string, b string) int, error) {
	switch strings.ToLower(order) {
	case LexicalOrder, "":
		return strings.Compare, nil
	case NumericOrder:
		return CompareNumeric, nil
	default:
		return nil, fault.ErrInvalidKeyOrder
	}
}

// CompareNumeric - integer keys sort by value and before all other
// keys, which sort lexically
//
// integers of equal value but different spelling ("7", "07") are
// ordered lexically so distinct keys never compare equal
func CompareNumeric(a string, b string) int {
	x, errA := strconv.ParseInt(a, 10, 64)
	y, errB := strconv.ParseInt(b, 10, 64)

	switch {
	case nil == errA && nil == errB:
		if x < y {
			return -1
		}
		if x > y {
			return 1
		}
	case nil == errA:
		return -1
	case nil == errB:
		return 1
	}
	return strings.Compare(a, b)
}
