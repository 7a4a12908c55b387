// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

import (
	"io"
	"iter"

	"github.com/bitmark-inc/avlmap/avl"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/bitmark-inc/avlmap/shell Store

// Store - the map operations the shell commands use
type Store interface {
	Len() int
	Height() int
	Insert(key string, value string) (string, bool)
	Contains(key string) bool
	Get(key string) (string, bool)
	GetMut(key string) *string
	Remove(key string) (string, bool)
	Clear()
	All() iter.Seq2[string, string]
	AllMut() iter.Seq2[string, *string]
	BreadthFirst() iter.Seq2[string, string]
	Drain() *avl.DrainIterator[string, string]
	Check() error
	Print(w io.Writer, printData bool) int
}

// NewStore - create an empty store ordered by compare
func NewStore(compare func(a string, b string) int) Store {
	return avl.NewFunc[string, string](compare)
}
