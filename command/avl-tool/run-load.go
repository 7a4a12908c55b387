// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	dbutil "github.com/syndtr/goleveldb/leveldb/util"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/util"
)

// listing orders
const (
	orderInOrder      = "inorder"
	orderBreadthFirst = "breadthfirst"
)

func runLoad(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	database := c.String("database")
	if "" == database {
		return fmt.Errorf("database: %w", fault.ErrMissingArgument)
	}

	prefix, err := hex.DecodeString(c.String("prefix"))
	if nil != err {
		return fmt.Errorf("prefix: %w", err)
	}

	order := strings.ToLower(c.String("order"))

	if m.verbose {
		fmt.Fprintf(m.e, "database: %s\n", database)
		fmt.Fprintf(m.e, "prefix: %x\n", prefix)
		fmt.Fprintf(m.e, "order: %s\n", order)
	}

	return load(m.w, database, prefix, order)
}

// build a map from every record whose key starts with prefix
func load(w io.Writer, database string, prefix []byte, order string) error {

	if order != orderInOrder && order != orderBreadthFirst {
		return fmt.Errorf("order: %q: %w", order, fault.ErrInvalidCommand)
	}

	if !util.EnsureFileExists(database) {
		return fmt.Errorf("%q: %w", database, fault.ErrNotFoundDatabase)
	}

	db, err := leveldb.OpenFile(database, &opt.Options{
		ReadOnly:       true,
		ErrorIfMissing: true,
	})
	if nil != err {
		return fmt.Errorf("open database: %q  error: %w", database, err)
	}
	defer db.Close()

	dbIter := db.NewIterator(dbutil.BytesPrefix(prefix), nil)
	tree := avl.New[string, []byte]()
	n := tree.Extend(records(dbIter))
	dbIter.Release()
	if err := dbIter.Error(); nil != err {
		return fmt.Errorf("iteration error: %w", err)
	}

	if err := tree.Check(); nil != err {
		return err
	}

	all := tree.All()
	if orderBreadthFirst == order {
		all = tree.BreadthFirst()
	}
	for key, value := range all {
		fmt.Fprintf(w, "%x → %x\n", key, value)
	}
	fmt.Fprintf(w, "count: %d  height: %d\n", n, tree.Height())
	return nil
}

// the database reuses its key and value buffers so both are copied
func records(it iterator.Iterator) iter.Seq2[string, []byte] {
	return func(yield func(string, []byte) bool) {
		for it.Next() {
			if !yield(string(it.Key()), bytes.Clone(it.Value())) {
				return
			}
		}
	}
}
