// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/urfave/cli"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

// progress lines per second
const (
	progressRate  = 2
	progressBurst = 1
)

type record struct {
	key   uint32
	value uint64
}

func runFuzz(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seed := c.Int64("seed")
	rounds := c.Int("rounds")
	if rounds <= 0 {
		return fmt.Errorf("invalid rounds: %d", rounds)
	}
	size := c.Int("size")
	if size <= 0 {
		return fmt.Errorf("invalid size: %d", size)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "seed: %d\n", seed)
		fmt.Fprintf(m.e, "rounds: %d\n", rounds)
		fmt.Fprintf(m.e, "size: %d\n", size)
	}

	limiter := rate.NewLimiter(rate.Every(time.Second/progressRate), progressBurst)
	return fuzz(m.w, seed, rounds, size, limiter)
}

func fuzz(w io.Writer, seed int64, rounds int, size int, limiter *rate.Limiter) error {
	start := time.Now()
	for round := 0; round < rounds; round += 1 {
		if err := fuzzRound(rand.New(rand.NewSource(seed+int64(round))), size); nil != err {
			return fmt.Errorf("seed: %d  round: %d: %w", seed, round, err)
		}
		if limiter.Allow() {
			fmt.Fprintf(w, "round: %d/%d  elapsed: %s\n", round+1, rounds, time.Since(start).Round(time.Millisecond))
		}
	}
	fmt.Fprintf(w, "fuzz: %d rounds of %d records passed\n", rounds, size)
	return nil
}

// keys drawn from twice the record count so roughly half are
// duplicates
func randomRecords(r *rand.Rand, size int) []record {
	data := make([]record, size)
	for i := range data {
		data[i] = record{
			key:   uint32(r.Intn(2 * size)),
			value: r.Uint64(),
		}
	}
	return data
}

func fuzzRound(r *rand.Rand, size int) error {
	tree := avl.New[uint32, uint64]()
	model := make(map[uint32]uint64)

	insertAll := func(data []record) error {
		for _, d := range data {
			old, replaced := tree.Insert(d.key, d.value)
			expected, present := model[d.key]
			if replaced != present || old != expected {
				return fmt.Errorf("insert: %d returned: %d, %t  expected: %d, %t", d.key, old, replaced, expected, present)
			}
			model[d.key] = d.value
		}
		return nil
	}

	mutateAll := func() {
		for k, v := range tree.AllMut() {
			*v = *v ^ uint64(k)
			model[k] = *v
		}
	}

	data := randomRecords(r, size)
	if err := insertAll(data); nil != err {
		return err
	}
	if err := compare(tree, model); nil != err {
		return fmt.Errorf("after insert: %w", err)
	}

	mutateAll()
	if err := compare(tree, model); nil != err {
		return fmt.Errorf("after first mutate: %w", err)
	}

	if err := insertAll(randomRecords(r, size)); nil != err {
		return err
	}
	mutateAll()
	if err := compare(tree, model); nil != err {
		return fmt.Errorf("after second mutate: %w", err)
	}

	for _, d := range data {
		v, removed := tree.Remove(d.key)
		expected, present := model[d.key]
		if removed != present || v != expected {
			return fmt.Errorf("remove: %d returned: %d, %t  expected: %d, %t", d.key, v, removed, expected, present)
		}
		delete(model, d.key)
	}
	for k := range model {
		if _, removed := tree.Remove(k); !removed {
			return fmt.Errorf("remove: %d: missing", k)
		}
		delete(model, k)
	}
	if err := compare(tree, model); nil != err {
		return fmt.Errorf("after remove: %w", err)
	}
	if !tree.IsEmpty() {
		return fmt.Errorf("remaining: %d: %w", tree.Len(), fault.ErrCountMismatch)
	}
	return nil
}

// tree must satisfy its invariants and hold exactly the model's pairs
func compare(tree *avl.Map[uint32, uint64], model map[uint32]uint64) error {
	if err := tree.Check(); nil != err {
		return err
	}
	if tree.Len() != len(model) {
		return fmt.Errorf("length: %d  expected: %d: %w", tree.Len(), len(model), fault.ErrCountMismatch)
	}
	n := 0
	previous := uint32(0)
	for k, v := range tree.All() {
		if n > 0 && k <= previous {
			return fmt.Errorf("key: %d after: %d: %w", k, previous, fault.ErrOrderViolation)
		}
		if expected, ok := model[k]; !ok || expected != v {
			return fmt.Errorf("key: %d  value: %d  expected: %d, %t", k, v, expected, ok)
		}
		previous = k
		n += 1
	}
	return nil
}
