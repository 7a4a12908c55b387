// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestMonotonic(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := monotonic(buffer, 8)
	assert.Nil(t, err, "monotonic error")

	output := buffer.String()
	assert.Contains(t, output, "ascending: count: 8  height: 4\n", "wrong ascending summary")
	assert.Contains(t, output, "descending: count: 8  height: 4\n", "wrong descending summary")
	assert.Contains(t, output, "|------+ 3\n", "ascending root missing")
}

func TestMonotonicLarge(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := monotonic(buffer, 1023)
	assert.Nil(t, err, "monotonic error")
	assert.Contains(t, buffer.String(), "ascending: count: 1023  height: 10\n", "sequential inserts not perfectly balanced")
}

func TestFuzz(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := fuzz(buffer, 42, 3, 200, rate.NewLimiter(rate.Inf, 1))
	assert.Nil(t, err, "fuzz error")

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	assert.Equal(t, 4, len(lines), "wrong number of lines")
	assert.True(t, strings.HasPrefix(lines[0], "round: 1/3"), "wrong first progress line: %q", lines[0])
	assert.Equal(t, "fuzz: 3 rounds of 200 records passed", lines[3], "wrong summary")
}

func TestFuzzProgressLimited(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := fuzz(buffer, 7, 5, 10, rate.NewLimiter(rate.Every(time.Hour), 1))
	assert.Nil(t, err, "fuzz error")

	// the single burst token allows only the first progress line
	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	assert.Equal(t, 2, len(lines), "progress not limited")
}
