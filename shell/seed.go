// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/avlmap/fault"
)

// Pair - one key and value from a seed file
type Pair struct {
	Key   string
	Value string
}

// ReadSeed - parse "key value..." lines
//
// blank lines and lines starting with '#' are skipped, a key with no
// value is an error
func ReadSeed(r io.Reader) ([]Pair, error) {
	pairs := make([]Pair, 0, 16)
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n += 1
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: %q: %w", n, line, fault.ErrSeedLine)
		}
		pairs = append(pairs, Pair{
			Key:   fields[0],
			Value: strings.Join(fields[1:], " "),
		})
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return pairs, nil
}

// ReadSeedFile - open and parse a seed file
func ReadSeedFile(fileName string) ([]Pair, error) {
	f, err := os.Open(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%q: %w", fileName, fault.ErrNotFoundSeedFile)
		}
		return nil, err
	}
	defer f.Close()

	return ReadSeed(f)
}
