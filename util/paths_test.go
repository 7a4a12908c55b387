// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/util"
)

func TestEnsureAbsolute(t *testing.T) {
	items := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/data", "seed.txt", "/data/seed.txt"},
		{"/data", "log/../seed.txt", "/data/seed.txt"},
		{"/data", "/etc/seed.txt", "/etc/seed.txt"},
		{"/data/", "./x//y", "/data/x/y"},
	}
	for i, item := range items {
		actual := util.EnsureAbsolute(item.directory, item.path)
		assert.Equal(t, item.expected, actual, "%d: wrong path", i)
	}
}

func TestEnsureFileExists(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "present")
	err := os.WriteFile(name, []byte("x"), 0o600)
	assert.Nil(t, err, "write file")

	assert.True(t, util.EnsureFileExists(name), "existing file")
	assert.True(t, util.EnsureFileExists(dir), "existing directory")
	assert.False(t, util.EnsureFileExists(filepath.Join(dir, "absent")), "missing file")
}
