// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package shell - line oriented commands over a string to string
// ordered map
//
// each call to Process handles one line and writes its reply to the
// output writer, the caller must serialise calls, normally by running
// all of them from a single goroutine together with any seed reloads.
package shell
