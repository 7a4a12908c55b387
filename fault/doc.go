// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  Fatal
// conditions (broken tree invariants, misuse of iterators) are
// reported through the Panic family, which writes the message to
// the PANIC log channel before panicking.
package fault
