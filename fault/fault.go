// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceViolation     = InvalidError("subtree heights differ by more than one")
	ErrCountMismatch        = InvalidError("node count does not match length")
	ErrHeightMismatch       = InvalidError("cached height is incorrect")
	ErrInvalidCommand       = InvalidError("invalid command")
	ErrInvalidKeyOrder      = InvalidError("invalid key order")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrMissingArgument      = InvalidError("missing argument")
	ErrNotADirectory        = InvalidError("not a directory")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrNotFoundDatabase     = NotFoundError("database is not found")
	ErrNotFoundSeedFile     = NotFoundError("seed file is not found")
	ErrNotPlainFileName     = InvalidError("not a plain file name")
	ErrOrderViolation       = InvalidError("keys are out of order")
	ErrSeedLine             = InvalidError("seed line requires a key and a value")
	ErrWatchedFileRemoved   = ProcessError("watched file was removed")
)

// the error interface methods
func (e GenericError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
