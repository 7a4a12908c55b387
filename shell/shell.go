// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/fault"
)

// Shell - command processor for one store
type Shell struct {
	store Store
	out   io.Writer
	log   *logger.L
}

// New - create a shell writing replies to out
func New(store Store, out io.Writer, log *logger.L) (*Shell, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Shell{
		store: store,
		out:   out,
		log:   log,
	}, nil
}

// Seed - replace the whole store content with the pairs
//
// later pairs overwrite earlier ones with the same key, returns the
// number of distinct keys loaded
func (s *Shell) Seed(pairs []Pair) int {
	s.store.Clear()
	for _, p := range pairs {
		if _, replaced := s.store.Insert(p.Key, p.Value); replaced {
			s.log.Debugf("seed: duplicate key: %q", p.Key)
		}
	}
	n := s.store.Len()
	s.log.Infof("seed: loaded %d keys from %d lines", n, len(pairs))
	return n
}

// Process - execute a single command line
//
// returns true when the line asks to leave the shell
func (s *Shell) Process(line string) bool {
	arguments := strings.Fields(line)
	if 0 == len(arguments) {
		return false
	}
	command := strings.ToLower(arguments[0])
	arguments = arguments[1:]

	s.log.Debugf("command: %q  arguments: %q", command, arguments)

	c, ok := commands[command]
	if !ok {
		s.log.Warnf("unknown command: %q", command)
		s.reply("Error, unknown command")
		return false
	}
	if len(arguments) < c.minimum {
		s.log.Warnf("command: %q  missing arguments", command)
		s.reply("Error: %s requires %s", command, c.arguments)
		return false
	}
	if nil == c.run {
		return true
	}
	c.run(s, arguments)
	return false
}

func (s *Shell) reply(format string, arguments ...interface{}) {
	fmt.Fprintf(s.out, format+"\n", arguments...)
}
