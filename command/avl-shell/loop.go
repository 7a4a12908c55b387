// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/shell"
)

// source of command lines, satisfied by *terminal.Terminal
type lineReader interface {
	ReadLine() (string, error)
}

// lineReader for input that is not a terminal
type scannerReader struct {
	scanner *bufio.Scanner
}

func newScannerReader(r io.Reader) *scannerReader {
	return &scannerReader{
		scanner: bufio.NewScanner(r),
	}
}

func (s *scannerReader) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); nil != err {
		return "", err
	}
	return "", io.EOF
}

// copy lines to the channel, closing it at the end of input
func readLines(log *logger.L, r lineReader, lines chan<- string) {
	defer close(lines)
	for {
		line, err := r.ReadLine()
		if nil != err {
			if err != io.EOF {
				log.Errorf("read error: %s", err)
			}
			return
		}
		lines <- line
	}
}

// everything the command goroutine waits on, nil channels are never
// selected
type inputs struct {
	lines   <-chan string
	change  <-chan struct{}
	remove  <-chan struct{}
	signals <-chan os.Signal
}

// run commands and seed reloads one at a time until quit, end of
// input or a signal
func commandLoop(log *logger.L, sh *shell.Shell, in inputs, reload func() error) {
	for {
		select {
		case line, ok := <-in.lines:
			if !ok {
				log.Info("end of input")
				return
			}
			if sh.Process(line) {
				log.Info("quit")
				return
			}

		case <-in.change:
			if err := reload(); nil != err {
				log.Errorf("seed reload error: %s", err)
			}

		case <-in.remove:
			// an editor replacing the file looks like a removal
			err := reload()
			if errors.Is(err, fault.ErrNotFoundSeedFile) {
				log.Warnf("%s: keeping current contents", fault.ErrWatchedFileRemoved)
			} else if nil != err {
				log.Errorf("seed reload error: %s", err)
			}

		case sig := <-in.signals:
			log.Infof("received signal: %v", sig)
			return
		}
	}
}

// build the reload function for a seed file
func seedLoader(log *logger.L, sh *shell.Shell, seedFile string) func() error {
	return func() error {
		pairs, err := shell.ReadSeedFile(seedFile)
		if nil != err {
			return err
		}
		n := sh.Seed(pairs)
		log.Infof("seed: %q: %d keys", seedFile, n)
		return nil
	}
}
