// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/shell"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: unexpected arguments: %q", program, arguments)
	}

	if len(options["config-file"]) != 1 {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if err != nil {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// --verbose also echoes the log to the console
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); err != nil {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); err != nil {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Debugf("theConfiguration: %v", theConfiguration)

	compare, err := shell.Comparator(theConfiguration.KeyOrder)
	if err != nil {
		exitwithstatus.Message("%s: key order: %q  error: %s", program, theConfiguration.KeyOrder, err)
	}

	// interactive line editing only when attached to a terminal
	var reader lineReader
	var out io.Writer = os.Stdout
	fd := int(os.Stdin.Fd())
	if terminal.IsTerminal(fd) {
		oldState, err := terminal.MakeRaw(fd)
		if err != nil {
			exitwithstatus.Message("%s: tty open error: %s", program, err)
		}
		defer terminal.Restore(fd, oldState)

		console := terminal.NewTerminal(struct {
			io.Reader
			io.Writer
		}{os.Stdin, os.Stdout}, theConfiguration.Prompt)
		reader = console
		out = console
	} else {
		reader = newScannerReader(os.Stdin)
	}

	sh, err := shell.New(shell.NewStore(compare), out, logger.New("shell"))
	if err != nil {
		exitwithstatus.Message("%s: shell setup error: %s", program, err)
	}

	in := inputs{}
	reload := func() error { return nil }

	if theConfiguration.SeedFile != "" {
		reload = seedLoader(log, sh, theConfiguration.SeedFile)
		if err := reload(); err != nil {
			log.Criticalf("seed: %q  error: %s", theConfiguration.SeedFile, err)
			exitwithstatus.Message("%s: seed: %q  error: %s", program, theConfiguration.SeedFile, err)
		}
	}

	if theConfiguration.WatchSeed {
		channels := newWatcherChannel()
		watcher, err := newFileWatcher(theConfiguration.SeedFile, logger.New(fileWatcherLoggerPrefix), channels)
		if err != nil {
			exitwithstatus.Message("%s: watch: %q  error: %s", program, theConfiguration.SeedFile, err)
		}
		if err := watcher.Start(); err != nil {
			exitwithstatus.Message("%s: watch: %q  error: %s", program, theConfiguration.SeedFile, err)
		}
		defer watcher.Stop()
		in.change = channels.change
		in.remove = channels.remove
	}

	if len(options["quiet"]) == 0 {
		fmt.Fprintf(out, "%s %s: type \"help\" for commands\n", program, version)
	}

	lines := make(chan string)
	go readLines(log, reader, lines)
	in.lines = lines

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	in.signals = ch

	commandLoop(log, sh, in, reload)
}
