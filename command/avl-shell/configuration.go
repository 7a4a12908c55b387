// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/shell"
	"github.com/bitmark-inc/avlmap/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultPrompt   = "avl> "
	defaultKeyOrder = shell.LexicalOrder

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-shell.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"shell":           "info",
		"watcher":         "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - configuration file data
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Prompt        string               `gluamapper:"prompt" json:"prompt"`
	KeyOrder      string               `gluamapper:"key_order" json:"key_order"`
	SeedFile      string               `gluamapper:"seed_file" json:"seed_file"`
	WatchSeed     bool                 `gluamapper:"watch_seed" json:"watch_seed"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if err != nil {
		return nil, err
	}
	if !util.EnsureFileExists(configurationFileName) {
		return nil, fmt.Errorf("%q: %w", configurationFileName, fault.ErrNotFoundConfigFile)
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Prompt:        defaultPrompt,
		KeyOrder:      defaultKeyOrder,
		SeedFile:      "", // no seed by default
		WatchSeed:     false,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if _, err := shell.Comparator(options.KeyOrder); err != nil {
		return nil, fmt.Errorf("key_order: %q: %w", options.KeyOrder, err)
	}

	// ensure absolute data directory
	if options.DataDirectory == "" || options.DataDirectory == "~" {
		return nil, fmt.Errorf("Path: %q: %w", options.DataDirectory, fault.ErrNotADirectory)
	} else if options.DataDirectory == "." {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); err != nil {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q: %w", options.DataDirectory, fault.ErrNotADirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.SeedFile,
	}
	for _, f := range optionalAbsolute {
		if *f != "" {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	if options.WatchSeed && options.SeedFile == "" {
		return nil, fmt.Errorf("watch_seed: %w: seed_file", fault.ErrMissingArgument)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator
	mustNotBePaths := []*string{
		&options.Logging.File,
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f) {
		case "", ".":
		default:
			return nil, fmt.Errorf("Files: %q: %w", *f, fault.ErrNotPlainFileName)
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0o700); err != nil {
			return nil, err
		}
	}

	// done
	return options, nil
}
