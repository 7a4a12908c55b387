// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "avl-tool"
	app.Usage = "exercise and inspect AVL maps"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "monotonic",
			Usage:     "insert ascending keys with duplicates, then descending keys",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 16,
					Usage: " number of distinct keys `N`",
				},
			},
			Action: runMonotonic,
		},
		{
			Name:      "fuzz",
			Usage:     "random insert, mutate and remove rounds checked against a Go map",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 1,
					Usage: " random number seed `S`",
				},
				cli.IntFlag{
					Name:  "rounds, r",
					Value: 100,
					Usage: " number of rounds `R`",
				},
				cli.IntFlag{
					Name:  "size, n",
					Value: 1000,
					Usage: " records per round `N`",
				},
			},
			Action: runFuzz,
		},
		{
			Name:      "load",
			Usage:     "build a map from a LevelDB key range and list it",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "database, d",
					Value: "",
					Usage: "*LevelDB `DIRECTORY`",
				},
				cli.StringFlag{
					Name:  "prefix, p",
					Value: "",
					Usage: " only keys starting with `HEX`",
				},
				cli.StringFlag{
					Name:  "order, o",
					Value: orderInOrder,
					Usage: " listing `ORDER` [inorder|breadthfirst]",
				},
			},
			Action: runLoad,
		},
		{
			Name:   "version",
			Usage:  "display avl-tool version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
