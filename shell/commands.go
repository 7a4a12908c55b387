// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

import (
	"sort"
	"strings"
)

type command struct {
	arguments string
	minimum   int
	help      string
	run       func(s *Shell, arguments []string) // nil to leave the shell
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"set":    {"KEY VALUE", 2, "store a value, the value is the rest of the line", runSet},
		"get":    {"KEY", 1, "fetch a value", runGet},
		"del":    {"KEY", 1, "remove a key", runDel},
		"has":    {"KEY", 1, "test if a key is present", runHas},
		"append": {"KEY TEXT", 2, "append text to a value in place", runAppend},
		"prefix": {"TEXT", 1, "prefix every value with text", runPrefix},
		"len":    {"", 0, "number of keys", runLen},
		"list":   {"", 0, "all pairs in key order", runList},
		"bfs":    {"", 0, "all pairs in breadth-first order", runBreadthFirst},
		"drain":  {"", 0, "list all pairs in key order and empty the map", runDrain},
		"clear":  {"", 0, "remove all keys", runClear},
		"dump":   {"", 0, "draw the tree", runDump},
		"check":  {"", 0, "verify the tree invariants", runCheck},
		"help":   {"", 0, "this summary", runHelp},
		"quit":   {"", 0, "leave the shell", nil},
		"exit":   {"", 0, "leave the shell", nil},
	}
}

func runSet(s *Shell, arguments []string) {
	key := arguments[0]
	value := strings.Join(arguments[1:], " ")
	if old, replaced := s.store.Insert(key, value); replaced {
		s.reply("Ok, old value = %s", old)
	} else {
		s.reply("Ok")
	}
}

func runGet(s *Shell, arguments []string) {
	if value, ok := s.store.Get(arguments[0]); ok {
		s.reply("Ok, value = %s", value)
	} else {
		s.reply("Err, key not found")
	}
}

func runDel(s *Shell, arguments []string) {
	if old, ok := s.store.Remove(arguments[0]); ok {
		s.reply("Ok, old value = %s", old)
	} else {
		s.reply("Err, key not found")
	}
}

func runHas(s *Shell, arguments []string) {
	s.reply("%t", s.store.Contains(arguments[0]))
}

func runAppend(s *Shell, arguments []string) {
	value := s.store.GetMut(arguments[0])
	if nil == value {
		s.reply("Err, key not found")
		return
	}
	*value += strings.Join(arguments[1:], " ")
	s.reply("Ok, value = %s", *value)
}

func runPrefix(s *Shell, arguments []string) {
	text := strings.Join(arguments, " ")
	n := 0
	for _, value := range s.store.AllMut() {
		*value = text + *value
		n += 1
	}
	s.reply("Ok, %d values updated", n)
}

func runLen(s *Shell, arguments []string) {
	s.reply("%d", s.store.Len())
}

func runList(s *Shell, arguments []string) {
	for key, value := range s.store.All() {
		s.reply("%s: %s", key, value)
	}
}

func runBreadthFirst(s *Shell, arguments []string) {
	for key, value := range s.store.BreadthFirst() {
		s.reply("%s: %s", key, value)
	}
}

func runDrain(s *Shell, arguments []string) {
	it := s.store.Drain()
	s.log.Infof("drain: %d keys", it.Len())
	for key, value := range it.All() {
		s.reply("%s: %s", key, value)
	}
}

func runClear(s *Shell, arguments []string) {
	s.store.Clear()
	s.reply("Ok")
}

func runDump(s *Shell, arguments []string) {
	depth := s.store.Print(s.out, true)
	s.log.Debugf("dump: depth: %d", depth)
}

func runCheck(s *Shell, arguments []string) {
	if err := s.store.Check(); nil != err {
		s.log.Errorf("check failed: %s", err)
		s.reply("Error: %s", err)
		return
	}
	s.reply("Ok")
}

func runHelp(s *Shell, arguments []string) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := commands[name]
		s.reply("  %-6s %-9s  %s", name, c.arguments, c.help)
	}
}
