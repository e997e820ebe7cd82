// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/happiness/bst"
	"github.com/mattn/go-shellwords"
)

const shellHelp = `Commands:
  insert NAME SCORE     add a country (quote names with spaces)
  delete NAME           remove a country
  find NAME             show a country's score and its path from the root
  path NAME             show only the path from the root
  top [N]               N happiest countries
  bottom [N]            N least happy countries
  print [ORDER]         inorder | preorder | postorder | legacy-postorder | reverse
  shape                 draw the tree
  count                 number of countries and tree height
  help                  this text
  quit                  leave the shell`

// errQuit is returned by execLine when the user asks to leave.
var errQuit = errors.New("quit")

type shell struct {
	idx *CountryIndex
	out io.Writer
	cfg *Config
}

// splitCommand tokenizes one shell line, honouring quotes.
func splitCommand(line string) ([]string, error) {
	parser := shellwords.NewParser()
	parser.ParseEnv = false
	parser.ParseBacktick = false
	return parser.Parse(line)
}

// runShell reads commands line by line until quit or end of input. Errors in
// a single command are printed and the shell carries on.
func runShell(idx *CountryIndex, cfg *Config, in io.Reader, out io.Writer, interactive bool) error {
	sh := &shell{idx: idx, out: out, cfg: cfg}
	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, "happiness> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		err := sh.execLine(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "%serror:%s %v\n", Error, Reset, err)
		}
	}
}

func (sh *shell) execLine(line string) error {
	args, err := splitCommand(line)
	if err != nil {
		return fmt.Errorf("cannot parse %q: %w", line, err)
	}
	if len(args) == 0 || strings.HasPrefix(args[0], "#") {
		return nil
	}

	cmd, args := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "insert", "add":
		if len(args) != 2 {
			return errors.New("usage: insert NAME SCORE")
		}
		score, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("bad score %q", args[1])
		}
		if sh.idx.Insert(args[0], score) {
			fmt.Fprintf(sh.out, "%s with happiness of %s is inserted.\n", args[0], formatScore(score))
		} else {
			fmt.Fprintf(sh.out, "%s is already in the tree; its happiness is unchanged.\n", args[0])
		}
	case "delete", "del", "rm":
		if len(args) != 1 {
			return errors.New("usage: delete NAME")
		}
		if sh.idx.Delete(args[0]) {
			fmt.Fprintf(sh.out, "%s is deleted from the binary search tree.\n", args[0])
		} else {
			fmt.Fprintf(sh.out, "%s is not found.\n", args[0])
		}
	case "find", "search":
		if len(args) != 1 {
			return errors.New("usage: find NAME")
		}
		return printFind(sh.out, sh.idx, args[0])
	case "path":
		if len(args) != 1 {
			return errors.New("usage: path NAME")
		}
		return printPath(sh.out, sh.idx, args[0])
	case "top", "bottom":
		count := sh.cfg.Display.DefaultCount
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bad count %q", args[0])
			}
			count = n
		}
		slots, title, err := rankWithTitle(sh.idx, cmd, count)
		if err != nil {
			return err
		}
		writeSlots(sh.out, title, slots, sh.cfg.Display.Precision)
	case "print", "ls":
		order := bst.InOrder
		if len(args) > 0 {
			o, err := bst.ParseOrder(args[0])
			if err != nil {
				return err
			}
			order = o
		}
		writeRecords(sh.out, orderTitle(order), sh.idx.Records(order), sh.cfg.Display.Precision)
	case "shape", "tree":
		fmt.Fprint(sh.out, sh.idx.Shape(sh.cfg.Display.Precision))
	case "count", "len":
		fmt.Fprintf(sh.out, "%d countries, height %d\n", sh.idx.Len(), sh.idx.Height())
	case "help", "?":
		fmt.Fprintln(sh.out, shellHelp)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
	return nil
}

// printFind reports a country's score and path, or that it is missing.
func printFind(w io.Writer, idx *CountryIndex, name string) error {
	happiness, err := idx.Find(name)
	if errors.Is(err, bst.ErrNotFound) {
		fmt.Fprintf(w, "%s is not found.\n", name)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s is found with happiness of %s\n", name, formatScore(happiness))
	return printPath(w, idx, name)
}

func printPath(w io.Writer, idx *CountryIndex, name string) error {
	path, err := idx.PathTo(name)
	if errors.Is(err, bst.ErrNotFound) {
		fmt.Fprintf(w, "%s is not found.\n", name)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Path: %s\n", formatPath(path))
	return nil
}
