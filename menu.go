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
)

const (
	choiceInorder = iota + 1
	choicePreorder
	choicePostorder
	choiceInsert
	choiceDelete
	choiceSearch
	choiceBottom
	choiceTop
	choiceExit
)

var menuLines = []string{
	"1) Print tree inorder",
	"2) Print tree preorder",
	"3) Print tree postorder",
	"4) Insert a country with name and happiness",
	"5) Delete a country for a given name",
	"6) Search and print a country and its path for a given name",
	"7) Print bottom countries regarding happiness",
	"8) Print top countries regarding happiness",
	"9) Exit",
}

// errInputClosed ends the loop when stdin runs out mid-dialog.
var errInputClosed = errors.New("input closed")

type menu struct {
	idx       *CountryIndex
	in        *bufio.Scanner
	out       io.Writer
	precision int
}

// runMenu drives the numbered menu until the user picks 9 or input ends.
func runMenu(idx *CountryIndex, in io.Reader, out io.Writer, precision int) error {
	m := &menu{idx: idx, in: bufio.NewScanner(in), out: out, precision: precision}

	for {
		for _, l := range menuLines {
			fmt.Fprintln(out, l)
		}
		line, err := m.prompt("Enter your choice: ")
		if err != nil {
			return m.finish(err)
		}

		choice, err := strconv.Atoi(line)
		if err != nil || choice < choiceInorder || choice > choiceExit {
			fmt.Fprintln(out, "Invalid choice. Enter 1-9.")
			continue
		}
		if choice == choiceExit {
			fmt.Fprintln(out, "Have a good day!")
			return nil
		}
		if err := m.dispatch(choice); err != nil {
			return m.finish(err)
		}
	}
}

func (m *menu) finish(err error) error {
	if errors.Is(err, errInputClosed) {
		fmt.Fprintln(m.out)
		return nil
	}
	return err
}

func (m *menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *menu) dispatch(choice int) error {
	switch choice {
	case choiceInorder:
		writeRecords(m.out, orderTitle(bst.InOrder), m.idx.Records(bst.InOrder), m.precision)
	case choicePreorder:
		writeRecords(m.out, orderTitle(bst.PreOrder), m.idx.Records(bst.PreOrder), m.precision)
	case choicePostorder:
		writeRecords(m.out, orderTitle(bst.PostOrder), m.idx.Records(bst.PostOrder), m.precision)
	case choiceInsert:
		return m.insertCountry()
	case choiceDelete:
		return m.deleteCountry()
	case choiceSearch:
		return m.searchCountry()
	case choiceBottom:
		return m.rankCountries(rankBottom)
	case choiceTop:
		return m.rankCountries(rankTop)
	}
	return nil
}

func (m *menu) insertCountry() error {
	name, err := m.prompt("Enter country name: ")
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Fprintln(m.out, "Country name must not be empty.")
		return nil
	}
	raw, err := m.prompt("Enter country happiness: ")
	if err != nil {
		return err
	}
	happiness, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Fprintf(m.out, "Invalid happiness value %q.\n", raw)
		return nil
	}

	if m.idx.Insert(name, happiness) {
		fmt.Fprintf(m.out, "%s with happiness of %s is inserted.\n", name, formatScore(happiness))
	} else {
		fmt.Fprintf(m.out, "%s is already in the tree; its happiness is unchanged.\n", name)
	}
	return nil
}

func (m *menu) deleteCountry() error {
	name, err := m.prompt("Enter country name: ")
	if err != nil {
		return err
	}
	if m.idx.Delete(name) {
		fmt.Fprintf(m.out, "%s is deleted from the binary search tree.\n", name)
	} else {
		fmt.Fprintf(m.out, "%s is not found.\n", name)
	}
	return nil
}

func (m *menu) searchCountry() error {
	name, err := m.prompt("Enter country name: ")
	if err != nil {
		return err
	}
	return printFind(m.out, m.idx, name)
}

func (m *menu) rankCountries(direction string) error {
	raw, err := m.prompt("Enter the number of countries: ")
	if err != nil {
		return err
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintf(m.out, "Invalid count %q.\n", raw)
		return nil
	}

	slots, title, err := rankWithTitle(m.idx, direction, count)
	if err != nil {
		fmt.Fprintf(m.out, "Invalid count: %v\n", err)
		return nil
	}
	writeSlots(m.out, title, slots, m.precision)
	return nil
}

// rankWithTitle runs a top or bottom selection and returns the table title for it.
func rankWithTitle(idx *CountryIndex, direction string, count int) ([]bst.Slot, string, error) {
	if direction == rankTop {
		slots, err := idx.Top(count)
		return slots, fmt.Sprintf("Top %d countries by happiness:", count), err
	}
	slots, err := idx.Bottom(count)
	return slots, fmt.Sprintf("Bottom %d countries by happiness:", count), err
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
