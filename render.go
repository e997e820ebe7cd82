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
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/happiness/bst"
)

const (
	nameColumnWidth = 40
	unfilledLabel   = "(unfilled)"
)

var tableRule = strings.Repeat("-", 65)

func writeTableHeader(w io.Writer) {
	fmt.Fprintf(w, "%-*s%-10s\n", nameColumnWidth, "Name", "Happiness")
	fmt.Fprintln(w, tableRule)
}

// writeRecords prints a traversal as a two-column table.
func writeRecords(w io.Writer, title string, records []bst.Record, precision int) {
	fmt.Fprintf(w, "%s%s%s\n", Info, title, Reset)
	writeTableHeader(w)
	for _, r := range records {
		fmt.Fprintf(w, "%-*s%-10.*f\n", nameColumnWidth, r.Key, precision, r.Value)
	}
	fmt.Fprintln(w)
}

// writeSlots prints a top/bottom-K selection. Unfilled slots are printed
// explicitly so a short result is never mistaken for a full one.
func writeSlots(w io.Writer, title string, slots []bst.Slot, precision int) {
	if len(slots) == 0 {
		fmt.Fprintln(w, "No countries found.")
		return
	}
	fmt.Fprintf(w, "%s%s%s\n", Info, title, Reset)
	writeTableHeader(w)
	for _, s := range slots {
		if !s.Filled {
			fmt.Fprintf(w, "%-*s%-10s\n", nameColumnWidth, unfilledLabel, "-")
			continue
		}
		fmt.Fprintf(w, "%-*s%-10.*f\n", nameColumnWidth, s.Key, precision, s.Value)
	}
	fmt.Fprintln(w)
}

func formatPath(path []string) string {
	return strings.Join(path, " -> ")
}

func orderTitle(order bst.Order) string {
	switch order {
	case bst.InOrder:
		return "Inorder Traversal:"
	case bst.PreOrder:
		return "Preorder Traversal:"
	case bst.PostOrder:
		return "Postorder Traversal:"
	case bst.LegacyPostOrder:
		return "Postorder Traversal (legacy):"
	case bst.ReverseInOrder:
		return "Reverse Inorder Traversal:"
	}
	return order.String()
}
