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

package bst

import (
	"fmt"
	"math"
)

// MaxCount is the largest k TopK and BottomK accept. The result buffer is
// allocated up front, so k is capped even when the tree is small.
const MaxCount = 1 << 16

// Slot is one position of a top/bottom-K result. Trailing slots stay unfilled
// when the tree holds fewer records than requested.
type Slot struct {
	Key    string
	Value  float64
	Filled bool
}

// TopK returns the k records with the highest values, highest first.
// The result always has length k.
func (t *Tree) TopK(k int) ([]Slot, error) {
	return t.selectK(k, math.Inf(-1), func(a, b float64) bool { return a > b })
}

// BottomK returns the k records with the lowest values, lowest first.
// The result always has length k.
func (t *Tree) BottomK(k int) ([]Slot, error) {
	return t.selectK(k, math.Inf(1), func(a, b float64) bool { return a < b })
}

// selectK walks the tree right to left and keeps a buffer of the k best
// records seen so far, sorted best first, using an insertion-sort shift.
// Ties keep the record visited first.
func (t *Tree) selectK(k int, worst float64, better func(a, b float64) bool) ([]Slot, error) {
	if k < 0 {
		return nil, fmt.Errorf("select %d: %w", k, ErrInvalidCount)
	}
	if k > MaxCount {
		return nil, fmt.Errorf("select %d: %w", k, ErrCountTooLarge)
	}
	buf := make([]Slot, k)
	for i := range buf {
		buf[i].Value = worst
	}
	if k == 0 {
		return buf, nil
	}

	// beats reports whether v should sit ahead of slot s.
	beats := func(v float64, s Slot) bool {
		return !s.Filled || better(v, s.Value)
	}

	walkInOrder(t.root, true, func(n *Node) bool {
		v := n.Value()
		if math.IsNaN(v) || !beats(v, buf[k-1]) {
			return true
		}
		i := k - 1
		for i > 0 && beats(v, buf[i-1]) {
			buf[i] = buf[i-1]
			i--
		}
		buf[i] = Slot{Key: n.Key(), Value: v, Filled: true}
		return true
	})
	return buf, nil
}

// Filled returns the leading filled slots of a selection.
func Filled(slots []Slot) []Slot {
	for i, s := range slots {
		if !s.Filled {
			return slots[:i]
		}
	}
	return slots
}

// Keys returns the keys of the filled slots, in order.
func Keys(slots []Slot) []string {
	filled := Filled(slots)
	out := make([]string, len(filled))
	for i, s := range filled {
		out[i] = s.Key
	}
	return out
}
