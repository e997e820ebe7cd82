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
	"iter"
	"strings"
)

// Order selects a depth-first traversal order.
type Order int

const (
	InOrder        Order = iota // left, node, right: ascending keys
	PreOrder                    // node, left, right
	PostOrder                   // left, right, node
	ReverseInOrder              // right, node, left: descending keys
	// LegacyPostOrder walks each child subtree in order and emits the root
	// last. Older reports printed "postorder" this way.
	LegacyPostOrder
)

var orderNames = map[Order]string{
	InOrder:         "inorder",
	PreOrder:        "preorder",
	PostOrder:       "postorder",
	ReverseInOrder:  "reverse",
	LegacyPostOrder: "legacy-postorder",
}

func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder accepts the names printed by Order.String, ignoring case,
// dashes and underscores ("in-order", "PRE_ORDER").
func ParseOrder(s string) (Order, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	for o, name := range orderNames {
		if strings.ReplaceAll(name, "-", "") == norm {
			return o, nil
		}
	}
	return InOrder, fmt.Errorf("unknown traversal order %q", s)
}

// Walk returns a lazy sequence of (key, value) pairs in the given order.
// Each range over the sequence re-walks the tree from the root.
func (t *Tree) Walk(order Order) iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		t.visit(order, func(n *Node) bool {
			return yield(n.Key(), n.Value())
		})
	}
}

func (t *Tree) InOrder() iter.Seq2[string, float64]   { return t.Walk(InOrder) }
func (t *Tree) PreOrder() iter.Seq2[string, float64]  { return t.Walk(PreOrder) }
func (t *Tree) PostOrder() iter.Seq2[string, float64] { return t.Walk(PostOrder) }

// Records collects a full walk into a slice.
func (t *Tree) Records(order Order) []Record {
	out := make([]Record, 0, t.size)
	t.visit(order, func(n *Node) bool {
		out = append(out, n.Record())
		return true
	})
	return out
}

// Keys collects the keys of a full walk.
func (t *Tree) Keys(order Order) []string {
	out := make([]string, 0, t.size)
	for k := range t.Walk(order) {
		out = append(out, k)
	}
	return out
}

func (t *Tree) visit(order Order, fn func(*Node) bool) {
	switch order {
	case InOrder:
		walkInOrder(t.root, false, fn)
	case ReverseInOrder:
		walkInOrder(t.root, true, fn)
	case PreOrder:
		walkPreOrder(t.root, fn)
	case PostOrder:
		walkPostOrder(t.root, fn)
	case LegacyPostOrder:
		walkLegacyPostOrder(t.root, fn)
	}
}

// The walkers use explicit stacks so a degenerate (list-shaped) tree cannot
// exhaust the goroutine stack. Each returns false once fn asks to stop.

func walkInOrder(root *Node, reverse bool, fn func(*Node) bool) bool {
	near := func(n *Node) *Node { return n.left }
	far := func(n *Node) *Node { return n.right }
	if reverse {
		near, far = far, near
	}

	var stack []*Node
	cur := root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = near(cur)
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur) {
			return false
		}
		cur = far(cur)
	}
	return true
}

func walkPreOrder(root *Node, fn func(*Node) bool) bool {
	if root == nil {
		return true
	}
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return false
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
	return true
}

func walkPostOrder(root *Node, fn func(*Node) bool) bool {
	var stack []*Node
	var last *Node
	cur := root
	for cur != nil || len(stack) > 0 {
		if cur != nil {
			stack = append(stack, cur)
			cur = cur.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			cur = top.right
			continue
		}
		if !fn(top) {
			return false
		}
		last = top
		stack = stack[:len(stack)-1]
	}
	return true
}

func walkLegacyPostOrder(root *Node, fn func(*Node) bool) bool {
	if root == nil {
		return true
	}
	return walkInOrder(root.left, false, fn) &&
		walkInOrder(root.right, false, fn) &&
		fn(root)
}
