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

// Package bst implements an unbalanced binary search tree keyed by country name,
// with traversals and top/bottom-K selection by happiness score.
//
// Keys are ordered by plain byte-wise string comparison. A Tree is not safe for
// concurrent use: callers must serialize mutations and must not walk the tree
// while it is being mutated.
package bst

import (
	"fmt"
	"strings"
)

type Tree struct {
	root *Node
	size int
}

func New() *Tree {
	return &Tree{}
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node { return t.root }

// Len returns the number of records stored.
func (t *Tree) Len() int { return t.size }

func (t *Tree) Empty() bool { return t.root == nil }

// Insert adds key with value. An existing key is left untouched and Insert
// reports false.
func (t *Tree) Insert(key string, value float64) bool {
	var parent *Node
	side := 0
	cur := t.root
	for cur != nil {
		c := strings.Compare(key, cur.Key())
		if c == 0 {
			return false
		}
		parent, side = cur, c
		if c < 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	t.attach(parent, side, newNode(key, value))
	t.size++
	return true
}

// attach links child under parent on the side given by a three-way comparison
// result, or makes it the root when parent is nil.
func (t *Tree) attach(parent *Node, side int, child *Node) {
	switch {
	case parent == nil:
		t.root = child
	case side < 0:
		parent.setLeft(child)
	default:
		parent.setRight(child)
	}
}

func (t *Tree) lookup(key string) *Node {
	cur := t.root
	for cur != nil {
		c := strings.Compare(key, cur.Key())
		switch {
		case c == 0:
			return cur
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil
}

// Find returns the value stored under key.
func (t *Tree) Find(key string) (float64, error) {
	n := t.lookup(key)
	if n == nil {
		return 0, fmt.Errorf("find %q: %w", key, ErrNotFound)
	}
	return n.Value(), nil
}

func (t *Tree) Contains(key string) bool {
	return t.lookup(key) != nil
}

// Delete removes key from the tree and reports whether a node was removed.
// A node with two children takes over the record of its in-order successor,
// which is then unlinked from the right subtree.
func (t *Tree) Delete(key string) bool {
	var parent *Node
	side := 0
	cur := t.root
	for cur != nil {
		c := strings.Compare(key, cur.Key())
		if c == 0 {
			break
		}
		parent, side = cur, c
		if c < 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	if cur == nil {
		return false
	}

	if cur.left != nil && cur.right != nil {
		succParent, succ := cur, cur.right
		for succ.left != nil {
			succParent, succ = succ, succ.left
		}
		cur.setRecord(succ.record)
		// succ has no left child, so its right subtree takes its place.
		if succParent == cur {
			cur.setRight(succ.right)
		} else {
			succParent.setLeft(succ.right)
		}
	} else {
		child := cur.left
		if child == nil {
			child = cur.right
		}
		t.attach(parent, side, child)
	}

	t.size--
	return true
}

// PathTo returns the keys visited from the root down to key, inclusive.
func (t *Tree) PathTo(key string) ([]string, error) {
	var path []string
	cur := t.root
	for cur != nil {
		path = append(path, cur.Key())
		c := strings.Compare(key, cur.Key())
		switch {
		case c == 0:
			return path, nil
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil, fmt.Errorf("path to %q: %w", key, ErrNotFound)
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	if t.root == nil {
		return 0
	}
	height := 0
	level := []*Node{t.root}
	for len(level) > 0 {
		height++
		var next []*Node
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}

// Min returns the smallest key in the tree.
func (t *Tree) Min() (string, bool) {
	if t.root == nil {
		return "", false
	}
	return minNode(t.root).Key(), true
}

// Max returns the largest key in the tree.
func (t *Tree) Max() (string, bool) {
	if t.root == nil {
		return "", false
	}
	return maxNode(t.root).Key(), true
}
