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

// Record is the payload stored at every node: a country name and its happiness score.
type Record struct {
	Key   string
	Value float64
}

// Node owns at most two child subtrees. Only the tree mutates it.
type Node struct {
	record Record
	left   *Node
	right  *Node
}

func newNode(key string, value float64) *Node {
	return &Node{record: Record{Key: key, Value: value}}
}

func (n *Node) Key() string    { return n.record.Key }
func (n *Node) Value() float64 { return n.record.Value }
func (n *Node) Record() Record { return n.record }
func (n *Node) Left() *Node    { return n.left }
func (n *Node) Right() *Node   { return n.right }
func (n *Node) IsLeaf() bool   { return n.left == nil && n.right == nil }

// setRecord replaces the payload in place, leaving child links untouched.
func (n *Node) setRecord(r Record) { n.record = r }
func (n *Node) setLeft(c *Node)    { n.left = c }
func (n *Node) setRight(c *Node)   { n.right = c }

// minNode returns the leftmost node of the subtree rooted at n.
func minNode(n *Node) *Node {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode(n *Node) *Node {
	for n.right != nil {
		n = n.right
	}
	return n
}
