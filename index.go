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
	"sync"

	"github.com/cybrota/happiness/bst"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/willf/bloom"
	"github.com/xlab/treeprint"
)

// CountryIndex is the single country tree of the process together with the
// lookup aids around it. All front ends (menu, shell, browser, chart) go
// through it.
type CountryIndex struct {
	mu    sync.RWMutex
	tree  *bst.Tree
	seen  *bloom.BloomFilter // every name ever inserted; a miss is definite
	ranks *cache.Cache
	log   zerolog.Logger
}

func NewCountryIndex(cfg IndexConfig, logger zerolog.Logger) *CountryIndex {
	return &CountryIndex{
		tree:  bst.New(),
		seen:  bloom.New(cfg.BloomBits, cfg.BloomHashes),
		ranks: NewRankCache(cfg.RankCacheTTL),
		log:   logger,
	}
}

// Insert adds a country. An existing name keeps its original score and
// Insert reports false.
func (idx *CountryIndex) Insert(name string, happiness float64) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if !idx.tree.Insert(name, happiness) {
		idx.log.Debug().Str("country", name).Msg("duplicate insert ignored")
		return false
	}
	idx.seen.AddString(name)
	idx.ranks.Flush()
	return true
}

// Delete removes a country and reports whether it was present.
func (idx *CountryIndex) Delete(name string) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if !idx.seen.TestString(name) || !idx.tree.Delete(name) {
		return false
	}
	idx.ranks.Flush()
	return true
}

func (idx *CountryIndex) Find(name string) (float64, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if !idx.seen.TestString(name) {
		return 0, fmt.Errorf("find %q: %w", name, bst.ErrNotFound)
	}
	return idx.tree.Find(name)
}

func (idx *CountryIndex) PathTo(name string) ([]string, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if !idx.seen.TestString(name) {
		return nil, fmt.Errorf("path to %q: %w", name, bst.ErrNotFound)
	}
	return idx.tree.PathTo(name)
}

// Records returns a snapshot of the whole tree in the given order.
func (idx *CountryIndex) Records(order bst.Order) []bst.Record {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.Records(order)
}

func (idx *CountryIndex) Top(count int) ([]bst.Slot, error) {
	return idx.rank(rankTop, count, (*bst.Tree).TopK)
}

func (idx *CountryIndex) Bottom(count int) ([]bst.Slot, error) {
	return idx.rank(rankBottom, count, (*bst.Tree).BottomK)
}

func (idx *CountryIndex) rank(direction string, count int, selectK func(*bst.Tree, int) ([]bst.Slot, error)) ([]bst.Slot, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if slots, ok := GetRanking(idx.ranks, direction, count); ok {
		return slots, nil
	}
	slots, err := selectK(idx.tree, count)
	if err != nil {
		return nil, err
	}
	CacheRanking(idx.ranks, direction, count, slots)
	return slots, nil
}

func (idx *CountryIndex) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.Len()
}

func (idx *CountryIndex) Height() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.Height()
}

// Shape draws the tree structure, one node per line, with L/R marking the
// side of each child.
func (idx *CountryIndex) Shape(precision int) string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	root := idx.tree.Root()
	if root == nil {
		return "(empty tree)\n"
	}
	out := treeprint.NewWithRoot(nodeLabel(root, precision))
	addChildren(out, root, precision)
	return out.String()
}

func addChildren(branch treeprint.Tree, n *bst.Node, precision int) {
	for _, side := range []struct {
		meta  string
		child *bst.Node
	}{{"L", n.Left()}, {"R", n.Right()}} {
		if side.child == nil {
			continue
		}
		if side.child.IsLeaf() {
			branch.AddMetaNode(side.meta, nodeLabel(side.child, precision))
			continue
		}
		sub := branch.AddMetaBranch(side.meta, nodeLabel(side.child, precision))
		addChildren(sub, side.child, precision)
	}
}

func nodeLabel(n *bst.Node, precision int) string {
	return fmt.Sprintf("%s (%.*f)", n.Key(), precision, n.Value())
}
