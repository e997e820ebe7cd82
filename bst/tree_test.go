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
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildTree(keys ...string) *Tree {
	tree := New()
	for i, k := range keys {
		tree.Insert(k, float64(i))
	}
	return tree
}

// checkInvariants verifies strict ordering across every subtree and that the
// tracked size matches the reachable node count.
func checkInvariants(t *testing.T, tree *Tree) {
	t.Helper()
	count := 0
	var check func(n *Node, lo, hi *string)
	check = func(n *Node, lo, hi *string) {
		if n == nil {
			return
		}
		count++
		if lo != nil {
			require.Greater(t, n.Key(), *lo, "key %q must be above %q", n.Key(), *lo)
		}
		if hi != nil {
			require.Less(t, n.Key(), *hi, "key %q must be below %q", n.Key(), *hi)
		}
		k := n.Key()
		check(n.Left(), lo, &k)
		check(n.Right(), &k, hi)
	}
	check(tree.Root(), nil, nil)
	require.Equal(t, tree.Len(), count)
}

func TestTreeOperations(t *testing.T) {
	testCases := []struct {
		name          string
		insert        []string
		delete        []string
		expectedOrder []string
	}{
		{
			name:          "Simple Insertion",
			insert:        []string{"Chile", "Austria", "Denmark"},
			expectedOrder: []string{"Austria", "Chile", "Denmark"},
		},
		{
			name:          "Duplicate Insertion",
			insert:        []string{"Chile", "Chile", "Austria"},
			expectedOrder: []string{"Austria", "Chile"},
		},
		{
			name:          "Delete Leaf",
			insert:        []string{"Chile", "Austria", "Denmark"},
			delete:        []string{"Austria"},
			expectedOrder: []string{"Chile", "Denmark"},
		},
		{
			name:          "Delete Root With Two Children",
			insert:        []string{"Chile", "Austria", "Denmark", "Brazil", "Egypt"},
			delete:        []string{"Chile"},
			expectedOrder: []string{"Austria", "Brazil", "Denmark", "Egypt"},
		},
		{
			name:          "Delete Missing Key",
			insert:        []string{"Chile", "Austria"},
			delete:        []string{"Zambia"},
			expectedOrder: []string{"Austria", "Chile"},
		},
		{
			name:          "Delete Everything",
			insert:        []string{"Chile", "Austria", "Denmark"},
			delete:        []string{"Chile", "Denmark", "Austria"},
			expectedOrder: []string{},
		},
		{
			name:          "Byte Ordering",
			insert:        []string{"bhutan", "Bhutan", "Åland", "Zambia"},
			expectedOrder: []string{"Bhutan", "Zambia", "bhutan", "Åland"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := buildTree(tc.insert...)
			for _, k := range tc.delete {
				tree.Delete(k)
			}
			require.Equal(t, tc.expectedOrder, tree.Keys(InOrder))
			checkInvariants(t, tree)
		})
	}
}

func TestInsertFind(t *testing.T) {
	tree := New()
	require.True(t, tree.Insert("Finland", 7.8))
	require.True(t, tree.Insert("Afghanistan", -1))

	v, err := tree.Find("Finland")
	require.NoError(t, err)
	require.Equal(t, 7.8, v)

	// negative scores are real values, not a not-found marker
	v, err = tree.Find("Afghanistan")
	require.NoError(t, err)
	require.Equal(t, -1.0, v)

	_, err = tree.Find("Narnia")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDuplicateInsertKeepsOriginal(t *testing.T) {
	tree := New()
	require.True(t, tree.Insert("Norway", 7.3))
	require.False(t, tree.Insert("Norway", 1.0))

	v, err := tree.Find("Norway")
	require.NoError(t, err)
	require.Equal(t, 7.3, v)
	require.Equal(t, 1, tree.Len())
}

func TestDeleteThenFind(t *testing.T) {
	tree := New()
	tree.Insert("Peru", 5.8)
	require.True(t, tree.Delete("Peru"))
	require.False(t, tree.Delete("Peru"))

	_, err := tree.Find("Peru")
	require.True(t, errors.Is(err, ErrNotFound))
	require.True(t, tree.Empty())
}

func TestDeleteTwoChildrenMovesSuccessorRecord(t *testing.T) {
	tree := New()
	tree.Insert("M", 5)
	tree.Insert("F", 3)
	tree.Insert("T", 8)
	tree.Insert("P", 6)
	tree.Insert("R", 7)

	require.True(t, tree.Delete("M"))
	checkInvariants(t, tree)
	require.Equal(t, 4, tree.Len())

	// P replaced M at the root and carries its own value along.
	require.Equal(t, "P", tree.Root().Key())
	require.Equal(t, 6.0, tree.Root().Value())

	for key, want := range map[string]float64{"F": 3, "T": 8, "P": 6, "R": 7} {
		got, err := tree.Find(key)
		require.NoError(t, err)
		require.Equal(t, want, got, key)
	}
	_, err := tree.Find("M")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPathTo(t *testing.T) {
	tree := New()
	tree.Insert("B", 1)
	tree.Insert("A", 2)
	tree.Insert("C", 3)

	path, err := tree.PathTo("A")
	require.NoError(t, err)
	require.Equal(t, []string{"B", "A"}, path)

	path, err = tree.PathTo("B")
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, path)

	path, err = tree.PathTo("D")
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, path)
}

func TestEmptyTree(t *testing.T) {
	tree := New()

	_, err := tree.Find("x")
	require.ErrorIs(t, err, ErrNotFound)
	require.False(t, tree.Delete("x"))
	_, err = tree.PathTo("x")
	require.ErrorIs(t, err, ErrNotFound)

	for _, order := range []Order{InOrder, PreOrder, PostOrder, ReverseInOrder, LegacyPostOrder} {
		require.Empty(t, tree.Keys(order), order.String())
	}
	require.Equal(t, 0, tree.Height())
	_, ok := tree.Min()
	require.False(t, ok)
}

func TestHeightAndBounds(t *testing.T) {
	tree := buildTree("D", "B", "F", "A", "C", "E", "G")
	require.Equal(t, 3, tree.Height())
	lo, _ := tree.Min()
	hi, _ := tree.Max()
	require.Equal(t, "A", lo)
	require.Equal(t, "G", hi)

	// sorted insertion degenerates into a list
	chain := buildTree("A", "B", "C", "D")
	require.Equal(t, 4, chain.Height())
}

func TestDegenerateTreeDoesNotRecurse(t *testing.T) {
	tree := New()
	const n = 10_000
	for i := 0; i < n; i++ {
		tree.Insert(fmt.Sprintf("k%07d", i), float64(i))
	}
	require.Equal(t, n, tree.Len())
	require.Equal(t, n, len(tree.Keys(PostOrder)))

	top, err := tree.TopK(2)
	require.NoError(t, err)
	require.Equal(t, []string{"k0009999", "k0009998"}, Keys(top))
	require.True(t, tree.Delete("k0000000"))
}

func TestRandomizedInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	tree := New()
	present := map[string]bool{}

	for i := 0; i < 4000; i++ {
		key := fmt.Sprintf("%03d", rng.IntN(500))
		if rng.IntN(3) == 0 {
			before := tree.Len()
			removed := tree.Delete(key)
			require.Equal(t, present[key], removed)
			if removed {
				require.Equal(t, before-1, tree.Len())
			}
			delete(present, key)
		} else {
			require.Equal(t, !present[key], tree.Insert(key, rng.Float64()))
			present[key] = true
		}
	}

	checkInvariants(t, tree)
	want := make([]string, 0, len(present))
	for k := range present {
		want = append(want, k)
	}
	sort.Strings(want)
	got := tree.Keys(InOrder)
	require.Equal(t, want, got)
	require.True(t, slices.IsSorted(got))
}
