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
	"math"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func abcTree() *Tree {
	tree := New()
	tree.Insert("A", 1.0)
	tree.Insert("B", 5.0)
	tree.Insert("C", 3.0)
	return tree
}

func TestTopBottomK(t *testing.T) {
	tree := abcTree()

	bottom, err := tree.BottomK(2)
	require.NoError(t, err)
	require.Equal(t, []Slot{{"A", 1.0, true}, {"C", 3.0, true}}, bottom)

	top, err := tree.TopK(2)
	require.NoError(t, err)
	require.Equal(t, []Slot{{"B", 5.0, true}, {"C", 3.0, true}}, top)
}

func TestKExceedsPopulation(t *testing.T) {
	tree := abcTree()

	top, err := tree.TopK(10)
	require.NoError(t, err)
	require.Len(t, top, 10)
	require.Equal(t, []string{"B", "C", "A"}, Keys(top))
	for _, s := range top[3:] {
		require.False(t, s.Filled)
		require.Empty(t, s.Key)
		require.True(t, math.IsInf(s.Value, -1))
	}

	bottom, err := tree.BottomK(5)
	require.NoError(t, err)
	require.Len(t, bottom, 5)
	require.Equal(t, []string{"A", "C", "B"}, Keys(bottom))
	require.True(t, math.IsInf(bottom[4].Value, 1))
}

func TestSelectEdgeCounts(t *testing.T) {
	tree := abcTree()

	_, err := tree.TopK(-1)
	require.ErrorIs(t, err, ErrInvalidCount)
	_, err = tree.BottomK(-3)
	require.ErrorIs(t, err, ErrInvalidCount)

	top, err := tree.TopK(0)
	require.NoError(t, err)
	require.Empty(t, top)

	_, err = tree.TopK(1 << 62)
	require.ErrorIs(t, err, ErrCountTooLarge)
	_, err = tree.BottomK(MaxCount + 1)
	require.ErrorIs(t, err, ErrCountTooLarge)

	widest, err := tree.TopK(MaxCount)
	require.NoError(t, err)
	require.Len(t, widest, MaxCount)
	require.Equal(t, []string{"B", "C", "A"}, Keys(widest))

	empty, err := New().BottomK(3)
	require.NoError(t, err)
	require.Len(t, empty, 3)
	require.Empty(t, Filled(empty))
}

func TestSelectNegativeScores(t *testing.T) {
	tree := New()
	tree.Insert("North", -2.5)
	tree.Insert("South", -0.5)
	tree.Insert("East", -7)

	top, err := tree.TopK(2)
	require.NoError(t, err)
	require.Equal(t, []string{"South", "North"}, Keys(top))

	bottom, err := tree.BottomK(1)
	require.NoError(t, err)
	require.Equal(t, []string{"East"}, Keys(bottom))
}

func TestSelectTiesFollowWalkOrder(t *testing.T) {
	tree := New()
	tree.Insert("M", 4)
	tree.Insert("A", 4)
	tree.Insert("Z", 4)

	// right-to-left walk visits Z first; equal scores never displace it
	top, err := tree.TopK(1)
	require.NoError(t, err)
	require.Equal(t, []string{"Z"}, Keys(top))

	all, err := tree.BottomK(3)
	require.NoError(t, err)
	require.Equal(t, []string{"Z", "M", "A"}, Keys(all))
}

func TestSelectSkipsNaN(t *testing.T) {
	tree := abcTree()
	tree.Insert("D", math.NaN())

	top, err := tree.TopK(4)
	require.NoError(t, err)
	require.Equal(t, []string{"B", "C", "A"}, Keys(top))
	require.False(t, top[3].Filled)
}

func TestSelectMatchesSort(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	tree := New()
	var values []float64
	for i := 0; i < 300; i++ {
		v := math.Round(rng.NormFloat64()*1000) / 100
		if tree.Insert(randomName(rng), v) {
			values = append(values, v)
		}
	}
	sort.Float64s(values)

	for _, k := range []int{1, 5, 17, 300, 400} {
		bottom, err := tree.BottomK(k)
		require.NoError(t, err)
		top, err := tree.TopK(k)
		require.NoError(t, err)

		n := min(k, len(values))
		require.Len(t, Filled(bottom), n)
		require.Len(t, Filled(top), n)
		for i := 0; i < n; i++ {
			require.Equal(t, values[i], bottom[i].Value)
			require.Equal(t, values[len(values)-1-i], top[i].Value)
		}
	}
}

func randomName(rng *rand.Rand) string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = byte('a' + rng.IntN(26))
	}
	return string(b)
}
