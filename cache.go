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
	"time"

	"github.com/cybrota/happiness/bst"
	"github.com/patrickmn/go-cache"
)

// Rank direction, used as the cache key prefix.
const (
	rankTop    = "top"
	rankBottom = "bottom"
)

// NewRankCache creates a cache for top/bottom-K selections. Expired entries
// are swept at half the TTL.
func NewRankCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, ttl/2)
}

func rankKey(direction string, count int) string {
	return fmt.Sprintf("%s:%d", direction, count)
}

func CacheRanking(c *cache.Cache, direction string, count int, slots []bst.Slot) {
	c.Set(rankKey(direction, count), cloneSlots(slots), cache.DefaultExpiration)
}

// GetRanking returns a copy of a cached selection, so callers may modify it.
func GetRanking(c *cache.Cache, direction string, count int) ([]bst.Slot, bool) {
	val, ok := c.Get(rankKey(direction, count))
	if !ok {
		return nil, false
	}
	return cloneSlots(val.([]bst.Slot)), true
}

func cloneSlots(slots []bst.Slot) []bst.Slot {
	out := make([]bst.Slot, len(slots))
	copy(out, slots)
	return out
}
