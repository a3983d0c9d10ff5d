// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package cache

import "sync/atomic"

// Counters is a point in time reading of a Stats.
type Counters struct {
	Hit, Miss int64

	// Changed is set when the hit rate moved by at least a permill since the previous reading.
	Changed bool
}

// HitRate returns the share of lookups served from the cache.
func (c Counters) HitRate() float64 {
	if lookups := c.Hit + c.Miss; lookups > 0 {
		return float64(c.Hit) / float64(lookups)
	}
	return 0
}

// Stats counts cache lookups. It is safe for concurrent use.
type Stats struct {
	hit, miss atomic.Int64
	permill   atomic.Int32
}

func (s *Stats) Hit() int64  { return s.hit.Add(1) }
func (s *Stats) Miss() int64 { return s.miss.Add(1) }

// Read returns the current counters.
func (s *Stats) Read() Counters {
	c := Counters{Hit: s.hit.Load(), Miss: s.miss.Load()}
	rate := int32(c.HitRate() * 1000)
	c.Changed = s.permill.Swap(rate) != rate
	return c
}
