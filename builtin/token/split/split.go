// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package split holds the revenue split state of a token. A split distributes a JOY allocation
// to token holders pro rata to the amount they stake while it is ongoing.
package split

import (
	"math"

	"github.com/vechain/projecttoken/builtin/token/reverts"
	"github.com/vechain/projecttoken/perthing"
)

// Split is the active revenue split of a token.
type Split struct {
	ID                uint32
	StartBlock        uint32
	Duration          uint32
	AllocatedAmount   uint64
	DistributedAmount uint64
}

// New creates a split over [start, start+duration).
func New(id, start, duration uint32, allocation uint64) *Split {
	return &Split{
		ID:              id,
		StartBlock:      start,
		Duration:        duration,
		AllocatedAmount: allocation,
	}
}

// EndBlock returns the first block after the split.
func (s *Split) EndBlock() uint32 {
	if s.StartBlock > math.MaxUint32-s.Duration {
		return math.MaxUint32
	}
	return s.StartBlock + s.Duration
}

// IsOngoing returns whether stakes are accepted at block b.
func (s *Split) IsOngoing(b uint32) bool {
	return s.StartBlock <= b && b < s.EndBlock()
}

// IsEnded returns whether the split is over at block b.
func (s *Split) IsEnded(b uint32) bool {
	return b >= s.EndBlock()
}

// Leftover returns the allocation not distributed yet.
func (s *Split) Leftover() uint64 {
	if s.DistributedAmount >= s.AllocatedAmount {
		return 0
	}
	return s.AllocatedAmount - s.DistributedAmount
}

// Dividend returns the share of the allocation earned by staking amount out of supply.
func (s *Split) Dividend(amount, supply uint64) uint64 {
	return min(perthing.MulDivFloor(s.AllocatedAmount, amount, supply), s.Leftover())
}

// Distribute records a paid dividend.
func (s *Split) Distribute(dividend uint64) {
	if s.DistributedAmount > math.MaxUint64-dividend {
		s.DistributedAmount = math.MaxUint64
		return
	}
	s.DistributedAmount += dividend
}

// EnsureOngoing returns s if stakes are accepted at block b.
func EnsureOngoing(s *Split, b uint32) (*Split, error) {
	if s == nil || !s.IsOngoing(b) {
		return nil, reverts.ErrRevenueSplitNotOngoing
	}
	return s, nil
}

// EnsureEnded returns s if it exists and is over at block b.
func EnsureEnded(s *Split, b uint32) (*Split, error) {
	if s == nil {
		return nil, reverts.ErrRevenueSplitNotActiveForToken
	}
	if !s.IsEnded(b) {
		return nil, reverts.ErrRevenueSplitDidNotEnd
	}
	return s, nil
}
