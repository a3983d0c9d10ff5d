// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vesting

import (
	"fmt"
	"math"

	"github.com/vechain/projecttoken/perthing"
)

// SourceKind tells where a batch of vested tokens came from.
type SourceKind uint8

const (
	InitialIssuance SourceKind = iota
	Sale
)

// Source of tokens subject to vesting that were acquired by an account
// either through purchase or during initial issuance.
type Source struct {
	Kind   SourceKind
	SaleID uint32 // only meaningful for Sale
}

// InitialIssuanceSource returns the source of tokens allocated at issuance.
func InitialIssuanceSource() Source {
	return Source{Kind: InitialIssuance}
}

// SaleSource returns the source of tokens bought on the given sale.
func SaleSource(saleID uint32) Source {
	return Source{Kind: Sale, SaleID: saleID}
}

// Less orders sources: initial issuance first, then sales by id.
func (s Source) Less(other Source) bool {
	if s.Kind != other.Kind {
		return s.Kind < other.Kind
	}
	if s.Kind == InitialIssuance {
		return false
	}
	return s.SaleID < other.SaleID
}

func (s Source) String() string {
	if s.Kind == InitialIssuance {
		return "InitialIssuance"
	}
	return fmt.Sprintf("Sale(%d)", s.SaleID)
}

// Params describe a vesting schedule relative to some init block.
type Params struct {
	LinearVestingDuration uint32           `json:"linearVestingDuration" yaml:"linearVestingDuration"`
	BlocksBeforeCliff     uint32           `json:"blocksBeforeCliff" yaml:"blocksBeforeCliff"`
	CliffAmountPercentage perthing.Permill `json:"cliffAmountPercentage" yaml:"cliffAmountPercentage"` // initial, instantly vested amount once linear vesting begins
}

// Schedule locks an amount of tokens until LinearVestingStartBlock, then unlocks CliffAmount at once
// and PostCliffTotalAmount linearly over LinearVestingDuration blocks.
type Schedule struct {
	LinearVestingStartBlock uint32
	LinearVestingDuration   uint32
	CliffAmount             uint64
	PostCliffTotalAmount    uint64
}

// FromParams constructs a schedule for amount whose linear vesting starts at
// initBlock + params.BlocksBeforeCliff.
func FromParams(initBlock uint32, amount uint64, params Params) Schedule {
	cliff := params.CliffAmountPercentage.MulFloor(amount)
	return Schedule{
		LinearVestingStartBlock: saturatingAdd(initBlock, params.BlocksBeforeCliff),
		LinearVestingDuration:   params.LinearVestingDuration,
		CliffAmount:             cliff,
		PostCliffTotalAmount:    amount - cliff,
	}
}

// EndBlock returns the first block at which nothing is locked.
func (s *Schedule) EndBlock() uint32 {
	return saturatingAdd(s.LinearVestingStartBlock, s.LinearVestingDuration)
}

// Locks returns the amount still locked at block b.
func (s *Schedule) Locks(b uint32) uint64 {
	if s.LinearVestingStartBlock > b {
		return s.TotalAmount()
	}
	end := s.EndBlock()
	if end > b {
		remaining := perthing.PermillFromRational(uint64(end-b), uint64(s.LinearVestingDuration))
		return remaining.MulFloor(s.PostCliffTotalAmount)
	}
	return 0
}

// IsFinished returns whether every token of the schedule is unlocked at block b.
func (s *Schedule) IsFinished(b uint32) bool {
	return s.EndBlock() <= b
}

// TotalAmount returns the amount granted by the schedule.
func (s *Schedule) TotalAmount() uint64 {
	return saturatingAdd64(s.CliffAmount, s.PostCliffTotalAmount)
}

// Merge tops the schedule up with the amounts of other. Timing of s is kept.
func (s *Schedule) Merge(other Schedule) {
	s.CliffAmount = saturatingAdd64(s.CliffAmount, other.CliffAmount)
	s.PostCliffTotalAmount = saturatingAdd64(s.PostCliffTotalAmount, other.PostCliffTotalAmount)
}

func saturatingAdd(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}
	return a + b
}

func saturatingAdd64(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
