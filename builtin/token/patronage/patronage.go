// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package patronage accrues the creator's continuous minting credit. Nothing is accumulated in the
// background: the credit is always recomputed from the tally anchor block and the current block.
package patronage

import (
	"math"

	"github.com/vechain/projecttoken/perthing"
)

// YearlyRate is the fraction of the supply minted to the creator per year.
type YearlyRate perthing.Permill

// BlockRate is the fraction of the supply minted to the creator per block.
type BlockRate perthing.Perquintill

// BlockRateFromYearly converts a yearly rate into a per block rate at the maximal precision.
func BlockRateFromYearly(r YearlyRate, blocksPerYear uint32) BlockRate {
	return BlockRate(perthing.PerquintillFromRational(
		uint64(r),
		uint64(perthing.PermillAccuracy)*uint64(blocksPerYear),
	))
}

// ForPeriod returns the fraction accrued over the given number of blocks, saturating at one.
func (r BlockRate) ForPeriod(blocks uint32) perthing.Perquintill {
	parts := uint64(r)
	if blocks != 0 && parts > math.MaxUint64/uint64(blocks) {
		return perthing.PerquintillFromParts(math.MaxUint64)
	}
	return perthing.PerquintillFromParts(parts * uint64(blocks))
}

// ToYearlyRepresentation returns the fraction accrued over one year.
func (r BlockRate) ToYearlyRepresentation(blocksPerYear uint32) perthing.Perquintill {
	return r.ForPeriod(blocksPerYear)
}

// SaturatingSub returns r - other, floored at zero.
func (r BlockRate) SaturatingSub(other BlockRate) BlockRate {
	return BlockRate(perthing.Perquintill(r).SaturatingSub(perthing.Perquintill(other)))
}

// Info is the patronage configuration of a token.
type Info struct {
	Rate           BlockRate
	UnclaimedTally uint64 // credit accrued before LastTallyBlock
	LastTallyBlock uint32
}

// UnclaimedAt computes: period * rate * supply + tally
func (i *Info) UnclaimedAt(supply uint64, b uint32) uint64 {
	var blocks uint32
	if b > i.LastTallyBlock {
		blocks = b - i.LastTallyBlock
	}
	accrued := i.Rate.ForPeriod(blocks).MulFloor(supply)
	if accrued > math.MaxUint64-i.UnclaimedTally {
		return math.MaxUint64
	}
	return accrued + i.UnclaimedTally
}

// SetRate freezes the credit accrued under the old rate into the tally, then replaces the rate.
func (i *Info) SetRate(supply uint64, rate BlockRate, b uint32) {
	i.UnclaimedTally = i.UnclaimedAt(supply, b)
	i.LastTallyBlock = b
	i.Rate = rate
}

// ResetTally marks every credit up to block b as claimed.
func (i *Info) ResetTally(b uint32) {
	i.UnclaimedTally = 0
	i.LastTallyBlock = b
}
