// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vesting

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"

	"github.com/vechain/projecttoken/perthing"
)

func TestFromParams(t *testing.T) {
	vs := FromParams(10, 1001, Params{
		LinearVestingDuration: 100,
		BlocksBeforeCliff:     5,
		CliffAmountPercentage: perthing.PermillFromPercent(20),
	})

	assert.Equal(t, uint32(15), vs.LinearVestingStartBlock)
	assert.Equal(t, uint32(100), vs.LinearVestingDuration)
	assert.Equal(t, uint64(200), vs.CliffAmount)
	assert.Equal(t, uint64(801), vs.PostCliffTotalAmount)
	assert.Equal(t, uint64(1001), vs.TotalAmount())
	assert.Equal(t, uint32(115), vs.EndBlock())
}

func TestLocks(t *testing.T) {
	vs := Schedule{
		LinearVestingStartBlock: 0,
		LinearVestingDuration:   100,
		CliffAmount:             20,
		PostCliffTotalAmount:    80,
	}

	tests := []struct {
		block    uint32
		locked   uint64
		finished bool
	}{
		{0, 80, false},
		{1, 79, false},
		{50, 40, false},
		{99, 0, false},
		{100, 0, true},
		{math.MaxUint32, 0, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.locked, vs.Locks(tt.block), "block %d", tt.block)
		assert.Equal(t, tt.finished, vs.IsFinished(tt.block), "block %d", tt.block)
	}

	vs.LinearVestingStartBlock = 10
	assert.Equal(t, uint64(100), vs.Locks(9))
}

func TestLocksZeroDuration(t *testing.T) {
	vs := Schedule{LinearVestingStartBlock: 10, CliffAmount: 5, PostCliffTotalAmount: 5}

	assert.Equal(t, uint64(10), vs.Locks(9))
	assert.Equal(t, uint64(0), vs.Locks(10))
	assert.True(t, vs.IsFinished(10))
}

func TestEndBlockSaturates(t *testing.T) {
	vs := Schedule{LinearVestingStartBlock: math.MaxUint32 - 1, LinearVestingDuration: 10, PostCliffTotalAmount: 10}
	assert.Equal(t, uint32(math.MaxUint32), vs.EndBlock())
	assert.Equal(t, uint64(1), vs.Locks(math.MaxUint32-1))
}

func TestMerge(t *testing.T) {
	vs := Schedule{LinearVestingStartBlock: 10, LinearVestingDuration: 10, CliffAmount: 10, PostCliffTotalAmount: 90}
	vs.Merge(Schedule{LinearVestingStartBlock: 50, LinearVestingDuration: 1, CliffAmount: 1, PostCliffTotalAmount: 9})

	assert.Equal(t, uint32(10), vs.LinearVestingStartBlock)
	assert.Equal(t, uint64(11), vs.CliffAmount)
	assert.Equal(t, uint64(99), vs.PostCliffTotalAmount)

	vs.Merge(Schedule{CliffAmount: math.MaxUint64})
	assert.Equal(t, uint64(math.MaxUint64), vs.TotalAmount())
}

func TestSourceOrdering(t *testing.T) {
	assert.True(t, InitialIssuanceSource().Less(SaleSource(0)))
	assert.False(t, SaleSource(0).Less(InitialIssuanceSource()))
	assert.True(t, SaleSource(1).Less(SaleSource(2)))
	assert.False(t, InitialIssuanceSource().Less(InitialIssuanceSource()))
	assert.Equal(t, "Sale(3)", SaleSource(3).String())
	assert.Equal(t, "InitialIssuance", InitialIssuanceSource().String())
}

func TestLocksNeverExceedTotal(t *testing.T) {
	f := fuzz.New().NilChance(0)
	for range 1000 {
		var (
			vs Schedule
			b  uint32
		)
		f.Fuzz(&vs)
		f.Fuzz(&b)

		locked := vs.Locks(b)
		if !assert.LessOrEqual(t, locked, vs.TotalAmount(), spew.Sdump(vs, b)) {
			return
		}
		if vs.IsFinished(b) {
			assert.Zero(t, locked, spew.Sdump(vs, b))
		}
		// locked amount never grows with time
		if b < math.MaxUint32 {
			assert.LessOrEqual(t, vs.Locks(b+1), locked, spew.Sdump(vs, b))
		}
	}
}
