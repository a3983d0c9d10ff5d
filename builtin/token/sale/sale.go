// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package sale

import (
	"math"

	"github.com/vechain/projecttoken/builtin/token/reverts"
	"github.com/vechain/projecttoken/builtin/token/vesting"
	"github.com/vechain/projecttoken/thor"
)

// Params are the inputs of a token sale.
type Params struct {
	TokensSource          thor.Address    `json:"tokensSource" yaml:"tokensSource"`
	UnitPrice             uint64          `json:"unitPrice" yaml:"unitPrice"` // JOY per token
	UpperBoundQuantity    uint64          `json:"upperBoundQuantity" yaml:"upperBoundQuantity"`
	StartsAt              *uint32         `json:"startsAt,omitempty" yaml:"startsAt,omitempty"` // defaults to the current block
	Duration              uint32          `json:"duration" yaml:"duration"`
	VestingScheduleParams *vesting.Params `json:"vestingScheduleParams,omitempty" yaml:"vestingScheduleParams,omitempty"`
	CapPerMember          *uint64         `json:"capPerMember,omitempty" yaml:"capPerMember,omitempty"`
	Metadata              []byte          `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Sale is an upcoming, ongoing or ended sale still holding unsold tokens.
type Sale struct {
	UnitPrice             uint64
	QuantityLeft          uint64
	TokensSource          thor.Address
	StartBlock            uint32
	Duration              uint32
	VestingScheduleParams *vesting.Params `rlp:"nil"`
	CapPerMember          *uint64         `rlp:"nil"`
}

// FromParams validates params at block now and builds the sale.
func FromParams(params Params, now uint32) (*Sale, error) {
	start := now
	if params.StartsAt != nil {
		start = *params.StartsAt
	}
	if start < now {
		return nil, reverts.ErrSaleStartingBlockInThePast
	}
	if params.Duration == 0 {
		return nil, reverts.ErrSaleDurationIsZero
	}
	if params.UpperBoundQuantity == 0 {
		return nil, reverts.ErrSaleUpperBoundQuantityIsZero
	}
	if params.CapPerMember != nil && *params.CapPerMember == 0 {
		return nil, reverts.ErrSaleCapPerMemberIsZero
	}
	if params.UnitPrice == 0 {
		return nil, reverts.ErrSaleUnitPriceIsZero
	}

	return &Sale{
		UnitPrice:             params.UnitPrice,
		QuantityLeft:          params.UpperBoundQuantity,
		TokensSource:          params.TokensSource,
		StartBlock:            start,
		Duration:              params.Duration,
		VestingScheduleParams: params.VestingScheduleParams,
		CapPerMember:          params.CapPerMember,
	}, nil
}

// EndBlock returns the first block after the sale.
func (s *Sale) EndBlock() uint32 {
	if s.StartBlock > math.MaxUint32-s.Duration {
		return math.MaxUint32
	}
	return s.StartBlock + s.Duration
}

// VestingScheduleFor returns the schedule of amount bought on the sale. Without vesting params
// everything unlocks at the end of the sale, otherwise the params apply from the end block.
func (s *Sale) VestingScheduleFor(amount uint64) vesting.Schedule {
	if s.VestingScheduleParams == nil {
		return vesting.Schedule{
			LinearVestingStartBlock: s.EndBlock(),
			CliffAmount:             amount,
		}
	}
	return vesting.FromParams(s.EndBlock(), amount, *s.VestingScheduleParams)
}

// Price returns the JOY cost of amount tokens.
func (s *Sale) Price(amount uint64) (uint64, error) {
	if amount != 0 && s.UnitPrice > math.MaxUint64/amount {
		return 0, reverts.ErrUnitPriceTimesAmountOverflow
	}
	return s.UnitPrice * amount, nil
}

// EnsureCanPurchase checks the sale limits for a buyer who already bought purchased tokens.
func (s *Sale) EnsureCanPurchase(amount, purchased uint64) error {
	if amount == 0 {
		return reverts.ErrSalePurchaseAmountIsZero
	}
	if amount > s.QuantityLeft {
		return reverts.ErrNotEnoughTokensOnSale
	}
	if s.CapPerMember != nil && (purchased > math.MaxUint64-amount || purchased+amount > *s.CapPerMember) {
		return reverts.ErrSalePurchaseCapExceeded
	}
	return nil
}
