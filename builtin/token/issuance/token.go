// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package issuance

import (
	"math"
	"sort"

	"github.com/vechain/projecttoken/builtin/token/patronage"
	"github.com/vechain/projecttoken/builtin/token/reverts"
	"github.com/vechain/projecttoken/builtin/token/sale"
	"github.com/vechain/projecttoken/builtin/token/split"
	"github.com/vechain/projecttoken/builtin/token/vesting"
	"github.com/vechain/projecttoken/thor"
)

// Allocation is the initial grant of an account at issuance.
type Allocation struct {
	Amount                uint64          `json:"amount" yaml:"amount"`
	VestingScheduleParams *vesting.Params `json:"vestingScheduleParams,omitempty" yaml:"vestingScheduleParams,omitempty"`
}

// Params are the inputs of a token issuance.
type Params struct {
	InitialAllocation map[thor.Address]Allocation `json:"initialAllocation" yaml:"initialAllocation"`
	Symbol            thor.Bytes32                `json:"symbol" yaml:"symbol"`
	TransferPolicy    TransferPolicyParams        `json:"transferPolicy" yaml:"transferPolicy"`
	PatronageRate     patronage.YearlyRate        `json:"patronageRate" yaml:"patronageRate"`
}

// InitialAllocationBloatBond returns the JOY bond due for the accounts created at issuance.
func (p *Params) InitialAllocationBloatBond(bloatBond uint64) uint64 {
	n := uint64(len(p.InitialAllocation))
	if n != 0 && bloatBond > math.MaxUint64/n {
		return math.MaxUint64
	}
	return bloatBond * n
}

// SortedAllocation returns the initial allocation ordered by address.
func (p *Params) SortedAllocation() []thor.Address {
	addrs := make([]thor.Address, 0, len(p.InitialAllocation))
	for addr := range p.InitialAllocation {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		return addrs[i].Compare(addrs[j]) < 0
	})
	return addrs
}

// Token is the ledger entry of an issued token.
type Token struct {
	TotalSupply        uint64 // tokens issued minus tokens burned
	TokensIssued       uint64
	NextSaleID         uint32
	Sale               *sale.Sale `rlp:"nil"` // upcoming, ongoing, or ended with unsold tokens to recover
	TransferPolicy     TransferPolicy
	Symbol             thor.Bytes32
	Patronage          patronage.Info
	AccountsNumber     uint64
	RevenueSplit       *split.Split `rlp:"nil"`
	NextRevenueSplitID uint32
}

// FromParams builds the entry of a token issued at block now.
func FromParams(params *Params, now uint32, blocksPerYear uint32) *Token {
	var supply uint64
	for _, alloc := range params.InitialAllocation {
		supply = saturatingAdd(supply, alloc.Amount)
	}
	return &Token{
		TotalSupply:    supply,
		TokensIssued:   supply,
		TransferPolicy: params.TransferPolicy.Policy(),
		Symbol:         params.Symbol,
		Patronage: patronage.Info{
			Rate:           patronage.BlockRateFromYearly(params.PatronageRate, blocksPerYear),
			LastTallyBlock: now,
		},
	}
}

// IncreaseSupplyBy mints amount.
func (t *Token) IncreaseSupplyBy(amount uint64) {
	t.TokensIssued = saturatingAdd(t.TokensIssued, amount)
	t.TotalSupply = saturatingAdd(t.TotalSupply, amount)
}

// EnsureCanDecreaseSupplyBy checks amount can be burned.
func (t *Token) EnsureCanDecreaseSupplyBy(amount uint64) error {
	if t.TotalSupply < amount {
		return reverts.ErrInsufficientTotalSupplyToDecreaseByAmount
	}
	return nil
}

// DecreaseSupplyBy burns amount.
func (t *Token) DecreaseSupplyBy(amount uint64) {
	if amount >= t.TotalSupply {
		t.TotalSupply = 0
		return
	}
	t.TotalSupply -= amount
}

func (t *Token) IncrementAccountsNumber() {
	if t.AccountsNumber != math.MaxUint64 {
		t.AccountsNumber++
	}
}

func (t *Token) DecrementAccountsNumber() {
	if t.AccountsNumber != 0 {
		t.AccountsNumber--
	}
}

// UnclaimedPatronageAt returns the creator's credit at block b.
func (t *Token) UnclaimedPatronageAt(b uint32) uint64 {
	return t.Patronage.UnclaimedAt(t.TotalSupply, b)
}

// SetNewPatronageRateAt changes the rate at block b, keeping the credit accrued so far.
func (t *Token) SetNewPatronageRateAt(rate patronage.BlockRate, b uint32) {
	t.Patronage.SetRate(t.TotalSupply, rate, b)
}

// ClaimPatronageAt mints the credit accrued at block b and returns it. The caller credits the
// returned amount to the claimer's account.
func (t *Token) ClaimPatronageAt(b uint32) uint64 {
	credit := t.UnclaimedPatronageAt(b)
	t.IncreaseSupplyBy(credit)
	t.Patronage.ResetTally(b)
	return credit
}

// OfferingState returns the derived offering state at block now.
func (t *Token) OfferingState(now uint32) sale.Offering {
	return sale.OfferingOf(t.Sale, now)
}

// EnsureIdle checks no sale is upcoming or ongoing.
func (t *Token) EnsureIdle(now uint32) error {
	return sale.EnsureIdle(t.Sale, now)
}

// EnsureUpcomingSale returns the sale if it has not started yet.
func (t *Token) EnsureUpcomingSale(now uint32) (*sale.Sale, error) {
	return sale.EnsureUpcoming(t.Sale, now)
}

// EnsureSale returns the sale if it is active.
func (t *Token) EnsureSale(now uint32) (*sale.Sale, error) {
	return sale.EnsureOngoing(t.Sale, now)
}

// CurrentSaleID returns the id of the stored sale.
func (t *Token) CurrentSaleID() uint32 {
	if t.NextSaleID == 0 {
		return 0
	}
	return t.NextSaleID - 1
}

func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
