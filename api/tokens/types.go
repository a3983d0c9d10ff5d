// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tokens

import (
	"github.com/vechain/projecttoken/builtin/token/account"
	"github.com/vechain/projecttoken/builtin/token/issuance"
	"github.com/vechain/projecttoken/builtin/token/sale"
	"github.com/vechain/projecttoken/builtin/token/split"
	"github.com/vechain/projecttoken/builtin/token/vesting"
	"github.com/vechain/projecttoken/thor"
)

type Token struct {
	ID                 uint64        `json:"id"`
	Symbol             thor.Bytes32  `json:"symbol"`
	TotalSupply        uint64        `json:"totalSupply"`
	TokensIssued       uint64        `json:"tokensIssued"`
	AccountsNumber     uint64        `json:"accountsNumber"`
	Permissioned       bool          `json:"permissioned"`
	Commitment         *thor.Bytes32 `json:"commitment,omitempty"`
	NextSaleID         uint32        `json:"nextSaleId"`
	NextRevenueSplitID uint32        `json:"nextRevenueSplitId"`
	Sale               *Sale         `json:"sale,omitempty"`
	RevenueSplit       *RevenueSplit `json:"revenueSplit,omitempty"`
}

type Sale struct {
	UnitPrice             uint64          `json:"unitPrice"`
	QuantityLeft          uint64          `json:"quantityLeft"`
	TokensSource          thor.Address    `json:"tokensSource"`
	StartBlock            uint32          `json:"startBlock"`
	EndBlock              uint32          `json:"endBlock"`
	CapPerMember          *uint64         `json:"capPerMember,omitempty"`
	VestingScheduleParams *vesting.Params `json:"vestingScheduleParams,omitempty"`
}

type RevenueSplit struct {
	ID                uint32 `json:"id"`
	StartBlock        uint32 `json:"startBlock"`
	EndBlock          uint32 `json:"endBlock"`
	AllocatedAmount   uint64 `json:"allocatedAmount"`
	DistributedAmount uint64 `json:"distributedAmount"`
}

type Offering struct {
	State sale.State `json:"state"`
	Sale  *Sale      `json:"sale,omitempty"`
}

type Patronage struct {
	BlockRate      uint64 `json:"blockRate"`      // perquintill per block
	YearlyRate     uint64 `json:"yearlyRate"`     // perquintill per year
	UnclaimedTally uint64 `json:"unclaimedTally"` // as of lastTallyBlock
	LastTallyBlock uint32 `json:"lastTallyBlock"`
	Unclaimed      uint64 `json:"unclaimed"`
}

type VestingSchedule struct {
	Source                  string `json:"source"`
	LinearVestingStartBlock uint32 `json:"linearVestingStartBlock"`
	LinearVestingDuration   uint32 `json:"linearVestingDuration"`
	CliffAmount             uint64 `json:"cliffAmount"`
	PostCliffTotalAmount    uint64 `json:"postCliffTotalAmount"`
	Locked                  uint64 `json:"locked"`
}

type Account struct {
	Address          thor.Address      `json:"address"`
	Amount           uint64            `json:"amount"`
	Transferable     uint64            `json:"transferable"`
	Unvested         uint64            `json:"unvested"`
	Staked           uint64            `json:"staked"`
	StakedSplitID    *uint32           `json:"stakedSplitId,omitempty"`
	BloatBond        uint64            `json:"bloatBond"`
	VestingSchedules []VestingSchedule `json:"vestingSchedules"`
}

func convertSale(s *sale.Sale) *Sale {
	if s == nil {
		return nil
	}
	return &Sale{
		UnitPrice:             s.UnitPrice,
		QuantityLeft:          s.QuantityLeft,
		TokensSource:          s.TokensSource,
		StartBlock:            s.StartBlock,
		EndBlock:              s.EndBlock(),
		CapPerMember:          s.CapPerMember,
		VestingScheduleParams: s.VestingScheduleParams,
	}
}

func convertSplit(s *split.Split) *RevenueSplit {
	if s == nil {
		return nil
	}
	return &RevenueSplit{
		ID:                s.ID,
		StartBlock:        s.StartBlock,
		EndBlock:          s.EndBlock(),
		AllocatedAmount:   s.AllocatedAmount,
		DistributedAmount: s.DistributedAmount,
	}
}

func convertToken(id uint64, t *issuance.Token) *Token {
	tk := &Token{
		ID:                 id,
		Symbol:             t.Symbol,
		TotalSupply:        t.TotalSupply,
		TokensIssued:       t.TokensIssued,
		AccountsNumber:     t.AccountsNumber,
		Permissioned:       t.TransferPolicy.Permissioned,
		NextSaleID:         t.NextSaleID,
		NextRevenueSplitID: t.NextRevenueSplitID,
		Sale:               convertSale(t.Sale),
		RevenueSplit:       convertSplit(t.RevenueSplit),
	}
	if t.TransferPolicy.Permissioned {
		commitment := t.TransferPolicy.Commitment
		tk.Commitment = &commitment
	}
	return tk
}

func convertAccount(addr thor.Address, acc *account.Account, now uint32) *Account {
	a := &Account{
		Address:          addr,
		Amount:           acc.Amount,
		Transferable:     acc.Transferable(now),
		Unvested:         acc.Unvested(now),
		Staked:           acc.Staked(now),
		BloatBond:        acc.BloatBond,
		VestingSchedules: make([]VestingSchedule, 0, len(acc.VestingSchedules)),
	}
	if acc.SplitStakingStatus != nil {
		id := acc.SplitStakingStatus.SplitID
		a.StakedSplitID = &id
	}
	for _, entry := range acc.VestingSchedules {
		schedule := entry.Schedule
		a.VestingSchedules = append(a.VestingSchedules, VestingSchedule{
			Source:                  entry.Source.String(),
			LinearVestingStartBlock: schedule.LinearVestingStartBlock,
			LinearVestingDuration:   schedule.LinearVestingDuration,
			CliffAmount:             schedule.CliffAmount,
			PostCliffTotalAmount:    schedule.PostCliffTotalAmount,
			Locked:                  schedule.Locks(now),
		})
	}
	return a
}
