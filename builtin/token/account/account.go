// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package account

import (
	"math"
	"sort"

	"github.com/vechain/projecttoken/builtin/token/reverts"
	"github.com/vechain/projecttoken/builtin/token/vesting"
)

// VestingEntry binds a vesting schedule to the source its tokens came from.
type VestingEntry struct {
	Source   vesting.Source
	Schedule vesting.Schedule
}

// StakingStatus is the account's participation in a revenue split.
type StakingStatus struct {
	SplitID uint32
	Amount  uint64
}

// Locks returns the amount locked by the stake at block b. A stake stays locked until exited.
func (s *StakingStatus) Locks(_ uint32) uint64 {
	return s.Amount
}

// SalePurchase tracks the amount bought by the account on a sale, against the sale's member cap.
type SalePurchase struct {
	SaleID uint32
	Amount uint64
}

// Account is the holdings of one address for one token.
type Account struct {
	VestingSchedules   []VestingEntry // ordered by source
	Amount             uint64         // total held, including unvested and staked tokens
	SplitStakingStatus *StakingStatus `rlp:"nil"`
	BloatBond          uint64         // JOY deposited on creation, refunded on removal
	LastSalePurchase   *SalePurchase  `rlp:"nil"`
}

// NewWithAmount creates an account holding a freely transferable amount.
func NewWithAmount(amount, bloatBond uint64) *Account {
	return &Account{
		Amount:    amount,
		BloatBond: bloatBond,
	}
}

// NewWithVesting creates an account holding the whole amount of a single vesting schedule.
func NewWithVesting(source vesting.Source, schedule vesting.Schedule, bloatBond uint64) *Account {
	return &Account{
		VestingSchedules: []VestingEntry{{Source: source, Schedule: schedule}},
		Amount:           schedule.TotalAmount(),
		BloatBond:        bloatBond,
	}
}

// IsEmpty returns whether the account holds no token.
func (a *Account) IsEmpty() bool {
	return a.Amount == 0
}

// Schedule returns the vesting schedule of the given source, if any.
func (a *Account) Schedule(source vesting.Source) (vesting.Schedule, bool) {
	if i, ok := a.find(source); ok {
		return a.VestingSchedules[i].Schedule, true
	}
	return vesting.Schedule{}, false
}

// Unvested returns the amount locked by vesting schedules at block b.
func (a *Account) Unvested(b uint32) uint64 {
	var sum uint64
	for i := range a.VestingSchedules {
		locked := a.VestingSchedules[i].Schedule.Locks(b)
		if sum > math.MaxUint64-locked {
			return math.MaxUint64
		}
		sum += locked
	}
	return sum
}

// Staked returns the amount locked by the revenue split stake at block b.
func (a *Account) Staked(b uint32) uint64 {
	if a.SplitStakingStatus == nil {
		return 0
	}
	return a.SplitStakingStatus.Locks(b)
}

// Transferable returns the amount free to move at block b. Vested and staked locks overlap.
func (a *Account) Transferable(b uint32) uint64 {
	locked := max(a.Unvested(b), a.Staked(b))
	if locked >= a.Amount {
		return 0
	}
	return a.Amount - locked
}

// EnsureCanTransfer checks the account can move amount at block b.
func (a *Account) EnsureCanTransfer(b uint32, amount uint64) error {
	if a.Transferable(b) < amount {
		return reverts.ErrInsufficientTransferrableBalance
	}
	return nil
}

// EnsureCanAddOrUpdateVestingSchedule checks a schedule from source can be recorded at block b.
// When the table is full it returns a finished schedule's source to evict, which is nil if the
// source already has an entry and nothing needs to go.
func (a *Account) EnsureCanAddOrUpdateVestingSchedule(b uint32, source vesting.Source, maxSchedules uint32) (*vesting.Source, error) {
	_, exists := a.find(source)
	cleanupRequired := len(a.VestingSchedules) >= int(maxSchedules)

	var candidate *vesting.Source
	for i := range a.VestingSchedules {
		if a.VestingSchedules[i].Schedule.IsFinished(b) {
			src := a.VestingSchedules[i].Source
			candidate = &src
			break
		}
	}

	if !exists && cleanupRequired && candidate == nil {
		return nil, reverts.ErrMaxVestingSchedulesPerAccountPerTokenReached
	}
	if cleanupRequired {
		return candidate, nil
	}
	return nil, nil
}

// AddOrUpdateVestingSchedule merges schedule into the entry of source or inserts it, evicting
// cleanup first when given. The account amount grows by the schedule total.
func (a *Account) AddOrUpdateVestingSchedule(source vesting.Source, schedule vesting.Schedule, cleanup *vesting.Source) {
	if i, ok := a.find(source); ok {
		a.VestingSchedules[i].Schedule.Merge(schedule)
	} else {
		if cleanup != nil {
			a.removeSchedule(*cleanup)
		}
		a.insertSchedule(VestingEntry{Source: source, Schedule: schedule})
	}
	a.IncreaseAmountBy(schedule.TotalAmount())
}

// IncreaseAmountBy adds to the held amount, saturating.
func (a *Account) IncreaseAmountBy(amount uint64) {
	if a.Amount > math.MaxUint64-amount {
		a.Amount = math.MaxUint64
		return
	}
	a.Amount += amount
}

// DecreaseAmountBy subtracts from the held amount, floored at zero.
func (a *Account) DecreaseAmountBy(amount uint64) {
	if amount >= a.Amount {
		a.Amount = 0
		return
	}
	a.Amount -= amount
}

// Stake records the participation in a revenue split.
func (a *Account) Stake(splitID uint32, amount uint64) {
	a.SplitStakingStatus = &StakingStatus{SplitID: splitID, Amount: amount}
}

// Unstake releases the revenue split stake.
func (a *Account) Unstake() {
	a.SplitStakingStatus = nil
}

// SalePurchasedAmount returns the amount bought so far on the given sale.
func (a *Account) SalePurchasedAmount(saleID uint32) uint64 {
	if a.LastSalePurchase == nil || a.LastSalePurchase.SaleID != saleID {
		return 0
	}
	return a.LastSalePurchase.Amount
}

// RecordSalePurchase accumulates a purchase made on the given sale.
func (a *Account) RecordSalePurchase(saleID uint32, amount uint64) {
	total := a.SalePurchasedAmount(saleID)
	if total > math.MaxUint64-amount {
		total = math.MaxUint64
	} else {
		total += amount
	}
	a.LastSalePurchase = &SalePurchase{SaleID: saleID, Amount: total}
}

func (a *Account) find(source vesting.Source) (int, bool) {
	i := a.searchSchedule(source)
	if i < len(a.VestingSchedules) && a.VestingSchedules[i].Source == source {
		return i, true
	}
	return i, false
}

func (a *Account) searchSchedule(source vesting.Source) int {
	return sort.Search(len(a.VestingSchedules), func(i int) bool {
		return !a.VestingSchedules[i].Source.Less(source)
	})
}

func (a *Account) insertSchedule(entry VestingEntry) {
	i := a.searchSchedule(entry.Source)
	a.VestingSchedules = append(a.VestingSchedules, VestingEntry{})
	copy(a.VestingSchedules[i+1:], a.VestingSchedules[i:])
	a.VestingSchedules[i] = entry
}

func (a *Account) removeSchedule(source vesting.Source) {
	if i, ok := a.find(source); ok {
		a.VestingSchedules = append(a.VestingSchedules[:i], a.VestingSchedules[i+1:]...)
	}
}
