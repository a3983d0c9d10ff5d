// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"github.com/vechain/projecttoken/builtin/token/reverts"
	"github.com/vechain/projecttoken/builtin/token/split"
	"github.com/vechain/projecttoken/thor"
)

// IssueRevenueSplit moves allocation JOY from allocationSource to the treasury and opens a split
// over [start, start+duration). A nil start opens it as soon as allowed.
func (l *Ledger) IssueRevenueSplit(
	id TokenID,
	start *uint32,
	duration uint32,
	allocationSource thor.Address,
	allocation uint64,
	now uint32,
) (uint32, error) {
	logger.Debug("issuing revenue split", "token", id, "source", allocationSource, "allocation", allocation, "block", now)

	var splitID uint32
	err := l.execute("issue_split", func(tx *txn) (apply, error) {
		token, err := tx.token(id)
		if err != nil {
			return nil, err
		}
		if token.RevenueSplit != nil {
			return nil, reverts.ErrRevenueSplitAlreadyActive
		}
		if duration < tx.config.MinRevenueSplitDuration {
			return nil, reverts.ErrRevenueSplitDurationTooShort
		}
		earliest := saturatingAdd32(now, tx.config.MinRevenueSplitTimeToStart)
		startBlock := earliest
		if start != nil {
			startBlock = *start
		}
		if startBlock < earliest {
			return nil, reverts.ErrRevenueSplitTimeToStartTooShort
		}
		if allocation == 0 {
			return nil, reverts.ErrCannotIssueSplitWithZeroAllocationAmount
		}
		if err := tx.joy.EnsureCanTransfer(allocationSource, allocation, reverts.ErrInsufficientJoyBalance); err != nil {
			return nil, err
		}

		return func() error {
			splitID = token.NextRevenueSplitID
			token.NextRevenueSplitID++
			token.RevenueSplit = split.New(splitID, startBlock, duration, allocation)
			if err := tx.joy.Transfer(allocationSource, tx.config.Treasury, allocation); err != nil {
				return err
			}
			return tx.SetToken(id, token)
		}, nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("issued revenue split", "token", id, "split", splitID)
	return splitID, nil
}

// ParticipateInSplit stakes amount tokens of the account in the ongoing split and pays the
// dividend, its pro rata share of the allocation. A stake left from a previous split is replaced.
func (l *Ledger) ParticipateInSplit(id TokenID, addr thor.Address, amount uint64, now uint32) (uint64, error) {
	var dividend uint64
	err := l.execute("participate_split", func(tx *txn) (apply, error) {
		token, err := tx.token(id)
		if err != nil {
			return nil, err
		}
		sp, err := split.EnsureOngoing(token.RevenueSplit, now)
		if err != nil {
			return nil, err
		}
		if amount == 0 {
			return nil, reverts.ErrCannotParticipateInSplitWithZeroAmount
		}
		acc, err := tx.account(id, addr)
		if err != nil {
			return nil, err
		}
		if st := acc.SplitStakingStatus; st != nil && st.SplitID == sp.ID {
			return nil, reverts.ErrUserAlreadyParticipating
		}
		if amount > acc.Amount {
			return nil, reverts.ErrInsufficientBalanceForSplitParticipation
		}

		return func() error {
			dividend = sp.Dividend(amount, token.TotalSupply)
			sp.Distribute(dividend)
			acc.Stake(sp.ID, amount)
			if err := tx.SetAccount(id, addr, acc); err != nil {
				return err
			}
			if err := tx.joy.Transfer(tx.config.Treasury, addr, dividend); err != nil {
				return err
			}
			return tx.SetToken(id, token)
		}, nil
	})
	if err != nil {
		return 0, err
	}

	logger.Debug("joined revenue split", "token", id, "account", addr, "staked", amount, "dividend", dividend, "block", now)
	return dividend, nil
}

// ExitRevenueSplit releases the account's split stake. A stake in the current split is only
// released once the split ended.
func (l *Ledger) ExitRevenueSplit(id TokenID, addr thor.Address, now uint32) error {
	return l.execute("exit_split", func(tx *txn) (apply, error) {
		token, err := tx.token(id)
		if err != nil {
			return nil, err
		}
		acc, err := tx.account(id, addr)
		if err != nil {
			return nil, err
		}
		st := acc.SplitStakingStatus
		if st == nil {
			return nil, reverts.ErrUserNotParticipantInAnySplit
		}
		if sp := token.RevenueSplit; sp != nil && sp.ID == st.SplitID && !sp.IsEnded(now) {
			return nil, reverts.ErrRevenueSplitDidNotEnd
		}

		return func() error {
			acc.Unstake()
			return tx.SetAccount(id, addr, acc)
		}, nil
	})
}

// FinalizeRevenueSplit closes an ended split and pays the undistributed allocation to recipient.
func (l *Ledger) FinalizeRevenueSplit(id TokenID, recipient thor.Address, now uint32) (uint64, error) {
	var leftover uint64
	err := l.execute("finalize_split", func(tx *txn) (apply, error) {
		token, err := tx.token(id)
		if err != nil {
			return nil, err
		}
		sp, err := split.EnsureEnded(token.RevenueSplit, now)
		if err != nil {
			return nil, err
		}

		return func() error {
			leftover = sp.Leftover()
			token.RevenueSplit = nil
			if err := tx.joy.Transfer(tx.config.Treasury, recipient, leftover); err != nil {
				return err
			}
			return tx.SetToken(id, token)
		}, nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("finalized revenue split", "token", id, "recipient", recipient, "leftover", leftover)
	return leftover, nil
}
