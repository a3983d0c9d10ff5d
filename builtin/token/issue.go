// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"github.com/vechain/projecttoken/builtin/token/account"
	"github.com/vechain/projecttoken/builtin/token/issuance"
	"github.com/vechain/projecttoken/builtin/token/patronage"
	"github.com/vechain/projecttoken/builtin/token/reverts"
	"github.com/vechain/projecttoken/builtin/token/vesting"
	"github.com/vechain/projecttoken/thor"
)

// IssueToken creates a token and the accounts of its initial allocation. The issuer pays the
// bloat bond of every allocated account.
func (l *Ledger) IssueToken(issuer thor.Address, params *issuance.Params, now uint32) (TokenID, error) {
	logger.Debug("issuing token", "issuer", issuer, "symbol", params.Symbol, "accounts", len(params.InitialAllocation), "block", now)

	var id TokenID
	err := l.execute("issue", func(tx *txn) (apply, error) {
		if _, used, err := tx.GetTokenBySymbol(params.Symbol); err != nil {
			return nil, err
		} else if used {
			return nil, reverts.ErrTokenSymbolAlreadyInUse
		}
		bond := params.InitialAllocationBloatBond(tx.config.BloatBond)
		if err := tx.joy.EnsureCanTransfer(issuer, bond, reverts.ErrInsufficientBalanceForBloatBond); err != nil {
			return nil, err
		}
		next, err := tx.NextTokenID()
		if err != nil {
			return nil, err
		}

		return func() error {
			id = next
			token := issuance.FromParams(params, now, tx.config.BlocksPerYear)
			for _, addr := range params.SortedAllocation() {
				alloc := params.InitialAllocation[addr]
				var acc *account.Account
				if alloc.VestingScheduleParams != nil {
					schedule := vesting.FromParams(now, alloc.Amount, *alloc.VestingScheduleParams)
					acc = account.NewWithVesting(vesting.InitialIssuanceSource(), schedule, tx.config.BloatBond)
				} else {
					acc = account.NewWithAmount(alloc.Amount, tx.config.BloatBond)
				}
				if err := tx.SetAccount(id, addr, acc); err != nil {
					return err
				}
				token.IncrementAccountsNumber()
			}
			if err := tx.lockBond(issuer, bond); err != nil {
				return err
			}
			if err := tx.SetSymbol(params.Symbol, id); err != nil {
				return err
			}
			if err := tx.SetNextTokenID(id + 1); err != nil {
				return err
			}
			return tx.SetToken(id, token)
		}, nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("issued token", "token", id, "symbol", params.Symbol)
	return id, nil
}

// DeissueToken removes a token with no accounts and no supply left.
func (l *Ledger) DeissueToken(id TokenID) error {
	logger.Debug("deissuing token", "token", id)

	return l.execute("deissue", func(tx *txn) (apply, error) {
		token, err := tx.token(id)
		if err != nil {
			return nil, err
		}
		if token.AccountsNumber != 0 {
			return nil, reverts.ErrCannotDeissueTokenWithOutstandingAccounts
		}
		if token.TotalSupply != 0 {
			return nil, reverts.ErrTokenIssuanceIsNotZero
		}

		return func() error {
			tx.DeleteSymbol(token.Symbol)
			tx.DeleteToken(id)
			return nil
		}, nil
	})
}

// ChangeToPermissionless lifts the whitelist of a token.
func (l *Ledger) ChangeToPermissionless(id TokenID) error {
	return l.execute("permissionless", func(tx *txn) (apply, error) {
		token, err := tx.token(id)
		if err != nil {
			return nil, err
		}

		return func() error {
			token.TransferPolicy = issuance.Permissionless()
			return tx.SetToken(id, token)
		}, nil
	})
}

// ReducePatronageRateBy lowers the yearly patronage rate of a token at block now. The credit
// accrued under the previous rate is kept.
func (l *Ledger) ReducePatronageRateBy(id TokenID, decrement patronage.YearlyRate, now uint32) error {
	logger.Debug("reducing patronage rate", "token", id, "decrement", decrement, "block", now)

	return l.execute("reduce_patronage", func(tx *txn) (apply, error) {
		token, err := tx.token(id)
		if err != nil {
			return nil, err
		}
		delta := patronage.BlockRateFromYearly(decrement, tx.config.BlocksPerYear)
		if delta > token.Patronage.Rate {
			return nil, reverts.ErrReductionExceedingPatronageRate
		}

		return func() error {
			token.SetNewPatronageRateAt(token.Patronage.Rate.SaturatingSub(delta), now)
			return tx.SetToken(id, token)
		}, nil
	})
}

// ClaimPatronageCredit mints the accrued patronage credit into the claimer's account and
// returns it.
func (l *Ledger) ClaimPatronageCredit(id TokenID, claimer thor.Address, now uint32) (uint64, error) {
	var credit uint64
	err := l.execute("claim_patronage", func(tx *txn) (apply, error) {
		token, err := tx.token(id)
		if err != nil {
			return nil, err
		}
		acc, err := tx.account(id, claimer)
		if err != nil {
			return nil, err
		}

		return func() error {
			credit = token.ClaimPatronageAt(now)
			acc.IncreaseAmountBy(credit)
			if err := tx.SetAccount(id, claimer, acc); err != nil {
				return err
			}
			return tx.SetToken(id, token)
		}, nil
	})
	if err != nil {
		return 0, err
	}

	logger.Debug("claimed patronage", "token", id, "claimer", claimer, "amount", credit, "block", now)
	return credit, nil
}

// MintJoy credits JOY to addr. It stands in for deposits into the settlement asset.
func (l *Ledger) MintJoy(addr thor.Address, amount uint64) error {
	return l.execute("mint_joy", func(tx *txn) (apply, error) {
		return func() error {
			return tx.joy.Mint(addr, amount)
		}, nil
	})
}
