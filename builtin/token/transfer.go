// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"github.com/vechain/projecttoken/builtin/token/account"
	"github.com/vechain/projecttoken/builtin/token/merkle"
	"github.com/vechain/projecttoken/builtin/token/reverts"
	"github.com/vechain/projecttoken/builtin/token/transfers"
	"github.com/vechain/projecttoken/thor"
)

// Transfer moves tokens from src to every output. Missing destinations are created with a
// bloat bond paid by src, which a permissioned token does not allow.
func (l *Ledger) Transfer(src thor.Address, id TokenID, outputs transfers.Transfers, now uint32) error {
	logger.Debug("transferring", "token", id, "src", src, "outputs", outputs.Len(), "block", now)

	return l.execute("transfer", func(tx *txn) (apply, error) {
		return tx.transfer(id, src, src, outputs, false, now)
	})
}

// IssuerTransfer moves tokens from src on behalf of the token issuer. Being the whitelist
// authority, the issuer may create destinations under a permissioned policy and pays their
// bloat bonds.
func (l *Ledger) IssuerTransfer(issuer thor.Address, id TokenID, src thor.Address, outputs transfers.Transfers, now uint32) error {
	logger.Debug("issuer transferring", "token", id, "issuer", issuer, "src", src, "outputs", outputs.Len(), "block", now)

	return l.execute("issuer_transfer", func(tx *txn) (apply, error) {
		return tx.transfer(id, src, issuer, outputs, true, now)
	})
}

func (tx *txn) transfer(
	id TokenID,
	src thor.Address,
	bondPayer thor.Address,
	outputs transfers.Transfers,
	byIssuer bool,
	now uint32,
) (apply, error) {
	if outputs.Len() == 0 {
		return nil, reverts.ErrTransferDestinationIsZero
	}
	token, err := tx.token(id)
	if err != nil {
		return nil, err
	}
	if _, ok := outputs[src]; ok {
		return nil, reverts.ErrSameSourceAndDestinationLocations
	}
	srcAcc, err := tx.account(id, src)
	if err != nil {
		return nil, err
	}
	validated, err := transfers.Validate(outputs, func(addr thor.Address) (bool, error) {
		return tx.HasAccount(id, addr)
	})
	if err != nil {
		return nil, err
	}
	created := validated.NonExistingCount()
	if created != 0 && token.TransferPolicy.Permissioned && !byIssuer {
		return nil, reverts.ErrAccountInformationDoesNotExist
	}
	// an overflowing batch exceeds any balance
	total, ok := validated.TotalAmount()
	if !ok {
		return nil, reverts.ErrInsufficientTransferrableBalance
	}
	if err := srcAcc.EnsureCanTransfer(now, total); err != nil {
		return nil, err
	}
	bond := tx.bondsFor(created)
	if err := tx.joy.EnsureCanTransfer(bondPayer, bond, reverts.ErrInsufficientBalanceForBloatBond); err != nil {
		return nil, err
	}

	return func() error {
		srcAcc.DecreaseAmountBy(total)
		if err := tx.SetAccount(id, src, srcAcc); err != nil {
			return err
		}
		for _, out := range validated {
			var acc *account.Account
			if out.Existing {
				if acc, err = tx.account(id, out.Account); err != nil {
					return err
				}
				acc.IncreaseAmountBy(out.Payment.Amount)
			} else {
				acc = account.NewWithAmount(out.Payment.Amount, tx.config.BloatBond)
				token.IncrementAccountsNumber()
			}
			if err := tx.SetAccount(id, out.Account, acc); err != nil {
				return err
			}
		}
		if err := tx.lockBond(bondPayer, bond); err != nil {
			return err
		}
		if created == 0 {
			return nil
		}
		return tx.SetToken(id, token)
	}, nil
}

// Burn destroys amount of the account's transferable tokens.
func (l *Ledger) Burn(id TokenID, addr thor.Address, amount uint64, now uint32) error {
	logger.Debug("burning", "token", id, "account", addr, "amount", amount, "block", now)

	return l.execute("burn", func(tx *txn) (apply, error) {
		token, err := tx.token(id)
		if err != nil {
			return nil, err
		}
		acc, err := tx.account(id, addr)
		if err != nil {
			return nil, err
		}
		if err := acc.EnsureCanTransfer(now, amount); err != nil {
			return nil, err
		}
		if err := token.EnsureCanDecreaseSupplyBy(amount); err != nil {
			return nil, err
		}

		return func() error {
			acc.DecreaseAmountBy(amount)
			token.DecreaseSupplyBy(amount)
			if err := tx.SetAccount(id, addr, acc); err != nil {
				return err
			}
			return tx.SetToken(id, token)
		}, nil
	})
}

// JoinWhitelist creates an empty account for a whitelisted address of a permissioned token.
// The address pays the bloat bond.
func (l *Ledger) JoinWhitelist(addr thor.Address, id TokenID, proof merkle.Proof, now uint32) error {
	logger.Debug("joining whitelist", "token", id, "account", addr, "block", now)

	return l.execute("join_whitelist", func(tx *txn) (apply, error) {
		token, err := tx.token(id)
		if err != nil {
			return nil, err
		}
		if !token.TransferPolicy.Permissioned {
			return nil, reverts.ErrCannotJoinWhitelistInPermissionlessMode
		}
		if exists, err := tx.HasAccount(id, addr); err != nil {
			return nil, err
		} else if exists {
			return nil, reverts.ErrAccountAlreadyExists
		}
		if err := token.TransferPolicy.EnsureMember(addr, proof); err != nil {
			return nil, err
		}
		bond := tx.config.BloatBond
		if err := tx.joy.EnsureCanTransfer(addr, bond, reverts.ErrInsufficientBalanceForBloatBond); err != nil {
			return nil, err
		}

		return func() error {
			if err := tx.SetAccount(id, addr, account.NewWithAmount(0, bond)); err != nil {
				return err
			}
			if err := tx.lockBond(addr, bond); err != nil {
				return err
			}
			token.IncrementAccountsNumber()
			return tx.SetToken(id, token)
		}, nil
	})
}

// DustAccount removes an empty account and refunds its bloat bond to the account owner. Anyone
// may dust an empty account of a permissionless token, only the owner otherwise.
func (l *Ledger) DustAccount(id TokenID, caller, addr thor.Address, now uint32) error {
	logger.Debug("dusting account", "token", id, "caller", caller, "account", addr, "block", now)

	return l.execute("dust_account", func(tx *txn) (apply, error) {
		token, err := tx.token(id)
		if err != nil {
			return nil, err
		}
		acc, err := tx.account(id, addr)
		if err != nil {
			return nil, err
		}
		owner := caller == addr
		if !owner && token.TransferPolicy.Permissioned {
			return nil, reverts.ErrAttemptToRemoveNonOwnedAccountUnderPermissionedMode
		}
		if !acc.IsEmpty() {
			if owner {
				return nil, reverts.ErrAttemptToRemoveNonEmptyAccount
			}
			return nil, reverts.ErrAttemptToRemoveNonOwnedAndNonEmptyAccount
		}

		return func() error {
			tx.DeleteAccount(id, addr)
			if err := tx.releaseBond(addr, acc.BloatBond); err != nil {
				return err
			}
			token.DecrementAccountsNumber()
			return tx.SetToken(id, token)
		}, nil
	})
}
