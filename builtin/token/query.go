// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"github.com/vechain/projecttoken/builtin/token/account"
	"github.com/vechain/projecttoken/builtin/token/issuance"
	"github.com/vechain/projecttoken/builtin/token/sale"
	"github.com/vechain/projecttoken/thor"
)

// Token returns the entry of a token.
func (l *Ledger) Token(id TokenID) (token *issuance.Token, err error) {
	err = l.view(func(tx *txn) error {
		token, err = tx.token(id)
		return err
	})
	return
}

// TokenBySymbol returns the id of the token using symbol.
func (l *Ledger) TokenBySymbol(symbol thor.Bytes32) (id TokenID, ok bool, err error) {
	err = l.view(func(tx *txn) error {
		id, ok, err = tx.GetTokenBySymbol(symbol)
		return err
	})
	return
}

// Account returns the account of addr on a token.
func (l *Ledger) Account(id TokenID, addr thor.Address) (acc *account.Account, err error) {
	err = l.view(func(tx *txn) error {
		if _, err := tx.token(id); err != nil {
			return err
		}
		acc, err = tx.account(id, addr)
		return err
	})
	return
}

// TransferableBalance returns the amount addr can move at block now.
func (l *Ledger) TransferableBalance(id TokenID, addr thor.Address, now uint32) (uint64, error) {
	acc, err := l.Account(id, addr)
	if err != nil {
		return 0, err
	}
	return acc.Transferable(now), nil
}

// UnclaimedPatronage returns the patronage credit claimable at block now.
func (l *Ledger) UnclaimedPatronage(id TokenID, now uint32) (uint64, error) {
	token, err := l.Token(id)
	if err != nil {
		return 0, err
	}
	return token.UnclaimedPatronageAt(now), nil
}

// OfferingState returns the offering state of a token at block now.
func (l *Ledger) OfferingState(id TokenID, now uint32) (sale.Offering, error) {
	token, err := l.Token(id)
	if err != nil {
		return sale.Offering{}, err
	}
	return token.OfferingState(now), nil
}

// JoyBalance returns the JOY balance of addr.
func (l *Ledger) JoyBalance(addr thor.Address) (balance uint64, err error) {
	err = l.view(func(tx *txn) error {
		balance, err = tx.joy.Balance(addr)
		return err
	})
	return
}

// Accounts walks the accounts of a token in address order until cb returns false. cb must not
// call back into the ledger.
func (l *Ledger) Accounts(id TokenID, cb func(addr thor.Address, acc *account.Account) bool) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.backend.IterateAccounts(id, cb)
}
