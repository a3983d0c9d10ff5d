// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/vechain/projecttoken/builtin/token/account"
	"github.com/vechain/projecttoken/thor"
)

// IterateAccounts walks the committed accounts of the token in address order.
// The walk stops when cb returns false.
func (b *Backend) IterateAccounts(id TokenID, cb func(addr thor.Address, a *account.Account) bool) error {
	iter := b.Iterate(AccountsRange(id))
	defer iter.Release()

	for iter.Next() {
		addr, ok := AddressOfAccountKey(id, iter.Key())
		if !ok {
			continue
		}
		var a account.Account
		if err := rlp.DecodeBytes(iter.Value(), &a); err != nil {
			return errors.Wrap(err, "decode account")
		}
		if !cb(addr, &a) {
			break
		}
	}
	return iter.Error()
}

// IterateTokens walks the committed tokens in key order. raw is the rlp encoded token.
func (b *Backend) IterateTokens(cb func(id TokenID, raw []byte) bool) error {
	iter := b.Iterate(TokenRange())
	defer iter.Release()

	for iter.Next() {
		var id uint64
		if err := rlp.DecodeBytes(iter.Key()[len(TokensBucket):], &id); err != nil {
			return errors.Wrap(err, "decode token id")
		}
		if !cb(TokenID(id), iter.Value()) {
			break
		}
	}
	return iter.Error()
}
