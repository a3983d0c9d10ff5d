// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

import (
	"github.com/qianbin/drlp"

	"github.com/vechain/projecttoken/kv"
	"github.com/vechain/projecttoken/thor"
)

// Key spaces of the ledger.
var (
	TokensBucket   = kv.Bucket("t") // token id => token
	AccountsBucket = kv.Bucket("a") // token id ++ address => account
	SymbolsBucket  = kv.Bucket("s") // symbol hash => token id
	JoyBucket      = kv.Bucket("j") // address => JOY balance

	NextTokenIDKey = []byte("n")
)

// TokenID identifies an issued token.
type TokenID uint64

// Bytes returns the rlp encoding of the id. Encodings are prefix free.
func (id TokenID) Bytes() []byte {
	return drlp.AppendUint(nil, uint64(id))
}

// AccountKey identifies the account of an address on a token.
type AccountKey struct {
	Token   TokenID
	Address thor.Address
}

func (k AccountKey) Bytes() []byte {
	return append(drlp.AppendUint(nil, uint64(k.Token)), k.Address[:]...)
}

// AccountsRange returns the key range of every account of the token.
func AccountsRange(token TokenID) kv.Range {
	return kv.PrefixRange(AccountsBucket.Key(token.Bytes()))
}

// AddressOfAccountKey extracts the address from a full account key of the token.
func AddressOfAccountKey(token TokenID, key []byte) (thor.Address, bool) {
	prefix := len(AccountsBucket) + len(token.Bytes())
	if len(key) != prefix+thor.AddressLength {
		return thor.Address{}, false
	}
	return thor.BytesToAddress(key[prefix:]), true
}

// TokenRange returns the key range of every token.
func TokenRange() kv.Range {
	return kv.PrefixRange([]byte(TokensBucket))
}
