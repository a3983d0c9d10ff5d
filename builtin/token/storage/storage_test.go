// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/projecttoken/boltdb"
	"github.com/vechain/projecttoken/builtin/token/account"
	"github.com/vechain/projecttoken/builtin/token/issuance"
	"github.com/vechain/projecttoken/builtin/token/sale"
	"github.com/vechain/projecttoken/builtin/token/vesting"
	"github.com/vechain/projecttoken/kv"
	"github.com/vechain/projecttoken/lvldb"
	"github.com/vechain/projecttoken/thor"
)

func newMemBackend(t *testing.T) *Backend {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	b, err := NewBackend(db, 16)
	require.NoError(t, err)
	return b
}

func stores(t *testing.T) map[string]kv.Store {
	mem, err := lvldb.NewMem()
	require.NoError(t, err)
	bolt, err := boltdb.Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		mem.Close()
		bolt.Close()
	})
	return map[string]kv.Store{"leveldb": mem, "bolt": bolt}
}

func TestTokenRoundTrip(t *testing.T) {
	for name, db := range stores(t) {
		t.Run(name, func(t *testing.T) {
			backend, err := NewBackend(db, 16)
			require.NoError(t, err)

			start := uint32(10)
			capPerMember := uint64(5)
			token := &issuance.Token{
				TotalSupply:    100,
				TokensIssued:   120,
				NextSaleID:     1,
				TransferPolicy: issuance.Permissioned(thor.Blake2b([]byte("whitelist"))),
				Symbol:         thor.SymbolHash("JOY"),
				Sale: &sale.Sale{
					UnitPrice:    2,
					QuantityLeft: 40,
					StartBlock:   start,
					Duration:     5,
					CapPerMember: &capPerMember,
				},
			}

			s := New(backend.NewStage())
			require.NoError(t, s.SetToken(1, token))
			require.NoError(t, s.Stage().Commit())

			got, err := New(backend.NewStage()).GetToken(1)
			require.NoError(t, err)
			assert.Equal(t, token, got)

			missing, err := New(backend.NewStage()).GetToken(2)
			require.NoError(t, err)
			assert.Nil(t, missing)
		})
	}
}

func TestAccountRoundTrip(t *testing.T) {
	backend := newMemBackend(t)
	addr := thor.BytesToAddress([]byte("alice"))

	acc := account.NewWithVesting(vesting.InitialIssuanceSource(), vesting.Schedule{
		LinearVestingStartBlock: 0,
		LinearVestingDuration:   100,
		CliffAmount:             20,
		PostCliffTotalAmount:    80,
	}, 100)
	acc.Stake(3, 50)
	acc.RecordSalePurchase(0, 7)

	s := New(backend.NewStage())
	require.NoError(t, s.SetAccount(1, addr, acc))
	require.NoError(t, s.Stage().Commit())

	s = New(backend.NewStage())
	got, err := s.GetAccount(1, addr)
	require.NoError(t, err)
	assert.Equal(t, acc, got)

	ok, err := s.HasAccount(1, addr)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.HasAccount(2, addr)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStageIsolation(t *testing.T) {
	backend := newMemBackend(t)

	s := New(backend.NewStage())
	require.NoError(t, s.SetNextTokenID(5))

	// not visible before commit
	id, err := New(backend.NewStage()).NextTokenID()
	require.NoError(t, err)
	assert.Equal(t, TokenID(0), id)

	// staged value visible within the stage
	id, err = s.NextTokenID()
	require.NoError(t, err)
	assert.Equal(t, TokenID(5), id)

	require.NoError(t, s.Stage().Commit())
	id, err = New(backend.NewStage()).NextTokenID()
	require.NoError(t, err)
	assert.Equal(t, TokenID(5), id)
}

func TestStageDiscard(t *testing.T) {
	backend := newMemBackend(t)
	symbol := thor.SymbolHash("ABC")

	s := New(backend.NewStage())
	assert.False(t, s.Stage().Dirty())
	require.NoError(t, s.SetSymbol(symbol, 1))
	assert.True(t, s.Stage().Dirty())

	id, ok, err := s.GetTokenBySymbol(symbol)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, TokenID(1), id)

	// an uncommitted stage leaves the store untouched
	_, ok, err = New(backend.NewStage()).GetTokenBySymbol(symbol)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteAndCache(t *testing.T) {
	backend := newMemBackend(t)
	addr := thor.BytesToAddress([]byte("bob"))

	s := New(backend.NewStage())
	require.NoError(t, s.SetAccount(7, addr, account.NewWithAmount(10, 1)))
	require.NoError(t, s.Stage().Commit())

	// warm the cache
	got, err := New(backend.NewStage()).GetAccount(7, addr)
	require.NoError(t, err)
	require.NotNil(t, got)

	s = New(backend.NewStage())
	s.DeleteAccount(7, addr)
	assert.True(t, s.Stage().Dirty())
	require.NoError(t, s.Stage().Commit())

	got, err = New(backend.NewStage()).GetAccount(7, addr)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err := backend.Store().Has(AccountsBucket.Key(AccountKey{7, addr}.Bytes()))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIterateAccounts(t *testing.T) {
	backend := newMemBackend(t)

	s := New(backend.NewStage())
	for i := 1; i <= 3; i++ {
		addr := thor.BytesToAddress([]byte{byte(i)})
		require.NoError(t, s.SetAccount(1, addr, account.NewWithAmount(uint64(i), 1)))
	}
	// other tokens must not leak into the walk
	require.NoError(t, s.SetAccount(0, thor.BytesToAddress([]byte{9}), account.NewWithAmount(9, 1)))
	require.NoError(t, s.SetAccount(128, thor.BytesToAddress([]byte{9}), account.NewWithAmount(9, 1)))
	require.NoError(t, s.Stage().Commit())

	var amounts []uint64
	require.NoError(t, backend.IterateAccounts(1, func(_ thor.Address, a *account.Account) bool {
		amounts = append(amounts, a.Amount)
		return true
	}))
	assert.Equal(t, []uint64{1, 2, 3}, amounts)

	amounts = nil
	require.NoError(t, backend.IterateAccounts(1, func(_ thor.Address, a *account.Account) bool {
		amounts = append(amounts, a.Amount)
		return false
	}))
	assert.Equal(t, []uint64{1}, amounts)
}

func TestIterateTokens(t *testing.T) {
	backend := newMemBackend(t)

	s := New(backend.NewStage())
	for _, id := range []TokenID{0, 1, 300} {
		require.NoError(t, s.SetToken(id, &issuance.Token{TotalSupply: uint64(id)}))
	}
	require.NoError(t, s.Stage().Commit())

	var ids []TokenID
	require.NoError(t, backend.IterateTokens(func(id TokenID, _ []byte) bool {
		ids = append(ids, id)
		return true
	}))
	assert.ElementsMatch(t, []TokenID{0, 1, 300}, ids)
}

func TestAddressOfAccountKey(t *testing.T) {
	addr := thor.BytesToAddress([]byte("carol"))
	key := AccountsBucket.Key(AccountKey{300, addr}.Bytes())

	got, ok := AddressOfAccountKey(300, key)
	assert.True(t, ok)
	assert.Equal(t, addr, got)

	_, ok = AddressOfAccountKey(300, key[:len(key)-1])
	assert.False(t, ok)
}
