// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/projecttoken/builtin/token/issuance"
	"github.com/vechain/projecttoken/builtin/token/patronage"
	"github.com/vechain/projecttoken/builtin/token/reverts"
	"github.com/vechain/projecttoken/perthing"
	"github.com/vechain/projecttoken/thor"
)

func yearly(percent uint32) patronage.YearlyRate {
	return patronage.YearlyRate(perthing.PermillFromPercent(percent))
}

func TestPatronage(t *testing.T) {
	l := newLedger(t, testConfig())
	fund(t, l, issuer, 100)
	id, err := l.IssueToken(issuer, &issuance.Params{
		InitialAllocation: map[thor.Address]issuance.Allocation{alice: {Amount: 1000}},
		Symbol:            thor.SymbolHash("PAT"),
		PatronageRate:     yearly(10),
	}, 0)
	require.NoError(t, err)

	unclaimed := func(b uint32) uint64 {
		v, err := l.UnclaimedPatronage(id, b)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, uint64(0), unclaimed(0))
	assert.Equal(t, uint64(50), unclaimed(500))
	assert.Equal(t, uint64(100), unclaimed(1000))

	_, err = l.ClaimPatronageCredit(id, bob, 500)
	assert.ErrorIs(t, err, reverts.ErrAccountInformationDoesNotExist)

	credit, err := l.ClaimPatronageCredit(id, alice, 500)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), credit)
	assert.Equal(t, uint64(1050), amountOf(t, l, id, alice))
	assert.Equal(t, uint64(1050), tokenOf(t, l, id).TotalSupply)
	assert.Equal(t, uint64(1050), tokenOf(t, l, id).TokensIssued)
	assert.Equal(t, uint64(0), unclaimed(500))

	// claiming twice at the same block yields nothing more
	credit, err = l.ClaimPatronageCredit(id, alice, 500)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), credit)

	assert.ErrorIs(t, l.ReducePatronageRateBy(id, yearly(11), 600), reverts.ErrReductionExceedingPatronageRate)

	// 100 blocks at 1% per 100 blocks over a supply of 1050 left in the tally
	require.NoError(t, l.ReducePatronageRateBy(id, yearly(10), 600))
	token := tokenOf(t, l, id)
	assert.Equal(t, patronage.BlockRate(0), token.Patronage.Rate)
	assert.Equal(t, uint64(10), token.Patronage.UnclaimedTally)
	assert.Equal(t, uint64(10), unclaimed(600))
	assert.Equal(t, uint64(10), unclaimed(5000))
}

func TestPartialPatronageReduction(t *testing.T) {
	l := newLedger(t, testConfig())
	fund(t, l, issuer, 100)
	id, err := l.IssueToken(issuer, &issuance.Params{
		InitialAllocation: map[thor.Address]issuance.Allocation{alice: {Amount: 1000}},
		Symbol:            thor.SymbolHash("PAT"),
		PatronageRate:     yearly(10),
	}, 0)
	require.NoError(t, err)

	require.NoError(t, l.ReducePatronageRateBy(id, yearly(6), 0))
	rate := tokenOf(t, l, id).Patronage.Rate
	assert.Equal(t, patronage.BlockRateFromYearly(yearly(4), 1000), rate)

	v, err := l.UnclaimedPatronage(id, 1000)
	require.NoError(t, err)
	assert.Equal(t, uint64(40), v)
}
