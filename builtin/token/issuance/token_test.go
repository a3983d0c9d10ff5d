// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package issuance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/projecttoken/builtin/token/merkle"
	"github.com/vechain/projecttoken/builtin/token/patronage"
	"github.com/vechain/projecttoken/builtin/token/reverts"
	"github.com/vechain/projecttoken/builtin/token/sale"
	"github.com/vechain/projecttoken/perthing"
	"github.com/vechain/projecttoken/thor"
)

var (
	alice = thor.BytesToAddress([]byte("alice"))
	bob   = thor.BytesToAddress([]byte("bob"))
	carol = thor.BytesToAddress([]byte("carol"))
)

func TestFromParams(t *testing.T) {
	params := &Params{
		InitialAllocation: map[thor.Address]Allocation{
			alice: {Amount: 600},
			bob:   {Amount: 400},
		},
		Symbol:        thor.SymbolHash("abc"),
		PatronageRate: patronage.YearlyRate(perthing.PermillFromPercent(10)),
	}

	token := FromParams(params, 7, 1000)
	assert.Equal(t, uint64(1000), token.TotalSupply)
	assert.Equal(t, uint64(1000), token.TokensIssued)
	assert.Equal(t, uint32(7), token.Patronage.LastTallyBlock)
	assert.Equal(t, patronage.BlockRate(100_000_000_000_000), token.Patronage.Rate)
	assert.False(t, token.TransferPolicy.Permissioned)
	assert.Equal(t, sale.Idle, token.OfferingState(7).State)

	assert.Equal(t, uint64(200), params.InitialAllocationBloatBond(100))
	assert.Equal(t, uint64(math.MaxUint64), params.InitialAllocationBloatBond(math.MaxUint64))
	// BytesToAddress right aligns, so the shorter name has the smaller address
	assert.Equal(t, []thor.Address{bob, alice}, params.SortedAllocation())
}

func TestSupply(t *testing.T) {
	token := &Token{}
	token.IncreaseSupplyBy(100)
	require.NoError(t, token.EnsureCanDecreaseSupplyBy(100))
	assert.ErrorIs(t, token.EnsureCanDecreaseSupplyBy(101), reverts.ErrInsufficientTotalSupplyToDecreaseByAmount)

	token.DecreaseSupplyBy(30)
	assert.Equal(t, uint64(70), token.TotalSupply)
	assert.Equal(t, uint64(100), token.TokensIssued)
	assert.LessOrEqual(t, token.TotalSupply, token.TokensIssued)

	token.IncreaseSupplyBy(math.MaxUint64)
	assert.Equal(t, uint64(math.MaxUint64), token.TokensIssued)

	token.DecrementAccountsNumber()
	assert.Equal(t, uint64(0), token.AccountsNumber)
	token.IncrementAccountsNumber()
	token.IncrementAccountsNumber()
	token.DecrementAccountsNumber()
	assert.Equal(t, uint64(1), token.AccountsNumber)
}

func TestPatronage(t *testing.T) {
	token := FromParams(&Params{
		InitialAllocation: map[thor.Address]Allocation{alice: {Amount: 1000}},
		PatronageRate:     patronage.YearlyRate(perthing.PermillFromPercent(10)),
	}, 0, 1000)

	assert.Equal(t, uint64(50), token.UnclaimedPatronageAt(500))

	credit := token.ClaimPatronageAt(500)
	assert.Equal(t, uint64(50), credit)
	assert.Equal(t, uint64(1050), token.TotalSupply)
	assert.Equal(t, uint64(0), token.UnclaimedPatronageAt(500))
	// claiming twice at the same block yields nothing
	assert.Equal(t, uint64(0), token.ClaimPatronageAt(500))

	token.SetNewPatronageRateAt(0, 600)
	credit = token.UnclaimedPatronageAt(600)
	assert.Equal(t, uint64(10), credit)
	// rate zero stops accrual
	assert.Equal(t, credit, token.UnclaimedPatronageAt(10_000))
}

func TestTransferPolicy(t *testing.T) {
	members := []thor.Address{alice, bob}
	root, proofs := merkle.BuildTree(merkle.AddressLeaves(members))

	open := TransferPolicyParams{}.Policy()
	assert.ErrorIs(t, open.EnsureMember(alice, proofs[0]), reverts.ErrCannotJoinWhitelistInPermissionlessMode)

	closed := TransferPolicyParams{Whitelist: &WhitelistParams{Commitment: root}}.Policy()
	assert.True(t, closed.Permissioned)
	assert.NoError(t, closed.EnsureMember(alice, proofs[0]))
	assert.NoError(t, closed.EnsureMember(bob, proofs[1]))
	assert.ErrorIs(t, closed.EnsureMember(carol, proofs[0]), reverts.ErrMerkleProofVerificationFailure)
	assert.ErrorIs(t, closed.EnsureMember(alice, nil), reverts.ErrMerkleProofNotProvided)
}

func TestSaleState(t *testing.T) {
	token := &Token{}
	require.NoError(t, token.EnsureIdle(0))

	start := uint32(10)
	s, err := sale.FromParams(sale.Params{UnitPrice: 1, UpperBoundQuantity: 1, StartsAt: &start, Duration: 10}, 0)
	require.NoError(t, err)
	token.Sale = s
	token.NextSaleID++
	assert.Equal(t, uint32(0), token.CurrentSaleID())

	assert.ErrorIs(t, token.EnsureIdle(0), reverts.ErrTokenIssuanceNotInIdleState)
	_, err = token.EnsureUpcomingSale(0)
	assert.NoError(t, err)
	_, err = token.EnsureSale(15)
	assert.NoError(t, err)
	assert.NoError(t, token.EnsureIdle(20))
}
