// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tokens_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/projecttoken/api/tokens"
	"github.com/vechain/projecttoken/builtin/token"
	"github.com/vechain/projecttoken/builtin/token/issuance"
	"github.com/vechain/projecttoken/builtin/token/patronage"
	"github.com/vechain/projecttoken/builtin/token/sale"
	"github.com/vechain/projecttoken/builtin/token/vesting"
	"github.com/vechain/projecttoken/lvldb"
	"github.com/vechain/projecttoken/perthing"
	"github.com/vechain/projecttoken/thor"
)

var (
	issuer = thor.BytesToAddress([]byte("issuer"))
	alice  = thor.BytesToAddress([]byte("alice"))
	bob    = thor.BytesToAddress([]byte("bob"))
)

func initTokenServer(t *testing.T) *httptest.Server {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := thor.DefaultConfig()
	cfg.BlocksPerYear = 1000
	cfg.BloatBond = 10
	ledger, err := token.New(db, cfg, 64)
	require.NoError(t, err)

	params := &issuance.Params{
		InitialAllocation: map[thor.Address]issuance.Allocation{
			alice: {
				Amount: 100,
				VestingScheduleParams: &vesting.Params{
					LinearVestingDuration: 100,
					CliffAmountPercentage: perthing.PermillFromPercent(20),
				},
			},
			bob: {Amount: 900},
		},
		Symbol:        thor.SymbolHash("API"),
		PatronageRate: patronage.YearlyRate(perthing.PermillFromPercent(10)),
	}
	require.NoError(t, ledger.MintJoy(issuer, params.InitialAllocationBloatBond(cfg.BloatBond)))
	_, err = ledger.IssueToken(issuer, params, 0)
	require.NoError(t, err)

	start := uint32(20)
	_, err = ledger.InitTokenSale(0, sale.Params{
		TokensSource:       bob,
		UnitPrice:          3,
		UpperBoundQuantity: 50,
		StartsAt:           &start,
		Duration:           10,
	}, 0)
	require.NoError(t, err)

	router := mux.NewRouter()
	tokens.New(ledger, 0, 0).Mount(router, "/tokens")
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts
}

func httpGet(t *testing.T, url string) ([]byte, int) {
	res, err := http.Get(url) // nolint:gosec
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return body, res.StatusCode
}

func TestTokens(t *testing.T) {
	ts := initTokenServer(t)

	for name, tt := range map[string]func(*testing.T, *httptest.Server){
		"getToken":         getToken,
		"getTokenBySymbol": getTokenBySymbol,
		"getOffering":      getOffering,
		"getPatronage":     getPatronage,
		"getAccount":       getAccount,
		"getAccounts":      getAccounts,
		"badRequests":      badRequests,
	} {
		t.Run(name, func(t *testing.T) {
			tt(t, ts)
		})
	}
}

func getToken(t *testing.T, ts *httptest.Server) {
	body, code := httpGet(t, ts.URL+"/tokens/0")
	require.Equal(t, http.StatusOK, code, string(body))

	var tk tokens.Token
	require.NoError(t, json.Unmarshal(body, &tk))
	assert.Equal(t, uint64(0), tk.ID)
	assert.Equal(t, thor.SymbolHash("API"), tk.Symbol)
	assert.Equal(t, uint64(1000), tk.TotalSupply)
	assert.Equal(t, uint64(1000), tk.TokensIssued)
	assert.Equal(t, uint64(2), tk.AccountsNumber)
	assert.False(t, tk.Permissioned)
	assert.Nil(t, tk.Commitment)
	require.NotNil(t, tk.Sale)
	assert.Equal(t, uint32(30), tk.Sale.EndBlock)
	assert.Nil(t, tk.RevenueSplit)

	_, code = httpGet(t, ts.URL+"/tokens/7")
	assert.Equal(t, http.StatusNotFound, code)
}

func getTokenBySymbol(t *testing.T, ts *httptest.Server) {
	body, code := httpGet(t, ts.URL+"/tokens/symbol/api")
	require.Equal(t, http.StatusOK, code, string(body))

	var tk tokens.Token
	require.NoError(t, json.Unmarshal(body, &tk))
	assert.Equal(t, uint64(0), tk.ID)

	_, code = httpGet(t, ts.URL+"/tokens/symbol/NOPE")
	assert.Equal(t, http.StatusNotFound, code)
}

func getOffering(t *testing.T, ts *httptest.Server) {
	tests := []struct {
		block string
		state string
	}{
		{"", "upcomingSale"},
		{"19", "upcomingSale"},
		{"20", "sale"},
		{"30", "idle"},
	}
	for _, tt := range tests {
		body, code := httpGet(t, ts.URL+"/tokens/0/offering?block="+tt.block)
		require.Equal(t, http.StatusOK, code, string(body))

		var o map[string]any
		require.NoError(t, json.Unmarshal(body, &o))
		assert.Equal(t, tt.state, o["state"], "block %q", tt.block)
	}
}

func getPatronage(t *testing.T, ts *httptest.Server) {
	body, code := httpGet(t, ts.URL+"/tokens/0/patronage?block=500")
	require.Equal(t, http.StatusOK, code, string(body))

	var p tokens.Patronage
	require.NoError(t, json.Unmarshal(body, &p))
	assert.Equal(t, uint64(100_000_000_000_000), p.BlockRate)
	assert.Equal(t, uint64(100_000_000_000_000_000), p.YearlyRate)
	// half a year at 10%
	assert.Equal(t, uint64(50), p.Unclaimed)
}

func getAccount(t *testing.T, ts *httptest.Server) {
	body, code := httpGet(t, ts.URL+"/tokens/0/accounts/"+alice.String()+"?block=50")
	require.Equal(t, http.StatusOK, code, string(body))

	var acc tokens.Account
	require.NoError(t, json.Unmarshal(body, &acc))
	assert.Equal(t, alice, acc.Address)
	assert.Equal(t, uint64(100), acc.Amount)
	assert.Equal(t, uint64(60), acc.Transferable)
	assert.Equal(t, uint64(40), acc.Unvested)
	assert.Equal(t, uint64(10), acc.BloatBond)
	require.Len(t, acc.VestingSchedules, 1)
	assert.Equal(t, "InitialIssuance", acc.VestingSchedules[0].Source)
	assert.Equal(t, uint64(40), acc.VestingSchedules[0].Locked)

	_, code = httpGet(t, ts.URL+"/tokens/0/accounts/"+issuer.String())
	assert.Equal(t, http.StatusNotFound, code)
}

func getAccounts(t *testing.T, ts *httptest.Server) {
	body, code := httpGet(t, ts.URL+"/tokens/0/accounts")
	require.Equal(t, http.StatusOK, code, string(body))

	var accs []tokens.Account
	require.NoError(t, json.Unmarshal(body, &accs))
	require.Len(t, accs, 2)
	assert.Equal(t, -1, accs[0].Address.Compare(accs[1].Address))

	body, code = httpGet(t, ts.URL+"/tokens/0/accounts?limit=1")
	require.Equal(t, http.StatusOK, code, string(body))
	require.NoError(t, json.Unmarshal(body, &accs))
	assert.Len(t, accs, 1)

	_, code = httpGet(t, ts.URL+"/tokens/9/accounts")
	assert.Equal(t, http.StatusNotFound, code)
}

func badRequests(t *testing.T, ts *httptest.Server) {
	for _, path := range []string{
		"/tokens/abc",
		"/tokens/0/offering?block=-1",
		"/tokens/0/patronage?block=x",
		"/tokens/0/accounts/0xnotanaddress",
		"/tokens/0/accounts?limit=0",
	} {
		_, code := httpGet(t, ts.URL+path)
		assert.Equal(t, http.StatusBadRequest, code, path)
	}
}
