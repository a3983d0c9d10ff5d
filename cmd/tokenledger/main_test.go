// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/projecttoken/boltdb"
	"github.com/vechain/projecttoken/builtin/token"
	"github.com/vechain/projecttoken/builtin/token/reverts"
	"github.com/vechain/projecttoken/kv"
	"github.com/vechain/projecttoken/lvldb"
	"github.com/vechain/projecttoken/thor"
)

var (
	creator = thor.BytesToAddress([]byte("creator"))
	member  = thor.BytesToAddress([]byte("member"))
	buyer   = thor.BytesToAddress([]byte("buyer"))
)

type cliEnv struct {
	t       *testing.T
	dir     string
	dataDir string
	engine  string
}

func newCLIEnv(t *testing.T, engine string) *cliEnv {
	dir := t.TempDir()
	return &cliEnv{t, dir, filepath.Join(dir, "data"), engine}
}

func (e *cliEnv) run(block uint32, args ...string) error {
	base := []string{
		"tokenledger",
		"--data-dir", e.dataDir,
		"--db-engine", e.engine,
		"--verbosity", "0",
		"--block", strconv.FormatUint(uint64(block), 10),
	}
	return newApp().Run(append(base, args...))
}

func (e *cliEnv) mustRun(block uint32, args ...string) {
	require.NoError(e.t, e.run(block, args...), "%v", args)
}

func (e *cliEnv) file(name, content string) string {
	path := filepath.Join(e.dir, name)
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// ledger opens the ledger once commands have released the database.
func (e *cliEnv) ledger(fn func(l *token.Ledger)) {
	var (
		db  kv.Store
		err error
	)
	switch e.engine {
	case "bolt":
		db, err = boltdb.Open(filepath.Join(e.dataDir, "ledger.bolt"))
	default:
		db, err = lvldb.New(filepath.Join(e.dataDir, "ledger.db"), lvldb.Options{})
	}
	require.NoError(e.t, err)
	defer db.Close()

	l, err := token.New(db, thor.DefaultConfig(), 16)
	require.NoError(e.t, err)
	fn(l)
}

func amountOf(t *testing.T, l *token.Ledger, addr thor.Address) uint64 {
	acc, err := l.Account(0, addr)
	require.NoError(t, err)
	return acc.Amount
}

func TestCommands(t *testing.T) {
	env := newCLIEnv(t, "bolt")

	issueParams := env.file("issue.yaml", `
initialAllocation:
  "`+creator.String()+`":
    amount: 1000
`)
	saleParams := env.file("sale.yaml", `
tokensSource: "`+creator.String()+`"
unitPrice: 2
upperBoundQuantity: 200
duration: 10
`)

	env.mustRun(0, "fund", "--account", creator.String(), "--amount", "10000")
	env.mustRun(0, "issue", "--issuer", creator.String(), "--params", issueParams, "--symbol", "cli")
	env.mustRun(1, "transfer", "--token", "0", "--account", creator.String(), "--to", member.String(), "--amount", "100")

	err := env.run(1, "transfer", "--token", "0", "--account", member.String(), "--to", creator.String(), "--amount", "101")
	assert.ErrorIs(t, err, reverts.ErrInsufficientTransferrableBalance)
	assert.Error(t, env.run(1, "transfer", "--token", "0", "--account", member.String()))

	env.mustRun(5, "sale", "init", "--token", "0", "--params", saleParams)
	env.mustRun(5, "fund", "--account", buyer.String(), "--amount", "1000")
	env.mustRun(6, "sale", "purchase", "--token", "0", "--account", buyer.String(), "--amount", "50")
	env.mustRun(20, "sale", "recover", "--token", "0")
	env.mustRun(20, "burn", "--token", "0", "--account", member.String(), "--amount", "10")

	out := filepath.Join(env.dir, "inspect.txt")
	env.mustRun(20, "inspect", "--token", "0", "--out", out)
	dump, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(dump), "account "+buyer.String()+": transferable 50")
	assert.Contains(t, string(dump), "offering: idle")

	env.ledger(func(l *token.Ledger) {
		tk, err := l.Token(0)
		require.NoError(t, err)
		assert.Equal(t, uint64(990), tk.TotalSupply)
		assert.Equal(t, uint64(3), tk.AccountsNumber)
		assert.Nil(t, tk.Sale)

		id, ok, err := l.TokenBySymbol(thor.SymbolHash("CLI"))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, token.TokenID(0), id)

		assert.Equal(t, uint64(850), amountOf(t, l, creator))
		assert.Equal(t, uint64(90), amountOf(t, l, member))
		assert.Equal(t, uint64(50), amountOf(t, l, buyer))

		// two bonds and the sale proceeds
		joy, err := l.JoyBalance(creator)
		require.NoError(t, err)
		assert.Equal(t, uint64(10000-100-100+100), joy)
		joy, err = l.JoyBalance(buyer)
		require.NoError(t, err)
		assert.Equal(t, uint64(1000-100-100), joy)
	})

	// the snapshot moves the ledger to the other engine
	snapshot := filepath.Join(env.dir, "ledger.snapshot")
	env.mustRun(0, "export", "--out", snapshot)

	copied := newCLIEnv(t, "leveldb")
	copied.mustRun(0, "import", "--in", snapshot)
	assert.ErrorContains(t, copied.run(0, "import", "--in", snapshot), "target database is not empty")
	copied.ledger(func(l *token.Ledger) {
		assert.Equal(t, uint64(850), amountOf(t, l, creator))
		assert.Equal(t, uint64(90), amountOf(t, l, member))
	})
}

func TestWhitelistCommands(t *testing.T) {
	env := newCLIEnv(t, "leveldb")

	addresses := env.file("members.txt", member.String()+"\n"+buyer.String()+"\n")
	whitelist := filepath.Join(env.dir, "whitelist.yaml")
	env.mustRun(0, "whitelist", "build", "--addresses", addresses, "--out", whitelist)

	var wl whitelistFile
	require.NoError(t, readYAML(whitelist, &wl))

	issueParams := env.file("issue.yaml", `
initialAllocation:
  "`+creator.String()+`":
    amount: 10
transferPolicy:
  whitelist:
    commitment: "`+wl.Commitment.String()+`"
`)
	env.mustRun(0, "fund", "--account", creator.String(), "--amount", "100")
	env.mustRun(0, "fund", "--account", member.String(), "--amount", "100")
	env.mustRun(0, "issue", "--issuer", creator.String(), "--params", issueParams, "--symbol", "WL")

	err := env.run(0, "whitelist", "join", "--token", "0", "--account", creator.String(), "--whitelist", whitelist)
	assert.ErrorIs(t, err, reverts.ErrAccountAlreadyExists)
	err = env.run(0, "whitelist", "join", "--token", "0", "--account", thor.BytesToAddress([]byte("x")).String(), "--whitelist", whitelist)
	assert.ErrorIs(t, err, reverts.ErrMerkleProofNotProvided)
	env.mustRun(0, "whitelist", "join", "--token", "0", "--account", member.String(), "--whitelist", whitelist)

	env.ledger(func(l *token.Ledger) {
		tk, err := l.Token(0)
		require.NoError(t, err)
		assert.True(t, tk.TransferPolicy.Permissioned)
		assert.Equal(t, wl.Commitment, tk.TransferPolicy.Commitment)
		assert.Equal(t, uint64(2), tk.AccountsNumber)
	})
}

func TestUnsupportedEngine(t *testing.T) {
	env := newCLIEnv(t, "rocks")
	assert.ErrorContains(t, env.run(0, "fund", "--account", creator.String(), "--amount", "1"), "unsupported db engine")
}
