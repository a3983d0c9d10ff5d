// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package token implements the project token ledger: issuance, transfers, sales, patronage and
// revenue splits over a key value store.
//
// Every mutating operation runs in two phases. The check phase reads entries and returns a
// revert error without writing anything. The apply phase mutates entries on a stage that is
// committed to the store in a single bulk. A failed operation leaves the store untouched.
package token

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/vechain/projecttoken/builtin/token/account"
	"github.com/vechain/projecttoken/builtin/token/issuance"
	"github.com/vechain/projecttoken/builtin/token/joy"
	"github.com/vechain/projecttoken/builtin/token/reverts"
	"github.com/vechain/projecttoken/builtin/token/storage"
	"github.com/vechain/projecttoken/kv"
	"github.com/vechain/projecttoken/log"
	"github.com/vechain/projecttoken/thor"
)

var logger = log.WithContext("pkg", "token")

// TokenID identifies an issued token.
type TokenID = storage.TokenID

// Ledger applies token operations to a store. Operations are serialized, queries may run
// concurrently between them.
type Ledger struct {
	mu      sync.RWMutex
	backend *storage.Backend
	config  thor.Config
}

// New creates a ledger over store.
func New(store kv.Store, config thor.Config, cacheSize int) (*Ledger, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	backend, err := storage.NewBackend(store, cacheSize)
	if err != nil {
		return nil, err
	}
	return &Ledger{backend: backend, config: config}, nil
}

// Config returns the ledger config.
func (l *Ledger) Config() thor.Config {
	return l.config
}

// Backend returns the committed state.
func (l *Ledger) Backend() *storage.Backend {
	return l.backend
}

// txn is the state one operation works on.
type txn struct {
	*storage.Storage
	joy    *joy.Ledger
	config *thor.Config
}

// apply writes the checked changes. It is only called once every check passed.
type apply func() error

// execute runs the check phase of op, then its apply phase, then commits.
func (l *Ledger) execute(op string, check func(tx *txn) (apply, error)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := time.Now()
	err := l.run(check)
	metricOperationDuration().ObserveWithLabels(time.Since(start).Milliseconds(), map[string]string{"op": op})

	result := "ok"
	switch {
	case err == nil:
	case reverts.IsRevertErr(err):
		result = "reverted"
		logger.Debug("operation rejected", "op", op, "err", err)
	default:
		result = "failed"
		logger.Warn("operation failed", "op", op, "err", err)
	}
	metricOperationCount().AddWithLabel(1, map[string]string{"op": op, "result": result})
	l.backend.CacheStats()
	return err
}

func (l *Ledger) run(check func(tx *txn) (apply, error)) error {
	stage := l.backend.NewStage()
	tx := &txn{
		Storage: storage.New(stage),
		joy:     joy.New(stage),
		config:  &l.config,
	}

	fn, err := check(tx)
	if err != nil {
		return err
	}
	// the stage must not hold writes from the check phase
	if stage.Dirty() {
		return errors.New("check phase wrote to the stage")
	}
	if err := fn(); err != nil {
		return err
	}
	return stage.Commit()
}

// view runs a read only function against the committed state.
func (l *Ledger) view(fn func(tx *txn) error) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stage := l.backend.NewStage()
	return fn(&txn{
		Storage: storage.New(stage),
		joy:     joy.New(stage),
		config:  &l.config,
	})
}

func (tx *txn) token(id TokenID) (*issuance.Token, error) {
	t, err := tx.GetToken(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, reverts.ErrTokenDoesNotExist
	}
	return t, nil
}

func (tx *txn) account(id TokenID, addr thor.Address) (*account.Account, error) {
	a, err := tx.GetAccount(id, addr)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, reverts.ErrAccountInformationDoesNotExist
	}
	return a, nil
}

// bondsFor returns the bloat bond of n new accounts.
func (tx *txn) bondsFor(n uint64) uint64 {
	return saturatingMul(tx.config.BloatBond, n)
}

// lockBond moves a bloat bond from payer to the treasury.
func (tx *txn) lockBond(payer thor.Address, amount uint64) error {
	return tx.joy.Transfer(payer, tx.config.Treasury, amount)
}

// releaseBond refunds a bloat bond from the treasury.
func (tx *txn) releaseBond(to thor.Address, amount uint64) error {
	return tx.joy.Transfer(tx.config.Treasury, to, amount)
}
