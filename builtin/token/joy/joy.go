// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package joy keeps the balances of the settlement asset funding bloat bonds, sale purchases and
// revenue splits.
package joy

import (
	"math"

	"github.com/pkg/errors"

	"github.com/vechain/projecttoken/builtin/token/reverts"
	"github.com/vechain/projecttoken/builtin/token/storage"
	"github.com/vechain/projecttoken/thor"
)

// Ledger is the JOY balance sheet of a stage.
type Ledger struct {
	balances *storage.Mapping[thor.Address, uint64]
}

// New creates the ledger over stage.
func New(stage *storage.Stage) *Ledger {
	return &Ledger{
		balances: storage.NewMapping[thor.Address, uint64](stage, storage.JoyBucket),
	}
}

// Balance returns the balance of addr.
func (l *Ledger) Balance(addr thor.Address) (uint64, error) {
	b, err := l.balances.Get(addr)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get balance")
	}
	return b, nil
}

// EnsureCanTransfer checks addr holds amount. It fails with insufficient, or with
// ErrInsufficientJoyBalance when insufficient is nil.
func (l *Ledger) EnsureCanTransfer(addr thor.Address, amount uint64, insufficient error) error {
	if amount == 0 {
		return nil
	}
	b, err := l.Balance(addr)
	if err != nil {
		return err
	}
	if b < amount {
		if insufficient == nil {
			return reverts.ErrInsufficientJoyBalance
		}
		return insufficient
	}
	return nil
}

// Transfer moves amount from one address to another. The sender balance is floored at zero,
// callers check it beforehand with EnsureCanTransfer.
func (l *Ledger) Transfer(from, to thor.Address, amount uint64) error {
	if amount == 0 || from == to {
		return nil
	}
	fromBalance, err := l.Balance(from)
	if err != nil {
		return err
	}
	toBalance, err := l.Balance(to)
	if err != nil {
		return err
	}
	if err := l.set(from, fromBalance-min(fromBalance, amount)); err != nil {
		return err
	}
	return l.set(to, saturatingAdd(toBalance, amount))
}

// Mint credits amount to addr out of thin air.
func (l *Ledger) Mint(addr thor.Address, amount uint64) error {
	b, err := l.Balance(addr)
	if err != nil {
		return err
	}
	return l.set(addr, saturatingAdd(b, amount))
}

func (l *Ledger) set(addr thor.Address, balance uint64) error {
	if balance == 0 {
		l.balances.Delete(addr)
		return nil
	}
	if err := l.balances.Set(addr, balance); err != nil {
		return errors.Wrap(err, "failed to set balance")
	}
	return nil
}

func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
