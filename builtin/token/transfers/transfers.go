// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package transfers

import (
	"math"
	"sort"

	"github.com/vechain/projecttoken/thor"
)

// Payment is one output of a transfer.
type Payment struct {
	Remark []byte `json:"remark,omitempty" yaml:"remark,omitempty"` // not interpreted by the ledger
	Amount uint64 `json:"amount" yaml:"amount"`
}

// Transfers maps destinations to payments.
type Transfers map[thor.Address]Payment

// Len returns the number of destinations.
func (t Transfers) Len() int {
	return len(t)
}

// Destinations returns the destinations in address order.
func (t Transfers) Destinations() []thor.Address {
	dests := make([]thor.Address, 0, len(t))
	for addr := range t {
		dests = append(dests, addr)
	}
	sort.Slice(dests, func(i, j int) bool {
		return dests[i].Compare(dests[j]) < 0
	})
	return dests
}

// TotalAmount sums the payments. ok is false if the sum overflows uint64.
func (t Transfers) TotalAmount() (sum uint64, ok bool) {
	for _, p := range t {
		if sum, ok = checkedAdd(sum, p.Amount); !ok {
			return 0, false
		}
	}
	return sum, true
}

// Validated is a destination classified against the existing accounts.
type Validated struct {
	Account  thor.Address
	Existing bool
}

// ValidatedTransfer is an output whose destination has been classified.
type ValidatedTransfer struct {
	Validated
	Payment Payment
}

// ValidatedTransfers are outputs in destination order, ready to be applied.
type ValidatedTransfers []ValidatedTransfer

// Validate classifies every destination of t with exists.
func Validate(t Transfers, exists func(thor.Address) (bool, error)) (ValidatedTransfers, error) {
	out := make(ValidatedTransfers, 0, len(t))
	for _, dest := range t.Destinations() {
		ok, err := exists(dest)
		if err != nil {
			return nil, err
		}
		out = append(out, ValidatedTransfer{
			Validated: Validated{Account: dest, Existing: ok},
			Payment:   t[dest],
		})
	}
	return out, nil
}

// TotalAmount sums the payments. ok is false if the sum overflows uint64.
func (v ValidatedTransfers) TotalAmount() (sum uint64, ok bool) {
	for _, vt := range v {
		if sum, ok = checkedAdd(sum, vt.Payment.Amount); !ok {
			return 0, false
		}
	}
	return sum, true
}

// NonExistingCount returns the number of accounts the batch creates.
func (v ValidatedTransfers) NonExistingCount() uint64 {
	var n uint64
	for _, vt := range v {
		if !vt.Existing {
			n++
		}
	}
	return n
}

func checkedAdd(a, b uint64) (uint64, bool) {
	if a > math.MaxUint64-b {
		return 0, false
	}
	return a + b, true
}
