// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package sale

import (
	"github.com/vechain/projecttoken/builtin/token/reverts"
)

// State is the offering state of a token.
type State uint8

const (
	Idle State = iota
	UpcomingSale
	Ongoing
	// BondingCurve is reserved. No token enters it.
	BondingCurve
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case UpcomingSale:
		return "upcomingSale"
	case Ongoing:
		return "sale"
	case BondingCurve:
		return "bondingCurve"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Offering is the derived offering state together with the sale it refers to.
type Offering struct {
	State State
	Sale  *Sale
}

// OfferingOf derives the offering state of a token whose current sale is s, at block now.
// An ended sale is idle, even while its unsold tokens are not recovered yet.
func OfferingOf(s *Sale, now uint32) Offering {
	switch {
	case s == nil:
		return Offering{State: Idle}
	case now < s.StartBlock:
		return Offering{State: UpcomingSale, Sale: s}
	case now < s.EndBlock():
		return Offering{State: Ongoing, Sale: s}
	default:
		return Offering{State: Idle}
	}
}

// EnsureIdle checks no sale is upcoming or ongoing.
func EnsureIdle(s *Sale, now uint32) error {
	if OfferingOf(s, now).State != Idle {
		return reverts.ErrTokenIssuanceNotInIdleState
	}
	return nil
}

// EnsureUpcoming returns the sale if it has not started yet.
func EnsureUpcoming(s *Sale, now uint32) (*Sale, error) {
	o := OfferingOf(s, now)
	if o.State != UpcomingSale {
		return nil, reverts.ErrNoUpcomingSale
	}
	return o.Sale, nil
}

// EnsureOngoing returns the sale if it is active.
func EnsureOngoing(s *Sale, now uint32) (*Sale, error) {
	o := OfferingOf(s, now)
	if o.State != Ongoing {
		return nil, reverts.ErrNoActiveSale
	}
	return o.Sale, nil
}
