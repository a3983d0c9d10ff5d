// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package merkle verifies whitelist membership against a commitment without storing the whitelist.
package merkle

import (
	"encoding/json"
	"fmt"

	"github.com/vechain/projecttoken/builtin/token/reverts"
	"github.com/vechain/projecttoken/thor"
)

// Side tells on which side of the running hash a proof element is appended.
type Side uint8

const (
	// Right appends the element to the right of the subtree hash.
	Right Side = iota
	// Left appends the element to the left of the subtree hash.
	Left
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "left":
		*s = Left
	case "right":
		*s = Right
	default:
		return fmt.Errorf("invalid merkle side %q", text)
	}
	return nil
}

// Step is one element of a proof path.
type Step struct {
	Hash thor.Bytes32 `json:"hash" yaml:"hash"`
	Side Side         `json:"side" yaml:"side"`
}

// Proof is a path from a leaf to the commitment, leaf side first.
type Proof []Step

var _ json.Marshaler = Proof(nil)

// MarshalJSON renders a nil proof as an empty list.
func (p Proof) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Step(p))
}

// Root folds the proof over the hash of leaf.
func (p Proof) Root(leaf []byte) thor.Bytes32 {
	acc := thor.Blake2b(leaf)
	for _, step := range p {
		switch step.Side {
		case Left:
			acc = thor.Blake2b(step.Hash[:], acc[:])
		default:
			acc = thor.Blake2b(acc[:], step.Hash[:])
		}
	}
	return acc
}

// Verify checks that leaf belongs to the set committed by commitment.
func (p Proof) Verify(leaf []byte, commitment thor.Bytes32) error {
	if p.Root(leaf) != commitment {
		return reverts.ErrMerkleProofVerificationFailure
	}
	return nil
}
