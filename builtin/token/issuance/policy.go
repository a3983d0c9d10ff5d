// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package issuance

import (
	"github.com/vechain/projecttoken/builtin/token/merkle"
	"github.com/vechain/projecttoken/builtin/token/reverts"
	"github.com/vechain/projecttoken/thor"
)

// TransferPolicy restricts which addresses may hold the token. A permissioned token only admits
// addresses proven to be in the whitelist committed to by Commitment.
type TransferPolicy struct {
	Permissioned bool
	Commitment   thor.Bytes32
}

// Permissionless returns the policy admitting every address.
func Permissionless() TransferPolicy {
	return TransferPolicy{}
}

// Permissioned returns the policy admitting the members of the committed whitelist.
func Permissioned(commitment thor.Bytes32) TransferPolicy {
	return TransferPolicy{Permissioned: true, Commitment: commitment}
}

func (p TransferPolicy) String() string {
	if p.Permissioned {
		return "permissioned(" + p.Commitment.AbbrevString() + ")"
	}
	return "permissionless"
}

// EnsureMember checks addr is whitelisted. Permissionless tokens have no whitelist to join.
func (p TransferPolicy) EnsureMember(addr thor.Address, proof merkle.Proof) error {
	if !p.Permissioned {
		return reverts.ErrCannotJoinWhitelistInPermissionlessMode
	}
	if proof == nil {
		return reverts.ErrMerkleProofNotProvided
	}
	return proof.Verify(addr.Bytes(), p.Commitment)
}

// WhitelistParams describe the whitelist of a permissioned token.
type WhitelistParams struct {
	Commitment thor.Bytes32 `json:"commitment" yaml:"commitment"`
	Payload    []byte       `json:"payload,omitempty" yaml:"payload,omitempty"` // off-ledger whitelist content reference
}

// TransferPolicyParams select the policy at issuance. A nil Whitelist means permissionless.
type TransferPolicyParams struct {
	Whitelist *WhitelistParams `json:"whitelist,omitempty" yaml:"whitelist,omitempty"`
}

// Policy converts the params into the stored policy.
func (p TransferPolicyParams) Policy() TransferPolicy {
	if p.Whitelist == nil {
		return Permissionless()
	}
	return Permissioned(p.Whitelist.Commitment)
}
