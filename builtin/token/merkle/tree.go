// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package merkle

import (
	"github.com/vechain/projecttoken/thor"
)

// BuildTree builds the tree committing to leaves and returns its root with one proof per leaf.
// The last node of an odd level has no sibling and moves up unchanged, so its proof gains no step.
func BuildTree(leaves [][]byte) (thor.Bytes32, []Proof) {
	if len(leaves) == 0 {
		return thor.Bytes32{}, nil
	}

	level := make([]thor.Bytes32, len(leaves))
	// positions[i] is the index of leaf i's ancestor in the current level
	positions := make([]int, len(leaves))
	proofs := make([]Proof, len(leaves))
	for i, leaf := range leaves {
		level[i] = thor.Blake2b(leaf)
		positions[i] = i
		proofs[i] = Proof{}
	}

	for len(level) > 1 {
		for i, pos := range positions {
			switch {
			case pos%2 == 1:
				proofs[i] = append(proofs[i], Step{Hash: level[pos-1], Side: Left})
			case pos+1 < len(level):
				proofs[i] = append(proofs[i], Step{Hash: level[pos+1], Side: Right})
			}
			positions[i] = pos / 2
		}

		next := make([]thor.Bytes32, (len(level)+1)/2)
		for i := range next {
			if 2*i+1 < len(level) {
				next[i] = thor.Blake2b(level[2*i][:], level[2*i+1][:])
			} else {
				next[i] = level[2*i]
			}
		}
		level = next
	}
	return level[0], proofs
}

// AddressLeaves converts whitelisted addresses to tree leaves.
func AddressLeaves(addrs []thor.Address) [][]byte {
	leaves := make([][]byte, 0, len(addrs))
	for _, addr := range addrs {
		leaves = append(leaves, addr.Bytes())
	}
	return leaves
}
