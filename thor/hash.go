// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package thor

import (
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

type hasher struct {
	hash.Hash
	b32 Bytes32
}

var hasherPool = sync.Pool{
	New: func() any {
		h, _ := blake2b.New256(nil)
		return &hasher{Hash: h}
	},
}

// Blake2b computes the blake2b-256 digest of the concatenation of data.
// Symbol hashes, whitelist leaves and merkle nodes are all derived with it.
func Blake2b(data ...[]byte) Bytes32 {
	if len(data) == 1 {
		return blake2b.Sum256(data[0])
	}
	h := hasherPool.Get().(*hasher)
	for _, b := range data {
		h.Write(b)
	}
	h.Sum(h.b32[:0])
	sum := h.b32
	h.Reset()
	hasherPool.Put(h)
	return sum
}
