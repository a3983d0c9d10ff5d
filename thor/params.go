// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package thor

// Constants of the token ledger.
const (
	BlockInterval uint64 = 6 // seconds between two consecutive blocks.

	DefaultBlocksPerYear                 uint32 = 5_256_000 // 365 days of 6 second blocks
	DefaultMaxVestingSchedulesPerAccount uint32 = 5
	DefaultBloatBond                     uint64 = 100
	DefaultMinRevenueSplitDuration       uint32 = 100
)

// DefaultTreasury is the module account that holds bloat bonds and revenue split allocations.
var DefaultTreasury = BytesToAddress(Blake2b([]byte("token-treasury")).Bytes())
