// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

import "github.com/vechain/projecttoken/metrics"

var (
	metricCacheHitMiss    = metrics.LazyLoadGaugeVec("ledger_cache_hit_miss_count", []string{"type"})
	metricCommittedWrites = metrics.LazyLoadCounterVec("ledger_committed_write_count", []string{"type"})
)
