// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import "github.com/vechain/projecttoken/metrics"

var (
	metricOperationCount    = metrics.LazyLoadCounterVec("token_operation_count", []string{"op", "result"})
	metricOperationDuration = metrics.LazyLoadHistogramVec("token_operation_duration_ms", []string{"op"}, metrics.BucketOps)
)
