// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T) string {
	server := httptest.NewServer(HTTPHandler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

// the noop phase must run before prometheus is initialized
func TestMetrics(t *testing.T) {
	t.Run("noop", func(t *testing.T) {
		lazy := LazyLoadCounterVec("noop_ops", []string{"op"})
		lazy().AddWithLabel(1, map[string]string{"op": "x"})
		GaugeVec("noop_gauge", []string{"op"}).SetWithLabel(3, map[string]string{"op": "x"})
		HistogramVec("noop_hist", []string{"op"}, BucketOps).ObserveWithLabels(1, map[string]string{"op": "x"})
		assert.NotContains(t, scrape(t), "noop_ops")
	})

	t.Run("prometheus", func(t *testing.T) {
		InitializePrometheusMetrics()

		ops := LazyLoadCounterVec("ops_count", []string{"op", "result"})
		ops().AddWithLabel(2, map[string]string{"op": "transfer", "result": "ok"})
		// same meter is returned for the same name
		assert.Same(t, CounterVec("ops_count", nil), ops())

		accounts := LazyLoadGaugeVec("accounts", []string{"token"})
		accounts().SetWithLabel(10, map[string]string{"token": "1"})
		accounts().AddWithLabel(-3, map[string]string{"token": "1"})
		GaugeVec("supply", []string{"token"}).SetWithLabel(42, map[string]string{"token": "0"})
		HistogramVec("op_duration_ms", []string{"op"}, BucketOps).ObserveWithLabels(7, map[string]string{"op": "burn"})

		body := scrape(t)
		assert.Contains(t, body, `token_ledger_ops_count{op="transfer",result="ok"} 2`)
		assert.Contains(t, body, `token_ledger_accounts{token="1"} 7`)
		assert.Contains(t, body, `token_ledger_supply{token="0"} 42`)
		assert.True(t, strings.Contains(body, `token_ledger_op_duration_ms_count{op="burn"} 1`))
	})
}
