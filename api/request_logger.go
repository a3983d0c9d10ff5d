// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"net/http"
	"time"

	"github.com/vechain/projecttoken/log"
)

// RequestLoggerHandler logs every request with its status once served.
// Failed requests are logged at debug level with the same fields.
func RequestLoggerHandler(handler http.Handler, logger log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newMetricsResponseWriter(w)
		handler.ServeHTTP(rw, r)

		ctx := []any{
			"timestamp", start.Unix(),
			"URI", r.URL.String(),
			"Method", r.Method,
			"Status", rw.statusCode,
			"DurationMs", time.Since(start).Milliseconds(),
		}
		if rw.statusCode >= http.StatusBadRequest {
			logger.Debug("API Request", ctx...)
			return
		}
		logger.Info("API Request", ctx...)
	})
}
