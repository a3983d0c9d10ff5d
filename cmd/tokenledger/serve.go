// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/projecttoken/api"
	"github.com/vechain/projecttoken/builtin/token"
	"github.com/vechain/projecttoken/metrics"
)

const shutdownTimeout = 5 * time.Second

func serveAction(ctx *cli.Context) error {
	if ctx.Bool(enableMetricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
	}
	return withLedger(ctx, func(l *token.Ledger) error {
		handler := api.New(l, api.Options{
			AllowedOrigins:  ctx.String(apiCorsFlag.Name),
			DefaultBlock:    now(ctx),
			AccountsLimit:   ctx.Int(apiAccountsLimitFlag.Name),
			PprofOn:         ctx.Bool(pprofFlag.Name),
			EnableReqLogger: ctx.Bool(enableAPILogsFlag.Name),
			EnableMetrics:   ctx.Bool(enableMetricsFlag.Name),
		})

		servers := []*namedServer{}
		apiSrv, err := listen("API", ctx.String(apiAddrFlag.Name), handler)
		if err != nil {
			return err
		}
		servers = append(servers, apiSrv)

		if ctx.Bool(enableMetricsFlag.Name) {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.HTTPHandler())
			metricsSrv, err := listen("metrics", ctx.String(metricsAddrFlag.Name), mux)
			if err != nil {
				apiSrv.listener.Close()
				return err
			}
			servers = append(servers, metricsSrv)
		}
		return runServers(handleExitSignal(), servers)
	})
}

type namedServer struct {
	name     string
	listener net.Listener
	srv      *http.Server
}

func listen(name, addr string, handler http.Handler) (*namedServer, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "listen %s addr [%v]", name, addr)
	}
	logger.Info("server started", "name", name, "url", "http://"+listener.Addr().String()+"/")
	return &namedServer{
		name:     name,
		listener: listener,
		srv:      &http.Server{Handler: handler, ReadHeaderTimeout: time.Second},
	}, nil
}

// runServers serves until ctx is done or one of the servers fails, then shuts every server down.
func runServers(ctx context.Context, servers []*namedServer) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range servers {
		g.Go(func() error {
			if err := s.srv.Serve(s.listener); err != nil && err != http.ErrServerClosed {
				return errors.Wrapf(err, "%s server", s.name)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		for _, s := range servers {
			logger.Info("stopping server...", "name", s.name)
			if err := s.srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("failed to stop server", "name", s.name, "err", err)
			}
		}
		return nil
	})
	return g.Wait()
}
