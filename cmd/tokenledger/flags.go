// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var (
	dataDirFlag = cli.StringFlag{
		Name:  "data-dir",
		Value: defaultDataDir(),
		Usage: "directory for the ledger database",
	}
	dbEngineFlag = cli.StringFlag{
		Name:  "db-engine",
		Value: "leveldb",
		Usage: "storage engine (leveldb|bolt)",
	}
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "path to a yaml file overriding the default ledger config",
	}
	cacheFlag = cli.IntFlag{
		Name:  "cache",
		Value: 4096,
		Usage: "number of raw ledger entries kept in memory",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Value: 3,
		Usage: "log verbosity (0-5)",
	}
	jsonLogsFlag = cli.BoolFlag{
		Name:  "json-logs",
		Usage: "output logs in JSON format",
	}
	blockFlag = cli.UintFlag{
		Name:  "block",
		Usage: "current block number operations are executed at",
	}

	// serve
	apiAddrFlag = cli.StringFlag{
		Name:  "api-addr",
		Value: "localhost:8680",
		Usage: "API service listening address",
	}
	apiCorsFlag = cli.StringFlag{
		Name:  "api-cors",
		Value: "",
		Usage: "comma separated list of domains from which to accept cross origin requests to API",
	}
	apiAccountsLimitFlag = cli.IntFlag{
		Name:  "api-accounts-limit",
		Value: 100,
		Usage: "limit the number of accounts returned by /tokens/{id}/accounts",
	}
	enableAPILogsFlag = cli.BoolFlag{
		Name:  "enable-api-logs",
		Usage: "enables API requests logging",
	}
	pprofFlag = cli.BoolFlag{
		Name:  "pprof",
		Usage: "turn on go-pprof",
	}
	enableMetricsFlag = cli.BoolFlag{
		Name:  "enable-metrics",
		Usage: "enables metrics collection",
	}
	metricsAddrFlag = cli.StringFlag{
		Name:  "metrics-addr",
		Value: "localhost:2112",
		Usage: "metrics service listening address",
	}

	// operations
	tokenFlag = cli.Uint64Flag{
		Name:  "token",
		Usage: "token id",
	}
	accountFlag = cli.StringFlag{
		Name:  "account",
		Usage: "account address",
	}
	issuerFlag = cli.StringFlag{
		Name:  "issuer",
		Usage: "issuer address, pays the bloat bonds",
	}
	amountFlag = cli.Uint64Flag{
		Name:  "amount",
		Usage: "amount of tokens or JOY",
	}
	paramsFlag = cli.StringFlag{
		Name:  "params",
		Usage: "path to a yaml parameters file",
	}
	symbolFlag = cli.StringFlag{
		Name:  "symbol",
		Usage: "token symbol, overrides the one of the parameters file",
	}
	toFlag = cli.StringFlag{
		Name:  "to",
		Usage: "destination address",
	}
	outputsFlag = cli.StringFlag{
		Name:  "outputs",
		Usage: "path to a yaml file mapping destination addresses to payments",
	}
	callerFlag = cli.StringFlag{
		Name:  "caller",
		Usage: "address requesting the operation",
	}
	startFlag = cli.StringFlag{
		Name:  "start",
		Usage: "starting block, empty for the earliest allowed",
	}
	durationFlag = cli.UintFlag{
		Name:  "duration",
		Usage: "duration in blocks",
	}
	rateFlag = cli.UintFlag{
		Name:  "rate",
		Usage: "yearly rate in parts per million",
	}
	addressesFlag = cli.StringFlag{
		Name:  "addresses",
		Usage: "path to a file listing one address per line",
	}
	whitelistFlag = cli.StringFlag{
		Name:  "whitelist",
		Usage: "path to a whitelist file produced by 'whitelist build'",
	}
	outFlag = cli.StringFlag{
		Name:  "out",
		Usage: "output file path, stdout if empty",
	}
	inFlag = cli.StringFlag{
		Name:  "in",
		Usage: "input file path",
	}
)
