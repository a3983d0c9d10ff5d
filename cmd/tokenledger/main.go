// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"os"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/projecttoken/log"
)

var (
	version   string
	gitCommit string
	gitTag    string
	logger    = log.WithContext("pkg", "tokenledger")
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func newApp() *cli.App {
	tokenOp := func(flags ...cli.Flag) []cli.Flag {
		return append([]cli.Flag{tokenFlag}, flags...)
	}

	app := cli.NewApp()
	app.Version = fullVersion()
	app.Name = "tokenledger"
	app.Usage = "Project token ledger"
	app.Copyright = "2025 VeChain Foundation <https://vechain.org/>"
	app.Flags = []cli.Flag{
		dataDirFlag,
		dbEngineFlag,
		configFlag,
		cacheFlag,
		verbosityFlag,
		jsonLogsFlag,
		blockFlag,
	}
	app.Commands = []cli.Command{
		{
			Name:  "serve",
			Usage: "serve the read-only query API",
			Flags: []cli.Flag{
				apiAddrFlag,
				apiCorsFlag,
				apiAccountsLimitFlag,
				enableAPILogsFlag,
				pprofFlag,
				enableMetricsFlag,
				metricsAddrFlag,
			},
			Action: serveAction,
		},
		{
			Name:   "fund",
			Usage:  "mint JOY to an account (development only)",
			Flags:  []cli.Flag{accountFlag, amountFlag},
			Action: fundAction,
		},
		{
			Name:   "issue",
			Usage:  "issue a new token",
			Flags:  []cli.Flag{issuerFlag, paramsFlag, symbolFlag},
			Action: issueAction,
		},
		{
			Name:   "deissue",
			Usage:  "remove a token without accounts nor supply",
			Flags:  tokenOp(),
			Action: deissueAction,
		},
		{
			Name:   "permissionless",
			Usage:  "turn a permissioned token permissionless",
			Flags:  tokenOp(),
			Action: permissionlessAction,
		},
		{
			Name:   "transfer",
			Usage:  "transfer tokens from an account",
			Flags:  tokenOp(accountFlag, toFlag, amountFlag, outputsFlag, issuerFlag),
			Action: transferAction,
		},
		{
			Name:   "burn",
			Usage:  "burn tokens of an account",
			Flags:  tokenOp(accountFlag, amountFlag),
			Action: burnAction,
		},
		{
			Name:   "dust",
			Usage:  "remove an empty account and refund its bloat bond",
			Flags:  tokenOp(callerFlag, accountFlag),
			Action: dustAction,
		},
		{
			Name:  "sale",
			Usage: "token sales",
			Subcommands: []cli.Command{
				{Name: "init", Usage: "put tokens on sale", Flags: tokenOp(paramsFlag), Action: saleInitAction},
				{Name: "update", Usage: "reschedule an upcoming sale", Flags: tokenOp(startFlag, durationFlag), Action: saleUpdateAction},
				{Name: "purchase", Usage: "buy tokens on the active sale", Flags: tokenOp(accountFlag, amountFlag), Action: salePurchaseAction},
				{Name: "recover", Usage: "return unsold tokens of an ended sale", Flags: tokenOp(), Action: saleRecoverAction},
			},
		},
		{
			Name:  "patronage",
			Usage: "creator patronage",
			Subcommands: []cli.Command{
				{Name: "claim", Usage: "claim the accrued patronage credit", Flags: tokenOp(accountFlag), Action: patronageClaimAction},
				{Name: "reduce", Usage: "reduce the yearly patronage rate", Flags: tokenOp(rateFlag), Action: patronageReduceAction},
			},
		},
		{
			Name:  "split",
			Usage: "revenue splits",
			Subcommands: []cli.Command{
				{Name: "issue", Usage: "open a revenue split funded by an account", Flags: tokenOp(accountFlag, amountFlag, startFlag, durationFlag), Action: splitIssueAction},
				{Name: "join", Usage: "stake tokens for the dividend", Flags: tokenOp(accountFlag, amountFlag), Action: splitJoinAction},
				{Name: "exit", Usage: "unstake tokens", Flags: tokenOp(accountFlag), Action: splitExitAction},
				{Name: "finalize", Usage: "close an ended split", Flags: tokenOp(toFlag), Action: splitFinalizeAction},
			},
		},
		{
			Name:  "whitelist",
			Usage: "permissioned token whitelists",
			Subcommands: []cli.Command{
				{Name: "build", Usage: "build a whitelist commitment and proofs", Flags: []cli.Flag{addressesFlag, outFlag}, Action: whitelistBuildAction},
				{Name: "join", Usage: "create an account with a whitelist proof", Flags: tokenOp(accountFlag, whitelistFlag), Action: whitelistJoinAction},
			},
		},
		{
			Name:   "inspect",
			Usage:  "dump a token and its accounts",
			Flags:  tokenOp(accountFlag, outFlag),
			Action: inspectAction,
		},
		{
			Name:   "export",
			Usage:  "export the ledger database to a snapshot file",
			Flags:  []cli.Flag{outFlag},
			Action: exportAction,
		},
		{
			Name:   "import",
			Usage:  "import a snapshot file into an empty ledger database",
			Flags:  []cli.Flag{inFlag},
			Action: importAction,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
