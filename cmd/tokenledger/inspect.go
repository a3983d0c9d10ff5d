// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/projecttoken/builtin/token"
	"github.com/vechain/projecttoken/builtin/token/account"
	"github.com/vechain/projecttoken/thor"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// inspect dumps the token entry, followed by one account or every account of the token.
func inspect(w io.Writer, l *token.Ledger, id token.TokenID, addr *thor.Address, now uint32) error {
	tk, err := l.Token(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "token %d at block %d\n", id, now)
	dumper.Fdump(w, tk)
	fmt.Fprintf(w, "offering: %v, unclaimed patronage: %d\n", tk.OfferingState(now).State, tk.UnclaimedPatronageAt(now))

	dumpAccount := func(addr thor.Address, acc *account.Account) {
		fmt.Fprintf(w, "account %v: transferable %d, unvested %d, staked %d\n",
			addr, acc.Transferable(now), acc.Unvested(now), acc.Staked(now))
		dumper.Fdump(w, acc)
	}
	if addr != nil {
		acc, err := l.Account(id, *addr)
		if err != nil {
			return err
		}
		dumpAccount(*addr, acc)
		return nil
	}
	return l.Accounts(id, func(addr thor.Address, acc *account.Account) bool {
		dumpAccount(addr, acc)
		return true
	})
}

func inspectAction(ctx *cli.Context) error {
	var addr *thor.Address
	if ctx.String(accountFlag.Name) != "" {
		a, err := requireAddress(ctx, accountFlag)
		if err != nil {
			return err
		}
		addr = &a
	}
	return withLedger(ctx, func(l *token.Ledger) error {
		var buf bytes.Buffer
		if err := inspect(&buf, l, tokenID(ctx), addr, now(ctx)); err != nil {
			return err
		}
		return writeOut(ctx, buf.Bytes())
	})
}
