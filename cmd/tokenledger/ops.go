// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/projecttoken/builtin/token"
	"github.com/vechain/projecttoken/builtin/token/issuance"
	"github.com/vechain/projecttoken/builtin/token/patronage"
	"github.com/vechain/projecttoken/builtin/token/sale"
	"github.com/vechain/projecttoken/builtin/token/transfers"
	"github.com/vechain/projecttoken/perthing"
	"github.com/vechain/projecttoken/thor"
)

func fundAction(ctx *cli.Context) error {
	addr, err := requireAddress(ctx, accountFlag)
	if err != nil {
		return err
	}
	return withLedger(ctx, func(l *token.Ledger) error {
		if err := l.MintJoy(addr, ctx.Uint64(amountFlag.Name)); err != nil {
			return err
		}
		balance, err := l.JoyBalance(addr)
		if err != nil {
			return err
		}
		fmt.Printf("JOY balance of %v: %d\n", addr, balance)
		return nil
	})
}

func issueAction(ctx *cli.Context) error {
	issuer, err := requireAddress(ctx, issuerFlag)
	if err != nil {
		return err
	}
	path := ctx.String(paramsFlag.Name)
	if path == "" {
		return errors.New("missing --params")
	}
	var params issuance.Params
	if err := readYAML(path, &params); err != nil {
		return errors.WithMessage(err, "issuance params")
	}
	if symbol := ctx.String(symbolFlag.Name); symbol != "" {
		params.Symbol = thor.SymbolHash(symbol)
	}

	return withLedger(ctx, func(l *token.Ledger) error {
		id, err := l.IssueToken(issuer, &params, now(ctx))
		if err != nil {
			return err
		}
		fmt.Printf("issued token %d\n", id)
		return nil
	})
}

func deissueAction(ctx *cli.Context) error {
	return withLedger(ctx, func(l *token.Ledger) error {
		return l.DeissueToken(tokenID(ctx))
	})
}

func permissionlessAction(ctx *cli.Context) error {
	return withLedger(ctx, func(l *token.Ledger) error {
		return l.ChangeToPermissionless(tokenID(ctx))
	})
}

// readOutputs builds the transfer outputs from --outputs, or from --to and --amount.
func readOutputs(ctx *cli.Context) (transfers.Transfers, error) {
	if path := ctx.String(outputsFlag.Name); path != "" {
		outputs := make(transfers.Transfers)
		if err := readYAML(path, &outputs); err != nil {
			return nil, errors.WithMessage(err, "outputs")
		}
		return outputs, nil
	}
	to, err := requireAddress(ctx, toFlag)
	if err != nil {
		return nil, err
	}
	return transfers.Transfers{to: {Amount: ctx.Uint64(amountFlag.Name)}}, nil
}

func transferAction(ctx *cli.Context) error {
	src, err := requireAddress(ctx, accountFlag)
	if err != nil {
		return err
	}
	outputs, err := readOutputs(ctx)
	if err != nil {
		return err
	}
	var issuer *thor.Address
	if ctx.String(issuerFlag.Name) != "" {
		addr, err := requireAddress(ctx, issuerFlag)
		if err != nil {
			return err
		}
		issuer = &addr
	}

	return withLedger(ctx, func(l *token.Ledger) error {
		if issuer != nil {
			return l.IssuerTransfer(*issuer, tokenID(ctx), src, outputs, now(ctx))
		}
		return l.Transfer(src, tokenID(ctx), outputs, now(ctx))
	})
}

func burnAction(ctx *cli.Context) error {
	addr, err := requireAddress(ctx, accountFlag)
	if err != nil {
		return err
	}
	return withLedger(ctx, func(l *token.Ledger) error {
		return l.Burn(tokenID(ctx), addr, ctx.Uint64(amountFlag.Name), now(ctx))
	})
}

func dustAction(ctx *cli.Context) error {
	caller, err := requireAddress(ctx, callerFlag)
	if err != nil {
		return err
	}
	addr, err := requireAddress(ctx, accountFlag)
	if err != nil {
		return err
	}
	return withLedger(ctx, func(l *token.Ledger) error {
		return l.DustAccount(tokenID(ctx), caller, addr, now(ctx))
	})
}

func saleInitAction(ctx *cli.Context) error {
	path := ctx.String(paramsFlag.Name)
	if path == "" {
		return errors.New("missing --params")
	}
	var params sale.Params
	if err := readYAML(path, &params); err != nil {
		return errors.WithMessage(err, "sale params")
	}
	return withLedger(ctx, func(l *token.Ledger) error {
		saleID, err := l.InitTokenSale(tokenID(ctx), params, now(ctx))
		if err != nil {
			return err
		}
		fmt.Printf("initialized sale %d\n", saleID)
		return nil
	})
}

func saleUpdateAction(ctx *cli.Context) error {
	start, err := optionalBlock(ctx, startFlag)
	if err != nil {
		return err
	}
	var duration *uint32
	if ctx.IsSet(durationFlag.Name) {
		d := uint32(ctx.Uint(durationFlag.Name))
		duration = &d
	}
	return withLedger(ctx, func(l *token.Ledger) error {
		return l.UpdateUpcomingSale(tokenID(ctx), start, duration, now(ctx))
	})
}

func salePurchaseAction(ctx *cli.Context) error {
	buyer, err := requireAddress(ctx, accountFlag)
	if err != nil {
		return err
	}
	return withLedger(ctx, func(l *token.Ledger) error {
		return l.PurchaseTokensOnSale(tokenID(ctx), buyer, ctx.Uint64(amountFlag.Name), now(ctx))
	})
}

func saleRecoverAction(ctx *cli.Context) error {
	return withLedger(ctx, func(l *token.Ledger) error {
		recovered, err := l.RecoverUnsoldTokens(tokenID(ctx), now(ctx))
		if err != nil {
			return err
		}
		fmt.Printf("recovered %d unsold tokens\n", recovered)
		return nil
	})
}

func patronageClaimAction(ctx *cli.Context) error {
	claimer, err := requireAddress(ctx, accountFlag)
	if err != nil {
		return err
	}
	return withLedger(ctx, func(l *token.Ledger) error {
		credit, err := l.ClaimPatronageCredit(tokenID(ctx), claimer, now(ctx))
		if err != nil {
			return err
		}
		fmt.Printf("claimed %d tokens of patronage credit\n", credit)
		return nil
	})
}

func patronageReduceAction(ctx *cli.Context) error {
	rate := patronage.YearlyRate(perthing.PermillFromParts(uint32(ctx.Uint(rateFlag.Name))))
	return withLedger(ctx, func(l *token.Ledger) error {
		return l.ReducePatronageRateBy(tokenID(ctx), rate, now(ctx))
	})
}

func splitIssueAction(ctx *cli.Context) error {
	source, err := requireAddress(ctx, accountFlag)
	if err != nil {
		return err
	}
	start, err := optionalBlock(ctx, startFlag)
	if err != nil {
		return err
	}
	return withLedger(ctx, func(l *token.Ledger) error {
		splitID, err := l.IssueRevenueSplit(
			tokenID(ctx),
			start,
			uint32(ctx.Uint(durationFlag.Name)),
			source,
			ctx.Uint64(amountFlag.Name),
			now(ctx),
		)
		if err != nil {
			return err
		}
		fmt.Printf("issued revenue split %d\n", splitID)
		return nil
	})
}

func splitJoinAction(ctx *cli.Context) error {
	addr, err := requireAddress(ctx, accountFlag)
	if err != nil {
		return err
	}
	return withLedger(ctx, func(l *token.Ledger) error {
		dividend, err := l.ParticipateInSplit(tokenID(ctx), addr, ctx.Uint64(amountFlag.Name), now(ctx))
		if err != nil {
			return err
		}
		fmt.Printf("received %d JOY dividend\n", dividend)
		return nil
	})
}

func splitExitAction(ctx *cli.Context) error {
	addr, err := requireAddress(ctx, accountFlag)
	if err != nil {
		return err
	}
	return withLedger(ctx, func(l *token.Ledger) error {
		return l.ExitRevenueSplit(tokenID(ctx), addr, now(ctx))
	})
}

func splitFinalizeAction(ctx *cli.Context) error {
	recipient, err := requireAddress(ctx, toFlag)
	if err != nil {
		return err
	}
	return withLedger(ctx, func(l *token.Ledger) error {
		leftover, err := l.FinalizeRevenueSplit(tokenID(ctx), recipient, now(ctx))
		if err != nil {
			return err
		}
		fmt.Printf("returned %d JOY of leftover allocation\n", leftover)
		return nil
	})
}
