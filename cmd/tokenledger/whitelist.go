// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"os"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"

	"github.com/vechain/projecttoken/builtin/token"
	"github.com/vechain/projecttoken/builtin/token/merkle"
	"github.com/vechain/projecttoken/thor"
)

// whitelistFile is the output of 'whitelist build': the commitment to put in the issuance
// params and the proof of each member.
type whitelistFile struct {
	Commitment thor.Bytes32                  `yaml:"commitment"`
	Proofs     map[thor.Address]merkle.Proof `yaml:"proofs"`
}

func buildWhitelist(addrs []thor.Address) (*whitelistFile, error) {
	if len(addrs) == 0 {
		return nil, errors.New("empty whitelist")
	}
	root, proofs := merkle.BuildTree(merkle.AddressLeaves(addrs))
	wl := &whitelistFile{
		Commitment: root,
		Proofs:     make(map[thor.Address]merkle.Proof, len(addrs)),
	}
	for i, addr := range addrs {
		if _, dup := wl.Proofs[addr]; dup {
			return nil, errors.Errorf("duplicated address %v", addr)
		}
		wl.Proofs[addr] = proofs[i]
	}
	return wl, nil
}

func whitelistBuildAction(ctx *cli.Context) error {
	path := ctx.String(addressesFlag.Name)
	if path == "" {
		return errors.New("missing --addresses")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	addrs, err := readAddresses(f)
	if err != nil {
		return errors.WithMessage(err, path)
	}
	wl, err := buildWhitelist(addrs)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(wl)
	if err != nil {
		return err
	}
	return writeOut(ctx, data)
}

func whitelistJoinAction(ctx *cli.Context) error {
	addr, err := requireAddress(ctx, accountFlag)
	if err != nil {
		return err
	}
	path := ctx.String(whitelistFlag.Name)
	if path == "" {
		return errors.New("missing --whitelist")
	}
	var wl whitelistFile
	if err := readYAML(path, &wl); err != nil {
		return errors.WithMessage(err, "whitelist")
	}
	// a missing proof is left to the ledger to reject
	proof := wl.Proofs[addr]

	return withLedger(ctx, func(l *token.Ledger) error {
		return l.JoinWhitelist(addr, tokenID(ctx), proof, now(ctx))
	})
}
