// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vechain/projecttoken/builtin/token/reverts"
	"github.com/vechain/projecttoken/thor"
)

func TestReadAddresses(t *testing.T) {
	a := thor.BytesToAddress([]byte("a"))
	b := thor.BytesToAddress([]byte("b"))

	addrs, err := readAddresses(strings.NewReader("# members\n" + a.String() + "\n\n  " + b.String() + "  \n"))
	require.NoError(t, err)
	assert.Equal(t, []thor.Address{a, b}, addrs)

	_, err = readAddresses(strings.NewReader(a.String() + "\nnope\n"))
	assert.ErrorContains(t, err, "line 2")
}

func TestBuildWhitelist(t *testing.T) {
	var addrs []thor.Address
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		addrs = append(addrs, thor.BytesToAddress([]byte(s)))
	}

	wl, err := buildWhitelist(addrs)
	require.NoError(t, err)

	// proofs survive the file format
	data, err := yaml.Marshal(wl)
	require.NoError(t, err)
	var decoded whitelistFile
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, wl.Commitment, decoded.Commitment)
	require.Len(t, decoded.Proofs, len(addrs))

	for _, addr := range addrs {
		assert.NoError(t, decoded.Proofs[addr].Verify(addr.Bytes(), decoded.Commitment))
	}
	assert.ErrorIs(t, decoded.Proofs[addrs[0]].Verify(addrs[1].Bytes(), decoded.Commitment), reverts.ErrMerkleProofVerificationFailure)

	_, err = buildWhitelist(nil)
	assert.Error(t, err)
	_, err = buildWhitelist([]thor.Address{addrs[0], addrs[0]})
	assert.ErrorContains(t, err, "duplicated")
}
