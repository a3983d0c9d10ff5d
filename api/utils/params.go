// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package utils

import (
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vechain/projecttoken/builtin/token"
)

// ParseBlock parses the block query parameter. An empty value yields def.
func ParseBlock(s string, def uint32) (uint32, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(s, 0, 0)
	if err != nil {
		return 0, err
	}
	if n > math.MaxUint32 {
		return 0, errors.New("block number out of max uint32")
	}
	return uint32(n), nil
}

// ParseTokenID parses a token id path parameter.
func ParseTokenID(s string) (token.TokenID, error) {
	n, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, err
	}
	return token.TokenID(n), nil
}
