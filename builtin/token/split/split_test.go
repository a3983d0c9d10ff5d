// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package split

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/projecttoken/builtin/token/reverts"
)

func TestTimeline(t *testing.T) {
	s := New(0, 10, 20, 1000)
	assert.Equal(t, uint32(30), s.EndBlock())

	assert.False(t, s.IsOngoing(9))
	assert.True(t, s.IsOngoing(10))
	assert.True(t, s.IsOngoing(29))
	assert.False(t, s.IsOngoing(30))
	assert.False(t, s.IsEnded(29))
	assert.True(t, s.IsEnded(30))

	s = New(0, math.MaxUint32-1, 10, 1)
	assert.Equal(t, uint32(math.MaxUint32), s.EndBlock())
}

func TestDividend(t *testing.T) {
	s := New(1, 0, 100, 1000)

	// a quarter of the supply earns a quarter of the allocation
	assert.Equal(t, uint64(250), s.Dividend(25, 100))
	// floor rounding
	assert.Equal(t, uint64(333), s.Dividend(1, 3))
	// zero supply earns nothing
	assert.Equal(t, uint64(0), s.Dividend(10, 0))

	s.Distribute(900)
	assert.Equal(t, uint64(100), s.Leftover())
	// capped by what is left
	assert.Equal(t, uint64(100), s.Dividend(50, 100))

	s.Distribute(math.MaxUint64)
	assert.Equal(t, uint64(0), s.Leftover())
}

func TestEnsure(t *testing.T) {
	_, err := EnsureOngoing(nil, 0)
	assert.ErrorIs(t, err, reverts.ErrRevenueSplitNotOngoing)
	_, err = EnsureEnded(nil, 0)
	assert.ErrorIs(t, err, reverts.ErrRevenueSplitNotActiveForToken)

	s := New(0, 5, 5, 10)
	_, err = EnsureOngoing(s, 4)
	assert.ErrorIs(t, err, reverts.ErrRevenueSplitNotOngoing)
	got, err := EnsureOngoing(s, 5)
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = EnsureEnded(s, 9)
	assert.ErrorIs(t, err, reverts.ErrRevenueSplitDidNotEnd)
	_, err = EnsureEnded(s, 10)
	assert.NoError(t, err)
}
