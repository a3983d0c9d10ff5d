// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package cache_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/projecttoken/cache"
)

func TestLRUGetOrLoad(t *testing.T) {
	_, err := cache.NewLRU(0)
	assert.Error(t, err)

	c, err := cache.NewLRU(2)
	require.NoError(t, err)

	loads := 0
	loader := func(key any) (any, error) {
		loads++
		return key.(int) * 10, nil
	}

	v, err := c.GetOrLoad(1, loader)
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	v, err = c.GetOrLoad(1, loader)
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	assert.Equal(t, 1, loads)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hit)
	assert.Equal(t, int64(1), stats.Miss)

	// evicts the least recently used
	_, _ = c.GetOrLoad(2, loader)
	_, _ = c.GetOrLoad(3, loader)
	assert.False(t, c.Contains(1))
	assert.Equal(t, 2, c.Len())

	boom := errors.New("boom")
	_, err = c.GetOrLoad(4, func(any) (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, c.Contains(4))
}
