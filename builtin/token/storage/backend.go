// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/vechain/projecttoken/cache"
	"github.com/vechain/projecttoken/kv"
)

// Backend is the committed ledger state: a kv store fronted by an LRU of raw values.
type Backend struct {
	store kv.Store
	cache *cache.LRU
}

// NewBackend wraps store. cacheSize is the number of cached values.
func NewBackend(store kv.Store, cacheSize int) (*Backend, error) {
	if cacheSize <= 0 {
		cacheSize = 1
	}
	c, err := cache.NewLRU(cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "create cache")
	}
	return &Backend{store: store, cache: c}, nil
}

// Store returns the underlying store.
func (b *Backend) Store() kv.Store {
	return b.store
}

func (b *Backend) get(key string) ([]byte, bool, error) {
	v, err := b.cache.GetOrLoad(key, func(k any) (any, error) {
		val, err := b.store.Get([]byte(k.(string)))
		if err != nil {
			if b.store.IsNotFound(err) {
				return []byte(nil), nil
			}
			return nil, err
		}
		return val, nil
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "get")
	}
	val := v.([]byte)
	if val == nil {
		return nil, false, nil
	}
	return val, true, nil
}

// Iterate iterates committed entries in range.
func (b *Backend) Iterate(r kv.Range) kv.Iterator {
	return b.store.Iterate(r)
}

// NewStage returns an empty overlay of the committed state.
func (b *Backend) NewStage() *Stage {
	return newStage(b)
}

// CacheStats reports the cache hit and miss counts when the hit rate changed since the last call.
func (b *Backend) CacheStats() {
	if c := b.cache.Stats(); c.Changed {
		metricCacheHitMiss().SetWithLabel(c.Hit, map[string]string{"type": "hit"})
		metricCacheHitMiss().SetWithLabel(c.Miss, map[string]string{"type": "miss"})
	}
}

func (b *Backend) write(journal func(cb func(key string, val []byte) bool)) error {
	bulk := b.store.Bulk()
	var (
		err           error
		puts, deletes int64
	)
	journal(func(key string, val []byte) bool {
		if val == nil {
			err = bulk.Delete([]byte(key))
			deletes++
		} else {
			err = bulk.Put([]byte(key), val)
			puts++
		}
		return err == nil
	})
	if err != nil {
		return errors.Wrap(err, "stage bulk")
	}
	if err := bulk.Write(); err != nil {
		// cached values may be ahead of the store now
		b.cache.Purge()
		return errors.Wrap(err, "write bulk")
	}
	journal(func(key string, val []byte) bool {
		b.cache.Add(key, bytes.Clone(val))
		return true
	})
	metricCommittedWrites().AddWithLabel(puts, map[string]string{"type": "put"})
	metricCommittedWrites().AddWithLabel(deletes, map[string]string{"type": "delete"})
	return nil
}
