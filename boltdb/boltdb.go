// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package boltdb implements kv.Store on a single bbolt bucket.
package boltdb

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"

	"github.com/vechain/projecttoken/kv"
)

var (
	_ kv.Store = (*BoltDB)(nil)

	bucketName = []byte("ledger")

	// ErrNotFound is returned by Get for missing keys.
	ErrNotFound = errors.New("boltdb: not found")
)

// BoltDB wraps a bbolt database.
type BoltDB struct {
	db *bbolt.DB
}

// Open opens or creates the database at path. The parent directory is created if missing.
func Open(path string) (*BoltDB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, errors.Wrap(err, "create directory")
	}
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "open bolt db")
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create bucket")
	}
	return &BoltDB{db: db}, nil
}

// IsNotFound to check if the error returned by Get indicates key not found.
func (b *BoltDB) IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Get retrieves a copy of the value for key.
func (b *BoltDB) Get(key []byte) (val []byte, err error) {
	err = b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketName).Get(key)
		if v == nil {
			return ErrNotFound
		}
		val = bytes.Clone(v)
		return nil
	})
	return
}

// Has returns whether a key exists.
func (b *BoltDB) Has(key []byte) (has bool, err error) {
	err = b.db.View(func(tx *bbolt.Tx) error {
		has = tx.Bucket(bucketName).Get(key) != nil
		return nil
	})
	return
}

// Put saves value for key.
func (b *BoltDB) Put(key, val []byte) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put(key, val)
	})
}

// Delete deletes key.
func (b *BoltDB) Delete(key []byte) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Delete(key)
	})
}

// Close closes the database.
func (b *BoltDB) Close() error {
	return b.db.Close()
}

type op struct {
	key, val []byte
	del      bool
}

// Bulk returns a putter whose ops are applied in one read-write transaction on Write.
func (b *BoltDB) Bulk() kv.Bulk {
	var ops []op
	return &struct {
		kv.PutFunc
		kv.DeleteFunc
		kv.LenFunc
		kv.WriteFunc
	}{
		func(key, val []byte) error {
			ops = append(ops, op{key: bytes.Clone(key), val: bytes.Clone(val)})
			return nil
		},
		func(key []byte) error {
			ops = append(ops, op{key: bytes.Clone(key), del: true})
			return nil
		},
		func() int { return len(ops) },
		func() error {
			if len(ops) == 0 {
				return nil
			}
			err := b.db.Update(func(tx *bbolt.Tx) error {
				bkt := tx.Bucket(bucketName)
				for _, o := range ops {
					var err error
					if o.del {
						err = bkt.Delete(o.key)
					} else {
						err = bkt.Put(o.key, o.val)
					}
					if err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
			ops = ops[:0]
			return nil
		},
	}
}

// Iterate iterates the range in a read-only transaction held until Release.
// The iterator must be released before writing from the same goroutine.
func (b *BoltDB) Iterate(r kv.Range) kv.Iterator {
	tx, err := b.db.Begin(false)
	if err != nil {
		return &iterator{err: err}
	}
	return &iterator{
		tx:     tx,
		cursor: tx.Bucket(bucketName).Cursor(),
		rng:    r,
	}
}

type iterator struct {
	tx       *bbolt.Tx
	cursor   *bbolt.Cursor
	rng      kv.Range
	started  bool
	key, val []byte
	err      error
}

func (it *iterator) Next() bool {
	if it.cursor == nil {
		return false
	}
	var k, v []byte
	if !it.started {
		it.started = true
		k, v = it.cursor.Seek(it.rng.Start)
	} else {
		k, v = it.cursor.Next()
	}
	if k == nil || (len(it.rng.Limit) > 0 && bytes.Compare(k, it.rng.Limit) >= 0) {
		it.cursor = nil
		it.key, it.val = nil, nil
		return false
	}
	it.key, it.val = bytes.Clone(k), bytes.Clone(v)
	return true
}

func (it *iterator) Key() []byte   { return it.key }
func (it *iterator) Value() []byte { return it.val }
func (it *iterator) Error() error  { return it.err }

func (it *iterator) Release() {
	it.cursor = nil
	if it.tx != nil {
		_ = it.tx.Rollback()
		it.tx = nil
	}
}
