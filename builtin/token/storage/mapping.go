// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/vechain/projecttoken/kv"
)

// Key is a mapping key.
type Key interface {
	Bytes() []byte
}

// Mapping is a typed view of the entries of a bucket, encoded with rlp.
type Mapping[K Key, V any] struct {
	stage  *Stage
	bucket kv.Bucket
}

// NewMapping creates a mapping over the bucket.
func NewMapping[K Key, V any](stage *Stage, bucket kv.Bucket) *Mapping[K, V] {
	return &Mapping[K, V]{stage: stage, bucket: bucket}
}

// Get returns the value of key, or the zero value if absent.
func (m *Mapping[K, V]) Get(key K) (value V, err error) {
	_, err = m.get(key, &value)
	return
}

// Lookup returns the value of key and whether it exists.
func (m *Mapping[K, V]) Lookup(key K) (value V, ok bool, err error) {
	ok, err = m.get(key, &value)
	return
}

func (m *Mapping[K, V]) get(key K, value *V) (bool, error) {
	raw, ok, err := m.stage.Get(m.bucket.Key(key.Bytes()))
	if err != nil || !ok {
		return false, err
	}
	if err := rlp.DecodeBytes(raw, value); err != nil {
		return false, errors.Wrapf(err, "decode %s entry", string(m.bucket))
	}
	return true, nil
}

// Has returns whether key exists.
func (m *Mapping[K, V]) Has(key K) (bool, error) {
	_, ok, err := m.stage.Get(m.bucket.Key(key.Bytes()))
	return ok, err
}

// Set stores value under key.
func (m *Mapping[K, V]) Set(key K, value V) error {
	raw, err := rlp.EncodeToBytes(value)
	if err != nil {
		return errors.Wrapf(err, "encode %s entry", string(m.bucket))
	}
	m.stage.Put(m.bucket.Key(key.Bytes()), raw)
	return nil
}

// Delete removes key.
func (m *Mapping[K, V]) Delete(key K) {
	m.stage.Delete(m.bucket.Key(key.Bytes()))
}

// Raw is a single typed entry.
type Raw[V any] struct {
	stage *Stage
	key   []byte
}

// NewRaw creates an entry stored under key.
func NewRaw[V any](stage *Stage, key []byte) *Raw[V] {
	return &Raw[V]{stage: stage, key: key}
}

// Get returns the value, or the zero value if absent.
func (r *Raw[V]) Get() (value V, err error) {
	raw, ok, err := r.stage.Get(r.key)
	if err != nil || !ok {
		return value, err
	}
	if err := rlp.DecodeBytes(raw, &value); err != nil {
		return value, errors.Wrap(err, "decode raw entry")
	}
	return value, nil
}

// Set stores the value.
func (r *Raw[V]) Set(value V) error {
	raw, err := rlp.EncodeToBytes(value)
	if err != nil {
		return errors.Wrap(err, "encode raw entry")
	}
	r.stage.Put(r.key, raw)
	return nil
}
