// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package overlay buffers writes over a read only source and keeps them in a journal.
package overlay

// Getter reads the source of an overlay.
type Getter[K comparable, V any] func(key K) (value V, exist bool, err error)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Map is a write buffer over src. Reads see buffered values first.
type Map[K comparable, V any] struct {
	src     Getter[K, V]
	kvs     map[K]V
	journal []entry[K, V]
}

// New creates an empty overlay over src.
func New[K comparable, V any](src Getter[K, V]) *Map[K, V] {
	return &Map[K, V]{
		src: src,
		kvs: make(map[K]V),
	}
}

// Get returns the buffered value of key, or its value in the source.
func (m *Map[K, V]) Get(key K) (V, bool, error) {
	if v, ok := m.kvs[key]; ok {
		return v, true, nil
	}
	return m.src(key)
}

// Put buffers value under key.
func (m *Map[K, V]) Put(key K, value V) {
	m.kvs[key] = value
	m.journal = append(m.journal, entry[K, V]{key, value})
}

// Len returns the number of buffered puts.
func (m *Map[K, V]) Len() int {
	return len(m.journal)
}

// Journal replays the puts in order until cb returns false.
func (m *Map[K, V]) Journal(cb func(key K, value V) bool) {
	for _, e := range m.journal {
		if !cb(e.key, e.value) {
			return
		}
	}
}
