// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

import (
	"github.com/vechain/projecttoken/overlay"
)

// Stage buffers the writes of an operation over the committed state.
// Nothing reaches the store before Commit, a discarded stage leaves it untouched.
type Stage struct {
	backend *Backend
	writes  *overlay.Map[string, []byte] // a nil value marks a deletion
}

func newStage(backend *Backend) *Stage {
	return &Stage{
		backend: backend,
		writes:  overlay.New(backend.get),
	}
}

// Get returns the staged or committed value of key.
func (s *Stage) Get(key []byte) ([]byte, bool, error) {
	val, ok, err := s.writes.Get(string(key))
	if err != nil || !ok || val == nil {
		return nil, false, err
	}
	return val, true, nil
}

// Put stages val under key.
func (s *Stage) Put(key, val []byte) {
	if val == nil {
		val = []byte{}
	}
	s.writes.Put(string(key), val)
}

// Delete stages the removal of key.
func (s *Stage) Delete(key []byte) {
	s.writes.Put(string(key), nil)
}

// Dirty returns whether the stage holds writes.
func (s *Stage) Dirty() bool {
	return s.writes.Len() > 0
}

// Commit writes the staged entries to the store in one bulk.
func (s *Stage) Commit() error {
	return s.backend.write(s.writes.Journal)
}
