// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package thor

import (
	"fmt"
	"io"
)

// StorageSize is a size in bytes. As an io.Writer it counts the bytes written through it.
type StorageSize uint64

var _ io.Writer = (*StorageSize)(nil)

func (ss StorageSize) String() string {
	switch {
	case ss >= 1_000_000_000:
		return fmt.Sprintf("%.2f GB", float64(ss)/1e9)
	case ss >= 1_000_000:
		return fmt.Sprintf("%.2f MB", float64(ss)/1e6)
	case ss >= 1_000:
		return fmt.Sprintf("%.2f kB", float64(ss)/1e3)
	}
	return fmt.Sprintf("%d B", uint64(ss))
}

func (ss *StorageSize) Write(b []byte) (int, error) {
	*ss += StorageSize(len(b))
	return len(b), nil
}
