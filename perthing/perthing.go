// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package perthing implements fixed point fractions in [0, 1] with a defined accuracy denominator.
// All conversions round down, products are computed on 256 bit intermediates.
package perthing

import (
	"fmt"

	"github.com/holiman/uint256"
)

const (
	// PermillAccuracy is the denominator of Permill.
	PermillAccuracy uint32 = 1_000_000
	// PerquintillAccuracy is the denominator of Perquintill.
	PerquintillAccuracy uint64 = 1_000_000_000_000_000_000
)

// Permill is a fraction with parts per million accuracy.
type Permill uint32

// Perquintill is a fraction with parts per 10^18 accuracy.
type Perquintill uint64

// PermillFromParts creates a Permill, clamping parts to the accuracy.
func PermillFromParts(parts uint32) Permill {
	return Permill(min(parts, PermillAccuracy))
}

// PermillFromPercent creates a Permill of the given percentage, clamping at one.
func PermillFromPercent(percent uint32) Permill {
	return PermillFromParts(min(percent, 100) * (PermillAccuracy / 100))
}

// PermillFromRational returns floor(p/q), saturating at one. A zero q yields one.
func PermillFromRational(p, q uint64) Permill {
	return Permill(fromRational(p, q, uint64(PermillAccuracy)))
}

// Deconstruct returns the parts of the fraction.
func (p Permill) Deconstruct() uint32 { return uint32(p) }

// IsZero returns whether the fraction is zero.
func (p Permill) IsZero() bool { return p == 0 }

// MulFloor returns floor(p * n).
func (p Permill) MulFloor(n uint64) uint64 {
	return mulDiv(n, uint64(p), uint64(PermillAccuracy))
}

// SaturatingSub returns p - other, floored at zero.
func (p Permill) SaturatingSub(other Permill) Permill {
	if other >= p {
		return 0
	}
	return p - other
}

func (p Permill) String() string {
	return fmt.Sprintf("%d.%04d%%", p/10_000, p%10_000)
}

// PerquintillFromParts creates a Perquintill, clamping parts to the accuracy.
func PerquintillFromParts(parts uint64) Perquintill {
	return Perquintill(min(parts, PerquintillAccuracy))
}

// PerquintillFromRational returns floor(p/q), saturating at one. A zero q yields one.
func PerquintillFromRational(p, q uint64) Perquintill {
	return Perquintill(fromRational(p, q, PerquintillAccuracy))
}

// Deconstruct returns the parts of the fraction.
func (p Perquintill) Deconstruct() uint64 { return uint64(p) }

// IsZero returns whether the fraction is zero.
func (p Perquintill) IsZero() bool { return p == 0 }

// MulFloor returns floor(p * n).
func (p Perquintill) MulFloor(n uint64) uint64 {
	return mulDiv(n, uint64(p), PerquintillAccuracy)
}

// SaturatingSub returns p - other, floored at zero.
func (p Perquintill) SaturatingSub(other Perquintill) Perquintill {
	if other >= p {
		return 0
	}
	return p - other
}

func (p Perquintill) String() string {
	return fmt.Sprintf("%d/%d", uint64(p), PerquintillAccuracy)
}

// MulDivFloor returns floor(a * b / c) without intermediate overflow, saturating at max uint64.
// A zero c yields zero.
func MulDivFloor(a, b, c uint64) uint64 {
	return mulDiv(a, b, c)
}

func fromRational(p, q, accuracy uint64) uint64 {
	if q == 0 || p >= q {
		return accuracy
	}
	return mulDiv(p, accuracy, q)
}

func mulDiv(a, b, c uint64) uint64 {
	if c == 0 {
		return 0
	}
	x := new(uint256.Int).Mul(uint256.NewInt(a), uint256.NewInt(b))
	x.Div(x, uint256.NewInt(c))
	if !x.IsUint64() {
		return ^uint64(0)
	}
	return x.Uint64()
}
