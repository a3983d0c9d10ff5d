// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package thor

import "github.com/pkg/errors"

// Config is the configurable parameters of the token ledger. Production ledgers keep the defaults,
// custom or test ledgers may override them from a yaml file.
type Config struct {
	BlocksPerYear                 uint32  `json:"blocksPerYear" yaml:"blocksPerYear"`                                 // used to derive per-block patronage rates
	MaxVestingSchedulesPerAccount uint32  `json:"maxVestingSchedulesPerAccount" yaml:"maxVestingSchedulesPerAccount"` // concurrent vesting sources per account per token
	BloatBond                     uint64  `json:"bloatBond" yaml:"bloatBond"`                                         // JOY deposited per created account
	MinRevenueSplitDuration       uint32  `json:"minRevenueSplitDuration" yaml:"minRevenueSplitDuration"`
	MinRevenueSplitTimeToStart    uint32  `json:"minRevenueSplitTimeToStart" yaml:"minRevenueSplitTimeToStart"`
	Treasury                      Address `json:"treasury" yaml:"treasury"` // module account holding bonds and split allocations
}

// DefaultConfig returns the default ledger config.
func DefaultConfig() Config {
	return Config{
		BlocksPerYear:                 DefaultBlocksPerYear,
		MaxVestingSchedulesPerAccount: DefaultMaxVestingSchedulesPerAccount,
		BloatBond:                     DefaultBloatBond,
		MinRevenueSplitDuration:       DefaultMinRevenueSplitDuration,
		MinRevenueSplitTimeToStart:    0,
		Treasury:                      DefaultTreasury,
	}
}

// Validate checks the config is usable.
func (c *Config) Validate() error {
	if c.BlocksPerYear == 0 {
		return errors.New("blocksPerYear must be positive")
	}
	if c.MaxVestingSchedulesPerAccount == 0 {
		return errors.New("maxVestingSchedulesPerAccount must be positive")
	}
	if c.Treasury.IsZero() {
		return errors.New("treasury address must be set")
	}
	return nil
}

// Merge overrides the non-zero fields of other into c.
func (c *Config) Merge(other Config) {
	if other.BlocksPerYear != 0 {
		c.BlocksPerYear = other.BlocksPerYear
	}
	if other.MaxVestingSchedulesPerAccount != 0 {
		c.MaxVestingSchedulesPerAccount = other.MaxVestingSchedulesPerAccount
	}
	if other.BloatBond != 0 {
		c.BloatBond = other.BloatBond
	}
	if other.MinRevenueSplitDuration != 0 {
		c.MinRevenueSplitDuration = other.MinRevenueSplitDuration
	}
	if other.MinRevenueSplitTimeToStart != 0 {
		c.MinRevenueSplitTimeToStart = other.MinRevenueSplitTimeToStart
	}
	if !other.Treasury.IsZero() {
		c.Treasury = other.Treasury
	}
}
