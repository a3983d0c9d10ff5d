// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package reverts holds the closed set of reasons a token ledger operation is rejected.
// A rejected operation performs no writes.
package reverts

import (
	"errors"
)

type ErrRevert struct {
	message string
}

func New(message string) *ErrRevert {
	return &ErrRevert{
		message: message,
	}
}

func (e *ErrRevert) Error() string {
	return e.message
}

func IsRevertErr(err any) bool {
	if err == nil {
		return false
	}
	e, ok := err.(error)
	if !ok {
		return false
	}
	var ve *ErrRevert
	return errors.As(e, &ve)
}

// balances
var (
	ErrInsufficientTransferrableBalance          = New("insufficient transferrable balance")
	ErrInsufficientTotalSupplyToDecreaseByAmount = New("token's total supply cannot be decreased by specified amount")
	ErrInsufficientBalanceForBloatBond           = New("insufficient JOY balance for bloat bond")
	ErrInsufficientBalanceForTokenPurchase       = New("insufficient JOY balance to make the token purchase")
	ErrInsufficientJoyBalance                    = New("insufficient JOY balance")
	ErrInsufficientBalanceForSplitParticipation  = New("insufficient token balance to participate in split")
)

// existence
var (
	ErrTokenDoesNotExist              = New("requested token does not exist")
	ErrAccountInformationDoesNotExist = New("requested account data does not exist")
	ErrAccountAlreadyExists           = New("account already exists")
	ErrTokenSymbolAlreadyInUse        = New("symbol already in use")
)

// transfers and whitelist
var (
	ErrSameSourceAndDestinationLocations                   = New("source and destination location coincide")
	ErrTransferDestinationIsZero                           = New("transfer outputs are empty")
	ErrMerkleProofVerificationFailure                      = New("merkle proof verification failed")
	ErrMerkleProofNotProvided                              = New("merkle proof not provided")
	ErrCannotJoinWhitelistInPermissionlessMode             = New("cannot join whitelist in permissionless mode")
	ErrAttemptToRemoveNonOwnedAccountUnderPermissionedMode = New("attempt to remove non owned account under permissioned mode")
	ErrAttemptToRemoveNonOwnedAndNonEmptyAccount           = New("attempt to remove non owned and non empty account")
	ErrAttemptToRemoveNonEmptyAccount                      = New("attempt to remove non empty account")
	ErrMaxVestingSchedulesPerAccountPerTokenReached        = New("max number of vesting schedules for this account-token pair was reached")
)

// issuance and patronage
var (
	ErrReductionExceedingPatronageRate           = New("patronage reduction exceeding patronage rate")
	ErrCannotDeissueTokenWithOutstandingAccounts = New("cannot deissue token with outstanding accounts")
	ErrTokenIssuanceIsNotZero                    = New("token issuance is not zero")
)

// sales
var (
	ErrSaleStartingBlockInThePast   = New("specified sale starting block is in the past")
	ErrSaleDurationIsZero           = New("sale duration cannot be zero")
	ErrSaleUpperBoundQuantityIsZero = New("sale upper bound quantity cannot be zero")
	ErrSaleCapPerMemberIsZero       = New("sale cap per member cannot be zero")
	ErrSaleUnitPriceIsZero          = New("sale unit price cannot be zero")
	ErrSalePurchaseAmountIsZero     = New("amount of tokens to purchase must be non-zero")
	ErrSalePurchaseCapExceeded      = New("purchase would exceed the sale cap per member")
	ErrTokenIssuanceNotInIdleState  = New("token's current offering state is not idle")
	ErrNoUpcomingSale               = New("the token has no upcoming sale")
	ErrNoActiveSale                 = New("the token has no active sale at the moment")
	ErrNotEnoughTokensOnSale        = New("amount of tokens to purchase exceeds the quantity still available on sale")
	ErrUnitPriceTimesAmountOverflow = New("purchase price overflows")
)

// revenue splits
var (
	ErrRevenueSplitAlreadyActive                = New("revenue split already active for this token")
	ErrRevenueSplitDurationTooShort             = New("revenue split duration is too short")
	ErrRevenueSplitTimeToStartTooShort          = New("revenue split starting block is too close to the current block")
	ErrCannotIssueSplitWithZeroAllocationAmount = New("cannot issue split with zero allocation amount")
	ErrRevenueSplitNotActiveForToken            = New("no revenue split active for this token")
	ErrRevenueSplitNotOngoing                   = New("revenue split is not ongoing")
	ErrRevenueSplitDidNotEnd                    = New("revenue split has not ended yet")
	ErrCannotParticipateInSplitWithZeroAmount   = New("cannot participate in split with zero amount")
	ErrUserAlreadyParticipating                 = New("user is already participating in this split")
	ErrUserNotParticipantInAnySplit             = New("user is not participating in any split")
)
