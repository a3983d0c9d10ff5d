// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"github.com/vechain/projecttoken/builtin/token/account"
	"github.com/vechain/projecttoken/builtin/token/issuance"
	"github.com/vechain/projecttoken/builtin/token/reverts"
	"github.com/vechain/projecttoken/builtin/token/sale"
	"github.com/vechain/projecttoken/builtin/token/vesting"
	"github.com/vechain/projecttoken/thor"
)

// InitTokenSale puts tokens of the source account on sale. The whole upper bound quantity leaves
// the source account until the sale ends and unsold tokens are recovered.
func (l *Ledger) InitTokenSale(id TokenID, params sale.Params, now uint32) (uint32, error) {
	logger.Debug("initializing sale", "token", id, "source", params.TokensSource, "quantity", params.UpperBoundQuantity, "block", now)

	var saleID uint32
	err := l.execute("init_sale", func(tx *txn) (apply, error) {
		token, err := tx.token(id)
		if err != nil {
			return nil, err
		}
		if err := token.EnsureIdle(now); err != nil {
			return nil, err
		}
		s, err := sale.FromParams(params, now)
		if err != nil {
			return nil, err
		}
		src, err := tx.account(id, params.TokensSource)
		if err != nil {
			return nil, err
		}
		if err := src.EnsureCanTransfer(now, params.UpperBoundQuantity); err != nil {
			return nil, err
		}
		if token.Sale != nil && token.Sale.QuantityLeft != 0 && token.Sale.TokensSource != params.TokensSource {
			// unsold tokens of the previous sale go back before its record is dropped
			if _, err := tx.account(id, token.Sale.TokensSource); err != nil {
				return nil, err
			}
		}

		return func() error {
			if err := tx.recoverUnsold(id, token); err != nil {
				return err
			}
			// the previous source may be the new one
			if src, err = tx.account(id, params.TokensSource); err != nil {
				return err
			}
			src.DecreaseAmountBy(params.UpperBoundQuantity)
			if err := tx.SetAccount(id, params.TokensSource, src); err != nil {
				return err
			}
			saleID = token.NextSaleID
			token.NextSaleID++
			token.Sale = s
			return tx.SetToken(id, token)
		}, nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("initialized sale", "token", id, "sale", saleID)
	return saleID, nil
}

// UpdateUpcomingSale moves the start or changes the duration of a sale that has not started.
// Nil values keep the current setting.
func (l *Ledger) UpdateUpcomingSale(id TokenID, newStart, newDuration *uint32, now uint32) error {
	return l.execute("update_sale", func(tx *txn) (apply, error) {
		token, err := tx.token(id)
		if err != nil {
			return nil, err
		}
		s, err := token.EnsureUpcomingSale(now)
		if err != nil {
			return nil, err
		}
		if newStart != nil && *newStart < now {
			return nil, reverts.ErrSaleStartingBlockInThePast
		}
		if newDuration != nil && *newDuration == 0 {
			return nil, reverts.ErrSaleDurationIsZero
		}

		return func() error {
			if newStart != nil {
				s.StartBlock = *newStart
			}
			if newDuration != nil {
				s.Duration = *newDuration
			}
			return tx.SetToken(id, token)
		}, nil
	})
}

// PurchaseTokensOnSale buys amount tokens on the active sale. The price goes to the sale's source,
// the tokens vest on the buyer's account under the sale's schedule. A buyer without an account
// also pays its bloat bond.
func (l *Ledger) PurchaseTokensOnSale(id TokenID, buyer thor.Address, amount uint64, now uint32) error {
	logger.Debug("purchasing on sale", "token", id, "buyer", buyer, "amount", amount, "block", now)

	return l.execute("purchase", func(tx *txn) (apply, error) {
		token, err := tx.token(id)
		if err != nil {
			return nil, err
		}
		s, err := token.EnsureSale(now)
		if err != nil {
			return nil, err
		}
		saleID := token.CurrentSaleID()
		acc, err := tx.GetAccount(id, buyer)
		if err != nil {
			return nil, err
		}
		var purchased uint64
		if acc != nil {
			purchased = acc.SalePurchasedAmount(saleID)
		}
		if err := s.EnsureCanPurchase(amount, purchased); err != nil {
			return nil, err
		}
		if acc == nil && token.TransferPolicy.Permissioned {
			return nil, reverts.ErrAccountInformationDoesNotExist
		}
		price, err := s.Price(amount)
		if err != nil {
			return nil, err
		}
		var bond uint64
		if acc == nil {
			bond = tx.config.BloatBond
		}
		if err := tx.joy.EnsureCanTransfer(buyer, saturatingAdd(price, bond), reverts.ErrInsufficientBalanceForTokenPurchase); err != nil {
			return nil, err
		}
		source := vesting.SaleSource(saleID)
		var cleanup *vesting.Source
		if acc != nil {
			if cleanup, err = acc.EnsureCanAddOrUpdateVestingSchedule(now, source, tx.config.MaxVestingSchedulesPerAccount); err != nil {
				return nil, err
			}
		}

		return func() error {
			schedule := s.VestingScheduleFor(amount)
			if acc == nil {
				acc = account.NewWithVesting(source, schedule, bond)
				token.IncrementAccountsNumber()
				if err := tx.lockBond(buyer, bond); err != nil {
					return err
				}
			} else {
				acc.AddOrUpdateVestingSchedule(source, schedule, cleanup)
			}
			acc.RecordSalePurchase(saleID, amount)
			if err := tx.SetAccount(id, buyer, acc); err != nil {
				return err
			}
			if err := tx.joy.Transfer(buyer, s.TokensSource, price); err != nil {
				return err
			}
			s.QuantityLeft -= amount
			return tx.SetToken(id, token)
		}, nil
	})
}

// RecoverUnsoldTokens returns the unsold tokens of an ended sale to its source account and
// clears the sale. It returns the recovered amount, zero when there is no sale to recover.
func (l *Ledger) RecoverUnsoldTokens(id TokenID, now uint32) (uint64, error) {
	var recovered uint64
	err := l.execute("recover_unsold", func(tx *txn) (apply, error) {
		token, err := tx.token(id)
		if err != nil {
			return nil, err
		}
		if token.Sale == nil {
			return func() error { return nil }, nil
		}
		if err := token.EnsureIdle(now); err != nil {
			return nil, err
		}
		if token.Sale.QuantityLeft != 0 {
			if _, err := tx.account(id, token.Sale.TokensSource); err != nil {
				return nil, err
			}
		}

		return func() error {
			recovered = token.Sale.QuantityLeft
			if err := tx.recoverUnsold(id, token); err != nil {
				return err
			}
			return tx.SetToken(id, token)
		}, nil
	})
	if err != nil {
		return 0, err
	}

	logger.Debug("recovered unsold tokens", "token", id, "amount", recovered, "block", now)
	return recovered, nil
}

// recoverUnsold credits the unsold tokens of the stored sale back to its source and drops the
// sale. The caller checked the sale ended and stores the token.
func (tx *txn) recoverUnsold(id TokenID, token *issuance.Token) error {
	s := token.Sale
	if s == nil {
		return nil
	}
	token.Sale = nil
	if s.QuantityLeft == 0 {
		return nil
	}
	src, err := tx.account(id, s.TokensSource)
	if err != nil {
		return err
	}
	src.IncreaseAmountBy(s.QuantityLeft)
	return tx.SetAccount(id, s.TokensSource, src)
}
