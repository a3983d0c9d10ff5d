// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

import (
	"github.com/pkg/errors"

	"github.com/vechain/projecttoken/builtin/token/account"
	"github.com/vechain/projecttoken/builtin/token/issuance"
	"github.com/vechain/projecttoken/thor"
)

// Storage is the typed view of the token and account entries of a stage.
type Storage struct {
	stage       *Stage
	tokens      *Mapping[TokenID, *issuance.Token]
	accounts    *Mapping[AccountKey, *account.Account]
	symbols     *Mapping[thor.Bytes32, TokenID]
	nextTokenID *Raw[uint64]
}

// New creates the storage of the stage.
func New(stage *Stage) *Storage {
	return &Storage{
		stage:       stage,
		tokens:      NewMapping[TokenID, *issuance.Token](stage, TokensBucket),
		accounts:    NewMapping[AccountKey, *account.Account](stage, AccountsBucket),
		symbols:     NewMapping[thor.Bytes32, TokenID](stage, SymbolsBucket),
		nextTokenID: NewRaw[uint64](stage, NextTokenIDKey),
	}
}

// Stage returns the underlying stage.
func (s *Storage) Stage() *Stage {
	return s.stage
}

// GetToken returns the token, nil if it does not exist.
func (s *Storage) GetToken(id TokenID) (*issuance.Token, error) {
	t, err := s.tokens.Get(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get token")
	}
	return t, nil
}

func (s *Storage) SetToken(id TokenID, t *issuance.Token) error {
	if err := s.tokens.Set(id, t); err != nil {
		return errors.Wrap(err, "failed to set token")
	}
	return nil
}

func (s *Storage) DeleteToken(id TokenID) {
	s.tokens.Delete(id)
}

// GetAccount returns the account of addr on the token, nil if it does not exist.
func (s *Storage) GetAccount(id TokenID, addr thor.Address) (*account.Account, error) {
	a, err := s.accounts.Get(AccountKey{id, addr})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get account")
	}
	return a, nil
}

func (s *Storage) HasAccount(id TokenID, addr thor.Address) (bool, error) {
	ok, err := s.accounts.Has(AccountKey{id, addr})
	if err != nil {
		return false, errors.Wrap(err, "failed to check account")
	}
	return ok, nil
}

func (s *Storage) SetAccount(id TokenID, addr thor.Address, a *account.Account) error {
	if err := s.accounts.Set(AccountKey{id, addr}, a); err != nil {
		return errors.Wrap(err, "failed to set account")
	}
	return nil
}

func (s *Storage) DeleteAccount(id TokenID, addr thor.Address) {
	s.accounts.Delete(AccountKey{id, addr})
}

// GetTokenBySymbol returns the id of the token using symbol.
func (s *Storage) GetTokenBySymbol(symbol thor.Bytes32) (TokenID, bool, error) {
	id, ok, err := s.symbols.Lookup(symbol)
	if err != nil {
		return 0, false, errors.Wrap(err, "failed to get symbol")
	}
	return id, ok, nil
}

func (s *Storage) SetSymbol(symbol thor.Bytes32, id TokenID) error {
	if err := s.symbols.Set(symbol, id); err != nil {
		return errors.Wrap(err, "failed to set symbol")
	}
	return nil
}

func (s *Storage) DeleteSymbol(symbol thor.Bytes32) {
	s.symbols.Delete(symbol)
}

// NextTokenID returns the id the next issued token gets.
func (s *Storage) NextTokenID() (TokenID, error) {
	id, err := s.nextTokenID.Get()
	if err != nil {
		return 0, errors.Wrap(err, "failed to get next token id")
	}
	return TokenID(id), nil
}

func (s *Storage) SetNextTokenID(id TokenID) error {
	if err := s.nextTokenID.Set(uint64(id)); err != nil {
		return errors.Wrap(err, "failed to set next token id")
	}
	return nil
}
