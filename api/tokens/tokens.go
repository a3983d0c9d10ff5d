// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tokens

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/vechain/projecttoken/api/utils"
	"github.com/vechain/projecttoken/builtin/token"
	"github.com/vechain/projecttoken/builtin/token/account"
	"github.com/vechain/projecttoken/builtin/token/reverts"
	"github.com/vechain/projecttoken/thor"
)

const defaultAccountsLimit = 100

type Tokens struct {
	ledger       *token.Ledger
	defaultBlock uint32
	accountsMax  int
}

// New creates the token query endpoints. Queries without a block parameter are evaluated at defaultBlock.
func New(ledger *token.Ledger, defaultBlock uint32, accountsMax int) *Tokens {
	if accountsMax <= 0 {
		accountsMax = defaultAccountsLimit
	}
	return &Tokens{
		ledger,
		defaultBlock,
		accountsMax,
	}
}

func (t *Tokens) parseID(req *http.Request) (token.TokenID, error) {
	id, err := utils.ParseTokenID(mux.Vars(req)["id"])
	if err != nil {
		return 0, utils.BadRequest(errors.WithMessage(err, "id"))
	}
	return id, nil
}

func (t *Tokens) parseBlock(req *http.Request) (uint32, error) {
	b, err := utils.ParseBlock(req.URL.Query().Get("block"), t.defaultBlock)
	if err != nil {
		return 0, utils.BadRequest(errors.WithMessage(err, "block"))
	}
	return b, nil
}

func (t *Tokens) handleGetToken(w http.ResponseWriter, req *http.Request) error {
	id, err := t.parseID(req)
	if err != nil {
		return err
	}
	tk, err := t.ledger.Token(id)
	if err != nil {
		return utils.LedgerError(err)
	}
	return utils.WriteJSON(w, convertToken(uint64(id), tk))
}

func (t *Tokens) handleGetTokenBySymbol(w http.ResponseWriter, req *http.Request) error {
	symbol := mux.Vars(req)["symbol"]
	id, ok, err := t.ledger.TokenBySymbol(thor.SymbolHash(symbol))
	if err != nil {
		return err
	}
	if !ok {
		return utils.NotFound(reverts.ErrTokenDoesNotExist)
	}
	tk, err := t.ledger.Token(id)
	if err != nil {
		return utils.LedgerError(err)
	}
	return utils.WriteJSON(w, convertToken(uint64(id), tk))
}

func (t *Tokens) handleGetOffering(w http.ResponseWriter, req *http.Request) error {
	id, err := t.parseID(req)
	if err != nil {
		return err
	}
	block, err := t.parseBlock(req)
	if err != nil {
		return err
	}
	o, err := t.ledger.OfferingState(id, block)
	if err != nil {
		return utils.LedgerError(err)
	}
	return utils.WriteJSON(w, &Offering{State: o.State, Sale: convertSale(o.Sale)})
}

func (t *Tokens) handleGetPatronage(w http.ResponseWriter, req *http.Request) error {
	id, err := t.parseID(req)
	if err != nil {
		return err
	}
	block, err := t.parseBlock(req)
	if err != nil {
		return err
	}
	tk, err := t.ledger.Token(id)
	if err != nil {
		return utils.LedgerError(err)
	}
	info := tk.Patronage
	return utils.WriteJSON(w, &Patronage{
		BlockRate:      uint64(info.Rate),
		YearlyRate:     info.Rate.ToYearlyRepresentation(t.ledger.Config().BlocksPerYear).Deconstruct(),
		UnclaimedTally: info.UnclaimedTally,
		LastTallyBlock: info.LastTallyBlock,
		Unclaimed:      tk.UnclaimedPatronageAt(block),
	})
}

func (t *Tokens) handleGetAccount(w http.ResponseWriter, req *http.Request) error {
	id, err := t.parseID(req)
	if err != nil {
		return err
	}
	addr, err := thor.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	block, err := t.parseBlock(req)
	if err != nil {
		return err
	}
	acc, err := t.ledger.Account(id, addr)
	if err != nil {
		return utils.LedgerError(err)
	}
	return utils.WriteJSON(w, convertAccount(addr, acc, block))
}

func (t *Tokens) handleGetAccounts(w http.ResponseWriter, req *http.Request) error {
	id, err := t.parseID(req)
	if err != nil {
		return err
	}
	block, err := t.parseBlock(req)
	if err != nil {
		return err
	}
	limit := t.accountsMax
	if s := req.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return utils.BadRequest(errors.New("limit: must be a positive integer"))
		}
		if n < limit {
			limit = n
		}
	}
	if _, err := t.ledger.Token(id); err != nil {
		return utils.LedgerError(err)
	}

	accounts := make([]*Account, 0)
	if err := t.ledger.Accounts(id, func(addr thor.Address, acc *account.Account) bool {
		accounts = append(accounts, convertAccount(addr, acc, block))
		return len(accounts) < limit
	}); err != nil {
		return err
	}
	return utils.WriteJSON(w, accounts)
}

func (t *Tokens) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/symbol/{symbol}").
		Methods(http.MethodGet).
		Name("GET /tokens/symbol/{symbol}").
		HandlerFunc(utils.WrapHandlerFunc(t.handleGetTokenBySymbol))
	sub.Path("/{id}").
		Methods(http.MethodGet).
		Name("GET /tokens/{id}").
		HandlerFunc(utils.WrapHandlerFunc(t.handleGetToken))
	sub.Path("/{id}/offering").
		Methods(http.MethodGet).
		Name("GET /tokens/{id}/offering").
		HandlerFunc(utils.WrapHandlerFunc(t.handleGetOffering))
	sub.Path("/{id}/patronage").
		Methods(http.MethodGet).
		Name("GET /tokens/{id}/patronage").
		HandlerFunc(utils.WrapHandlerFunc(t.handleGetPatronage))
	sub.Path("/{id}/accounts").
		Methods(http.MethodGet).
		Name("GET /tokens/{id}/accounts").
		HandlerFunc(utils.WrapHandlerFunc(t.handleGetAccounts))
	sub.Path("/{id}/accounts/{address}").
		Methods(http.MethodGet).
		Name("GET /tokens/{id}/accounts/{address}").
		HandlerFunc(utils.WrapHandlerFunc(t.handleGetAccount))
}
