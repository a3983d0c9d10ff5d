// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package joy

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/vechain/projecttoken/api/utils"
	"github.com/vechain/projecttoken/builtin/token"
	"github.com/vechain/projecttoken/thor"
)

type Balance struct {
	Address thor.Address `json:"address"`
	Balance uint64       `json:"balance"`
}

type Joy struct {
	ledger *token.Ledger
}

func New(ledger *token.Ledger) *Joy {
	return &Joy{ledger}
}

func (j *Joy) handleGetBalance(w http.ResponseWriter, req *http.Request) error {
	addr, err := thor.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	balance, err := j.ledger.JoyBalance(addr)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &Balance{addr, balance})
}

func (j *Joy) handleGetTreasury(w http.ResponseWriter, _ *http.Request) error {
	treasury := j.ledger.Config().Treasury
	balance, err := j.ledger.JoyBalance(treasury)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &Balance{treasury, balance})
}

func (j *Joy) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/treasury").
		Methods(http.MethodGet).
		Name("GET /joy/treasury").
		HandlerFunc(utils.WrapHandlerFunc(j.handleGetTreasury))
	sub.Path("/{address}").
		Methods(http.MethodGet).
		Name("GET /joy/{address}").
		HandlerFunc(utils.WrapHandlerFunc(j.handleGetBalance))
}
