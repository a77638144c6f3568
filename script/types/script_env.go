// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package types

import (
	"math/big"

	"github.com/polkadotters/SubAuction/state"
	"github.com/polkadotters/SubAuction/sub"
	"github.com/polkadotters/SubAuction/tx"
	"github.com/polkadotters/SubAuction/xenv"
)

// ScriptEnv carries everything a module handler needs for one call: the
// state under mutation, the transaction context and the accumulated output.
type ScriptEnv struct {
	state  *state.State
	txCtx  *xenv.TransactionContext
	toAddr *sub.Address

	returnData []byte
	transfers  []*tx.Transfer
	events     []*tx.Event
}

func NewScriptEnv(state *state.State, txCtx *xenv.TransactionContext, to *sub.Address) *ScriptEnv {
	return &ScriptEnv{
		state:      state,
		txCtx:      txCtx,
		toAddr:     to,
		returnData: make([]byte, 0),
		transfers:  make([]*tx.Transfer, 0),
		events:     make([]*tx.Event, 0),
	}
}

func (env *ScriptEnv) GetState() *state.State             { return env.state }
func (env *ScriptEnv) GetTxCtx() *xenv.TransactionContext { return env.txCtx }
func (env *ScriptEnv) GetToAddr() *sub.Address            { return env.toAddr }
func (env *ScriptEnv) GetTxOrigin() sub.Address           { return env.txCtx.Origin }
func (env *ScriptEnv) GetTxHash() sub.Bytes32             { return env.txCtx.ID }
func (env *ScriptEnv) GetBlockNumber() uint64             { return env.txCtx.BlockNumber }

func (env *ScriptEnv) SetReturnData(data []byte) {
	env.returnData = data
}
func (env *ScriptEnv) GetReturnData() []byte {
	if len(env.returnData) <= 0 {
		return nil
	}
	return env.returnData
}

func (env *ScriptEnv) AddTransfer(sender, recipient sub.Address, amount *big.Int, token byte) {
	env.transfers = append(env.transfers, &tx.Transfer{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
		Token:     token,
	})
}

func (env *ScriptEnv) AddEvent(address sub.Address, topics []sub.Bytes32, data []byte) {
	env.events = append(env.events, &tx.Event{
		Address: address,
		Topics:  topics,
		Data:    data,
	})
}

func (env *ScriptEnv) GetTransfers() tx.Transfers {
	return env.transfers
}

func (env *ScriptEnv) GetEvents() tx.Events {
	return env.events
}

func (env *ScriptEnv) GetOutput() *ScriptEngineOutput {
	return &ScriptEngineOutput{
		data:      env.GetReturnData(),
		transfers: env.transfers,
		events:    env.events,
	}
}
