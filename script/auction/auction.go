// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"errors"
	"log/slog"
	"math/big"

	setypes "github.com/polkadotters/SubAuction/script/types"
	"github.com/polkadotters/SubAuction/state"
	"github.com/polkadotters/SubAuction/sub"
)

var (
	AuctionGlobInst *Auction
	log             = slog.Default().With("pkg", "auction")
)

// TokenRegistry is the capability the auction module needs from the token
// subsystem. The nft module implements it.
type TokenRegistry interface {
	IsOwner(st *state.State, addr sub.Address, token sub.TokenID) bool
	IsLocked(st *state.State, token sub.TokenID) (bool, error)
	ToggleLock(st *state.State, addr sub.Address, token sub.TokenID) error
	TransferToken(st *state.State, from, to sub.Address, token sub.TokenID) error
}

// CurrencyLedger is the capability the auction module needs from the
// currency subsystem. The builtin ledger implements it.
type CurrencyLedger interface {
	Transfer(st *state.State, from, to sub.Address, amount *big.Int, keepAlive bool) error
	SetLock(st *state.State, lockID sub.Bytes32, addr sub.Address, amount *big.Int) error
	RemoveLock(st *state.State, lockID sub.Bytes32, addr sub.Address) error
}

// Auction is the auction lifecycle engine: creation, bidding, cancellation
// and deadline settlement over records in the auction store.
type Auction struct {
	logger   *slog.Logger
	registry TokenRegistry
	ledger   CurrencyLedger
}

func GetAuctionGlobInst() *Auction {
	return AuctionGlobInst
}

func SetAuctionGlobInst(inst *Auction) {
	AuctionGlobInst = inst
}

func NewAuction(registry TokenRegistry, ledger CurrencyLedger) *Auction {
	auction := &Auction{
		logger:   slog.Default().With("pkg", "auction"),
		registry: registry,
		ledger:   ledger,
	}
	SetAuctionGlobInst(auction)
	return auction
}

func (a *Auction) Start() error {
	log.Info("auction module started")
	return nil
}

func (a *Auction) AuctionHandler(senv *setypes.ScriptEnv, payload []byte, to *sub.Address, gas uint64) (seOutput *setypes.ScriptEngineOutput, leftOverGas uint64, err error) {
	ab, err := AuctionDecodeFromBytes(payload)
	if err != nil {
		log.Error("decode script message failed", "error", err)
		return nil, gas, err
	}

	if senv == nil {
		panic("create auction environment failed")
	}

	log.Debug("received auction op", "body", ab.ToString())
	log.Debug("entering auction handler "+GetOpName(ab.Opcode), "tx", senv.GetTxHash())
	switch ab.Opcode {
	case OP_CREATE:
		leftOverGas, err = a.CreateAuction(senv, ab, gas)

	case OP_BID:
		if senv.GetTxOrigin() != ab.Bidder {
			return nil, gas, errors.New("bidder address is not the same from transaction")
		}
		leftOverGas, err = a.Bid(senv, ab, gas)

	case OP_CANCEL:
		leftOverGas, err = a.CancelAuction(senv, ab, gas)

	default:
		log.Error("unknown Opcode", "Opcode", ab.Opcode)
		return nil, gas, errors.New("unknown auction opcode")
	}
	log.Debug("leaving auction handler", "op", GetOpName(ab.Opcode))

	seOutput = senv.GetOutput()
	return
}

// OnBlockFinalized is the per-block settlement hook. It runs after all user
// operations of the block and never fails the block.
func (a *Auction) OnBlockFinalized(senv *setypes.ScriptEnv, height uint64) {
	a.Settle(senv, height)
}
