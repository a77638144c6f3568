// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"math/big"
	"time"

	"github.com/polkadotters/SubAuction/script"
	"github.com/polkadotters/SubAuction/script/auction"
	setypes "github.com/polkadotters/SubAuction/script/types"
	"github.com/polkadotters/SubAuction/state"
	"github.com/polkadotters/SubAuction/sub"
	"github.com/polkadotters/SubAuction/xenv"
)

const soloGas = uint64(1000000)

type soloTx struct {
	origin sub.Address
	body   *auction.AuctionBody
}

// runSolo drives a scripted sequence of blocks through the engine: one
// auction is created, outbid twice and settled at its deadline. Useful as
// a smoke run and as a demo of the wire format.
func runSolo(se *script.ScriptEngine, stateCreator *state.Creator) error {
	seller := sub.MustParseAddress("0x61746f722d61756374696f6e2d6163636f756e31")
	alice := sub.MustParseAddress("0x61746f722d61756374696f6e2d6163636f756e32")
	bob := sub.MustParseAddress("0x61746f722d61756374696f6e2d6163636f756e33")

	blocks := map[uint64][]soloTx{
		1: {{seller, &auction.AuctionBody{
			Opcode: auction.OP_CREATE,
			Option: auction.ENGLISH_AUCTION,
			Name:   []byte("solo run"),
			Start:  1, End: 20,
			Amount:    big.NewInt(50),
			Timestamp: uint64(time.Now().Unix()),
		}}},
		5: {{alice, &auction.AuctionBody{
			Opcode: auction.OP_BID,
			Bidder: alice,
			Amount: big.NewInt(50),
		}}},
		19: {{bob, &auction.AuctionBody{
			Opcode: auction.OP_BID,
			Bidder: bob,
			Amount: big.NewInt(60),
		}}},
	}

	// the late bid at 19 extends the deadline to 29
	for height := uint64(1); height <= 30; height++ {
		st, err := stateCreator.NewState()
		if err != nil {
			return err
		}
		for _, stx := range blocks[height] {
			data, err := script.EncodeScriptData(stx.body)
			if err != nil {
				return err
			}
			txCtx := &xenv.TransactionContext{
				ID:          sub.Blake2b(data),
				Origin:      stx.origin,
				BlockNumber: height,
				Time:        uint64(time.Now().Unix()),
			}
			senv := setypes.NewScriptEnv(st, txCtx, &sub.AuctionModuleAddr)
			output, _, err := se.HandleScriptData(senv, data, &sub.AuctionModuleAddr, soloGas)
			if err != nil {
				log.Warn("solo tx rejected", "height", height, "error", err)
				continue
			}
			log.Info("solo tx applied", "height", height, "events", len(output.GetEvents()))
		}

		blockCtx := &xenv.TransactionContext{Origin: sub.Address{}, BlockNumber: height}
		senv := setypes.NewScriptEnv(st, blockCtx, &sub.AuctionModuleAddr)
		se.OnBlockFinalized(senv, height)

		if err := st.Err(); err != nil {
			return err
		}
		if _, err := st.Stage().Commit(); err != nil {
			return err
		}
	}

	log.Info("solo run finished")
	return nil
}
