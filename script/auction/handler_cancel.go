// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	setypes "github.com/polkadotters/SubAuction/script/types"
	"github.com/polkadotters/SubAuction/sub"
)

// CancelAuction removes an auction that has not yet opened for bidding.
// Once the start height is reached the auction can only run to settlement.
func (a *Auction) CancelAuction(env *setypes.ScriptEnv, ab *AuctionBody, gas uint64) (leftOverGas uint64, err error) {
	defer func() {
		if err != nil {
			ret := []byte(err.Error())
			env.SetReturnData(ret)
		}
	}()

	state := env.GetState()
	height := env.GetBlockNumber()

	info := a.GetAuction(state, ab.AuctionID)
	if info == nil {
		return leftGas(gas), errAuctionNotExist
	}
	if env.GetTxOrigin() != info.Owner {
		return leftGas(gas), errNotAuctionOwner
	}
	if height >= info.Start {
		return leftGas(gas), errAuctionAlreadyStarted
	}

	checkpoint := state.NewCheckpoint()

	if err = a.registry.ToggleLock(state, info.Owner, info.TokenID); err != nil {
		state.RevertTo(checkpoint)
		return leftGas(gas), err
	}
	a.RemoveAuction(state, info.AuctionID)
	a.UnindexEnd(state, info.End, info.AuctionID)

	env.AddEvent(sub.AuctionModuleAddr, []sub.Bytes32{sub.Blake2b([]byte("AuctionCancelled"))}, be64(info.AuctionID))

	log.Info("cancelled auction", "id", info.AuctionID, "owner", info.Owner.AbbrevString())
	auctionsCancelledCounter.Inc()
	return leftGas(gas), nil
}
