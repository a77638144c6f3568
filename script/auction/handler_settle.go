// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	setypes "github.com/polkadotters/SubAuction/script/types"
	"github.com/polkadotters/SubAuction/state"
	"github.com/polkadotters/SubAuction/sub"
)

// Settle concludes every auction whose deadline is the given height. A
// failure inside one auction does not block the rest of the batch: that
// auction's changes are reverted and the error is logged.
func (a *Auction) Settle(env *setypes.ScriptEnv, height uint64) {
	st := env.GetState()
	due := a.DrainDue(st, height)
	if len(due) == 0 {
		return
	}
	log.Info("settling due auctions", "height", height, "count", len(due))

	for _, id := range due {
		info := a.GetAuction(st, id)
		if info == nil {
			log.Warn("due auction missing from store", "id", id, "height", height)
			continue
		}
		checkpoint := st.NewCheckpoint()
		if err := a.settleOne(env, st, info); err != nil {
			st.RevertTo(checkpoint)
			log.Error("settlement failed, falling back to unlock only", "id", id, "error", err)
			settleFailuresCounter.Inc()
			// last resort: free the token and drop the record, no transfers
			if lerr := a.registry.ToggleLock(st, info.Owner, info.TokenID); lerr != nil {
				log.Error("unlock fallback failed", "id", id, "error", lerr)
			}
			if info.LastBid != nil {
				if lerr := a.ledger.RemoveLock(st, BidLockID(id), info.LastBid.Bidder); lerr != nil {
					log.Error("bid lock release fallback failed", "id", id, "error", lerr)
				}
			}
			a.RemoveAuction(st, id)
			continue
		}
		a.RemoveAuction(st, id)
		auctionsSettledCounter.Inc()
	}
}

func (a *Auction) settleOne(env *setypes.ScriptEnv, st *state.State, info *AuctionInfo) error {
	if err := a.registry.ToggleLock(st, info.Owner, info.TokenID); err != nil {
		return err
	}

	winner := strategyFor(info.AuctionType).Winner(info)
	if winner == nil {
		log.Info("auction concluded without bids", "id", info.AuctionID, "owner", info.Owner.AbbrevString())
		env.AddEvent(sub.AuctionModuleAddr, []sub.Bytes32{sub.Blake2b([]byte("AuctionSettled"))}, be64(info.AuctionID))
		return nil
	}

	if err := a.registry.TransferToken(st, info.Owner, winner.Bidder, info.TokenID); err != nil {
		return err
	}
	if err := a.ledger.RemoveLock(st, BidLockID(info.AuctionID), winner.Bidder); err != nil {
		return err
	}
	if err := a.ledger.Transfer(st, winner.Bidder, info.Owner, winner.Amount, false); err != nil {
		return err
	}
	env.AddTransfer(winner.Bidder, info.Owner, winner.Amount, sub.NativeToken)
	env.AddEvent(sub.AuctionModuleAddr, []sub.Bytes32{sub.Blake2b([]byte("AuctionSettled"))}, append(be64(info.AuctionID), winner.Bidder.Bytes()...))

	log.Info("auction settled", "id", info.AuctionID, "winner", winner.Bidder.AbbrevString(), "amount", winner.Amount.String())
	return nil
}
