// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"math/big"

	setypes "github.com/polkadotters/SubAuction/script/types"
	"github.com/polkadotters/SubAuction/sub"
)

// bidStep is the minimum increment over a just-accepted bid, rounded up.
func bidStep(amount *big.Int) *big.Int {
	step := new(big.Int).Mul(amount, big.NewInt(int64(sub.BidStepPercent)))
	step.Add(step, big.NewInt(99))
	return step.Div(step, big.NewInt(100))
}

// Bid places a new leading bid on an open auction. The previous leader's
// currency lock is released and the new bidder's funds are locked in a
// single atomic step.
func (a *Auction) Bid(env *setypes.ScriptEnv, ab *AuctionBody, gas uint64) (leftOverGas uint64, err error) {
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
	if ab.Bidder == info.Owner {
		return leftGas(gas), errBidOnOwnAuction
	}
	if height <= info.Start {
		return leftGas(gas), errAuctionNotStarted
	}
	if height >= info.End {
		return leftGas(gas), errAuctionAlreadyConcluded
	}
	if ab.Amount == nil || ab.Amount.Cmp(info.MinimalBid) < 0 {
		return leftGas(gas), errInvalidBidPrice
	}
	if info.LastBid != nil {
		if ab.Amount.Cmp(info.LastBid.Amount) <= 0 {
			return leftGas(gas), errInvalidBidPrice
		}
	} else if ab.Amount.Sign() == 0 {
		return leftGas(gas), errInvalidBidPrice
	}
	if ab.Amount.Cmp(sub.MaxBidAmount) > 0 {
		return leftGas(gas), errBidOverflow
	}

	nextFloor := new(big.Int).Add(ab.Amount, bidStep(ab.Amount))
	if nextFloor.Cmp(sub.MaxBidAmount) > 0 {
		return leftGas(gas), errBidOverflow
	}

	checkpoint := state.NewCheckpoint()
	lockID := BidLockID(ab.AuctionID)

	if info.LastBid != nil {
		if err = a.ledger.RemoveLock(state, lockID, info.LastBid.Bidder); err != nil {
			state.RevertTo(checkpoint)
			return leftGas(gas), err
		}
	}
	if err = a.ledger.SetLock(state, lockID, ab.Bidder, ab.Amount); err != nil {
		state.RevertTo(checkpoint)
		return leftGas(gas), err
	}

	info.LastBid = &Bid{Bidder: ab.Bidder, Amount: ab.Amount}
	info.MinimalBid = nextFloor
	if info.End-height < sub.SnipeGuardBlocks {
		newEnd := height + sub.SnipeGuardBlocks
		a.UnindexEnd(state, info.End, info.AuctionID)
		a.IndexByEnd(state, newEnd, info.AuctionID)
		log.Info("late bid, extending auction", "id", info.AuctionID, "oldEnd", info.End, "newEnd", newEnd)
		info.End = newEnd
	}
	if err = a.UpdateAuction(state, info); err != nil {
		state.RevertTo(checkpoint)
		return leftGas(gas), err
	}

	env.AddEvent(sub.AuctionModuleAddr, []sub.Bytes32{sub.Blake2b([]byte("BidPlaced"))}, append(be64(info.AuctionID), ab.Bidder.Bytes()...))

	log.Info("accepted bid", "id", info.AuctionID, "bidder", ab.Bidder.AbbrevString(), "amount", ab.Amount.String(), "nextFloor", nextFloor.String())
	bidsPlacedCounter.Inc()
	return leftGas(gas), nil
}
