// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	setypes "github.com/polkadotters/SubAuction/script/types"
	"github.com/polkadotters/SubAuction/sub"
)

func leftGas(gas uint64) uint64 {
	if gas < sub.ClauseGas {
		return 0
	}
	return gas - sub.ClauseGas
}

// CreateAuction opens a new auction on a token owned by the transaction
// origin. The token's lock flag is toggled on so it cannot move while the
// auction is open.
func (a *Auction) CreateAuction(env *setypes.ScriptEnv, ab *AuctionBody, gas uint64) (leftOverGas uint64, err error) {
	defer func() {
		if err != nil {
			ret := []byte(err.Error())
			env.SetReturnData(ret)
		}
	}()

	state := env.GetState()
	height := env.GetBlockNumber()
	owner := env.GetTxOrigin()
	token := sub.TokenID{Class: ab.TokenClass, Instance: ab.TokenInstance}
	floor := new(big.Int)
	if ab.Amount != nil {
		floor.Set(ab.Amount)
	}

	if ab.Start < height {
		return leftGas(gas), errAuctionStartPassed
	}
	if ab.End <= ab.Start+sub.MinAuctionDuration {
		return leftGas(gas), errInvalidTimeConfig
	}
	if len(ab.Name) == 0 {
		return leftGas(gas), errEmptyAuctionName
	}
	switch ab.Option {
	case ENGLISH_AUCTION, CANDLE_AUCTION, TOPUP_AUCTION:
	default:
		return leftGas(gas), errUnknownAuctionType
	}
	if !a.registry.IsOwner(state, owner, token) {
		return leftGas(gas), errNotTokenOwner
	}
	locked, err := a.registry.IsLocked(state, token)
	if err != nil {
		return leftGas(gas), err
	}
	if locked {
		return leftGas(gas), errTokenLocked
	}

	checkpoint := state.NewCheckpoint()

	id, err := a.AllocateAuctionID(state)
	if err != nil {
		state.RevertTo(checkpoint)
		return leftGas(gas), err
	}
	if err = a.registry.ToggleLock(state, owner, token); err != nil {
		state.RevertTo(checkpoint)
		return leftGas(gas), err
	}

	info := &AuctionInfo{
		AuctionID:   id,
		Name:        ab.Name,
		Owner:       owner,
		TokenID:     token,
		Start:       ab.Start,
		End:         ab.End,
		AuctionType: ab.Option,
		LastBid:     nil,
		MinimalBid:  floor,
	}
	a.SetAuction(state, info)
	a.IndexByEnd(state, ab.End, id)

	env.AddEvent(sub.AuctionModuleAddr, []sub.Bytes32{sub.Blake2b([]byte("AuctionCreated"))}, append(be64(id), owner.Bytes()...))

	log.Info("created auction", "id", id, "owner", owner.AbbrevString(), "token", token.String(), "end", ab.End)
	auctionsCreatedCounter.Inc()

	ret, err := rlp.EncodeToBytes(id)
	if err == nil {
		env.SetReturnData(ret)
	}
	return leftGas(gas), nil
}
