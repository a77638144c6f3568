// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

// settleStrategy decides how an auction type picks its winning bid at the
// deadline. Validation and bidding are shared across all types; only the
// conclusion differs per type.
type settleStrategy interface {
	// Winner returns the bid that wins the auction, or nil when the
	// auction concludes without a winner.
	Winner(info *AuctionInfo) *Bid
}

// englishStrategy settles on the highest standing bid.
type englishStrategy struct{}

func (englishStrategy) Winner(info *AuctionInfo) *Bid {
	return info.LastBid
}

// candleStrategy is intended to pick the leading bid at a randomized
// cutoff inside the closing window. Without a verifiable randomness
// source it settles like an English auction.
type candleStrategy struct {
	englishStrategy
}

// topUpStrategy is intended to treat successive bids from one bidder as
// cumulative contributions. Contributions are not yet tracked separately,
// so it settles like an English auction.
type topUpStrategy struct {
	englishStrategy
}

var (
	english = englishStrategy{}
	candle  = candleStrategy{}
	topUp   = topUpStrategy{}
)

func strategyFor(auctionType uint32) settleStrategy {
	switch auctionType {
	case CANDLE_AUCTION:
		return candle
	case TOPUP_AUCTION:
		return topUp
	default:
		return english
	}
}
