package auction

import (
	"fmt"
	"math/big"

	"github.com/polkadotters/SubAuction/sub"
)

// Bid is the current leading bid of an auction.
type Bid struct {
	Bidder sub.Address
	Amount *big.Int
}

func (b *Bid) ToString() string {
	return fmt.Sprintf("Bid(bidder=%v, amount=%v)", b.Bidder.AbbrevString(), b.Amount.String())
}

// AuctionInfo is the persisted record of one live auction. It exists exactly
// while the auction is live: inserted at creation, removed at settlement or
// cancellation, never left dangling.
type AuctionInfo struct {
	AuctionID   uint64
	Name        []byte
	Owner       sub.Address
	TokenID     sub.TokenID
	Start       uint64
	End         uint64
	AuctionType uint32
	LastBid     *Bid `rlp:"nil"`
	MinimalBid  *big.Int
}

func (a *AuctionInfo) ToString() string {
	lastBid := "None"
	if a.LastBid != nil {
		lastBid = a.LastBid.ToString()
	}
	return fmt.Sprintf("AuctionInfo(ID=%v, Name=%v, Owner=%v, Token=%v, Start=%v, End=%v, Type=%v, LastBid=%v, MinimalBid=%v)",
		a.AuctionID, string(a.Name), a.Owner.AbbrevString(), a.TokenID, a.Start, a.End, GetAuctionTypeName(a.AuctionType), lastBid, a.MinimalBid.String())
}
