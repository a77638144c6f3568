// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/polkadotters/SubAuction/sub"
)

// AuctionBody is the RLP-decoded payload of one auction operation.
// For OP_CREATE, Amount carries the creator-supplied bid floor and Option
// the auction type; for OP_BID, Amount is the bid and AuctionID the target.
type AuctionBody struct {
	Opcode        uint32
	Version       uint32
	Option        uint32
	AuctionID     uint64
	Name          []byte
	TokenClass    uint64
	TokenInstance uint64
	Start         uint64
	End           uint64
	Bidder        sub.Address
	Amount        *big.Int
	Timestamp     uint64
	Nonce         uint64
}

func (ab *AuctionBody) ToString() string {
	return fmt.Sprintf("AuctionBody: Opcode=%v, Version=%v, Option=%v, AuctionID=%v, Name=%v, TokenClass=%v, TokenInstance=%v, Start=%v, End=%v, Bidder=%v, Amount=%v, Timestamp=%v, Nonce=%v",
		ab.Opcode, ab.Version, ab.Option, ab.AuctionID, string(ab.Name), ab.TokenClass, ab.TokenInstance, ab.Start, ab.End, ab.Bidder.AbbrevString(), ab.Amount.String(), ab.Timestamp, ab.Nonce)
}

func (ab *AuctionBody) GetOpName(op uint32) string {
	return GetOpName(op)
}

var (
	errAuctionNotExist         = errors.New("auction does not exist")
	errNoAvailableAuctionID    = errors.New("no available auction id")
	errAuctionStartPassed      = errors.New("auction start time already passed")
	errInvalidTimeConfig       = errors.New("invalid time configuration")
	errEmptyAuctionName        = errors.New("empty auction name")
	errNotTokenOwner           = errors.New("not a token owner")
	errTokenLocked             = errors.New("token locked")
	errUnknownAuctionType      = errors.New("unknown auction type")
	errBidOnOwnAuction         = errors.New("cannot bid on own auction")
	errAuctionNotStarted       = errors.New("auction not started")
	errAuctionAlreadyConcluded = errors.New("auction already concluded")
	errInvalidBidPrice         = errors.New("invalid bid price")
	errBidOverflow             = errors.New("bid amount overflow")
	errAuctionAlreadyStarted   = errors.New("auction already started")
	errNotAuctionOwner         = errors.New("not the auction owner")
)

func AuctionEncodeBytes(ab *AuctionBody) []byte {
	auctionBytes, err := rlp.EncodeToBytes(ab)
	if err != nil {
		log.Error("rlp encode failed", "error", err)
		return []byte{}
	}
	return auctionBytes
}

func AuctionDecodeFromBytes(bytes []byte) (*AuctionBody, error) {
	ab := AuctionBody{}
	err := rlp.DecodeBytes(bytes, &ab)
	return &ab, err
}
