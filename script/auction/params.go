package auction

import (
	"encoding/binary"

	"github.com/polkadotters/SubAuction/sub"
)

const (
	OP_CREATE = uint32(1)
	OP_BID    = uint32(2)
	OP_CANCEL = uint32(3)

	ENGLISH_AUCTION = uint32(1)
	CANDLE_AUCTION  = uint32(2)
	TOPUP_AUCTION   = uint32(3)
)

// the global variables in auction
var (
	auctionSeqKey = sub.Blake2b([]byte("auction-seq-key"))
)

func GetOpName(op uint32) string {
	switch op {
	case OP_CREATE:
		return "Create"
	case OP_BID:
		return "Bid"
	case OP_CANCEL:
		return "Cancel"
	default:
		return "Unknown"
	}
}

func GetAuctionTypeName(t uint32) string {
	switch t {
	case ENGLISH_AUCTION:
		return "English"
	case CANDLE_AUCTION:
		return "Candle"
	case TOPUP_AUCTION:
		return "TopUp"
	default:
		return "Unknown"
	}
}

func be64(v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return b[:]
}

func auctionKey(id uint64) sub.Bytes32 {
	return sub.Blake2b([]byte("auction-key"), be64(id))
}

func endIndexKey(height uint64) sub.Bytes32 {
	return sub.Blake2b([]byte("auction-end-index-key"), be64(height))
}

// BidLockID derives the currency lock id attributed to an auction's leading
// bid. One auction, one lock id, for its whole life.
func BidLockID(id uint64) sub.Bytes32 {
	return sub.Blake2b([]byte("auction-bid-lock"), be64(id))
}
