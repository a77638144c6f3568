package nft

import (
	"encoding/binary"

	"github.com/polkadotters/SubAuction/sub"
)

const (
	OP_CREATE_CLASS  = uint32(1)
	OP_MINT          = uint32(2)
	OP_TRANSFER      = uint32(3)
	OP_BURN          = uint32(4)
	OP_DESTROY_CLASS = uint32(5)
)

// the global variables in nft
var (
	classSeqKey = sub.Blake2b([]byte("nft-class-seq-key"))
)

func GetOpName(op uint32) string {
	switch op {
	case OP_CREATE_CLASS:
		return "CreateClass"
	case OP_MINT:
		return "Mint"
	case OP_TRANSFER:
		return "Transfer"
	case OP_BURN:
		return "Burn"
	case OP_DESTROY_CLASS:
		return "DestroyClass"
	default:
		return "Unknown"
	}
}

func classKey(classID uint64) sub.Bytes32 {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], classID)
	return sub.Blake2b([]byte("nft-class-key"), b[:])
}

func tokenKey(token sub.TokenID) sub.Bytes32 {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], token.Class)
	binary.BigEndian.PutUint64(b[8:], token.Instance)
	return sub.Blake2b([]byte("nft-token-key"), b[:])
}
