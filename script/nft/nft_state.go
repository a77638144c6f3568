package nft

import (
	"math"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/polkadotters/SubAuction/state"
	"github.com/polkadotters/SubAuction/sub"
)

// ClassInfo is the persisted record of one token class.
type ClassInfo struct {
	Owner       sub.Address
	Metadata    []byte
	NextToken   uint64
	TotalIssued uint64
}

// TokenInfo is the persisted record of one token instance.
// Locked is flipped by the auction module while the token is under auction.
type TokenInfo struct {
	Owner    sub.Address
	Metadata []byte
	Locked   bool
}

func (n *NFT) GetClassSeq(st *state.State) (seq uint64) {
	st.DecodeStorage(sub.NFTModuleAddr, classSeqKey, func(raw []byte) error {
		if len(raw) == 0 {
			seq = 0
			return nil
		}
		return rlp.DecodeBytes(raw, &seq)
	})
	return
}

func (n *NFT) SetClassSeq(st *state.State, seq uint64) {
	st.EncodeStorage(sub.NFTModuleAddr, classSeqKey, func() ([]byte, error) {
		return rlp.EncodeToBytes(seq)
	})
}

// AllocateClassID hands out the next class id, refusing to wrap around.
func (n *NFT) AllocateClassID(st *state.State) (uint64, error) {
	seq := n.GetClassSeq(st)
	if seq == math.MaxUint64 {
		return 0, errNoAvailableID
	}
	n.SetClassSeq(st, seq+1)
	return seq, nil
}

func (n *NFT) GetClass(st *state.State, classID uint64) (result *ClassInfo) {
	st.DecodeStorage(sub.NFTModuleAddr, classKey(classID), func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		var info ClassInfo
		if err := rlp.DecodeBytes(raw, &info); err != nil {
			log.Warn("could not decode class info", "class", classID, "err", err)
			return err
		}
		result = &info
		return nil
	})
	return
}

func (n *NFT) SetClass(st *state.State, classID uint64, info *ClassInfo) {
	st.EncodeStorage(sub.NFTModuleAddr, classKey(classID), func() ([]byte, error) {
		return rlp.EncodeToBytes(info)
	})
}

func (n *NFT) RemoveClass(st *state.State, classID uint64) {
	st.SetRawStorage(sub.NFTModuleAddr, classKey(classID), nil)
}

func (n *NFT) GetToken(st *state.State, token sub.TokenID) (result *TokenInfo) {
	st.DecodeStorage(sub.NFTModuleAddr, tokenKey(token), func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		var info TokenInfo
		if err := rlp.DecodeBytes(raw, &info); err != nil {
			log.Warn("could not decode token info", "token", token, "err", err)
			return err
		}
		result = &info
		return nil
	})
	return
}

func (n *NFT) SetToken(st *state.State, token sub.TokenID, info *TokenInfo) {
	st.EncodeStorage(sub.NFTModuleAddr, tokenKey(token), func() ([]byte, error) {
		return rlp.EncodeToBytes(info)
	})
}

func (n *NFT) RemoveToken(st *state.State, token sub.TokenID) {
	st.SetRawStorage(sub.NFTModuleAddr, tokenKey(token), nil)
}
