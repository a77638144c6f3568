package auction

import (
	"math"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/polkadotters/SubAuction/state"
	"github.com/polkadotters/SubAuction/sub"
)

// The auction store: keyed auction records, the id sequence and the
// end-height index. Pure storage; business rules live in the handlers and it
// never calls out to other modules.

func (a *Auction) GetAuctionSeq(st *state.State) (seq uint64) {
	st.DecodeStorage(sub.AuctionModuleAddr, auctionSeqKey, func(raw []byte) error {
		if len(raw) == 0 {
			seq = 0
			return nil
		}
		return rlp.DecodeBytes(raw, &seq)
	})
	return
}

func (a *Auction) SetAuctionSeq(st *state.State, seq uint64) {
	st.EncodeStorage(sub.AuctionModuleAddr, auctionSeqKey, func() ([]byte, error) {
		return rlp.EncodeToBytes(seq)
	})
}

// AllocateAuctionID returns a fresh, never reused auction id.
// The checked increment keeps ids from wrapping around.
func (a *Auction) AllocateAuctionID(st *state.State) (uint64, error) {
	seq := a.GetAuctionSeq(st)
	if seq == math.MaxUint64 {
		return 0, errNoAvailableAuctionID
	}
	a.SetAuctionSeq(st, seq+1)
	return seq, nil
}

// GetAuction loads the record for id, nil when no live auction has that id.
func (a *Auction) GetAuction(st *state.State, id uint64) (result *AuctionInfo) {
	st.DecodeStorage(sub.AuctionModuleAddr, auctionKey(id), func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		var info AuctionInfo
		if err := rlp.DecodeBytes(raw, &info); err != nil {
			log.Warn("could not decode auction info", "auction", id, "err", err)
			return err
		}
		result = &info
		return nil
	})
	return
}

func (a *Auction) SetAuction(st *state.State, info *AuctionInfo) {
	st.EncodeStorage(sub.AuctionModuleAddr, auctionKey(info.AuctionID), func() ([]byte, error) {
		return rlp.EncodeToBytes(info)
	})
}

// UpdateAuction overwrites an existing record, failing when it is gone.
func (a *Auction) UpdateAuction(st *state.State, info *AuctionInfo) error {
	if a.GetAuction(st, info.AuctionID) == nil {
		return errAuctionNotExist
	}
	a.SetAuction(st, info)
	return nil
}

func (a *Auction) RemoveAuction(st *state.State, id uint64) {
	st.SetRawStorage(sub.AuctionModuleAddr, auctionKey(id), nil)
}

func (a *Auction) getEndIndex(st *state.State, height uint64) (ids []uint64) {
	st.DecodeStorage(sub.AuctionModuleAddr, endIndexKey(height), func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		if err := rlp.DecodeBytes(raw, &ids); err != nil {
			log.Warn("could not decode end index", "height", height, "err", err)
			return err
		}
		return nil
	})
	return
}

func (a *Auction) setEndIndex(st *state.State, height uint64, ids []uint64) {
	if len(ids) == 0 {
		st.SetRawStorage(sub.AuctionModuleAddr, endIndexKey(height), nil)
		return
	}
	st.EncodeStorage(sub.AuctionModuleAddr, endIndexKey(height), func() ([]byte, error) {
		return rlp.EncodeToBytes(ids)
	})
}

// IndexByEnd registers id as due at height. An id is present at most once
// per height.
func (a *Auction) IndexByEnd(st *state.State, height uint64, id uint64) {
	ids := a.getEndIndex(st, height)
	for _, known := range ids {
		if known == id {
			return
		}
	}
	a.setEndIndex(st, height, append(ids, id))
}

// UnindexEnd drops id from the set due at height.
func (a *Auction) UnindexEnd(st *state.State, height uint64, id uint64) {
	ids := a.getEndIndex(st, height)
	for i, known := range ids {
		if known == id {
			a.setEndIndex(st, height, append(ids[:i], ids[i+1:]...))
			return
		}
	}
}

// DrainDue removes and returns every id due exactly at height.
// Each entry is consumed once: a second call at the same height finds
// nothing.
func (a *Auction) DrainDue(st *state.State, height uint64) []uint64 {
	ids := a.getEndIndex(st, height)
	if len(ids) > 0 {
		a.setEndIndex(st, height, nil)
	}
	return ids
}
