// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polkadotters/SubAuction/builtin/ledger"
	"github.com/polkadotters/SubAuction/lvldb"
	"github.com/polkadotters/SubAuction/script/nft"
	setypes "github.com/polkadotters/SubAuction/script/types"
	"github.com/polkadotters/SubAuction/state"
	"github.com/polkadotters/SubAuction/sub"
	"github.com/polkadotters/SubAuction/xenv"
)

const testGas = uint64(1000000)

var (
	seller = sub.BytesToAddress([]byte("seller"))
	alice  = sub.BytesToAddress([]byte("alice"))
	bob    = sub.BytesToAddress([]byte("bob"))
)

type testChain struct {
	a  *Auction
	n  *nft.NFT
	l  *ledger.Ledger
	st *state.State
}

func newTestChain(t *testing.T) *testChain {
	kv, err := lvldb.NewMem()
	assert.Nil(t, err)
	st, err := state.New(kv)
	assert.Nil(t, err)

	n := nft.NewNFT()
	l := ledger.New(sub.LedgerModuleAddr)
	a := NewAuction(n, l)

	st.SetBalance(alice, big.NewInt(1000))
	st.SetBalance(bob, big.NewInt(1000))
	return &testChain{a: a, n: n, l: l, st: st}
}

func (c *testChain) env(origin sub.Address, height uint64) *setypes.ScriptEnv {
	return setypes.NewScriptEnv(c.st, &xenv.TransactionContext{
		ID:          sub.Blake2b([]byte("test-tx")),
		Origin:      origin,
		BlockNumber: height,
	}, &sub.AuctionModuleAddr)
}

func (c *testChain) mintToken(t *testing.T) sub.TokenID {
	classID, err := c.n.CreateClass(c.st, seller, []byte("class"))
	assert.Nil(t, err)
	token, err := c.n.MintToken(c.st, seller, classID, []byte("token"))
	assert.Nil(t, err)
	return token
}

func (c *testChain) createAuction(t *testing.T, token sub.TokenID, start, end uint64, floor int64) uint64 {
	id := c.a.GetAuctionSeq(c.st)
	_, err := c.a.CreateAuction(c.env(seller, start), &AuctionBody{
		Opcode: OP_CREATE,
		Option: ENGLISH_AUCTION,
		Name:   []byte("test auction"),
		TokenClass: token.Class, TokenInstance: token.Instance,
		Start: start, End: end,
		Amount: big.NewInt(floor),
	}, testGas)
	assert.Nil(t, err)
	return id
}

func (c *testChain) bid(bidder sub.Address, id uint64, amount int64, height uint64) error {
	_, err := c.a.Bid(c.env(bidder, height), &AuctionBody{
		Opcode:    OP_BID,
		AuctionID: id,
		Bidder:    bidder,
		Amount:    big.NewInt(amount),
	}, testGas)
	return err
}

func TestCreateAuction(t *testing.T) {
	c := newTestChain(t)
	token := c.mintToken(t)

	id := c.createAuction(t, token, 1, 20, 50)
	assert.Equal(t, uint64(0), id)

	info := c.a.GetAuction(c.st, id)
	assert.NotNil(t, info)
	assert.Equal(t, seller, info.Owner)
	assert.Nil(t, info.LastBid)
	assert.Equal(t, big.NewInt(50), info.MinimalBid)

	locked, err := c.n.IsLocked(c.st, token)
	assert.Nil(t, err)
	assert.True(t, locked)

	assert.Equal(t, []uint64{0}, c.a.getEndIndex(c.st, 20))
}

func TestCreateAuctionChecks(t *testing.T) {
	c := newTestChain(t)
	token := c.mintToken(t)

	body := func() *AuctionBody {
		return &AuctionBody{
			Opcode: OP_CREATE,
			Option: ENGLISH_AUCTION,
			Name:   []byte("test auction"),
			TokenClass: token.Class, TokenInstance: token.Instance,
			Start: 5, End: 20,
			Amount: big.NewInt(50),
		}
	}

	_, err := c.a.CreateAuction(c.env(seller, 6), body(), testGas)
	assert.Equal(t, errAuctionStartPassed, err)

	b := body()
	b.End = 15 // duration must exceed the minimum
	_, err = c.a.CreateAuction(c.env(seller, 5), b, testGas)
	assert.Equal(t, errInvalidTimeConfig, err)

	b = body()
	b.Name = nil
	_, err = c.a.CreateAuction(c.env(seller, 5), b, testGas)
	assert.Equal(t, errEmptyAuctionName, err)

	b = body()
	b.Option = uint32(99)
	_, err = c.a.CreateAuction(c.env(seller, 5), b, testGas)
	assert.Equal(t, errUnknownAuctionType, err)

	// the authenticated caller must own the token
	_, err = c.a.CreateAuction(c.env(alice, 5), body(), testGas)
	assert.Equal(t, errNotTokenOwner, err)

	assert.Nil(t, c.n.ToggleLock(c.st, seller, token))
	_, err = c.a.CreateAuction(c.env(seller, 5), body(), testGas)
	assert.Equal(t, errTokenLocked, err)
	assert.Nil(t, c.n.ToggleLock(c.st, seller, token))

	// after all rejections nothing was persisted
	assert.Nil(t, c.a.GetAuction(c.st, 0))
	assert.Equal(t, uint64(0), c.a.GetAuctionSeq(c.st))
}

func TestBid(t *testing.T) {
	c := newTestChain(t)
	token := c.mintToken(t)
	id := c.createAuction(t, token, 1, 20, 50)

	assert.Equal(t, errInvalidBidPrice, c.bid(alice, id, 40, 5))

	assert.Nil(t, c.bid(alice, id, 50, 5))
	info := c.a.GetAuction(c.st, id)
	assert.Equal(t, alice, info.LastBid.Bidder)
	assert.Equal(t, big.NewInt(50), info.LastBid.Amount)
	assert.Equal(t, big.NewInt(55), info.MinimalBid)
	assert.Equal(t, big.NewInt(50), c.l.LockedAmount(c.st, BidLockID(id), alice))
	assert.Equal(t, big.NewInt(950), c.st.GetBalance(alice))

	// not strictly greater than the standing bid
	assert.Equal(t, errInvalidBidPrice, c.bid(bob, id, 50, 6))
}

func TestBidChecks(t *testing.T) {
	c := newTestChain(t)
	token := c.mintToken(t)
	id := c.createAuction(t, token, 5, 20, 50)

	assert.Equal(t, errAuctionNotExist, c.bid(alice, 99, 60, 6))
	assert.Equal(t, errBidOnOwnAuction, c.bid(seller, id, 60, 6))
	assert.Equal(t, errAuctionNotStarted, c.bid(alice, id, 60, 5))
	assert.Equal(t, errAuctionAlreadyConcluded, c.bid(alice, id, 60, 20))
}

func TestZeroFloorFirstBid(t *testing.T) {
	c := newTestChain(t)
	token := c.mintToken(t)
	id := c.createAuction(t, token, 1, 20, 0)

	// the first bid may not be zero even when the floor is
	assert.Equal(t, errInvalidBidPrice, c.bid(alice, id, 0, 5))
	assert.Nil(t, c.bid(alice, id, 1, 5))
}

func TestLockExclusivity(t *testing.T) {
	c := newTestChain(t)
	token := c.mintToken(t)
	id := c.createAuction(t, token, 1, 20, 50)

	assert.Nil(t, c.bid(alice, id, 50, 5))
	assert.Nil(t, c.bid(bob, id, 60, 6))

	// alice's lock is gone, only bob holds one
	assert.Equal(t, 0, c.l.LockedAmount(c.st, BidLockID(id), alice).Sign())
	assert.Equal(t, big.NewInt(60), c.l.LockedAmount(c.st, BidLockID(id), bob))
	assert.Equal(t, big.NewInt(1000), c.st.GetBalance(alice))
}

func TestAntiSnipeExtension(t *testing.T) {
	c := newTestChain(t)
	token := c.mintToken(t)
	id := c.createAuction(t, token, 1, 20, 50)

	assert.Nil(t, c.bid(alice, id, 50, 19))

	info := c.a.GetAuction(c.st, id)
	assert.Equal(t, uint64(29), info.End)
	// the index entry moved with the deadline
	assert.Empty(t, c.a.getEndIndex(c.st, 20))
	assert.Equal(t, []uint64{id}, c.a.getEndIndex(c.st, 29))
}

func TestBidRollbackOnInsufficientBalance(t *testing.T) {
	c := newTestChain(t)
	token := c.mintToken(t)
	id := c.createAuction(t, token, 1, 20, 50)

	assert.Nil(t, c.bid(alice, id, 50, 5))
	err := c.bid(bob, id, 5000, 6)
	assert.Equal(t, ledger.ErrInsufficientBalance, err)

	// alice still leads and still holds the only lock
	info := c.a.GetAuction(c.st, id)
	assert.Equal(t, alice, info.LastBid.Bidder)
	assert.Equal(t, big.NewInt(50), c.l.LockedAmount(c.st, BidLockID(id), alice))
	assert.Equal(t, 0, c.l.LockedAmount(c.st, BidLockID(id), bob).Sign())
}

func TestBidOverflow(t *testing.T) {
	c := newTestChain(t)
	token := c.mintToken(t)
	id := c.createAuction(t, token, 1, 20, 0)

	huge := new(big.Int).Add(sub.MaxBidAmount, big.NewInt(1))
	c.st.SetBalance(alice, huge)
	_, err := c.a.Bid(c.env(alice, 5), &AuctionBody{
		Opcode:    OP_BID,
		AuctionID: id,
		Bidder:    alice,
		Amount:    huge,
	}, testGas)
	assert.Equal(t, errBidOverflow, err)
}

func TestCancelAuction(t *testing.T) {
	c := newTestChain(t)
	token := c.mintToken(t)
	id := c.createAuction(t, token, 5, 20, 50)

	_, err := c.a.CancelAuction(c.env(alice, 2), &AuctionBody{Opcode: OP_CANCEL, AuctionID: id}, testGas)
	assert.Equal(t, errNotAuctionOwner, err)

	_, err = c.a.CancelAuction(c.env(seller, 5), &AuctionBody{Opcode: OP_CANCEL, AuctionID: id}, testGas)
	assert.Equal(t, errAuctionAlreadyStarted, err)

	_, err = c.a.CancelAuction(c.env(seller, 2), &AuctionBody{Opcode: OP_CANCEL, AuctionID: id}, testGas)
	assert.Nil(t, err)

	assert.Nil(t, c.a.GetAuction(c.st, id))
	assert.Empty(t, c.a.getEndIndex(c.st, 20))
	locked, err := c.n.IsLocked(c.st, token)
	assert.Nil(t, err)
	assert.False(t, locked)
}

func TestSettleWithWinner(t *testing.T) {
	c := newTestChain(t)
	token := c.mintToken(t)
	id := c.createAuction(t, token, 1, 20, 50)

	assert.Nil(t, c.bid(alice, id, 50, 5))
	assert.Nil(t, c.bid(bob, id, 60, 19)) // extends to 29

	c.a.Settle(c.env(sub.Address{}, 29), 29)

	assert.Nil(t, c.a.GetAuction(c.st, id))
	assert.True(t, c.n.IsOwner(c.st, bob, token))
	locked, err := c.n.IsLocked(c.st, token)
	assert.Nil(t, err)
	assert.False(t, locked)

	assert.Equal(t, big.NewInt(60), c.st.GetBalance(seller))
	assert.Equal(t, big.NewInt(940), c.st.GetBalance(bob))
	assert.Equal(t, 0, c.l.LockedAmount(c.st, BidLockID(id), bob).Sign())
	assert.Equal(t, 0, c.st.GetBoundedBalance(bob).Sign())
}

func TestSettleWithoutBids(t *testing.T) {
	c := newTestChain(t)
	token := c.mintToken(t)
	id := c.createAuction(t, token, 1, 20, 50)

	c.a.Settle(c.env(sub.Address{}, 20), 20)

	assert.Nil(t, c.a.GetAuction(c.st, id))
	assert.True(t, c.n.IsOwner(c.st, seller, token))
	locked, err := c.n.IsLocked(c.st, token)
	assert.Nil(t, err)
	assert.False(t, locked)
}

func TestSettleIdempotence(t *testing.T) {
	c := newTestChain(t)
	token := c.mintToken(t)
	id := c.createAuction(t, token, 1, 20, 50)
	assert.Nil(t, c.bid(alice, id, 50, 5))

	c.a.Settle(c.env(sub.Address{}, 20), 20)
	sellerBalance := c.st.GetBalance(seller)

	// the drained index entry is gone, a second pass finds nothing
	assert.Empty(t, c.a.DrainDue(c.st, 20))
	c.a.Settle(c.env(sub.Address{}, 20), 20)
	assert.Equal(t, sellerBalance, c.st.GetBalance(seller))
}

func TestSettleIsolation(t *testing.T) {
	c := newTestChain(t)
	token1 := c.mintToken(t)
	token2, err := c.n.MintToken(c.st, seller, token1.Class, []byte("second"))
	assert.Nil(t, err)

	id1 := c.createAuction(t, token1, 1, 20, 50)
	id2 := c.createAuction(t, token2, 1, 20, 50)
	assert.Nil(t, c.bid(alice, id2, 50, 5))

	// sabotage the first auction's token so its settlement fails
	assert.Nil(t, c.n.TransferToken(c.st, seller, bob, token1))

	c.a.Settle(c.env(sub.Address{}, 20), 20)

	// the sibling auction still settled normally
	assert.Nil(t, c.a.GetAuction(c.st, id2))
	assert.True(t, c.n.IsOwner(c.st, alice, token2))
	assert.Equal(t, big.NewInt(50), c.st.GetBalance(seller))

	// the broken one fell back to removal without transfers
	assert.Nil(t, c.a.GetAuction(c.st, id1))
}

func TestBidSteps(t *testing.T) {
	assert.Equal(t, big.NewInt(5), bidStep(big.NewInt(50)))
	assert.Equal(t, big.NewInt(1), bidStep(big.NewInt(1)))
	assert.Equal(t, big.NewInt(1), bidStep(big.NewInt(10)))
	assert.Equal(t, big.NewInt(2), bidStep(big.NewInt(11)))
	assert.Equal(t, 0, bidStep(big.NewInt(0)).Sign())
}

func TestBodyCodec(t *testing.T) {
	body := &AuctionBody{
		Opcode:    OP_BID,
		Option:    ENGLISH_AUCTION,
		AuctionID: 3,
		Name:      []byte("roundtrip"),
		Bidder:    alice,
		Amount:    big.NewInt(77),
		Start:     1,
		End:       20,
		Nonce:     42,
	}
	decoded, err := AuctionDecodeFromBytes(AuctionEncodeBytes(body))
	assert.Nil(t, err)
	assert.Equal(t, body, decoded)
}
