// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polkadotters/SubAuction/genesis"
	"github.com/polkadotters/SubAuction/lvldb"
	"github.com/polkadotters/SubAuction/script/nft"
	"github.com/polkadotters/SubAuction/state"
	"github.com/polkadotters/SubAuction/sub"
)

func TestBuildDevAlloc(t *testing.T) {
	kv, err := lvldb.NewMem()
	assert.Nil(t, err)
	creator := state.NewCreator(kv)
	n := nft.NewNFT()

	alloc := genesis.DevAlloc()
	root, err := genesis.Build(creator, alloc)
	assert.Nil(t, err)
	assert.False(t, root.IsZero())

	st, err := creator.NewState()
	assert.Nil(t, err)

	first := sub.MustParseAddress(alloc.Accounts[0].Address)
	want, _ := new(big.Int).SetString(alloc.Accounts[0].Balance, 10)
	assert.Equal(t, want, st.GetBalance(first))

	// class 0 with three tokens, the third one handed over
	class := n.GetClass(st, 0)
	assert.NotNil(t, class)
	assert.Equal(t, uint64(3), class.TotalIssued)

	third := sub.MustParseAddress(alloc.Classes[0].Tokens[2].Owner)
	assert.True(t, n.IsOwner(st, third, sub.TokenID{Class: 0, Instance: 2}))
}

func TestBuildBadAlloc(t *testing.T) {
	kv, err := lvldb.NewMem()
	assert.Nil(t, err)
	creator := state.NewCreator(kv)
	nft.NewNFT()

	_, err = genesis.Build(creator, &genesis.Alloc{
		Accounts: []genesis.AccountAlloc{{Address: "not-an-address", Balance: "10"}},
	})
	assert.NotNil(t, err)
}
