// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package nft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	setypes "github.com/polkadotters/SubAuction/script/types"
	"github.com/polkadotters/SubAuction/lvldb"
	"github.com/polkadotters/SubAuction/state"
	"github.com/polkadotters/SubAuction/sub"
	"github.com/polkadotters/SubAuction/xenv"
)

const testGas = uint64(1000000)

var (
	creator  = sub.BytesToAddress([]byte("creator"))
	receiver = sub.BytesToAddress([]byte("receiver"))
	stranger = sub.BytesToAddress([]byte("stranger"))
)

func newTestEnv(t *testing.T, origin sub.Address) (*NFT, *setypes.ScriptEnv, *state.State) {
	kv, err := lvldb.NewMem()
	assert.Nil(t, err)
	st, err := state.New(kv)
	assert.Nil(t, err)
	txCtx := &xenv.TransactionContext{
		ID:          sub.Blake2b([]byte("test-tx")),
		Origin:      origin,
		BlockNumber: 1,
	}
	return NewNFT(), setypes.NewScriptEnv(st, txCtx, &sub.NFTModuleAddr), st
}

func mintForTest(t *testing.T, n *NFT, st *state.State, owner sub.Address) sub.TokenID {
	classID, err := n.CreateClass(st, owner, []byte("class"))
	assert.Nil(t, err)
	token, err := n.MintToken(st, owner, classID, []byte("token"))
	assert.Nil(t, err)
	return token
}

func TestCreateClassAndMint(t *testing.T) {
	n, env, st := newTestEnv(t, creator)

	_, err := n.HandleCreateClass(env, &NFTBody{Opcode: OP_CREATE_CLASS, Metadata: []byte("first")}, testGas)
	assert.Nil(t, err)

	class := n.GetClass(st, 0)
	assert.NotNil(t, class)
	assert.Equal(t, creator, class.Owner)

	_, err = n.HandleMint(env, &NFTBody{Opcode: OP_MINT, ClassID: 0}, testGas)
	assert.Nil(t, err)
	assert.True(t, n.IsOwner(st, creator, sub.TokenID{Class: 0, Instance: 0}))

	// only the class owner may mint
	_, err = n.MintToken(st, stranger, 0, nil)
	assert.Equal(t, errNoPermission, err)

	_, err = n.MintToken(st, creator, 42, nil)
	assert.Equal(t, errClassNotFound, err)
}

func TestToggleLock(t *testing.T) {
	n, _, st := newTestEnv(t, creator)
	token := mintForTest(t, n, st, creator)

	locked, err := n.IsLocked(st, token)
	assert.Nil(t, err)
	assert.False(t, locked)

	assert.Equal(t, errNoPermission, n.ToggleLock(st, stranger, token))

	assert.Nil(t, n.ToggleLock(st, creator, token))
	locked, _ = n.IsLocked(st, token)
	assert.True(t, locked)

	assert.Nil(t, n.ToggleLock(st, creator, token))
	locked, _ = n.IsLocked(st, token)
	assert.False(t, locked)

	_, err = n.IsLocked(st, sub.TokenID{Class: 9, Instance: 9})
	assert.Equal(t, errTokenNotFound, err)
}

func TestHandleTransfer(t *testing.T) {
	n, env, st := newTestEnv(t, creator)
	token := mintForTest(t, n, st, creator)

	body := &NFTBody{Opcode: OP_TRANSFER, ClassID: token.Class, TokenInstance: token.Instance, To: receiver}
	_, err := n.HandleTransfer(env, body, testGas)
	assert.Nil(t, err)
	assert.True(t, n.IsOwner(st, receiver, token))
	assert.False(t, n.IsOwner(st, creator, token))

	// previous owner has no say anymore
	_, err = n.HandleTransfer(env, body, testGas)
	assert.Equal(t, errNoPermission, err)
}

func TestTransferChecks(t *testing.T) {
	n, env, st := newTestEnv(t, creator)
	token := mintForTest(t, n, st, creator)

	_, err := n.HandleTransfer(env, &NFTBody{Opcode: OP_TRANSFER, ClassID: token.Class, TokenInstance: token.Instance}, testGas)
	assert.Equal(t, errZeroAddressTarget, err)

	_, err = n.HandleTransfer(env, &NFTBody{Opcode: OP_TRANSFER, ClassID: token.Class, TokenInstance: token.Instance, To: creator}, testGas)
	assert.Equal(t, errTransferToSelf, err)

	assert.Nil(t, n.ToggleLock(st, creator, token))
	_, err = n.HandleTransfer(env, &NFTBody{Opcode: OP_TRANSFER, ClassID: token.Class, TokenInstance: token.Instance, To: receiver}, testGas)
	assert.Equal(t, errTokenLocked, err)

	// the settlement primitive ignores the lock flag
	assert.Nil(t, n.TransferToken(st, creator, receiver, token))
	assert.True(t, n.IsOwner(st, receiver, token))
}

func TestBurnAndDestroyClass(t *testing.T) {
	n, env, st := newTestEnv(t, creator)
	token := mintForTest(t, n, st, creator)

	_, err := n.HandleDestroyClass(env, &NFTBody{Opcode: OP_DESTROY_CLASS, ClassID: token.Class}, testGas)
	assert.Equal(t, errCannotDestroy, err)

	_, err = n.HandleBurn(env, &NFTBody{Opcode: OP_BURN, ClassID: token.Class, TokenInstance: token.Instance}, testGas)
	assert.Nil(t, err)
	assert.Nil(t, n.GetToken(st, token))

	_, err = n.HandleDestroyClass(env, &NFTBody{Opcode: OP_DESTROY_CLASS, ClassID: token.Class}, testGas)
	assert.Nil(t, err)
	assert.Nil(t, n.GetClass(st, token.Class))
}

func TestBodyCodec(t *testing.T) {
	body := &NFTBody{
		Opcode:        OP_MINT,
		Version:       0,
		ClassID:       3,
		TokenInstance: 7,
		To:            receiver,
		Metadata:      []byte("meta"),
		Nonce:         12345,
	}
	decoded, err := NFTDecodeFromBytes(NFTEncodeBytes(body))
	assert.Nil(t, err)
	assert.Equal(t, body, decoded)
}
