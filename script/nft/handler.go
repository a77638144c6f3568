// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package nft

import (
	"github.com/ethereum/go-ethereum/rlp"

	setypes "github.com/polkadotters/SubAuction/script/types"
	"github.com/polkadotters/SubAuction/sub"
)

func leftGas(gas uint64) uint64 {
	if gas < sub.ClauseGas {
		return 0
	}
	return gas - sub.ClauseGas
}

func (n *NFT) HandleCreateClass(env *setypes.ScriptEnv, nb *NFTBody, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
	}()
	st := env.GetState()
	leftOverGas = leftGas(gas)
	sender := env.GetTxOrigin()

	checkpoint := st.NewCheckpoint()
	classID, err := n.CreateClass(st, sender, nb.Metadata)
	if err != nil {
		st.RevertTo(checkpoint)
		return
	}

	env.AddEvent(sub.NFTModuleAddr, []sub.Bytes32{sub.Blake2b([]byte("NFTClassCreated"))}, sender.Bytes())
	ret, err = rlp.EncodeToBytes(classID)
	return
}

func (n *NFT) HandleMint(env *setypes.ScriptEnv, nb *NFTBody, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
	}()
	st := env.GetState()
	leftOverGas = leftGas(gas)
	sender := env.GetTxOrigin()

	checkpoint := st.NewCheckpoint()
	token, err := n.MintToken(st, sender, nb.ClassID, nb.Metadata)
	if err != nil {
		st.RevertTo(checkpoint)
		return
	}

	log.Info("minted token", "token", token, "owner", sender.AbbrevString())
	env.AddEvent(sub.NFTModuleAddr, []sub.Bytes32{sub.Blake2b([]byte("NFTTokenMinted"))}, sender.Bytes())
	ret, err = rlp.EncodeToBytes(&token)
	return
}

func (n *NFT) HandleTransfer(env *setypes.ScriptEnv, nb *NFTBody, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
	}()
	st := env.GetState()
	leftOverGas = leftGas(gas)
	sender := env.GetTxOrigin()
	token := sub.TokenID{Class: nb.ClassID, Instance: nb.TokenInstance}

	if nb.To.IsZero() {
		err = errZeroAddressTarget
		return
	}
	if nb.To == sender {
		err = errTransferToSelf
		return
	}
	if class := n.GetClass(st, token.Class); class == nil {
		err = errClassNotFound
		return
	}
	info := n.GetToken(st, token)
	if info == nil {
		err = errTokenNotFound
		return
	}
	if info.Owner != sender {
		err = errNoPermission
		return
	}
	if info.Locked {
		err = errTokenLocked
		return
	}

	info.Owner = nb.To
	n.SetToken(st, token, info)
	env.AddEvent(sub.NFTModuleAddr, []sub.Bytes32{sub.Blake2b([]byte("NFTTokenTransferred"))}, append(sender.Bytes(), nb.To.Bytes()...))
	return
}

func (n *NFT) HandleBurn(env *setypes.ScriptEnv, nb *NFTBody, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
	}()
	st := env.GetState()
	leftOverGas = leftGas(gas)
	sender := env.GetTxOrigin()
	token := sub.TokenID{Class: nb.ClassID, Instance: nb.TokenInstance}

	class := n.GetClass(st, token.Class)
	if class == nil {
		err = errClassNotFound
		return
	}
	info := n.GetToken(st, token)
	if info == nil {
		err = errTokenNotFound
		return
	}
	if info.Owner != sender {
		err = errNoPermission
		return
	}
	if info.Locked {
		err = errTokenLocked
		return
	}

	checkpoint := st.NewCheckpoint()
	n.RemoveToken(st, token)
	class.TotalIssued--
	n.SetClass(st, token.Class, class)
	if st.Err() != nil {
		st.RevertTo(checkpoint)
		err = st.Err()
		return
	}
	env.AddEvent(sub.NFTModuleAddr, []sub.Bytes32{sub.Blake2b([]byte("NFTTokenBurned"))}, sender.Bytes())
	return
}

func (n *NFT) HandleDestroyClass(env *setypes.ScriptEnv, nb *NFTBody, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
	}()
	st := env.GetState()
	leftOverGas = leftGas(gas)
	sender := env.GetTxOrigin()

	class := n.GetClass(st, nb.ClassID)
	if class == nil {
		err = errClassNotFound
		return
	}
	if class.Owner != sender {
		err = errNoPermission
		return
	}
	if class.TotalIssued != 0 {
		err = errCannotDestroy
		return
	}

	n.RemoveClass(st, nb.ClassID)
	env.AddEvent(sub.NFTModuleAddr, []sub.Bytes32{sub.Blake2b([]byte("NFTClassDestroyed"))}, sender.Bytes())
	return
}
