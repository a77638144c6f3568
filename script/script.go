// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package script

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
	"github.com/polkadotters/SubAuction/script/auction"
	"github.com/polkadotters/SubAuction/script/nft"
	setypes "github.com/polkadotters/SubAuction/script/types"
	"github.com/polkadotters/SubAuction/state"
	"github.com/polkadotters/SubAuction/sub"
)

var (
	ScriptGlobInst *ScriptEngine
)

// global data
type ScriptEngine struct {
	stateCreator *state.Creator
	logger       *slog.Logger
	modReg       Registry
}

// Glob Instance
func GetScriptGlobInst() *ScriptEngine {
	return ScriptGlobInst
}

func SetScriptGlobInst(inst *ScriptEngine) {
	ScriptGlobInst = inst
}

func NewScriptEngine(stateCreator *state.Creator) *ScriptEngine {
	se := &ScriptEngine{
		stateCreator: stateCreator,
		logger:       slog.Default().With("pkg", "se"),
	}
	SetScriptGlobInst(se)

	se.StartAllModules()
	return se
}

func (se *ScriptEngine) StartAllModules() {
	n := ModuleNFTInit(se)
	ModuleAuctionInit(se, n)
}

func (se *ScriptEngine) HandleScriptData(senv *setypes.ScriptEnv, data []byte, to *sub.Address, gas uint64) (seOutput *setypes.ScriptEngineOutput, leftOverGas uint64, err error) {
	if len(data) < len(ScriptPattern) {
		return nil, gas, fmt.Errorf("script data too short, len = %v", len(data))
	}
	if !bytes.Equal(data[:len(ScriptPattern)], ScriptPattern[:]) {
		err := fmt.Errorf("pattern mismatch, pattern = %v", hex.EncodeToString(data[:len(ScriptPattern)]))
		return nil, gas, err
	}
	script, err := ScriptDataDecodeFromBytes(data[len(ScriptPattern):])
	if err != nil {
		se.logger.Error("decode script message failed", "error", err)
		return nil, gas, err
	}

	header := script.Header

	mod, find := se.modReg.Find(header.GetModID())
	if !find {
		err := fmt.Errorf("could not address module %v", header.GetModID())
		return nil, gas, err
	}

	//module handler
	seOutput, leftOverGas, err = mod.modHandler(senv, script.Payload, to, gas)
	return
}

// OnBlockFinalized runs every module's block handler after all user
// operations of the block have been applied.
func (se *ScriptEngine) OnBlockFinalized(senv *setypes.ScriptEnv, height uint64) {
	for _, mod := range se.modReg.All() {
		if mod.modBlockHandler != nil {
			mod.modBlockHandler(senv, height)
		}
	}
}

func EncodeScriptData(body interface{}) ([]byte, error) {
	modId := uint32(999)
	switch body.(type) {
	case auction.AuctionBody:
		modId = AUCTION_MODULE_ID
	case *auction.AuctionBody:
		modId = AUCTION_MODULE_ID

	case nft.NFTBody:
		modId = NFT_MODULE_ID
	case *nft.NFTBody:
		modId = NFT_MODULE_ID
	default:
		return []byte{}, errors.New("unrecognized body")
	}
	payload, err := rlp.EncodeToBytes(body)
	if err != nil {
		return []byte{}, errors.Wrap(err, "rlp encode body failed")
	}
	s := &ScriptData{Header: ScriptHeader{Version: uint32(0), ModID: modId}, Payload: payload}
	data, err := rlp.EncodeToBytes(s)
	if err != nil {
		return []byte{}, errors.Wrap(err, "rlp encode script data failed")
	}
	data = append(ScriptPattern[:], data...)

	return data, nil
}

func DecodeScriptData(bytes []byte) (*ScriptData, error) {
	script := ScriptData{}
	err := rlp.DecodeBytes(bytes, &script)
	return &script, err
}
