// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package nft

import (
	"errors"
	"log/slog"
	"math"

	setypes "github.com/polkadotters/SubAuction/script/types"
	"github.com/polkadotters/SubAuction/state"
	"github.com/polkadotters/SubAuction/sub"
)

var (
	NFTGlobInst *NFT
	log         = slog.Default().With("pkg", "nft")
)

// NFT is the token registry module: classes of non-fungible tokens, their
// instances and the per-token lock flag other modules rely on.
type NFT struct {
	logger *slog.Logger
}

func GetNFTGlobInst() *NFT {
	return NFTGlobInst
}

func SetNFTGlobInst(inst *NFT) {
	NFTGlobInst = inst
}

func NewNFT() *NFT {
	nft := &NFT{
		logger: slog.Default().With("pkg", "nft"),
	}
	SetNFTGlobInst(nft)
	return nft
}

func (n *NFT) Start() error {
	log.Info("nft module started")
	return nil
}

func (n *NFT) NFTHandler(senv *setypes.ScriptEnv, payload []byte, to *sub.Address, gas uint64) (seOutput *setypes.ScriptEngineOutput, leftOverGas uint64, err error) {
	nb, err := NFTDecodeFromBytes(payload)
	if err != nil {
		log.Error("decode script message failed", "error", err)
		return nil, gas, err
	}

	if senv == nil {
		panic("create nft environment failed")
	}

	log.Debug("received nft op", "body", nb.ToString())
	log.Debug("entering nft handler "+GetOpName(nb.Opcode), "tx", senv.GetTxHash())
	switch nb.Opcode {
	case OP_CREATE_CLASS:
		leftOverGas, err = n.HandleCreateClass(senv, nb, gas)
	case OP_MINT:
		leftOverGas, err = n.HandleMint(senv, nb, gas)
	case OP_TRANSFER:
		leftOverGas, err = n.HandleTransfer(senv, nb, gas)
	case OP_BURN:
		leftOverGas, err = n.HandleBurn(senv, nb, gas)
	case OP_DESTROY_CLASS:
		leftOverGas, err = n.HandleDestroyClass(senv, nb, gas)
	default:
		log.Error("unknown Opcode", "Opcode", nb.Opcode)
		return nil, gas, errors.New("unknown nft opcode")
	}
	log.Debug("leaving nft handler", "op", GetOpName(nb.Opcode))

	seOutput = senv.GetOutput()
	return
}

// ---- registry API consumed by the auction module ----

// IsOwner reports whether addr currently owns the token.
// A missing token is owned by nobody.
func (n *NFT) IsOwner(st *state.State, addr sub.Address, token sub.TokenID) bool {
	info := n.GetToken(st, token)
	return info != nil && info.Owner == addr
}

// IsLocked reports the token's lock flag.
func (n *NFT) IsLocked(st *state.State, token sub.TokenID) (bool, error) {
	info := n.GetToken(st, token)
	if info == nil {
		return false, errTokenNotFound
	}
	return info.Locked, nil
}

// ToggleLock flips the token's lock flag. Only the token owner may do so.
func (n *NFT) ToggleLock(st *state.State, addr sub.Address, token sub.TokenID) error {
	if class := n.GetClass(st, token.Class); class == nil {
		return errClassNotFound
	}
	info := n.GetToken(st, token)
	if info == nil {
		return errTokenNotFound
	}
	if info.Owner != addr {
		return errNoPermission
	}
	info.Locked = !info.Locked
	n.SetToken(st, token, info)
	return nil
}

// TransferToken moves the token from one owner to another, ignoring the lock
// flag; it is the primitive used at settlement, after the module holding the
// lock has decided the transfer must happen.
func (n *NFT) TransferToken(st *state.State, from, to sub.Address, token sub.TokenID) error {
	info := n.GetToken(st, token)
	if info == nil {
		return errTokenNotFound
	}
	if info.Owner != from {
		return errNoPermission
	}
	info.Owner = to
	n.SetToken(st, token, info)
	return nil
}

// ---- primitives shared by handlers and genesis building ----

// CreateClass registers a new class owned by owner and returns its id.
func (n *NFT) CreateClass(st *state.State, owner sub.Address, metadata []byte) (uint64, error) {
	if len(metadata) > maxMetadataLen {
		return 0, errMetadataTooLarge
	}
	classID, err := n.AllocateClassID(st)
	if err != nil {
		return 0, err
	}
	n.SetClass(st, classID, &ClassInfo{
		Owner:    owner,
		Metadata: metadata,
	})
	return classID, nil
}

// MintToken mints a token of the given class for the class owner.
func (n *NFT) MintToken(st *state.State, caller sub.Address, classID uint64, metadata []byte) (sub.TokenID, error) {
	if len(metadata) > maxMetadataLen {
		return sub.TokenID{}, errMetadataTooLarge
	}
	class := n.GetClass(st, classID)
	if class == nil {
		return sub.TokenID{}, errClassNotFound
	}
	if class.Owner != caller {
		return sub.TokenID{}, errNoPermission
	}
	if class.NextToken == math.MaxUint64 {
		return sub.TokenID{}, errNoAvailableID
	}
	token := sub.TokenID{Class: classID, Instance: class.NextToken}
	class.NextToken++
	class.TotalIssued++
	n.SetClass(st, classID, class)
	// tokens always start unlocked, whatever the caller asked for
	n.SetToken(st, token, &TokenInfo{
		Owner:    caller,
		Metadata: metadata,
		Locked:   false,
	})
	return token, nil
}
