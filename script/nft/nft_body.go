// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package nft

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/polkadotters/SubAuction/sub"
)

// NFTBody is the RLP-decoded payload of one token registry operation.
type NFTBody struct {
	Opcode        uint32
	Version       uint32
	ClassID       uint64
	TokenInstance uint64
	To            sub.Address
	Metadata      []byte
	Timestamp     uint64
	Nonce         uint64
}

func (nb *NFTBody) ToString() string {
	return fmt.Sprintf("NFTBody: Opcode=%v, Version=%v, ClassID=%v, TokenInstance=%v, To=%v, Metadata=%v, Timestamp=%v, Nonce=%v",
		nb.Opcode, nb.Version, nb.ClassID, nb.TokenInstance, nb.To, string(nb.Metadata), nb.Timestamp, nb.Nonce)
}

func (nb *NFTBody) GetOpName(op uint32) string {
	return GetOpName(op)
}

var (
	errClassNotFound     = errors.New("class not found")
	errTokenNotFound     = errors.New("token not found")
	errNoPermission      = errors.New("no permission")
	errTokenLocked       = errors.New("token locked")
	errCannotDestroy     = errors.New("cannot destroy class, total issuance is not 0")
	errNoAvailableID     = errors.New("no available class or token id")
	errMetadataTooLarge  = errors.New("metadata too large")
	errTransferToSelf    = errors.New("transfer to self")
	errZeroAddressTarget = errors.New("transfer to zero address")
)

const maxMetadataLen = 1024

func NFTEncodeBytes(nb *NFTBody) []byte {
	nftBytes, err := rlp.EncodeToBytes(nb)
	if err != nil {
		log.Error("rlp encode failed", "error", err)
		return []byte{}
	}
	return nftBytes
}

func NFTDecodeFromBytes(bytes []byte) (*NFTBody, error) {
	nb := NFTBody{}
	err := rlp.DecodeBytes(bytes, &nb)
	return &nb, err
}
