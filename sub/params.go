// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package sub

import (
	"math/big"

	"github.com/ethereum/go-ethereum/params"
)

// Constants of block chain.
const (
	BlockInterval uint64 = 10 // time interval between two consecutive blocks.

	TxGas     uint64 = 5000
	ClauseGas uint64 = params.TxGas - TxGas

	// MinAuctionDuration is the minimum distance between auction start and end,
	// in blocks. end must satisfy end > start + MinAuctionDuration.
	MinAuctionDuration uint64 = 10

	// BidStepPercent drives the minimal next bid after an accepted bid:
	// minimalBid = bid + ceil(bid * BidStepPercent / 100).
	BidStepPercent uint64 = 10

	// SnipeGuardBlocks is the anti-sniping window. A bid accepted when fewer
	// than SnipeGuardBlocks remain pushes the auction end to now + SnipeGuardBlocks.
	SnipeGuardBlocks uint64 = 10

	// NativeToken tags the single currency in transfer logs.
	NativeToken byte = 0
)

// MaxBidAmount caps bid amounts and the stepped minimal bid; the original
// runtime used a fixed-width balance, so arithmetic past this bound is an
// overflow, not a valid price.
var MaxBidAmount = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// Module account addresses. Funds held in custody and module storage live
// under these addresses.
var (
	AuctionModuleAddr = BytesToAddress([]byte("auction-module-address"))
	NFTModuleAddr     = BytesToAddress([]byte("nft-module-address"))
	LedgerModuleAddr  = BytesToAddress([]byte("ledger-module-address"))
)

// Keys of module storage shared between state accessors and modules.
var (
	LedgerLockProfileKey = Blake2b([]byte("ledger-lock-profile-key"))
)
