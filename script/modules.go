// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package script

import (
	"github.com/polkadotters/SubAuction/builtin/ledger"
	"github.com/polkadotters/SubAuction/script/auction"
	"github.com/polkadotters/SubAuction/script/nft"
	"github.com/polkadotters/SubAuction/sub"
)

const (
	AUCTION_MODULE_NAME = string("auction")
	AUCTION_MODULE_ID   = uint32(1000)

	NFT_MODULE_NAME = string("nft")
	NFT_MODULE_ID   = uint32(2000)
)

func ModuleNFTInit(se *ScriptEngine) *nft.NFT {
	n := nft.NewNFT()
	if n == nil {
		panic("init nft module failed")
	}

	mod := &Module{
		modName:    NFT_MODULE_NAME,
		modID:      NFT_MODULE_ID,
		modHandler: n.NFTHandler,
	}
	if err := se.modReg.Register(NFT_MODULE_ID, mod); err != nil {
		panic("register nft module failed")
	}

	n.Start()
	se.logger.Info("ScriptEngine", "started module", mod.modName)
	return n
}

func ModuleAuctionInit(se *ScriptEngine, registry auction.TokenRegistry) *auction.Auction {
	a := auction.NewAuction(registry, ledger.New(sub.LedgerModuleAddr))
	if a == nil {
		panic("init auction module failed")
	}

	mod := &Module{
		modName:         AUCTION_MODULE_NAME,
		modID:           AUCTION_MODULE_ID,
		modHandler:      a.AuctionHandler,
		modBlockHandler: a.OnBlockFinalized,
	}
	if err := se.modReg.Register(AUCTION_MODULE_ID, mod); err != nil {
		panic("register auction module failed")
	}

	a.Start()
	se.logger.Info("ScriptEngine", "started module", mod.modName)
	return a
}
