// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

// DevAlloc returns the pre-funded allocation for solo mode: a handful of
// accounts plus one token class with a few minted tokens for auctioning.
func DevAlloc() *Alloc {
	return &Alloc{
		Name: "devnet",
		Accounts: []AccountAlloc{
			{Address: "0x61746f722d61756374696f6e2d6163636f756e31", Balance: "1000000000000000000000"},
			{Address: "0x61746f722d61756374696f6e2d6163636f756e32", Balance: "1000000000000000000000"},
			{Address: "0x61746f722d61756374696f6e2d6163636f756e33", Balance: "1000000000000000000000"},
		},
		Classes: []ClassAlloc{
			{
				Owner:    "0x61746f722d61756374696f6e2d6163636f756e31",
				Metadata: "devnet collectibles",
				Tokens: []TokenAlloc{
					{Owner: "0x61746f722d61756374696f6e2d6163636f756e31", Metadata: "token #0"},
					{Owner: "0x61746f722d61756374696f6e2d6163636f756e31", Metadata: "token #1"},
					{Owner: "0x61746f722d61756374696f6e2d6163636f756e32", Metadata: "token #2"},
				},
			},
		},
	}
}
