// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenv

import (
	"github.com/polkadotters/SubAuction/sub"
)

// TransactionContext transaction context, as seen by module handlers.
// Origin is the authenticated signer of the enclosing transaction; the
// dispatch boundary guarantees it, handlers trust it.
type TransactionContext struct {
	ID          sub.Bytes32
	Origin      sub.Address
	Nonce       uint64
	BlockNumber uint64
	Time        uint64
}
