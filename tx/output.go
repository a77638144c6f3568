// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"math/big"

	"github.com/polkadotters/SubAuction/sub"
)

// Transfer token transfer log.
type Transfer struct {
	Sender    sub.Address
	Recipient sub.Address
	Amount    *big.Int
	Token     byte
}

// Transfers slice of transfer logs.
type Transfers []*Transfer

// Event represents a contract event log.
type Event struct {
	Address sub.Address
	Topics  []sub.Bytes32
	Data    []byte
}

// Events slice of event logs.
type Events []*Event
