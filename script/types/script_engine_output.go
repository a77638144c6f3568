// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package types

import "github.com/polkadotters/SubAuction/tx"

// ScriptEngineOutput is the output of one script call: the return data plus
// collected transfer and event logs.
type ScriptEngineOutput struct {
	data      []byte
	transfers tx.Transfers
	events    tx.Events
}

func (o *ScriptEngineOutput) GetData() []byte {
	if o == nil {
		return nil
	}
	return o.data
}

func (o *ScriptEngineOutput) GetTransfers() tx.Transfers {
	if o == nil {
		return nil
	}
	return o.transfers
}

func (o *ScriptEngineOutput) GetEvents() tx.Events {
	if o == nil {
		return nil
	}
	return o.events
}
