// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import "github.com/polkadotters/SubAuction/kv"

// Creator state creator to hide the kv handle.
type Creator struct {
	kv kv.GetPutter
}

// NewCreator create a new state creator.
func NewCreator(store kv.GetPutter) *Creator {
	return &Creator{kv: store}
}

// NewState create a new state object.
func (c *Creator) NewState() (*State, error) {
	return New(c.kv)
}
