// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package sub

import "fmt"

// TokenID references one token instance within a token class.
type TokenID struct {
	Class    uint64
	Instance uint64
}

func (t TokenID) String() string {
	return fmt.Sprintf("(%d,%d)", t.Class, t.Instance)
}
