// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/polkadotters/SubAuction/sub"
)

// Lock profile List
func (s *State) GetLockProfileList() (result *sub.LockProfileList) {
	s.DecodeStorage(sub.LedgerModuleAddr, sub.LedgerLockProfileKey, func(raw []byte) error {
		profiles := make([]*sub.LockProfile, 0)

		if len(raw) > 0 {
			err := rlp.Decode(bytes.NewReader(raw), &profiles)
			if err != nil {
				if err.Error() == "EOF" && len(raw) == 0 {
					// EOF is caused by no value, is not error case, so returns with empty slice
				} else {
					fmt.Println("Error during decoding lock profile list", "err", err)
					return err
				}
			}
		}

		result = sub.NewLockProfileList(profiles)
		return nil
	})
	return
}

func (s *State) SetLockProfileList(lockList *sub.LockProfileList) {
	s.EncodeStorage(sub.LedgerModuleAddr, sub.LedgerLockProfileKey, func() ([]byte, error) {
		return rlp.EncodeToBytes(lockList.Profiles)
	})
}
