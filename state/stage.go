// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/polkadotters/SubAuction/kv"
	"github.com/polkadotters/SubAuction/sub"
)

// Stage abstracts the changes ready to be committed.
type Stage struct {
	err      error
	kv       kv.GetPutter
	accounts map[sub.Address]*Account
	storages map[storageKey]rlp.RawValue
}

// Hash computes the hash of the change set, a cheap stand-in for a state
// root over the touched entries.
func (stage *Stage) Hash() (root sub.Bytes32) {
	if stage.err != nil {
		return
	}
	hw := sub.NewBlake2b()
	for addr, acc := range stage.accounts {
		hw.Write(accountKey(addr))
		data, _ := rlp.EncodeToBytes(acc)
		hw.Write(data)
	}
	for sk, raw := range stage.storages {
		hw.Write(storageEntryKey(sk.addr, sk.key))
		hw.Write(raw)
	}
	hw.Sum(root[:0])
	return
}

// Commit commits the change set into the underlying kv.
func (stage *Stage) Commit() (sub.Bytes32, error) {
	if stage.err != nil {
		return sub.Bytes32{}, stage.err
	}
	for addr, acc := range stage.accounts {
		if err := saveAccount(stage.kv, addr, acc); err != nil {
			return sub.Bytes32{}, err
		}
	}
	for sk, raw := range stage.storages {
		if err := saveStorage(stage.kv, sk.addr, sk.key, raw); err != nil {
			return sub.Bytes32{}, err
		}
	}
	return stage.Hash(), nil
}
