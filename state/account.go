// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/polkadotters/SubAuction/kv"
	"github.com/polkadotters/SubAuction/sub"
)

// Account is the Go presentation of a persisted account.
// Balance is the freely spendable amount, BoundedBalance the amount held by
// named locks.
type Account struct {
	Balance        *big.Int
	BoundedBalance *big.Int
}

// IsEmpty returns whether the account holds nothing.
func (a *Account) IsEmpty() bool {
	return a.Balance.Sign() == 0 && a.BoundedBalance.Sign() == 0
}

func emptyAccount() *Account {
	return &Account{Balance: &big.Int{}, BoundedBalance: &big.Int{}}
}

func accountKey(addr sub.Address) []byte {
	return append([]byte("a/"), addr.Bytes()...)
}

func storageEntryKey(addr sub.Address, key sub.Bytes32) []byte {
	k := append([]byte("s/"), addr.Bytes()...)
	return append(k, key.Bytes()...)
}

// loadAccount loads an account from kv.
// An absent key yields an empty account.
func loadAccount(store kv.Getter, addr sub.Address) (*Account, error) {
	data, err := store.Get(accountKey(addr))
	if err != nil {
		if store.IsNotFound(err) {
			return emptyAccount(), nil
		}
		return nil, err
	}
	var a Account
	if err := rlp.DecodeBytes(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// saveAccount writes an account into kv, deleting empty ones.
func saveAccount(store kv.Putter, addr sub.Address, a *Account) error {
	if a.IsEmpty() {
		return store.Delete(accountKey(addr))
	}
	data, err := rlp.EncodeToBytes(a)
	if err != nil {
		return err
	}
	return store.Put(accountKey(addr), data)
}

// loadStorage loads a raw storage entry, empty when absent.
func loadStorage(store kv.Getter, addr sub.Address, key sub.Bytes32) (rlp.RawValue, error) {
	data, err := store.Get(storageEntryKey(addr, key))
	if err != nil {
		if store.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// saveStorage writes a raw storage entry, deleting empty ones.
func saveStorage(store kv.Putter, addr sub.Address, key sub.Bytes32, raw rlp.RawValue) error {
	if len(raw) == 0 {
		return store.Delete(storageEntryKey(addr, key))
	}
	return store.Put(storageEntryKey(addr, key), raw)
}
