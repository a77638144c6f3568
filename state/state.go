// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/polkadotters/SubAuction/kv"
	"github.com/polkadotters/SubAuction/stackedmap"
	"github.com/polkadotters/SubAuction/sub"
)

// State manages accounts and module storage.
// All mutations are journaled; NewCheckpoint/RevertTo give operations the
// all-or-nothing discipline the runtime requires.
type State struct {
	kv       kv.GetPutter
	sm       *stackedmap.StackedMap // keeps revisions of state
	err      error
	setError func(err error)
}

type storageKey struct {
	addr sub.Address
	key  sub.Bytes32
}

// New create a state object bound to the given kv.
func New(store kv.GetPutter) (*State, error) {
	state := State{
		kv: store,
	}
	state.setError = func(err error) {
		if state.err == nil {
			state.err = err
		}
	}
	state.sm = stackedmap.New(func(key interface{}) (value interface{}, exist bool) {
		return state.cacheGetter(key)
	})
	return &state, nil
}

// implements stackedmap.MapGetter
func (s *State) cacheGetter(key interface{}) (value interface{}, exist bool) {
	switch k := key.(type) {
	case sub.Address: // get account
		a, err := loadAccount(s.kv, k)
		if err != nil {
			s.setError(err)
			return emptyAccount(), true
		}
		return a, true
	case storageKey: // get storage
		v, err := loadStorage(s.kv, k.addr, k.key)
		if err != nil {
			s.setError(err)
			return rlp.RawValue(nil), true
		}
		return v, true
	}
	panic(fmt.Errorf("unexpected key type %+v", key))
}

// the returned account should not be modified
func (s *State) getAccount(addr sub.Address) *Account {
	v, _ := s.sm.Get(addr)
	return v.(*Account)
}

func (s *State) getAccountCopy(addr sub.Address) Account {
	return *s.getAccount(addr)
}

func (s *State) updateAccount(addr sub.Address, acc *Account) {
	s.sm.Put(addr, acc)
}

// Err returns first occurred error.
func (s *State) Err() error {
	return s.err
}

// GetBalance returns the free balance for the given address.
func (s *State) GetBalance(addr sub.Address) *big.Int {
	return s.getAccount(addr).Balance
}

// SetBalance set the free balance for the given address.
func (s *State) SetBalance(addr sub.Address, balance *big.Int) {
	cpy := s.getAccountCopy(addr)
	cpy.Balance = balance
	s.updateAccount(addr, &cpy)
}

// SubBalance subtracts amount from the free balance, returns false when the
// balance is too low.
func (s *State) SubBalance(addr sub.Address, amount *big.Int) bool {
	if amount.Sign() == 0 {
		return true
	}
	balance := s.GetBalance(addr)
	if balance.Cmp(amount) < 0 {
		return false
	}
	s.SetBalance(addr, new(big.Int).Sub(balance, amount))
	return true
}

// AddBalance adds amount to the free balance.
func (s *State) AddBalance(addr sub.Address, amount *big.Int) {
	if amount.Sign() == 0 {
		return
	}
	balance := s.GetBalance(addr)
	s.SetBalance(addr, new(big.Int).Add(balance, amount))
}

// GetBoundedBalance returns the locked balance for the given address.
func (s *State) GetBoundedBalance(addr sub.Address) *big.Int {
	return s.getAccount(addr).BoundedBalance
}

// SetBoundedBalance set the locked balance for the given address.
func (s *State) SetBoundedBalance(addr sub.Address, balance *big.Int) {
	cpy := s.getAccountCopy(addr)
	cpy.BoundedBalance = balance
	s.updateAccount(addr, &cpy)
}

// SubBoundedBalance subtracts amount from the locked balance, returns false
// when the locked balance is too low.
func (s *State) SubBoundedBalance(addr sub.Address, amount *big.Int) bool {
	if amount.Sign() == 0 {
		return true
	}
	balance := s.GetBoundedBalance(addr)
	if balance.Cmp(amount) < 0 {
		return false
	}
	s.SetBoundedBalance(addr, new(big.Int).Sub(balance, amount))
	return true
}

// AddBoundedBalance adds amount to the locked balance.
func (s *State) AddBoundedBalance(addr sub.Address, amount *big.Int) {
	if amount.Sign() == 0 {
		return
	}
	balance := s.GetBoundedBalance(addr)
	s.SetBoundedBalance(addr, new(big.Int).Add(balance, amount))
}

// Exists returns whether an account holds anything.
func (s *State) Exists(addr sub.Address) bool {
	return !s.getAccount(addr).IsEmpty()
}

// GetRawStorage returns the raw rlp encoded storage value for the given key.
func (s *State) GetRawStorage(addr sub.Address, key sub.Bytes32) rlp.RawValue {
	v, _ := s.sm.Get(storageKey{addr, key})
	return v.(rlp.RawValue)
}

// SetRawStorage set a raw rlp encoded storage value for the given key.
// An empty raw deletes the entry.
func (s *State) SetRawStorage(addr sub.Address, key sub.Bytes32, raw rlp.RawValue) {
	s.sm.Put(storageKey{addr, key}, raw)
}

// EncodeStorage set storage value encoded by given enc method.
// An error in enc aborts the write and is registered on the state.
func (s *State) EncodeStorage(addr sub.Address, key sub.Bytes32, enc func() ([]byte, error)) {
	raw, err := enc()
	if err != nil {
		s.setError(err)
		return
	}
	s.SetRawStorage(addr, key, raw)
}

// DecodeStorage get and decode storage value for given key.
// An error in dec is registered on the state.
func (s *State) DecodeStorage(addr sub.Address, key sub.Bytes32, dec func([]byte) error) {
	raw := s.GetRawStorage(addr, key)
	if err := dec(raw); err != nil {
		s.setError(err)
	}
}

// NewCheckpoint makes a checkpoint of current state.
// It returns a revision to be passed to RevertTo.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo reverts to the checkpoint specified by revision.
func (s *State) RevertTo(revision int) {
	s.sm.PopTo(revision)
}

// Stage makes a stage object to be committed to the underlying kv.
func (s *State) Stage() *Stage {
	if s.err != nil {
		return &Stage{err: s.err}
	}

	accounts := make(map[sub.Address]*Account)
	storages := make(map[storageKey]rlp.RawValue)
	s.sm.Journal(func(k, v interface{}) bool {
		switch key := k.(type) {
		case sub.Address:
			accounts[key] = v.(*Account)
		case storageKey:
			storages[key] = v.(rlp.RawValue)
		}
		return true
	})
	return &Stage{
		kv:       s.kv,
		accounts: accounts,
		storages: storages,
	}
}
