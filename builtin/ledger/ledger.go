// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"errors"
	"log/slog"
	"math/big"

	"github.com/polkadotters/SubAuction/state"
	"github.com/polkadotters/SubAuction/sub"
)

var (
	ErrInsufficientBalance = errors.New("not enough balance")
	ErrLockNotFound        = errors.New("lock not found")
	ErrLockHolderMismatch  = errors.New("lock held by another account")
	ErrAccountMustLive     = errors.New("transfer would kill the account")
)

// Ledger is the currency subsystem: plain balance transfers plus named
// balance locks. A lock parks funds in the account's bounded balance and is
// attributed to a lock id, so locked funds cannot be spent but stay in the
// holder's custody.
type Ledger struct {
	addr   sub.Address
	logger *slog.Logger
}

// New creates a ledger instance rooted at the given module address.
func New(addr sub.Address) *Ledger {
	return &Ledger{
		addr:   addr,
		logger: slog.Default().With("pkg", "ledger"),
	}
}

// Transfer moves amount of free balance between accounts.
// With keepAlive set, the sender must retain something after the transfer;
// this mirrors the existential policy of the original currency subsystem.
func (l *Ledger) Transfer(st *state.State, from, to sub.Address, amount *big.Int, keepAlive bool) error {
	if amount.Sign() == 0 {
		return nil
	}
	balance := st.GetBalance(from)
	if balance.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	if keepAlive {
		left := new(big.Int).Sub(balance, amount)
		if left.Sign() == 0 && st.GetBoundedBalance(from).Sign() == 0 {
			return ErrAccountMustLive
		}
	}
	st.SubBalance(from, amount)
	st.AddBalance(to, amount)
	return nil
}

// SetLock locks amount of addr's free balance under lockID.
// Re-locking an existing lockID adjusts the held amount in place; there is
// never a moment where the account is locked twice for the same id.
func (l *Ledger) SetLock(st *state.State, lockID sub.Bytes32, addr sub.Address, amount *big.Int) error {
	lockList := st.GetLockProfileList()

	if p := lockList.Get(lockID); p != nil {
		if p.Addr != addr {
			return ErrLockHolderMismatch
		}
		// adjust in place: release the old hold, then take the new one
		if !st.SubBoundedBalance(addr, p.Amount) {
			return ErrInsufficientBalance
		}
		st.AddBalance(addr, p.Amount)
	}

	if !st.SubBalance(addr, amount) {
		return ErrInsufficientBalance
	}
	st.AddBoundedBalance(addr, amount)

	lockList.Add(sub.NewLockProfile(lockID, addr, amount))
	st.SetLockProfileList(lockList)
	return nil
}

// RemoveLock releases the lock held under lockID for addr, moving the funds
// back to the free balance.
func (l *Ledger) RemoveLock(st *state.State, lockID sub.Bytes32, addr sub.Address) error {
	lockList := st.GetLockProfileList()

	p := lockList.Get(lockID)
	if p == nil {
		return ErrLockNotFound
	}
	if p.Addr != addr {
		return ErrLockHolderMismatch
	}
	if !st.SubBoundedBalance(addr, p.Amount) {
		l.logger.Error("bounded balance below lock amount", "addr", addr, "lock", lockID.AbbrevString())
		return ErrInsufficientBalance
	}
	st.AddBalance(addr, p.Amount)

	lockList.Remove(lockID)
	st.SetLockProfileList(lockList)
	return nil
}

// LockedAmount returns the amount held under lockID for addr, zero if none.
func (l *Ledger) LockedAmount(st *state.State, lockID sub.Bytes32, addr sub.Address) *big.Int {
	if p := st.GetLockProfileList().Get(lockID); p != nil && p.Addr == addr {
		return p.Amount
	}
	return &big.Int{}
}
