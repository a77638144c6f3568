// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package sub_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polkadotters/SubAuction/sub"
)

func TestLockProfileList(t *testing.T) {
	lock1 := sub.BytesToBytes32([]byte("lock1"))
	lock2 := sub.BytesToBytes32([]byte("lock2"))
	addr := sub.BytesToAddress([]byte("acc1"))

	l := sub.NewLockProfileList(nil)
	assert.Equal(t, 0, l.Count())
	assert.Nil(t, l.Get(lock1))
	assert.False(t, l.Exist(lock1))

	l.Add(sub.NewLockProfile(lock2, addr, big.NewInt(2)))
	l.Add(sub.NewLockProfile(lock1, addr, big.NewInt(1)))
	assert.Equal(t, 2, l.Count())

	// kept sorted by lock id
	profiles := l.ToList()
	assert.Equal(t, lock1, profiles[0].LockID)
	assert.Equal(t, lock2, profiles[1].LockID)

	// re-add replaces
	l.Add(sub.NewLockProfile(lock1, addr, big.NewInt(10)))
	assert.Equal(t, 2, l.Count())
	assert.Equal(t, big.NewInt(10), l.Get(lock1).Amount)

	l.Remove(lock1)
	assert.Equal(t, 1, l.Count())
	assert.False(t, l.Exist(lock1))
	assert.True(t, l.Exist(lock2))
}

func TestAddressParse(t *testing.T) {
	addr := sub.BytesToAddress([]byte("acc1"))
	parsed, err := sub.ParseAddress(addr.String())
	assert.Nil(t, err)
	assert.Equal(t, addr, parsed)

	_, err = sub.ParseAddress("0x1234")
	assert.NotNil(t, err)
}
