// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package sub

import (
	"bytes"
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// LockProfile records one named balance lock: the locked amount is carried in
// the account's bounded balance and attributed to LockID.
type LockProfile struct {
	LockID Bytes32
	Addr   Address
	Amount *big.Int
}

func NewLockProfile(lockID Bytes32, addr Address, amount *big.Int) *LockProfile {
	return &LockProfile{
		LockID: lockID,
		Addr:   addr,
		Amount: amount,
	}
}

func (p *LockProfile) ToString() string {
	return fmt.Sprintf("LockProfile(%v) Addr=%v, Amount=%v", p.LockID.AbbrevString(), p.Addr, p.Amount.String())
}

type LockProfileList struct {
	Profiles []*LockProfile
}

func NewLockProfileList(profiles []*LockProfile) *LockProfileList {
	if profiles == nil {
		profiles = make([]*LockProfile, 0)
	}
	sort.SliceStable(profiles, func(i, j int) bool {
		return bytes.Compare(profiles[i].LockID.Bytes(), profiles[j].LockID.Bytes()) <= 0
	})
	return &LockProfileList{Profiles: profiles}
}

func (l *LockProfileList) indexOf(lockID Bytes32) (int, int) {
	// return values:
	//     first parameter: if found, the index of the item
	//     second parameter: if not found, the correct insert index of the item
	if len(l.Profiles) <= 0 {
		return -1, 0
	}
	lo := 0
	hi := len(l.Profiles)
	for lo < hi {
		m := (lo + hi) / 2
		cmp := bytes.Compare(lockID.Bytes(), l.Profiles[m].LockID.Bytes())
		if cmp < 0 {
			hi = m
		} else if cmp > 0 {
			lo = m + 1
		} else {
			return m, -1
		}
	}
	return -1, hi
}

func (l *LockProfileList) Get(lockID Bytes32) *LockProfile {
	index, _ := l.indexOf(lockID)
	if index < 0 {
		return nil
	}
	return l.Profiles[index]
}

func (l *LockProfileList) Exist(lockID Bytes32) bool {
	index, _ := l.indexOf(lockID)
	return index >= 0
}

func (l *LockProfileList) Add(p *LockProfile) {
	index, insertIndex := l.indexOf(p.LockID)
	if index < 0 {
		if len(l.Profiles) == 0 {
			l.Profiles = append(l.Profiles, p)
			return
		}
		newList := make([]*LockProfile, insertIndex)
		copy(newList, l.Profiles[:insertIndex])
		newList = append(newList, p)
		newList = append(newList, l.Profiles[insertIndex:]...)
		l.Profiles = newList
	} else {
		l.Profiles[index] = p
	}
}

func (l *LockProfileList) Remove(lockID Bytes32) {
	index, _ := l.indexOf(lockID)
	if index >= 0 {
		l.Profiles = append(l.Profiles[:index], l.Profiles[index+1:]...)
	}
}

func (l *LockProfileList) Count() int {
	return len(l.Profiles)
}

func (l *LockProfileList) ToString() string {
	if l == nil || len(l.Profiles) == 0 {
		return "LockProfileList (size:0)"
	}
	s := []string{fmt.Sprintf("LockProfileList (size:%v) {", len(l.Profiles))}
	for i, p := range l.Profiles {
		s = append(s, fmt.Sprintf("  %d.%v", i, p.ToString()))
	}
	s = append(s, "}")
	return strings.Join(s, "\n")
}

func (l *LockProfileList) ToList() []LockProfile {
	result := make([]LockProfile, 0)
	for _, p := range l.Profiles {
		result = append(result, *p)
	}
	return result
}
