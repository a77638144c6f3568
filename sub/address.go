// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package sub

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Address is the 20-byte account identifier.
type Address [20]byte

// String implements stringer.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// AbbrevString returns a shortened representation for logging.
func (a Address) AbbrevString() string {
	s := hex.EncodeToString(a[:])
	return "0x" + s[:4] + "…" + s[len(s)-4:]
}

// Bytes returns the underlying bytes.
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero reports whether the address is all zero.
func (a Address) IsZero() bool {
	return a == Address{}
}

// BytesToAddress converts bytes slice into an address.
// If the slice is larger than the address size, it will be cropped from the left.
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > len(a) {
		b = b[len(b)-len(a):]
	}
	copy(a[len(a)-len(b):], b)
	return a
}

// ParseAddress converts a "0x" prefixed hex string into an address.
func ParseAddress(s string) (Address, error) {
	if len(s) != 2*20+2 {
		return Address{}, errors.New("address: invalid length")
	}
	if !strings.HasPrefix(s, "0x") {
		return Address{}, errors.New("address: 0x prefix missing")
	}
	var a Address
	if _, err := hex.Decode(a[:], []byte(s[2:])); err != nil {
		return Address{}, err
	}
	return a, nil
}

// MustParseAddress parses an address or panics.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(fmt.Sprintf("parse address %q: %v", s, err))
	}
	return a
}

// Bytes32 is a 32-byte array, mostly used as hashes and storage keys.
type Bytes32 [32]byte

func (b Bytes32) String() string {
	return "0x" + hex.EncodeToString(b[:])
}

// AbbrevString returns an abbreviated representation for logging.
func (b Bytes32) AbbrevString() string {
	s := hex.EncodeToString(b[:])
	return "0x" + s[:4] + "…" + s[len(s)-4:]
}

func (b Bytes32) Bytes() []byte {
	return b[:]
}

func (b Bytes32) IsZero() bool {
	return b == Bytes32{}
}

// BytesToBytes32 converts a byte slice into Bytes32, cropping from the left.
func BytesToBytes32(b []byte) Bytes32 {
	var b32 Bytes32
	if len(b) > len(b32) {
		b = b[len(b)-len(b32):]
	}
	copy(b32[len(b32)-len(b):], b)
	return b32
}

// ParseBytes32 converts a "0x" prefixed hex string into Bytes32.
func ParseBytes32(s string) (Bytes32, error) {
	if len(s) != 2*32+2 {
		return Bytes32{}, errors.New("bytes32: invalid length")
	}
	if !strings.HasPrefix(s, "0x") {
		return Bytes32{}, errors.New("bytes32: 0x prefix missing")
	}
	var b Bytes32
	if _, err := hex.Decode(b[:], []byte(s[2:])); err != nil {
		return Bytes32{}, err
	}
	return b, nil
}

// MustParseBytes32 parses or panics.
func MustParseBytes32(s string) Bytes32 {
	b, err := ParseBytes32(s)
	if err != nil {
		panic(fmt.Sprintf("parse bytes32 %q: %v", s, err))
	}
	return b
}
