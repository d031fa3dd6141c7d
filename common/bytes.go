// Copyright 2025 The abikit Authors
// This file is part of the abikit library.
//
// The abikit library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The abikit library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the abikit library. If not, see <http://www.gnu.org/licenses/>.

// Package common contains the small helper types shared across abikit.
package common

import (
	"encoding/hex"
	"errors"
	"fmt"
)

var (
	// ErrMissingPrefix is returned when a hex input lacks the 0x prefix.
	ErrMissingPrefix = errors.New("hex string without 0x prefix")
	// ErrOddLength is returned when a hex input has an odd number of digits.
	ErrOddLength = errors.New("hex string of odd length")
)

// CopyBytes returns an exact copy of the provided bytes.
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	copied := make([]byte, len(b))
	copy(copied, b)
	return copied
}

// HexDecode decodes a 0x-prefixed hex string. Inputs without the prefix or
// with an odd number of digits are rejected rather than repaired: the callers
// feed user-supplied strings through here and silent truncation would corrupt
// call data.
func HexDecode(input string) ([]byte, error) {
	if !Has0xPrefix(input) {
		return nil, ErrMissingPrefix
	}
	if len(input)%2 != 0 {
		return nil, ErrOddLength
	}
	b, err := hex.DecodeString(input[2:])
	if err != nil {
		return nil, fmt.Errorf("invalid hex string: %v", err)
	}
	return b, nil
}

// HexEncode encodes b as a 0x-prefixed lowercase hex string.
func HexEncode(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// Has0xPrefix reports whether input begins with "0x" or "0X".
func Has0xPrefix(input string) bool {
	return len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X')
}

// LeftPadBytes zero-pads slice to the left up to length l.
func LeftPadBytes(slice []byte, l int) []byte {
	if l <= len(slice) {
		return slice
	}
	padded := make([]byte, l)
	copy(padded[l-len(slice):], slice)
	return padded
}

// RightPadBytes zero-pads slice to the right up to length l.
func RightPadBytes(slice []byte, l int) []byte {
	if l <= len(slice) {
		return slice
	}
	padded := make([]byte, l)
	copy(padded, slice)
	return padded
}
