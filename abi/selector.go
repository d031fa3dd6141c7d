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

package abi

import (
	"github.com/ethergo/abikit/common"
	"github.com/ethergo/abikit/crypto"
)

// SelectorLength is the dispatch prefix size of function and error call data.
const SelectorLength = 4

// Selector is the 4 byte dispatch identifier of a function or error, the
// leading bytes of the Keccak256 hash of its canonical signature.
type Selector [SelectorLength]byte

// Bytes gets the byte representation of the selector.
func (s Selector) Bytes() []byte { return s[:] }

// Hex returns a 0x-prefixed lowercase hex representation of the selector.
func (s Selector) Hex() string { return common.HexEncode(s[:]) }

func (s Selector) String() string { return s.Hex() }

// SelectorOf hashes a canonical signature and truncates to the 4 byte
// selector. The empty signature is rejected: constructors, fallback and
// receive have no signature to hash.
func SelectorOf(sig string) (Selector, error) {
	if sig == "" {
		return Selector{}, &EmptySignatureError{}
	}
	var s Selector
	copy(s[:], crypto.Keccak256([]byte(sig))[:SelectorLength])
	return s, nil
}

// Topic0Of hashes a canonical event signature into the full 32 byte topic
// used to filter logs.
func Topic0Of(sig string) (common.Hash, error) {
	if sig == "" {
		return common.Hash{}, &EmptySignatureError{}
	}
	return crypto.Keccak256Hash([]byte(sig)), nil
}
