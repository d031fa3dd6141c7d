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
	"math/big"

	"github.com/ethergo/abikit/common"
)

// Value is the closed set of shapes the encoder accepts, mirroring the type
// grammar: anything else is rejected at the boundary instead of leaking into
// the encoder.
type Value interface {
	isValue()
}

type (
	// Uint carries the value of any uintN type.
	Uint struct{ X *big.Int }
	// Int carries the value of any intN type.
	Int struct{ X *big.Int }
	// Bool carries a bool value.
	Bool bool
	// Address carries the 20 byte value of an address type.
	Address common.Address
	// FixedBytes carries the content of a bytesN or function type and must
	// have exactly the declared length.
	FixedBytes []byte
	// Bytes carries dynamic bytes content of any length.
	Bytes []byte
	// String carries a string value.
	String string
	// Array carries the ordered elements of a T[] or T[N] value.
	Array []Value
	// Tuple carries the ordered field values of a tuple.
	Tuple []Value
)

func (Uint) isValue()       {}
func (Int) isValue()        {}
func (Bool) isValue()       {}
func (Address) isValue()    {}
func (FixedBytes) isValue() {}
func (Bytes) isValue()      {}
func (String) isValue()     {}
func (Array) isValue()      {}
func (Tuple) isValue()      {}

// NewUint wraps a big integer as an unsigned value. The integer is copied so
// later mutation of x cannot reach into an already constructed Value.
func NewUint(x *big.Int) Uint {
	return Uint{X: new(big.Int).Set(x)}
}

// NewInt wraps a big integer as a signed value, copying it like NewUint.
func NewInt(x *big.Int) Int {
	return Int{X: new(big.Int).Set(x)}
}

// Uint64 wraps a machine word as an unsigned value.
func Uint64(x uint64) Uint {
	return Uint{X: new(big.Int).SetUint64(x)}
}

// Int64 wraps a machine word as a signed value.
func Int64(x int64) Int {
	return Int{X: big.NewInt(x)}
}

// valueKind names the shape of a value for error reporting.
func valueKind(v Value) string {
	switch v.(type) {
	case Uint:
		return "uint"
	case Int:
		return "int"
	case Bool:
		return "bool"
	case Address:
		return "address"
	case FixedBytes:
		return "fixed bytes"
	case Bytes:
		return "bytes"
	case String:
		return "string"
	case Array:
		return "array"
	case Tuple:
		return "tuple"
	case nil:
		return "nil"
	default:
		return "unknown"
	}
}
