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
	"fmt"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/ethergo/abikit/common"
)

// Pack encodes the given values according to the argument types using the
// standard head/tail layout. The result length is always a multiple of 32.
func (arguments Arguments) Pack(values ...Value) ([]byte, error) {
	return PackValues(arguments.Types(), values)
}

// PackValues encodes values positionally matched against types.
//
// enc(X) = head(X(1)) ... head(X(k)) tail(X(1)) ... tail(X(k))
// Static values are encoded directly into their head slot; dynamic values
// leave a 32 byte offset in the head, measured from the start of this block,
// and append their encoding to the tail in argument order.
func PackValues(types []Type, values []Value) ([]byte, error) {
	if len(values) != len(types) {
		return nil, &ArityMismatchError{Want: len(types), Got: len(values)}
	}
	headSize := 0
	for _, t := range types {
		headSize += t.headSize()
	}
	var head, tail []byte
	for i, t := range types {
		enc, err := packValue(t, values[i], i)
		if err != nil {
			return nil, err
		}
		if t.IsDynamic() {
			head = append(head, packUint64(uint64(headSize+len(tail)))...)
			tail = append(tail, enc...)
		} else {
			head = append(head, enc...)
		}
	}
	return append(head, tail...), nil
}

// packValue encodes a single value as type t, including any internal length
// prefix or nested head/tail layout. pos names the value's position in error
// reports.
func packValue(t Type, v Value, pos int) ([]byte, error) {
	switch t.Kind {
	case UintTy:
		u, ok := v.(Uint)
		if !ok {
			return nil, mismatch(t, pos, "have "+valueKind(v))
		}
		return packUint(t, u.X, pos)
	case IntTy:
		i, ok := v.(Int)
		if !ok {
			return nil, mismatch(t, pos, "have "+valueKind(v))
		}
		return packInt(t, i.X, pos)
	case BoolTy:
		b, ok := v.(Bool)
		if !ok {
			return nil, mismatch(t, pos, "have "+valueKind(v))
		}
		var word [32]byte
		if b {
			word[31] = 1
		}
		return word[:], nil
	case AddressTy:
		a, ok := v.(Address)
		if !ok {
			return nil, mismatch(t, pos, "have "+valueKind(v))
		}
		return common.LeftPadBytes(a[:], 32), nil
	case FixedBytesTy, FunctionTy:
		b, ok := v.(FixedBytes)
		if !ok {
			return nil, mismatch(t, pos, "have "+valueKind(v))
		}
		if len(b) != t.Size {
			return nil, mismatch(t, pos, fmt.Sprintf("have %d bytes, want %d", len(b), t.Size))
		}
		return common.RightPadBytes(b, 32), nil
	case BytesTy:
		b, ok := v.(Bytes)
		if !ok {
			return nil, mismatch(t, pos, "have "+valueKind(v))
		}
		return packBytesSlice(b), nil
	case StringTy:
		s, ok := v.(String)
		if !ok {
			return nil, mismatch(t, pos, "have "+valueKind(v))
		}
		return packBytesSlice([]byte(s)), nil
	case SliceTy:
		a, ok := v.(Array)
		if !ok {
			return nil, mismatch(t, pos, "have "+valueKind(v))
		}
		// Element count prefix, then the elements laid out as if they were a
		// top-level block of their own. Tail offsets restart after the count.
		enc, err := packHomogeneous(*t.Elem, a)
		if err != nil {
			return nil, err
		}
		return append(packUint64(uint64(len(a))), enc...), nil
	case ArrayTy:
		a, ok := v.(Array)
		if !ok {
			return nil, mismatch(t, pos, "have "+valueKind(v))
		}
		if len(a) != t.Size {
			return nil, mismatch(t, pos, fmt.Sprintf("have %d elements, want %d", len(a), t.Size))
		}
		return packHomogeneous(*t.Elem, a)
	case TupleTy:
		tup, ok := v.(Tuple)
		if !ok {
			return nil, mismatch(t, pos, "have "+valueKind(v))
		}
		if len(tup) != len(t.TupleElems) {
			return nil, mismatch(t, pos, fmt.Sprintf("have %d fields, want %d", len(tup), len(t.TupleElems)))
		}
		types := make([]Type, len(t.TupleElems))
		for i, elem := range t.TupleElems {
			types[i] = *elem
		}
		return PackValues(types, tup)
	default:
		return nil, mismatch(t, pos, "unsupported type")
	}
}

// packHomogeneous applies the head/tail layout to array elements sharing one
// element type.
func packHomogeneous(elem Type, values Array) ([]byte, error) {
	types := make([]Type, len(values))
	for i := range types {
		types[i] = elem
	}
	return PackValues(types, values)
}

// packUint range-checks an unsigned integer against its declared bit width
// and encodes it as a left-padded 32 byte big-endian word.
func packUint(t Type, x *big.Int, pos int) ([]byte, error) {
	if x == nil {
		return nil, mismatch(t, pos, "nil integer")
	}
	if x.Sign() < 0 {
		return nil, mismatch(t, pos, "negative value for unsigned type")
	}
	if x.BitLen() > t.Size {
		return nil, mismatch(t, pos, fmt.Sprintf("value needs %d bits, type holds %d", x.BitLen(), t.Size))
	}
	word, _ := uint256.FromBig(x)
	b := word.Bytes32()
	return b[:], nil
}

// packInt range-checks a signed integer against [-2^(N-1), 2^(N-1)-1] and
// encodes it as a 32 byte two's-complement word. uint256.SetFromBig wraps
// negative inputs modulo 2^256, which is exactly the two's complement form.
func packInt(t Type, x *big.Int, pos int) ([]byte, error) {
	if x == nil {
		return nil, mismatch(t, pos, "nil integer")
	}
	if x.Sign() >= 0 {
		if x.BitLen() > t.Size-1 {
			return nil, mismatch(t, pos, fmt.Sprintf("value needs %d bits, type holds %d", x.BitLen()+1, t.Size))
		}
	} else {
		// Lower bound is -2^(N-1); its magnitude has BitLen N but is still
		// representable.
		min := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
		min.Neg(min)
		if x.Cmp(min) < 0 {
			return nil, mismatch(t, pos, fmt.Sprintf("value below minimum of %d bit type", t.Size))
		}
	}
	word := new(uint256.Int)
	word.SetFromBig(x)
	b := word.Bytes32()
	return b[:], nil
}

// packBytesSlice packs the given bytes as [L, V]: a 32 byte length word
// followed by the content right-padded to a multiple of 32.
func packBytesSlice(data []byte) []byte {
	out := packUint64(uint64(len(data)))
	return append(out, common.RightPadBytes(data, (len(data)+31)/32*32)...)
}

// packUint64 encodes a machine word as a 32 byte big-endian word. Used for
// offsets and length prefixes.
func packUint64(x uint64) []byte {
	b := uint256.NewInt(x).Bytes32()
	return b[:]
}

func mismatch(t Type, pos int, reason string) *TypeMismatchError {
	return &TypeMismatchError{Index: pos, Want: t.String(), Reason: reason}
}
