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
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethergo/abikit/common"
)

// ParseValues converts a JSON array of loosely typed arguments into Values
// positionally matched against types. This is the boundary where free-form
// input is forced into the closed Value grammar; the encoder itself never
// sees raw JSON.
func ParseValues(types []Type, raw json.RawMessage) ([]Value, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, fmt.Errorf("abi: arguments must be a JSON array: %v", err)
	}
	if len(elems) != len(types) {
		return nil, &ArityMismatchError{Want: len(types), Got: len(elems)}
	}
	values := make([]Value, len(types))
	for i, t := range types {
		v, err := ParseValue(t, elems[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		values[i] = v
	}
	return values, nil
}

// ParseValue converts one JSON value into the Value shape declared by t.
//
// Integers accept JSON numbers, decimal strings and 0x-prefixed hex strings.
// Addresses and fixed bytes accept 0x-prefixed hex. Dynamic bytes accept hex
// or a plain string taken as raw UTF-8. Tuples accept a positional array or
// an object keyed by component names.
func ParseValue(t Type, raw json.RawMessage) (Value, error) {
	switch t.Kind {
	case UintTy:
		x, err := parseBigInt(t, raw)
		if err != nil {
			return nil, err
		}
		return Uint{X: x}, nil
	case IntTy:
		x, err := parseBigInt(t, raw)
		if err != nil {
			return nil, err
		}
		return Int{X: x}, nil
	case BoolTy:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("abi: %s value must be true or false", t)
		}
		return Bool(b), nil
	case AddressTy:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("abi: %s value must be a hex string", t)
		}
		addr, err := common.ParseAddress(s)
		if err != nil {
			return nil, fmt.Errorf("abi: invalid address: %v", err)
		}
		return Address(addr), nil
	case FixedBytesTy, FunctionTy:
		b, err := parseByteContent(t, raw)
		if err != nil {
			return nil, err
		}
		if len(b) != t.Size {
			return nil, fmt.Errorf("abi: %s value must hold exactly %d bytes, have %d", t, t.Size, len(b))
		}
		return FixedBytes(b), nil
	case BytesTy:
		b, err := parseByteContent(t, raw)
		if err != nil {
			return nil, err
		}
		return Bytes(b), nil
	case StringTy:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("abi: %s value must be a JSON string", t)
		}
		return String(s), nil
	case SliceTy, ArrayTy:
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil, fmt.Errorf("abi: %s value must be a JSON array", t)
		}
		out := make(Array, len(elems))
		for i, elem := range elems {
			v, err := ParseValue(*t.Elem, elem)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = v
		}
		return out, nil
	case TupleTy:
		return parseTupleValue(t, raw)
	default:
		return nil, fmt.Errorf("abi: unsupported type %s", t)
	}
}

// parseTupleValue accepts either a positional JSON array or an object keyed
// by the tuple's component names.
func parseTupleValue(t Type, raw json.RawMessage) (Value, error) {
	trimmed := strings.TrimLeft(string(raw), " \t\r\n")
	if strings.HasPrefix(trimmed, "{") {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("abi: %s value must be an object or array", t)
		}
		out := make(Tuple, len(t.TupleElems))
		for i, elem := range t.TupleElems {
			name := t.TupleNames[i]
			rawField, ok := fields[name]
			if !ok {
				return nil, fmt.Errorf("abi: missing tuple field %q", name)
			}
			v, err := ParseValue(*elem, rawField)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", name, err)
			}
			out[i] = v
		}
		if len(fields) != len(t.TupleElems) {
			return nil, fmt.Errorf("abi: %s value has %d fields, want %d", t, len(fields), len(t.TupleElems))
		}
		return out, nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, fmt.Errorf("abi: %s value must be an object or array", t)
	}
	if len(elems) != len(t.TupleElems) {
		return nil, fmt.Errorf("abi: %s value has %d fields, want %d", t, len(elems), len(t.TupleElems))
	}
	out := make(Tuple, len(elems))
	for i, elem := range elems {
		v, err := ParseValue(*t.TupleElems[i], elem)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseBigInt accepts a JSON number, a decimal string or a 0x-prefixed hex
// string. Exponents and decimal points are rejected: call data wants exact
// integers.
func parseBigInt(t Type, raw json.RawMessage) (*big.Int, error) {
	var text string
	trimmed := strings.TrimLeft(string(raw), " \t\r\n")
	if strings.HasPrefix(trimmed, "\"") {
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, fmt.Errorf("abi: invalid %s string: %v", t, err)
		}
	} else {
		var num json.Number
		if err := json.Unmarshal(raw, &num); err != nil {
			return nil, fmt.Errorf("abi: %s value must be a number or string", t)
		}
		text = num.String()
		if strings.ContainsAny(text, "eE.") {
			return nil, fmt.Errorf("abi: %s value must be an exact integer, got %s", t, text)
		}
	}
	x := new(big.Int)
	base := 10
	if common.Has0xPrefix(text) {
		// Base 0 understands the 0x prefix; plain decimals stay base 10 so a
		// leading zero is never read as octal.
		base = 0
	}
	if _, ok := x.SetString(text, base); !ok {
		return nil, fmt.Errorf("abi: invalid %s value %q", t, text)
	}
	return x, nil
}

// parseByteContent accepts a 0x-prefixed hex string, a JSON array of byte
// numbers, or a plain string taken as raw UTF-8 bytes.
func parseByteContent(t Type, raw json.RawMessage) ([]byte, error) {
	trimmed := strings.TrimLeft(string(raw), " \t\r\n")
	if strings.HasPrefix(trimmed, "[") {
		var b []byte
		// encoding/json refuses plain arrays for []byte, decode manually.
		var nums []uint16
		if err := json.Unmarshal(raw, &nums); err != nil {
			return nil, fmt.Errorf("abi: invalid %s byte array: %v", t, err)
		}
		for _, n := range nums {
			if n > 0xff {
				return nil, fmt.Errorf("abi: %s byte value %d out of range", t, n)
			}
			b = append(b, byte(n))
		}
		return b, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("abi: %s value must be a string or byte array", t)
	}
	if common.Has0xPrefix(s) {
		return common.HexDecode(s)
	}
	return []byte(s), nil
}
