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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEntryFunction(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "function",
		"name": "transfer",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "to", "type": "address"},
			{"name": "value", "type": "uint256"}
		],
		"outputs": [{"name": "", "type": "bool"}]
	}`)
	entry, err := ParseEntry(raw)
	require.NoError(t, err)

	method, ok := entry.(*Method)
	require.True(t, ok, "expected *Method, got %T", entry)
	require.Equal(t, Function, method.Type)
	require.Equal(t, "transfer(address,uint256)", method.Sig)
	require.Equal(t, "0xa9059cbb", method.ID.Hex())
	require.Len(t, method.Inputs, 2)
	require.Equal(t, "to", method.Inputs[0].Name)
	require.Equal(t, "value", method.Inputs[1].Name)
	require.False(t, method.IsConstant())
	require.False(t, method.IsPayable())
	require.NotContains(t, method.Sig, " ")
}

func TestParseEntryTupleFunction(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "function",
		"name": "setPair",
		"inputs": [{
			"name": "p",
			"type": "tuple",
			"components": [
				{"name": "a", "type": "uint256"},
				{"name": "b", "type": "address"}
			]
		}]
	}`)
	entry, err := ParseEntry(raw)
	require.NoError(t, err)
	require.Equal(t, "setPair((uint256,address))", entry.Signature())
}

func TestParseEntryEvent(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "event",
		"name": "Transfer",
		"anonymous": false,
		"inputs": [
			{"name": "from", "type": "address", "indexed": true},
			{"name": "to", "type": "address", "indexed": true},
			{"name": "value", "type": "uint256", "indexed": false}
		]
	}`)
	entry, err := ParseEntry(raw)
	require.NoError(t, err)

	event, ok := entry.(*Event)
	require.True(t, ok, "expected *Event, got %T", entry)
	require.Equal(t, "Transfer(address,address,uint256)", event.Sig)
	require.Equal(t, "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef", event.ID.Hex())
	require.False(t, event.Anonymous)

	indexed := []bool{true, true, false}
	for i, input := range event.Inputs {
		require.Equal(t, indexed[i], input.Indexed, "input %d indexed flag", i)
	}
	require.Len(t, event.Inputs.NonIndexed(), 1)
}

// Anonymous events must parse without complaint; the flag is carried but the
// signature is unaffected.
func TestParseEntryAnonymousEvent(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "event",
		"name": "Ping",
		"anonymous": true,
		"inputs": []
	}`)
	entry, err := ParseEntry(raw)
	require.NoError(t, err)
	event := entry.(*Event)
	require.True(t, event.Anonymous)
	require.Equal(t, "Ping()", event.Sig)
}

func TestParseEntryError(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "error",
		"name": "Panic",
		"inputs": [{"name": "code", "type": "uint256"}]
	}`)
	entry, err := ParseEntry(raw)
	require.NoError(t, err)

	abiErr, ok := entry.(*Error)
	require.True(t, ok, "expected *Error, got %T", entry)
	require.Equal(t, "Panic(uint256)", abiErr.Sig)
	require.Equal(t, "0x4e487b71", abiErr.ID.Hex())
}

func TestParseEntryStructural(t *testing.T) {
	for _, kind := range []string{"constructor", "fallback", "receive"} {
		raw := json.RawMessage(`{"type": "` + kind + `", "stateMutability": "payable"}`)
		entry, err := ParseEntry(raw)
		require.NoError(t, err, kind)
		method := entry.(*Method)
		require.Empty(t, method.Sig, "%s must not carry a signature", kind)
		require.Equal(t, Selector{}, method.ID, "%s must not carry a selector", kind)
	}
}

func TestParseEntryUnknownKind(t *testing.T) {
	var unknown *UnknownEntryKindError
	_, err := ParseEntry(json.RawMessage(`{"type": "banana", "name": "x"}`))
	require.True(t, errors.As(err, &unknown), "error %v", err)
	require.Equal(t, "banana", unknown.Kind)

	_, err = ParseEntry(json.RawMessage(`{"name": "x"}`))
	require.True(t, errors.As(err, &unknown), "error %v", err)
	require.Empty(t, unknown.Kind)
}

func TestParseEntryMalformedInput(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "function",
		"name": "f",
		"inputs": [{"name": "x", "type": "uint7"}]
	}`)
	var malformed *MalformedTypeError
	_, err := ParseEntry(raw)
	require.True(t, errors.As(err, &malformed), "error %v", err)
}

// Signatures mirror declaration order exactly, with no whitespace anywhere.
func TestSignatureShape(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "function",
		"name": "multi",
		"inputs": [
			{"name": "z", "type": "bytes32"},
			{"name": "a", "type": "uint256[]"},
			{"name": "m", "type": "bool"}
		]
	}`)
	entry, err := ParseEntry(raw)
	require.NoError(t, err)
	sig := entry.Signature()
	require.Equal(t, "multi(bytes32,uint256[],bool)", sig)
	require.False(t, strings.ContainsAny(sig, " \t\n"))
}
