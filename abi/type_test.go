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
	"errors"
	"testing"
)

func TestNewTypeCanonical(t *testing.T) {
	pair := []ArgumentMarshaling{
		{Name: "a", Type: "uint256"},
		{Name: "bs", Type: "address[]"},
	}
	nested := []ArgumentMarshaling{
		{Name: "inner", Type: "tuple", Components: pair},
		{Name: "data", Type: "bytes"},
	}
	staticPair := []ArgumentMarshaling{
		{Name: "x", Type: "uint128"},
		{Name: "y", Type: "bool"},
	}

	tests := []struct {
		decl       string
		components []ArgumentMarshaling
		want       string
		kind       Kind
		dynamic    bool
	}{
		{"uint256", nil, "uint256", UintTy, false},
		{"uint", nil, "uint256", UintTy, false},
		{"int", nil, "int256", IntTy, false},
		{"uint8", nil, "uint8", UintTy, false},
		{"int64", nil, "int64", IntTy, false},
		{"bool", nil, "bool", BoolTy, false},
		{"address", nil, "address", AddressTy, false},
		{"string", nil, "string", StringTy, true},
		{"bytes", nil, "bytes", BytesTy, true},
		{"bytes32", nil, "bytes32", FixedBytesTy, false},
		{"bytes1", nil, "bytes1", FixedBytesTy, false},
		{"function", nil, "function", FunctionTy, false},
		{"uint256[]", nil, "uint256[]", SliceTy, true},
		{"uint256[3]", nil, "uint256[3]", ArrayTy, false},
		{"uint256[2][]", nil, "uint256[2][]", SliceTy, true},
		{"uint256[][2]", nil, "uint256[][2]", ArrayTy, true},
		{"bytes[2]", nil, "bytes[2]", ArrayTy, true},
		{"tuple", pair, "(uint256,address[])", TupleTy, true},
		{"tuple[3]", pair, "(uint256,address[])[3]", ArrayTy, true},
		{"tuple[]", staticPair, "(uint128,bool)[]", SliceTy, true},
		{"tuple", staticPair, "(uint128,bool)", TupleTy, false},
		{"tuple", nested, "((uint256,address[]),bytes)", TupleTy, true},
	}
	for _, tt := range tests {
		typ, err := NewType(tt.decl, tt.components)
		if err != nil {
			t.Errorf("NewType(%q): unexpected error: %v", tt.decl, err)
			continue
		}
		if typ.String() != tt.want {
			t.Errorf("NewType(%q): canonical %q, want %q", tt.decl, typ.String(), tt.want)
		}
		if typ.Kind != tt.kind {
			t.Errorf("NewType(%q): kind %d, want %d", tt.decl, typ.Kind, tt.kind)
		}
		if typ.IsDynamic() != tt.dynamic {
			t.Errorf("NewType(%q): dynamic %v, want %v", tt.decl, typ.IsDynamic(), tt.dynamic)
		}
	}
}

// Canonicalizing the canonical string of a type must reproduce the type,
// including the parenthesized tuple form that never appears in ABI JSON.
func TestNewTypeIdempotent(t *testing.T) {
	components := []ArgumentMarshaling{
		{Name: "a", Type: "uint"},
		{Name: "b", Type: "tuple[2]", Components: []ArgumentMarshaling{
			{Name: "c", Type: "bytes"},
			{Name: "d", Type: "int8[]"},
		}},
	}
	decls := []struct {
		decl       string
		components []ArgumentMarshaling
	}{
		{"uint", nil},
		{"uint256[2][]", nil},
		{"bytes32[4]", nil},
		{"tuple", components},
		{"tuple[]", components},
	}
	for _, tt := range decls {
		first, err := NewType(tt.decl, tt.components)
		if err != nil {
			t.Fatalf("NewType(%q): %v", tt.decl, err)
		}
		second, err := NewType(first.String(), nil)
		if err != nil {
			t.Fatalf("NewType(%q): %v", first.String(), err)
		}
		if second.String() != first.String() {
			t.Errorf("canonical form drifted: %q -> %q", first.String(), second.String())
		}
		if second.IsDynamic() != first.IsDynamic() {
			t.Errorf("%q: dynamic flag drifted on reparse", first.String())
		}
		if second.Kind != first.Kind {
			t.Errorf("%q: kind drifted on reparse", first.String())
		}
	}
}

func TestNewTypeMalformed(t *testing.T) {
	tests := []struct {
		decl       string
		components []ArgumentMarshaling
	}{
		{"uint7", nil},
		{"uint0", nil},
		{"uint264", nil},
		{"bool8", nil},
		{"fish", nil},
		{"Uint256", nil},
		{"bytes0", nil},
		{"bytes33", nil},
		{"tuple", nil},             // no components
		{"tuple[]", nil},           // no components
		{"uint256[x]", nil},        // bad length
		{"uint256[-1]", nil},       // negative length
		{"uint256[", nil},          // unbalanced
		{"uint256]", nil},          // unbalanced
		{"uint256[2]x", nil},       // suffix not trailing
		{"(uint256", nil},          // unterminated tuple form
		{"()", nil},                // empty tuple form
		{"(uint256,fish)", nil},    // unknown member
		{"", nil},
	}
	for _, tt := range tests {
		_, err := NewType(tt.decl, tt.components)
		if err == nil {
			t.Errorf("NewType(%q): expected error", tt.decl)
			continue
		}
		var malformed *MalformedTypeError
		if !errors.As(err, &malformed) {
			t.Errorf("NewType(%q): error %T, want *MalformedTypeError", tt.decl, err)
		}
	}
}

func TestTupleComponentOrder(t *testing.T) {
	typ, err := NewType("tuple", []ArgumentMarshaling{
		{Name: "z", Type: "bool"},
		{Name: "a", Type: "uint256"},
	})
	if err != nil {
		t.Fatal(err)
	}
	// Declaration order wins over any lexical order.
	if got := typ.String(); got != "(bool,uint256)" {
		t.Fatalf("canonical %q, want (bool,uint256)", got)
	}
	if typ.TupleNames[0] != "z" || typ.TupleNames[1] != "a" {
		t.Fatalf("component names out of order: %v", typ.TupleNames)
	}
}
