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

import "testing"

func TestParseSignature(t *testing.T) {
	tests := []struct {
		sig   string
		name  string
		types []string
	}{
		{"transfer(address,uint256)", "transfer", []string{"address", "uint256"}},
		{"totalSupply()", "totalSupply", nil},
		{"f(uint256[2][],bytes32)", "f", []string{"uint256[2][]", "bytes32"}},
		{"g((uint256,bytes)[2],string)", "g", []string{"(uint256,bytes)[2]", "string"}},
		{"_setup$1(bool)", "_setup$1", []string{"bool"}},
	}
	for _, tt := range tests {
		name, args, err := ParseSignature(tt.sig)
		if err != nil {
			t.Errorf("ParseSignature(%q): unexpected error: %v", tt.sig, err)
			continue
		}
		if name != tt.name {
			t.Errorf("ParseSignature(%q): name %q, want %q", tt.sig, name, tt.name)
		}
		if len(args) != len(tt.types) {
			t.Errorf("ParseSignature(%q): %d args, want %d", tt.sig, len(args), len(tt.types))
			continue
		}
		for i, want := range tt.types {
			if got := args[i].Type.String(); got != want {
				t.Errorf("ParseSignature(%q): arg %d type %q, want %q", tt.sig, i, got, want)
			}
		}
	}
}

// A signature must reproduce itself exactly after a parse/render round trip:
// it is hash input and any drift would change the selector.
func TestParseSignatureRoundTrip(t *testing.T) {
	sigs := []string{
		"transfer(address,uint256)",
		"batch((address,uint256)[],bytes)",
		"noArgs()",
	}
	for _, sig := range sigs {
		name, args, err := ParseSignature(sig)
		if err != nil {
			t.Fatalf("ParseSignature(%q): %v", sig, err)
		}
		rebuilt := name + "(" + args.sig() + ")"
		if rebuilt != sig {
			t.Errorf("round trip drifted: %q -> %q", sig, rebuilt)
		}
	}
}

func TestParseSignatureMalformed(t *testing.T) {
	sigs := []string{
		"",
		"noparens",
		"(uint256)",          // missing name
		"9bad(uint256)",      // identifier starts with a digit
		"f(uint256",          // unterminated
		"f(uint256))",        // trailing characters
		"f(uint256)x",        // trailing characters
		"bad name(uint256)",  // space in identifier
		"f(fish)",            // unknown type
	}
	for _, sig := range sigs {
		if _, _, err := ParseSignature(sig); err == nil {
			t.Errorf("ParseSignature(%q): expected error", sig)
		}
	}
}
