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

func TestSelectorOf(t *testing.T) {
	tests := []struct {
		sig  string
		want string
	}{
		// Well-known selectors from the ERC20 surface and the Solidity docs.
		{"transfer(address,uint256)", "0xa9059cbb"},
		{"approve(address,uint256)", "0x095ea7b3"},
		{"balanceOf(address)", "0x70a08231"},
		{"totalSupply()", "0x18160ddd"},
		{"baz(uint32,bool)", "0xcdcd77c0"},
		{"Error(string)", "0x08c379a0"},
		{"Panic(uint256)", "0x4e487b71"},
	}
	for _, tt := range tests {
		sel, err := SelectorOf(tt.sig)
		if err != nil {
			t.Errorf("SelectorOf(%q): unexpected error: %v", tt.sig, err)
			continue
		}
		if sel.Hex() != tt.want {
			t.Errorf("SelectorOf(%q) == %s, want %s", tt.sig, sel.Hex(), tt.want)
		}
	}
}

func TestTopic0Of(t *testing.T) {
	tests := []struct {
		sig  string
		want string
	}{
		{"Transfer(address,address,uint256)", "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"},
		{"Approval(address,address,uint256)", "0x8c5be1e5ebec7d5bd14f71427d1e84f3dd0314c0f7b2291e5b200ac8c7c3b925"},
	}
	for _, tt := range tests {
		topic, err := Topic0Of(tt.sig)
		if err != nil {
			t.Errorf("Topic0Of(%q): unexpected error: %v", tt.sig, err)
			continue
		}
		if topic.Hex() != tt.want {
			t.Errorf("Topic0Of(%q) == %s, want %s", tt.sig, topic.Hex(), tt.want)
		}
	}
}

func TestEmptySignature(t *testing.T) {
	var empty *EmptySignatureError
	if _, err := SelectorOf(""); !errors.As(err, &empty) {
		t.Errorf("SelectorOf(\"\"): error %v, want *EmptySignatureError", err)
	}
	if _, err := Topic0Of(""); !errors.As(err, &empty) {
		t.Errorf("Topic0Of(\"\"): error %v, want *EmptySignatureError", err)
	}
}

// A selector is the leading bytes of the topic hash of the same signature.
func TestSelectorTopicAgreement(t *testing.T) {
	sig := "transfer(address,uint256)"
	sel, err := SelectorOf(sig)
	if err != nil {
		t.Fatal(err)
	}
	topic, err := Topic0Of(sig)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < SelectorLength; i++ {
		if sel[i] != topic[i] {
			t.Fatalf("selector diverges from topic prefix at byte %d", i)
		}
	}
}
