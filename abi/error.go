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
	"strings"
)

// Error is a declared custom error of a contract. Revert data for it consists
// of the 4 byte selector followed by the ABI encoding of its inputs.
type Error struct {
	Name   string
	Inputs Arguments
	str    string

	// Sig contains the string signature according to the ABI spec.
	// e.g. error foo(uint32 a, int b) = "foo(uint32,int256)"
	Sig string

	// ID is the first 4 bytes of the Keccak256 hash of Sig, the dispatch
	// selector found at the start of revert data.
	ID Selector
}

// NewError creates a new Error. The signature and selector are computed once
// and immutable afterwards.
func NewError(name string, inputs Arguments) (Error, error) {
	sig := fmt.Sprintf("%v(%v)", name, inputs.sig())
	id, err := SelectorOf(sig)
	if err != nil {
		return Error{}, err
	}

	names := make([]string, len(inputs))
	for i, input := range inputs {
		names[i] = fmt.Sprintf("%v %v", input.Type, input.Name)
	}
	str := fmt.Sprintf("error %v(%v)", name, strings.Join(names, ", "))

	return Error{
		Name:   name,
		Inputs: inputs,
		str:    str,
		Sig:    sig,
		ID:     id,
	}, nil
}

// Signature returns the canonical signature of the error.
func (e Error) Signature() string { return e.Sig }

// String returns a human readable rendition of the error.
func (e Error) String() string { return e.str }

// EncodeCall packs the given argument values and prepends the 4 byte
// selector, producing the revert data the error would surface as.
func (e Error) EncodeCall(values ...Value) ([]byte, error) {
	args, err := e.Inputs.Pack(values...)
	if err != nil {
		return nil, err
	}
	return append(e.ID.Bytes(), args...), nil
}
