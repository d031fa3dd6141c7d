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

	"github.com/ethergo/abikit/common"
)

// Event is a declared contract event. The signature spans all inputs, indexed
// or not; the indexed flags only matter when laying out log data, which is
// outside the signature computation.
type Event struct {
	Name string

	// Anonymous events carry no topic0 in their logs. The flag is preserved
	// from the ABI but does not change the signature.
	Anonymous bool
	Inputs    Arguments
	str       string

	// Sig contains the string signature according to the ABI spec.
	// e.g. event foo(uint32 a, int b) = "foo(uint32,int256)"
	Sig string

	// ID is the full 32 byte Keccak256 hash of Sig, the topic0 value used to
	// filter logs.
	ID common.Hash
}

// NewEvent creates a new Event. The signature and topic are computed once and
// immutable afterwards.
func NewEvent(name string, anonymous bool, inputs Arguments) (Event, error) {
	sig := fmt.Sprintf("%v(%v)", name, inputs.sig())
	id, err := Topic0Of(sig)
	if err != nil {
		return Event{}, err
	}

	names := make([]string, len(inputs))
	for i, input := range inputs {
		if input.Indexed {
			names[i] = fmt.Sprintf("%v indexed %v", input.Type, input.Name)
		} else {
			names[i] = fmt.Sprintf("%v %v", input.Type, input.Name)
		}
	}
	str := fmt.Sprintf("event %v(%v)", name, strings.Join(names, ", "))

	return Event{
		Name:      name,
		Anonymous: anonymous,
		Inputs:    inputs,
		str:       str,
		Sig:       sig,
		ID:        id,
	}, nil
}

// Signature returns the canonical signature of the event.
func (e Event) Signature() string { return e.Sig }

// String returns a human readable rendition of the event.
func (e Event) String() string { return e.str }
