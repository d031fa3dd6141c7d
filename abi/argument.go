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
	"strings"
)

// Argument holds the name of the argument and the corresponding type.
// Types are used when packing and testing arguments.
type Argument struct {
	Name    string
	Type    Type
	Indexed bool // indexed is only used by events
}

// Arguments is an ordered list of arguments. Order is significant: it is
// preserved from the source ABI and determines both the signature and the
// encoding layout.
type Arguments []Argument

// ArgumentMarshaling mirrors the JSON shape of one input/output declaration.
type ArgumentMarshaling struct {
	Name         string               `json:"name"`
	Type         string               `json:"type"`
	InternalType string               `json:"internalType,omitempty"`
	Components   []ArgumentMarshaling `json:"components,omitempty"`
	Indexed      bool                 `json:"indexed,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (argument *Argument) UnmarshalJSON(data []byte) error {
	var arg ArgumentMarshaling
	if err := json.Unmarshal(data, &arg); err != nil {
		return fmt.Errorf("argument json err: %v", err)
	}
	parsed, err := newArgument(arg)
	if err != nil {
		return err
	}
	*argument = parsed
	return nil
}

// newArgument canonicalizes one declared parameter.
func newArgument(arg ArgumentMarshaling) (Argument, error) {
	typ, err := NewType(arg.Type, arg.Components)
	if err != nil {
		return Argument{}, err
	}
	return Argument{Name: arg.Name, Type: typ, Indexed: arg.Indexed}, nil
}

// newArguments canonicalizes a declared parameter list, preserving order.
func newArguments(args []ArgumentMarshaling) (Arguments, error) {
	out := make(Arguments, len(args))
	for i, arg := range args {
		parsed, err := newArgument(arg)
		if err != nil {
			return nil, err
		}
		out[i] = parsed
	}
	return out, nil
}

// NonIndexed returns the arguments with indexed arguments filtered out.
func (arguments Arguments) NonIndexed() Arguments {
	var ret []Argument
	for _, arg := range arguments {
		if !arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// Types returns the argument types in declaration order.
func (arguments Arguments) Types() []Type {
	types := make([]Type, len(arguments))
	for i, arg := range arguments {
		types[i] = arg.Type
	}
	return types
}

// sig returns the comma-joined canonical type list, the part of a signature
// between the parentheses.
func (arguments Arguments) sig() string {
	types := make([]string, len(arguments))
	for i, arg := range arguments {
		types[i] = arg.Type.String()
	}
	return strings.Join(types, ",")
}
