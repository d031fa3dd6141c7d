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

// FunType represents the function kind of a Method.
type FunType int

const (
	Constructor FunType = iota
	Fallback
	Receive
	Function
)

// Method represents one callable entry of a contract: a regular function or
// one of the structural kinds (constructor, fallback, receive). Only regular
// functions carry a signature and selector; the structural kinds are addressed
// by their position in the ContractABI.
type Method struct {
	Name string
	Type FunType

	// StateMutability indicates the mutability state of method,
	// the default value is nonpayable. It can be empty if the abi
	// is generated by legacy compiler.
	StateMutability string

	Inputs  Arguments
	Outputs Arguments
	str     string

	// Sig returns the methods string signature according to the ABI spec.
	// e.g. function foo(uint32 a, int b) = "foo(uint32,int256)"
	// Please note that "int" is substitute for its canonical representation "int256".
	// Constructor, fallback and receive carry no signature.
	Sig string

	// ID is the first 4 bytes of the Keccak256 hash of Sig. It is zero for
	// the signature-less kinds.
	ID Selector
}

// NewMethod creates a new Method.
// A method should always be created using NewMethod: it computes the
// signature and selector once and they are immutable afterwards.
func NewMethod(name string, funType FunType, mutability string, inputs, outputs Arguments) (Method, error) {
	var (
		sig string
		id  Selector
	)
	if funType == Function {
		sig = fmt.Sprintf("%v(%v)", name, inputs.sig())
		var err error
		if id, err = SelectorOf(sig); err != nil {
			return Method{}, err
		}
	}

	inputNames := make([]string, len(inputs))
	outputNames := make([]string, len(outputs))
	for i, input := range inputs {
		inputNames[i] = fmt.Sprintf("%v %v", input.Type, input.Name)
	}
	for i, output := range outputs {
		outputNames[i] = output.Type.String()
		if output.Name != "" {
			outputNames[i] += " " + output.Name
		}
	}
	// Extract meaningful state mutability of solidity method.
	// If it's empty string or default value "nonpayable", never print it.
	state := mutability
	if state == "nonpayable" {
		state = ""
	}
	if state != "" {
		state = state + " "
	}
	identity := fmt.Sprintf("function %v", name)
	switch funType {
	case Fallback:
		identity = "fallback"
	case Receive:
		identity = "receive"
	case Constructor:
		identity = "constructor"
	}
	str := fmt.Sprintf("%v(%v) %sreturns(%v)", identity, strings.Join(inputNames, ", "), state, strings.Join(outputNames, ", "))

	return Method{
		Name:            name,
		Type:            funType,
		StateMutability: mutability,
		Inputs:          inputs,
		Outputs:         outputs,
		str:             str,
		Sig:             sig,
		ID:              id,
	}, nil
}

// Signature returns the canonical signature of the method, empty for
// constructor, fallback and receive.
func (method Method) Signature() string { return method.Sig }

// String returns a human readable rendition of the method.
func (method Method) String() string { return method.str }

// IsConstant returns the indicator whether the method is read-only.
func (method Method) IsConstant() bool {
	return method.StateMutability == "view" || method.StateMutability == "pure"
}

// IsPayable returns the indicator whether the method can process
// plain ether transfers.
func (method Method) IsPayable() bool {
	return method.StateMutability == "payable"
}

// EncodeCall packs the given argument values and prepends the 4 byte
// selector, producing ready-to-send call data. For a constructor the bare
// argument encoding is returned, as constructor data carries no selector.
func (method Method) EncodeCall(values ...Value) ([]byte, error) {
	args, err := method.Inputs.Pack(values...)
	if err != nil {
		return nil, err
	}
	if method.Type != Function {
		return args, nil
	}
	return append(method.ID.Bytes(), args...), nil
}
