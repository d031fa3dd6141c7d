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
	"fmt"
)

// ContractABI holds the parsed callable surface of one contract: the
// name-and-signature indexed namespaces for functions, events and errors,
// plus at most one each of constructor, fallback and receive. It is
// immutable after construction.
type ContractABI struct {
	Name string

	Constructor *Method
	Fallback    *Method
	Receive     *Method

	Functions *OverloadSet[*Method]
	Events    *OverloadSet[*Event]
	Errors    *OverloadSet[*Error]
}

// ParseContractABI parses a raw ABI JSON array into a ContractABI. The first
// malformed entry or duplicate signature aborts the whole parse: no partial
// value is returned alongside an error.
func ParseContractABI(name string, data []byte) (*ContractABI, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("abi: invalid ABI array: %v", err)
	}
	contract := &ContractABI{
		Name:      name,
		Functions: newOverloadSet[*Method](),
		Events:    newOverloadSet[*Event](),
		Errors:    newOverloadSet[*Error](),
	}
	for _, raw := range raws {
		entry, err := ParseEntry(raw)
		if err != nil {
			return nil, err
		}
		if err := contract.register(entry); err != nil {
			return nil, err
		}
	}
	return contract, nil
}

func (c *ContractABI) register(entry Entry) error {
	switch e := entry.(type) {
	case *Method:
		switch e.Type {
		case Function:
			return c.Functions.add(e.Name, e)
		case Constructor:
			if c.Constructor != nil {
				return errors.New("abi: only a single constructor is allowed")
			}
			c.Constructor = e
		case Fallback:
			if c.Fallback != nil {
				return errors.New("abi: only a single fallback is allowed")
			}
			c.Fallback = e
		case Receive:
			if c.Receive != nil {
				return errors.New("abi: only a single receive is allowed")
			}
			c.Receive = e
		}
		return nil
	case *Event:
		return c.Events.add(e.Name, e)
	case *Error:
		return c.Errors.add(e.Name, e)
	default:
		return fmt.Errorf("abi: unhandled entry %T", entry)
	}
}

// Function returns the single function registered under the bare name,
// failing with AmbiguousNameError when the name is overloaded.
func (c *ContractABI) Function(name string) (*Method, error) {
	return c.Functions.ByName(name)
}

// FunctionBySig returns the function with the exact canonical signature.
func (c *ContractABI) FunctionBySig(sig string) (*Method, error) {
	return c.Functions.BySignature(sig)
}

// Event returns the single event registered under the bare name.
func (c *ContractABI) Event(name string) (*Event, error) {
	return c.Events.ByName(name)
}

// ErrorByName returns the single error registered under the bare name.
func (c *ContractABI) ErrorByName(name string) (*Error, error) {
	return c.Errors.ByName(name)
}
