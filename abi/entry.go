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
)

// Entry is one parsed ABI entry: *Method, *Event or *Error.
type Entry interface {
	// Signature returns the canonical signature, empty for the structural
	// method kinds (constructor, fallback, receive).
	Signature() string
}

// entryMarshaling mirrors the JSON shape of one raw ABI entry. Fields that do
// not apply to a kind (anonymous on functions, outputs on events) are
// tolerated and ignored.
type entryMarshaling struct {
	Type            string               `json:"type"`
	Name            string               `json:"name"`
	Inputs          []ArgumentMarshaling `json:"inputs"`
	Outputs         []ArgumentMarshaling `json:"outputs"`
	StateMutability string               `json:"stateMutability"`
	Anonymous       bool                 `json:"anonymous"`
}

// ParseEntry parses a single raw ABI entry, dispatching on its "type" field.
// Parsing is pure: it builds an immutable value with its signature and
// selector/topic precomputed, or fails without side effects.
func ParseEntry(raw json.RawMessage) (Entry, error) {
	var field entryMarshaling
	if err := json.Unmarshal(raw, &field); err != nil {
		return nil, fmt.Errorf("abi: invalid entry: %v", err)
	}
	return parseEntryFields(field)
}

func parseEntryFields(field entryMarshaling) (Entry, error) {
	inputs, err := newArguments(field.Inputs)
	if err != nil {
		return nil, err
	}
	switch field.Type {
	case "function":
		outputs, err := newArguments(field.Outputs)
		if err != nil {
			return nil, err
		}
		m, err := NewMethod(field.Name, Function, field.StateMutability, inputs, outputs)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case "constructor":
		m, err := NewMethod("", Constructor, field.StateMutability, inputs, nil)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case "fallback":
		// Fallback takes raw call data, not declared parameters.
		m, err := NewMethod("", Fallback, field.StateMutability, nil, nil)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case "receive":
		m, err := NewMethod("", Receive, field.StateMutability, nil, nil)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case "event":
		e, err := NewEvent(field.Name, field.Anonymous, inputs)
		if err != nil {
			return nil, err
		}
		return &e, nil
	case "error":
		e, err := NewError(field.Name, inputs)
		if err != nil {
			return nil, err
		}
		return &e, nil
	default:
		return nil, &UnknownEntryKindError{Kind: field.Type}
	}
}
