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
	"regexp"
	"strconv"
	"strings"
)

// Kind enumerates the type grammar.
type Kind byte

const (
	UintTy Kind = iota
	IntTy
	BoolTy
	AddressTy
	FixedBytesTy
	BytesTy
	StringTy
	FunctionTy
	ArrayTy // fixed length, T[N]
	SliceTy // dynamic length, T[]
	TupleTy
)

// Type is the parsed form of a single ABI type declaration. The zero value is
// not a valid type; construct through NewType.
type Type struct {
	Kind Kind
	Size int   // bit width for uintN/intN, byte count for bytesN, element count for ArrayTy
	Elem *Type // element type for ArrayTy and SliceTy

	// Tuple relative fields.
	TupleElems []*Type
	TupleNames []string // raw component names, may be empty

	str string // canonical representation, computed once at construction
}

// elementaryRegex splits an elementary declaration into its base name and an
// optional decimal size suffix, e.g. "uint256" -> ("uint", "256").
var elementaryRegex = regexp.MustCompile(`^([a-z]+)([0-9]*)$`)

// NewType parses a type declaration as it appears in ABI JSON into a Type.
// components must be supplied for tuple declarations and describes the tuple
// fields in order.
//
// Besides the JSON declaration forms ("uint256", "tuple[2]", ...) the
// parenthesized canonical form ("(uint256,address)[2]") is accepted back as
// input, so feeding a canonical string through NewType reproduces the type.
func NewType(t string, components []ArgumentMarshaling) (Type, error) {
	if strings.Count(t, "[") != strings.Count(t, "]") {
		return Type{}, &MalformedTypeError{Decl: t, Reason: "unbalanced array brackets"}
	}
	if strings.HasPrefix(t, "(") {
		return parseTypeString(t)
	}
	// Array suffixes are peeled from the right: the last bracket group is the
	// outermost wrapper around the remainder of the declaration.
	if i := strings.LastIndex(t, "["); i != -1 {
		if !strings.HasSuffix(t, "]") {
			return Type{}, &MalformedTypeError{Decl: t, Reason: "array suffix must terminate the declaration"}
		}
		elem, err := NewType(t[:i], components)
		if err != nil {
			return Type{}, err
		}
		return wrapArray(elem, t[i+1:len(t)-1], t)
	}
	if t == "tuple" {
		if len(components) == 0 {
			return Type{}, &MalformedTypeError{Decl: t, Reason: "tuple declared without components"}
		}
		elems := make([]*Type, len(components))
		names := make([]string, len(components))
		strs := make([]string, len(components))
		for i, c := range components {
			ct, err := NewType(c.Type, c.Components)
			if err != nil {
				return Type{}, err
			}
			elems[i] = &ct
			names[i] = c.Name
			strs[i] = ct.str
		}
		return Type{
			Kind:       TupleTy,
			TupleElems: elems,
			TupleNames: names,
			str:        "(" + strings.Join(strs, ",") + ")",
		}, nil
	}
	return newElementaryType(t)
}

// wrapArray wraps elem in an array type described by the bracket content
// inner, which is either empty (dynamic) or a decimal length.
func wrapArray(elem Type, inner, decl string) (Type, error) {
	if inner == "" {
		return Type{Kind: SliceTy, Elem: &elem, str: elem.str + "[]"}, nil
	}
	for i := 0; i < len(inner); i++ {
		if inner[i] < '0' || inner[i] > '9' {
			return Type{}, &MalformedTypeError{Decl: decl, Reason: "array length is not a non-negative integer"}
		}
	}
	n, err := strconv.Atoi(inner)
	if err != nil {
		return Type{}, &MalformedTypeError{Decl: decl, Reason: "array length out of range"}
	}
	return Type{
		Kind: ArrayTy,
		Size: n,
		Elem: &elem,
		str:  fmt.Sprintf("%s[%d]", elem.str, n),
	}, nil
}

// newElementaryType parses a bracket-free, non-tuple declaration.
func newElementaryType(t string) (Type, error) {
	matches := elementaryRegex.FindStringSubmatch(t)
	if matches == nil {
		return Type{}, &MalformedTypeError{Decl: t, Reason: "unknown elementary type"}
	}
	base, sizeStr := matches[1], matches[2]
	switch base {
	case "uint", "int":
		// Bare uint/int normalize to the ABI default width.
		size := 256
		if sizeStr != "" {
			size, _ = strconv.Atoi(sizeStr)
			if size%8 != 0 || size == 0 || size > 256 {
				return Type{}, &MalformedTypeError{Decl: t, Reason: "bit width must be a multiple of 8 between 8 and 256"}
			}
		}
		kind := UintTy
		if base == "int" {
			kind = IntTy
		}
		return Type{Kind: kind, Size: size, str: base + strconv.Itoa(size)}, nil
	case "bool", "string", "address", "function":
		if sizeStr != "" {
			return Type{}, &MalformedTypeError{Decl: t, Reason: base + " takes no size suffix"}
		}
		switch base {
		case "bool":
			return Type{Kind: BoolTy, str: "bool"}, nil
		case "string":
			return Type{Kind: StringTy, str: "string"}, nil
		case "address":
			return Type{Kind: AddressTy, Size: 20, str: "address"}, nil
		default:
			// An external function reference packs as 20 address bytes plus a
			// 4 byte selector.
			return Type{Kind: FunctionTy, Size: 24, str: "function"}, nil
		}
	case "bytes":
		if sizeStr == "" {
			return Type{Kind: BytesTy, str: "bytes"}, nil
		}
		size, _ := strconv.Atoi(sizeStr)
		if size == 0 || size > 32 {
			return Type{}, &MalformedTypeError{Decl: t, Reason: "fixed bytes size must be between 1 and 32"}
		}
		return Type{Kind: FixedBytesTy, Size: size, str: "bytes" + strconv.Itoa(size)}, nil
	default:
		return Type{}, &MalformedTypeError{Decl: t, Reason: "unknown elementary type"}
	}
}

// String returns the canonical representation of the type, the exact text that
// participates in signature hashing.
func (t Type) String() string {
	return t.str
}

// IsDynamic reports whether the type is dynamic per the ABI spec:
// bytes, string, T[] for any T, T[k] for dynamic T, and tuples with at least
// one dynamic member.
func (t Type) IsDynamic() bool {
	switch t.Kind {
	case BytesTy, StringTy, SliceTy:
		return true
	case ArrayTy:
		return t.Elem.IsDynamic()
	case TupleTy:
		for _, elem := range t.TupleElems {
			if elem.IsDynamic() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// headSize returns the number of bytes the type occupies in the head section
// of an encoding. Dynamic types occupy one 32 byte offset slot; static arrays
// and tuples occupy the sum of their parts.
func (t Type) headSize() int {
	if t.IsDynamic() {
		return 32
	}
	switch t.Kind {
	case ArrayTy:
		return t.Size * t.Elem.headSize()
	case TupleTy:
		total := 0
		for _, elem := range t.TupleElems {
			total += elem.headSize()
		}
		return total
	default:
		return 32
	}
}
