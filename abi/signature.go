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
	"strings"
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentifierSymbol(c byte) bool {
	return c == '$' || c == '_'
}

// parseTypeString parses a canonical type string: an elementary type, a
// parenthesized tuple, either optionally wrapped in array suffixes.
func parseTypeString(s string) (Type, error) {
	typ, rest, err := parseTypeExpr(s, s)
	if err != nil {
		return Type{}, err
	}
	if rest != "" {
		return Type{}, &MalformedTypeError{Decl: s, Reason: "trailing characters after type"}
	}
	return typ, nil
}

// parseTypeExpr consumes one type expression from the front of s and returns
// the remainder. decl is the full declaration, carried for error reporting.
func parseTypeExpr(s, decl string) (Type, string, error) {
	if s == "" {
		return Type{}, "", &MalformedTypeError{Decl: decl, Reason: "empty type"}
	}
	var (
		base Type
		rest string
		err  error
	)
	if s[0] == '(' {
		rest = s[1:]
		if len(rest) > 0 && rest[0] == ')' {
			return Type{}, "", &MalformedTypeError{Decl: decl, Reason: "tuple declared without components"}
		}
		var (
			elems []*Type
			strs  []string
		)
		for {
			var elem Type
			elem, rest, err = parseTypeExpr(rest, decl)
			if err != nil {
				return Type{}, "", err
			}
			parsed := elem
			elems = append(elems, &parsed)
			strs = append(strs, parsed.str)
			if rest == "" {
				return Type{}, "", &MalformedTypeError{Decl: decl, Reason: "unterminated tuple"}
			}
			if rest[0] == ',' {
				rest = rest[1:]
				continue
			}
			if rest[0] == ')' {
				rest = rest[1:]
				break
			}
			return Type{}, "", &MalformedTypeError{Decl: decl, Reason: "expected ',' or ')' in tuple"}
		}
		base = Type{
			Kind:       TupleTy,
			TupleElems: elems,
			TupleNames: make([]string, len(elems)),
			str:        "(" + strings.Join(strs, ",") + ")",
		}
	} else {
		i := 0
		for i < len(s) && (s[i] >= 'a' && s[i] <= 'z' || isDigit(s[i])) {
			i++
		}
		if i == 0 {
			return Type{}, "", &MalformedTypeError{Decl: decl, Reason: "unexpected character in type"}
		}
		base, err = newElementaryType(s[:i])
		if err != nil {
			return Type{}, "", err
		}
		rest = s[i:]
	}
	for len(rest) > 0 && rest[0] == '[' {
		j := strings.IndexByte(rest, ']')
		if j < 0 {
			return Type{}, "", &MalformedTypeError{Decl: decl, Reason: "unterminated array suffix"}
		}
		base, err = wrapArray(base, rest[1:j], decl)
		if err != nil {
			return Type{}, "", err
		}
		rest = rest[j+1:]
	}
	return base, rest, nil
}

// ParseSignature parses a canonical signature such as
// "transfer(address,uint256)" into its bare name and argument list.
// Argument names are not part of the canonical form and come back empty.
func ParseSignature(sig string) (string, Arguments, error) {
	paren := strings.IndexByte(sig, '(')
	if paren <= 0 {
		return "", nil, &MalformedTypeError{Decl: sig, Reason: "signature must be name(type,...)"}
	}
	name := sig[:paren]
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isAlpha(c) || isIdentifierSymbol(c) || (i > 0 && isDigit(c)) {
			continue
		}
		return "", nil, &MalformedTypeError{Decl: sig, Reason: "invalid identifier"}
	}
	rest := sig[paren:]
	if rest == "()" {
		return name, Arguments{}, nil
	}
	typ, err := parseTypeString(rest)
	if err != nil {
		return "", nil, err
	}
	if typ.Kind != TupleTy {
		return "", nil, &MalformedTypeError{Decl: sig, Reason: "argument list must be parenthesized"}
	}
	args := make(Arguments, len(typ.TupleElems))
	for i, elem := range typ.TupleElems {
		args[i] = Argument{Type: *elem}
	}
	return name, args, nil
}
