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

import "fmt"

// MalformedTypeError is returned when a type declaration cannot be parsed into
// a valid ABI type.
type MalformedTypeError struct {
	Decl   string // the offending declaration, e.g. "uint7" or "tuple"
	Reason string
}

func (e *MalformedTypeError) Error() string {
	return fmt.Sprintf("abi: malformed type %q: %s", e.Decl, e.Reason)
}

// UnknownEntryKindError is returned when an ABI entry carries a missing or
// unrecognized "type" field.
type UnknownEntryKindError struct {
	Kind string
}

func (e *UnknownEntryKindError) Error() string {
	if e.Kind == "" {
		return "abi: entry without a type field"
	}
	return fmt.Sprintf("abi: unknown entry kind %q", e.Kind)
}

// DuplicateSignatureError is returned when two entries of the same kind collide
// on their canonical signature. A legal overload differs in parameter types, so
// a duplicate always indicates a malformed ABI.
type DuplicateSignatureError struct {
	Sig string
}

func (e *DuplicateSignatureError) Error() string {
	return fmt.Sprintf("abi: duplicate signature %q", e.Sig)
}

// AmbiguousNameError is returned when a bare-name lookup hits a name with more
// than one overload. Callers must disambiguate with a signature lookup.
type AmbiguousNameError struct {
	Name  string
	Count int
}

func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf("abi: name %q is overloaded %d times, look up by signature", e.Name, e.Count)
}

// ArityMismatchError is returned when the number of values handed to the
// encoder does not match the number of declared types.
type ArityMismatchError struct {
	Want int
	Got  int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("abi: argument count mismatch: %d for %d", e.Got, e.Want)
}

// TypeMismatchError is returned when a value is incompatible with the type
// declared at its position: wrong value shape, out-of-range integer, or
// wrong-sized fixed bytes.
type TypeMismatchError struct {
	Index  int    // position of the offending value
	Want   string // canonical type expected at that position
	Reason string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("abi: cannot encode argument %d as %s: %s", e.Index, e.Want, e.Reason)
}

// EmptySignatureError is returned when a selector or topic is requested for an
// empty signature. Constructors, fallback and receive carry no signature and
// must not be hashed.
type EmptySignatureError struct{}

func (e *EmptySignatureError) Error() string {
	return "abi: empty signature has no selector"
}

// NotFoundError is returned on a registry or namespace lookup miss.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("abi: %q not found", e.Name)
}
