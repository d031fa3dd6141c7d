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

// OverloadSet indexes the entries of one kind (functions, events or errors)
// by bare name and by canonical signature. Within a name group every
// signature must be unique; the set is immutable once its ContractABI is
// built.
type OverloadSet[E Entry] struct {
	names map[string][]E
	sigs  map[string]E
	order []E
}

func newOverloadSet[E Entry]() *OverloadSet[E] {
	return &OverloadSet[E]{
		names: make(map[string][]E),
		sigs:  make(map[string]E),
	}
}

// add indexes one entry, rejecting canonical signature collisions. Two
// entries may share a name (a legal overload) but never a signature.
func (s *OverloadSet[E]) add(name string, e E) error {
	sig := e.Signature()
	if _, ok := s.sigs[sig]; ok {
		return &DuplicateSignatureError{Sig: sig}
	}
	s.sigs[sig] = e
	s.names[name] = append(s.names[name], e)
	s.order = append(s.order, e)
	return nil
}

// ByName returns the single entry registered under the bare name. The lookup
// fails loudly when the name is overloaded: callers must then disambiguate
// through BySignature.
func (s *OverloadSet[E]) ByName(name string) (E, error) {
	var zero E
	group, ok := s.names[name]
	if !ok {
		return zero, &NotFoundError{Name: name}
	}
	if len(group) > 1 {
		return zero, &AmbiguousNameError{Name: name, Count: len(group)}
	}
	return group[0], nil
}

// BySignature returns the entry with the exact canonical signature, e.g.
// "transfer(address,uint256)".
func (s *OverloadSet[E]) BySignature(sig string) (E, error) {
	var zero E
	e, ok := s.sigs[sig]
	if !ok {
		return zero, &NotFoundError{Name: sig}
	}
	return e, nil
}

// Overloads returns all entries sharing the bare name, in declaration order.
// The result is empty for unknown names.
func (s *OverloadSet[E]) Overloads(name string) []E {
	group := s.names[name]
	out := make([]E, len(group))
	copy(out, group)
	return out
}

// All returns every entry in declaration order.
func (s *OverloadSet[E]) All() []E {
	out := make([]E, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of entries in the set.
func (s *OverloadSet[E]) Len() int {
	return len(s.order)
}
