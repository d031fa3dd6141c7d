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
	"sort"
)

// Registry maps contract names to their parsed ABIs. It is built once from
// compiled-contracts input and read-only afterwards, so it may be shared
// between goroutines without synchronization.
type Registry struct {
	contracts map[string]*ContractABI
}

// LoadRegistry builds a registry from raw ABI arrays keyed by contract name.
// Loading fails fast: the first malformed contract aborts the whole load and
// no partial registry is returned. Contracts are processed in name order so
// the reported error is deterministic.
func LoadRegistry(contracts map[string]json.RawMessage) (*Registry, error) {
	names := make([]string, 0, len(contracts))
	for name := range contracts {
		names = append(names, name)
	}
	sort.Strings(names)

	reg := &Registry{contracts: make(map[string]*ContractABI, len(contracts))}
	for _, name := range names {
		contract, err := ParseContractABI(name, contracts[name])
		if err != nil {
			return nil, fmt.Errorf("contract %s: %w", name, err)
		}
		reg.contracts[name] = contract
	}
	return reg, nil
}

// Get returns the ABI of the named contract.
func (r *Registry) Get(name string) (*ContractABI, error) {
	contract, ok := r.contracts[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return contract, nil
}

// Names returns the registered contract names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.contracts))
	for name := range r.contracts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered contracts.
func (r *Registry) Len() int {
	return len(r.contracts)
}
