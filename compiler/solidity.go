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

// Package compiler understands the output shape of solc --combined-json.
// It does not run the compiler; it only turns already-produced artifacts
// into registry input.
package compiler

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethergo/abikit/abi"
)

// CombinedJSON mirrors the top level of solc --combined-json output.
type CombinedJSON struct {
	Contracts map[string]CombinedContract `json:"contracts"`
	Version   string                      `json:"version"`
}

// CombinedContract is one contract artifact inside combined JSON. Fields
// beyond the ABI are preserved for callers that want them but are not
// interpreted here.
type CombinedContract struct {
	ABI      json.RawMessage `json:"abi"`
	Bin      string          `json:"bin"`
	Metadata string          `json:"metadata,omitempty"`
}

// ParseCombinedJSON extracts raw ABI arrays keyed by bare contract name from
// combined JSON. Keys arrive as "path/file.sol:Name"; the source prefix is
// stripped. Contracts without an ABI are skipped, matching solc output for
// interfaces compiled without the abi artifact.
func ParseCombinedJSON(data []byte) (map[string]json.RawMessage, error) {
	var combined CombinedJSON
	if err := json.Unmarshal(data, &combined); err != nil {
		return nil, fmt.Errorf("compiler: invalid combined JSON: %v", err)
	}
	out := make(map[string]json.RawMessage, len(combined.Contracts))
	for fullName, contract := range combined.Contracts {
		raw, err := normalizeABI(contract.ABI)
		if err != nil {
			return nil, fmt.Errorf("compiler: contract %s: %w", fullName, err)
		}
		if raw == nil {
			continue
		}
		name := fullName
		if i := strings.LastIndex(fullName, ":"); i != -1 {
			name = fullName[i+1:]
		}
		out[name] = raw
	}
	return out, nil
}

// normalizeABI unwraps the ABI artifact. Old solc releases emit the ABI as a
// JSON-encoded string rather than an inline array; both forms are accepted.
func normalizeABI(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "\"") {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, fmt.Errorf("invalid string-wrapped ABI: %v", err)
		}
		return json.RawMessage(inner), nil
	}
	return raw, nil
}

// LoadRegistry parses combined JSON straight into an ABI registry.
func LoadRegistry(data []byte) (*abi.Registry, error) {
	contracts, err := ParseCombinedJSON(data)
	if err != nil {
		return nil, err
	}
	return abi.LoadRegistry(contracts)
}
