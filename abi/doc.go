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

// Package abi implements the Ethereum contract ABI as a queryable data model:
// parsing raw ABI JSON into typed entries, canonicalizing type signatures,
// deriving 4 byte selectors and 32 byte event topics, and encoding argument
// values into call data. Everything here is a pure function over immutable
// inputs; a parsed ContractABI or Registry may be shared freely between
// goroutines.
package abi
