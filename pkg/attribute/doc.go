// Copyright (c) 2026, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package attribute defines the typed registry of GPU driver settings
// discovered from nvidia-settings.
//
// # Data Model
//
// Each queryable or settable value exposed by the driver is a Record,
// scoped to one GPU index. A Record carries the attribute's value Kind
// (boolean, bounded integer, enumerated set, bitmask string, packed
// integer list, etc.) together with the fields that kind requires:
// bounds for ranges, member values for enumerations, a string pattern
// for bitmask and packed list representations.
//
// A Registry groups records by GPU index and then by attribute name:
//
//	reg := attribute.NewRegistry()
//	reg.Add(&attribute.Record{Name: "SyncToVBlank", GPU: 0, Kind: attribute.KindBoolean})
//
//	rec, ok := reg.Get(0, "SyncToVBlank")
//
// The same attribute name may exist under several GPU indices with
// independent metadata.
//
// # Determinism
//
// Consumers query records by name, so insertion order is irrelevant,
// but the registry must serialize identically across runs for the same
// input. GPUs and Names return sorted slices for iteration, and both
// JSON and YAML marshalling emit map keys in sorted order.
//
// # Validation
//
// Record.Validate checks a candidate value string against the record's
// schema. It is used by write paths (the external HTTP layer) before an
// attribute is applied:
//
//	if err := rec.Validate("0x000000ff"); err != nil {
//	    // reject the request
//	}
package attribute
