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

package attribute

// Kind is the normalized schema type assigned to an attribute's value domain.
type Kind string

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

const (
	// KindUnspecified marks an attribute whose header was seen but whose
	// type was never declared. Consumers treat its value as an opaque string.
	KindUnspecified Kind = ""

	// KindBoolean accepts 1 (on/true) and 0 (off/false).
	KindBoolean Kind = "boolean"

	// KindInteger accepts any base-10 integer.
	KindInteger Kind = "integer"

	// KindIntegerRange accepts integers within inclusive bounds.
	KindIntegerRange Kind = "integer-range"

	// KindIntegerEnum accepts one of a fixed set of integers.
	KindIntegerEnum Kind = "integer-enum"

	// KindNumberEnum accepts one of a fixed set of floating point numbers.
	KindNumberEnum Kind = "number-enum"

	// KindStringEnum accepts one of a fixed set of strings.
	KindStringEnum Kind = "string-enum"

	// KindBitmask accepts an 0x-prefixed 8-digit hex string.
	KindBitmask Kind = "bitmask"

	// KindPackedIntegerList accepts a comma-joined list of non-negative
	// integers, e.g. "2012,4752".
	KindPackedIntegerList Kind = "packed-integer-list"
)

// Kinds is the list of all resolved value kinds (KindUnspecified excluded).
var Kinds = []Kind{
	KindBoolean,
	KindInteger,
	KindIntegerRange,
	KindIntegerEnum,
	KindNumberEnum,
	KindStringEnum,
	KindBitmask,
	KindPackedIntegerList,
}

// ParseKind parses a string into a Kind.
// Returns the Kind and true if the string names a resolved kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return KindUnspecified, false
}

// IsEnum reports whether the kind carries enumerated member values.
func (k Kind) IsEnum() bool {
	switch k {
	case KindIntegerEnum, KindNumberEnum, KindStringEnum:
		return true
	default:
		return false
	}
}

// IsPatterned reports whether the kind's values are formatted strings
// validated by a pattern rather than native numeric types.
func (k Kind) IsPatterned() bool {
	return k == KindBitmask || k == KindPackedIntegerList
}
