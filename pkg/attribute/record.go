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

import (
	"fmt"
	"regexp"
	"strconv"
)

// Record is one GPU attribute's discovered metadata.
//
// Kind-dependent fields are populated only for the matching kind:
// Min/Max for KindIntegerRange, Enum for the enum kinds, Pattern for
// KindBitmask and KindPackedIntegerList.
type Record struct {
	// Name is the attribute identifier, unique within a GPU's attribute set.
	Name string `json:"name" yaml:"name"`

	// GPU is the owning GPU's non-negative index.
	GPU int `json:"gpu" yaml:"gpu"`

	// ReadOnly reports whether the attribute rejects writes. It defaults
	// to false until the read-only declaration line is seen.
	ReadOnly bool `json:"readOnly" yaml:"readOnly"`

	// Kind is the attribute's value kind. The zero value means the type
	// declaration was never seen; the example stays an opaque string.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// Example is the raw example value captured at discovery time. It is
	// a string until the kind resolves it (int for KindInteger, bool for
	// KindBoolean).
	Example any `json:"example,omitempty" yaml:"example,omitempty"`

	// Min and Max are the inclusive bounds for KindIntegerRange.
	Min *int `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Max *int `json:"maximum,omitempty" yaml:"maximum,omitempty"`

	// Enum holds the ordered member values for the enum kinds: int64
	// elements for KindIntegerEnum, float64 for KindNumberEnum, string
	// for KindStringEnum.
	Enum []any `json:"enum,omitempty" yaml:"enum,omitempty"`

	// Pattern is the string-matching rule for the patterned kinds.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// Validate checks a candidate value against the record's schema.
// A nil error means the value is acceptable for this attribute's kind.
// Records with KindUnspecified accept any value.
func (r *Record) Validate(value string) error {
	switch r.Kind {
	case KindUnspecified:
		return nil

	case KindBoolean:
		if value != "0" && value != "1" {
			return fmt.Errorf("attribute %q: value %q is not a boolean, valid values are 1 and 0", r.Name, value)
		}
		return nil

	case KindInteger:
		if _, err := strconv.Atoi(value); err != nil {
			return fmt.Errorf("attribute %q: value %q is not an integer", r.Name, value)
		}
		return nil

	case KindIntegerRange:
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("attribute %q: value %q is not an integer", r.Name, value)
		}
		if r.Min != nil && v < *r.Min {
			return fmt.Errorf("attribute %q: value %d is below minimum %d", r.Name, v, *r.Min)
		}
		if r.Max != nil && v > *r.Max {
			return fmt.Errorf("attribute %q: value %d is above maximum %d", r.Name, v, *r.Max)
		}
		return nil

	case KindIntegerEnum:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("attribute %q: value %q is not an integer", r.Name, value)
		}
		for _, m := range r.Enum {
			if mv, ok := m.(int64); ok && mv == v {
				return nil
			}
		}
		return fmt.Errorf("attribute %q: value %d is not a member of %v", r.Name, v, r.Enum)

	case KindNumberEnum:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("attribute %q: value %q is not a number", r.Name, value)
		}
		for _, m := range r.Enum {
			if mv, ok := m.(float64); ok && mv == v {
				return nil
			}
		}
		return fmt.Errorf("attribute %q: value %v is not a member of %v", r.Name, v, r.Enum)

	case KindStringEnum:
		for _, m := range r.Enum {
			if mv, ok := m.(string); ok && mv == value {
				return nil
			}
		}
		return fmt.Errorf("attribute %q: value %q is not a member of %v", r.Name, value, r.Enum)

	case KindBitmask, KindPackedIntegerList:
		re, err := regexp.Compile("^" + r.Pattern + "$")
		if err != nil {
			return fmt.Errorf("attribute %q: invalid pattern %q: %w", r.Name, r.Pattern, err)
		}
		if !re.MatchString(value) {
			return fmt.Errorf("attribute %q: value %q does not match pattern %q", r.Name, value, r.Pattern)
		}
		return nil

	default:
		return fmt.Errorf("attribute %q: unknown kind %q", r.Name, r.Kind)
	}
}
