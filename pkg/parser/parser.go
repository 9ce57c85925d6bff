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

// Package parser converts the raw text output of `nvidia-settings --query all`
// into a typed attribute registry.
//
// The input is loosely delimited free text. Each attribute is introduced by a
// header line and described by zero or more detail lines that follow it:
//
//	Attribute 'GPUCurrentClockFreqs' (rig1.metz.levert:0[gpu:1]): 2012,4752.
//	  'GPUCurrentClockFreqs' is a packed integer attribute.
//	  'GPUCurrentClockFreqs' is a read-only attribute.
//	  'GPUCurrentClockFreqs' can use the following target types: X Screen, GPU.
//
// The parser makes a single forward pass over the lines, tracking which
// attribute and GPU index are current. Detail recognizers are parameterized
// by that state: a detail line only applies when it names the attribute the
// most recent header introduced. Lines matching no recognizer are skipped;
// the tool emits plenty of descriptive text that carries no schema
// information. The only fatal condition is a type declaration with a kind
// keyword the schema mapping does not handle.
package parser

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/NVIDIA/nvidia-settings-api/pkg/attribute"
)

// bitmaskPattern matches the 0x-prefixed 8-digit hex form nvidia-settings
// uses for bitmask attribute values.
const bitmaskPattern = "0x[0-9a-z]{8}"

var (
	// Attribute 'SyncToVBlank' (host.example:0[gpu:0]): 1.
	headerRe = regexp.MustCompile(`^\s+Attribute\s+'(\w+)'\s+\([\w.-]+:\d+\[gpu:(\d+)\]\):\s+(.+)\.$`)

	// 'SyncToVBlank' is a read-only attribute.
	typeRe = regexp.MustCompile(`^\s+'(\w+)'\s+is an? ([\w -]+) attribute\.$`)

	// The valid values for 'Dithering' are in the range -5 - 10 (inclusive).
	rangeRe = regexp.MustCompile(`^\s+The valid values for '(\w+)' are in the range (-?\d+) - (-?\d+) \(inclusive\)\.$`)

	// 'SyncToVBlank' is a boolean attribute; valid values are: 1 (on/true) and 0 (off/false).
	booleanRe = regexp.MustCompile(`^\s+'(\w+)' is a boolean attribute; valid values are: 1 \(on/true\) and 0 \(off/false\)\.$`)

	// Valid values for 'FSAA' are: 0, 1, 5 and 7.
	enumRe = regexp.MustCompile(`^\s+Valid values for '(\w+)' are: (.+)\.$`)

	// natural-language list separator: "1, 2, 3 and 4"
	enumAndRe = regexp.MustCompile(`\band\b`)
)

// ParseError reports an attribute type declaration the schema mapping does
// not handle. It aborts the discovery pass: downstream schema generation has
// no safe fallback for an unknown value kind.
type ParseError struct {
	// Attribute is the attribute whose declaration was unhandled.
	Attribute string

	// TypeKeyword is the unrecognized kind keyword as printed by the tool.
	TypeKeyword string

	// Line is the 1-based line number of the offending declaration.
	Line int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: attribute %q declares unhandled type %q", e.Line, e.Attribute, e.TypeKeyword)
}

// parseState tracks which attribute block the line stream is currently in.
// It is mutated only by the header recognizer, so detail lines always apply
// to the most recently introduced attribute.
type parseState struct {
	name   string
	gpu    int
	active bool
}

// Parse converts raw query output into a Registry.
//
// It returns a *ParseError when a type declaration names an unhandled kind;
// no partial registry is returned in that case. All other malformed or
// unexpected lines are tolerated silently.
func Parse(raw []byte) (attribute.Registry, error) {
	reg := attribute.NewRegistry()
	var state parseState

	for i, line := range strings.Split(string(raw), "\n") {
		if m := headerRe.FindStringSubmatch(line); m != nil {
			gpu, err := strconv.Atoi(m[2])
			if err != nil {
				// \d+ guarantees digits; only overflow lands here
				slog.Debug("skipping attribute with unusable gpu index", "attribute", m[1], "index", m[2])
				continue
			}
			reg.Add(&attribute.Record{
				Name:    m[1],
				GPU:     gpu,
				Example: m[3],
			})
			state = parseState{name: m[1], gpu: gpu, active: true}
			continue
		}

		if !state.active {
			continue
		}
		rec, ok := reg.Get(state.gpu, state.name)
		if !ok {
			continue
		}

		if m := typeRe.FindStringSubmatch(line); m != nil && m[1] == state.name {
			if err := applyType(rec, m[2], i+1); err != nil {
				return nil, err
			}
			continue
		}

		if m := rangeRe.FindStringSubmatch(line); m != nil && m[1] == state.name {
			// \-?\d+ always parses; Atoi errors are impossible here
			minVal, _ := strconv.Atoi(m[2])
			maxVal, _ := strconv.Atoi(m[3])
			rec.Kind = attribute.KindIntegerRange
			rec.Min = &minVal
			rec.Max = &maxVal
			continue
		}

		if m := booleanRe.FindStringSubmatch(line); m != nil && m[1] == state.name {
			rec.Kind = attribute.KindBoolean
			if s, ok := rec.Example.(string); ok {
				if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
					rec.Example = v != 0
				}
			}
			continue
		}

		if m := enumRe.FindStringSubmatch(line); m != nil && m[1] == state.name {
			rec.Kind, rec.Enum = parseEnumList(m[2])
			continue
		}
	}

	return reg, nil
}

// applyType maps a recognized type declaration keyword onto the record.
// The read-only keyword is an orthogonal flag, not a value kind.
func applyType(rec *attribute.Record, keyword string, lineNo int) error {
	switch keyword {
	case "read-only":
		rec.ReadOnly = true

	case "integer":
		rec.Kind = attribute.KindInteger
		if s, ok := rec.Example.(string); ok {
			if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
				rec.Example = v
			} else {
				slog.Debug("integer attribute with non-integer example", "attribute", rec.Name, "example", s)
			}
		}

	case "bitmask":
		rec.Kind = attribute.KindBitmask
		rec.Pattern = bitmaskPattern

	case "packed integer":
		rec.Kind = attribute.KindPackedIntegerList
		rec.Pattern = packedPattern(rec.Example)

	default:
		return &ParseError{Attribute: rec.Name, TypeKeyword: keyword, Line: lineNo}
	}
	return nil
}

// packedPattern derives the matcher for a packed integer attribute from its
// example value: one \d+ group per comma-separated element.
func packedPattern(example any) string {
	n := 1
	if s, ok := example.(string); ok {
		n = len(strings.Split(s, ","))
	}
	groups := make([]string, n)
	for i := range groups {
		groups[i] = `\d+`
	}
	return strings.Join(groups, ",")
}

// parseEnumList interprets a natural-language value list such as
// "64, 128, 256 and 512". The token sequence is tried as integers first,
// then as floats, falling back to verbatim strings.
func parseEnumList(list string) (attribute.Kind, []any) {
	var tokens []string
	for _, segment := range enumAndRe.Split(list, -1) {
		for _, tok := range strings.Split(segment, ",") {
			tok = strings.TrimSpace(tok)
			if tok != "" {
				tokens = append(tokens, tok)
			}
		}
	}

	ints := make([]any, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			ints = nil
			break
		}
		ints = append(ints, v)
	}
	if ints != nil {
		return attribute.KindIntegerEnum, ints
	}

	floats := make([]any, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			floats = nil
			break
		}
		floats = append(floats, v)
	}
	if floats != nil {
		return attribute.KindNumberEnum, floats
	}

	strs := make([]any, 0, len(tokens))
	for _, tok := range tokens {
		strs = append(strs, tok)
	}
	return attribute.KindStringEnum, strs
}
