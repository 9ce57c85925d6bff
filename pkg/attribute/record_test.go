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
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		record  Record
		value   string
		wantErr bool
	}{
		{
			name:   "unspecified accepts anything",
			record: Record{Name: "Raw"},
			value:  "whatever",
		},
		{
			name:   "boolean accepts one",
			record: Record{Name: "Sync", Kind: KindBoolean},
			value:  "1",
		},
		{
			name:    "boolean rejects two",
			record:  Record{Name: "Sync", Kind: KindBoolean},
			value:   "2",
			wantErr: true,
		},
		{
			name:   "integer accepts negative",
			record: Record{Name: "Temp", Kind: KindInteger},
			value:  "-3",
		},
		{
			name:    "integer rejects text",
			record:  Record{Name: "Temp", Kind: KindInteger},
			value:   "hot",
			wantErr: true,
		},
		{
			name:   "range accepts boundary",
			record: Record{Name: "Vib", Kind: KindIntegerRange, Min: intPtr(-5), Max: intPtr(10)},
			value:  "-5",
		},
		{
			name:    "range rejects below minimum",
			record:  Record{Name: "Vib", Kind: KindIntegerRange, Min: intPtr(-5), Max: intPtr(10)},
			value:   "-6",
			wantErr: true,
		},
		{
			name:    "range rejects above maximum",
			record:  Record{Name: "Vib", Kind: KindIntegerRange, Min: intPtr(-5), Max: intPtr(10)},
			value:   "11",
			wantErr: true,
		},
		{
			name:   "integer enum accepts member",
			record: Record{Name: "FSAA", Kind: KindIntegerEnum, Enum: []any{int64(0), int64(1), int64(5)}},
			value:  "5",
		},
		{
			name:    "integer enum rejects non-member",
			record:  Record{Name: "FSAA", Kind: KindIntegerEnum, Enum: []any{int64(0), int64(1), int64(5)}},
			value:   "3",
			wantErr: true,
		},
		{
			name:   "number enum accepts member",
			record: Record{Name: "Sharp", Kind: KindNumberEnum, Enum: []any{0.0, 0.5, 1.0}},
			value:  "0.5",
		},
		{
			name:    "number enum rejects non-member",
			record:  Record{Name: "Sharp", Kind: KindNumberEnum, Enum: []any{0.0, 0.5, 1.0}},
			value:   "0.75",
			wantErr: true,
		},
		{
			name:   "string enum accepts member",
			record: Record{Name: "Mizer", Kind: KindStringEnum, Enum: []any{"Adaptive", "Prefer Maximum Performance"}},
			value:  "Adaptive",
		},
		{
			name:    "string enum rejects non-member",
			record:  Record{Name: "Mizer", Kind: KindStringEnum, Enum: []any{"Adaptive"}},
			value:   "Turbo",
			wantErr: true,
		},
		{
			name:   "bitmask accepts hex form",
			record: Record{Name: "Displays", Kind: KindBitmask, Pattern: "0x[0-9a-z]{8}"},
			value:  "0x00010001",
		},
		{
			name:    "bitmask rejects short form",
			record:  Record{Name: "Displays", Kind: KindBitmask, Pattern: "0x[0-9a-z]{8}"},
			value:   "0x1",
			wantErr: true,
		},
		{
			name:   "packed list accepts matching arity",
			record: Record{Name: "Freqs", Kind: KindPackedIntegerList, Pattern: `\d+,\d+`},
			value:  "2012,4752",
		},
		{
			name:    "packed list rejects wrong arity",
			record:  Record{Name: "Freqs", Kind: KindPackedIntegerList, Pattern: `\d+,\d+`},
			value:   "2012",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, ok := ParseKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}

	_, ok := ParseKind("frobnicated")
	assert.False(t, ok)
}

func TestKindHelpers(t *testing.T) {
	assert.True(t, KindIntegerEnum.IsEnum())
	assert.True(t, KindNumberEnum.IsEnum())
	assert.True(t, KindStringEnum.IsEnum())
	assert.False(t, KindBitmask.IsEnum())

	assert.True(t, KindBitmask.IsPatterned())
	assert.True(t, KindPackedIntegerList.IsPatterned())
	assert.False(t, KindBoolean.IsPatterned())
}
