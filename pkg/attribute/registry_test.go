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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryScoping(t *testing.T) {
	reg := NewRegistry()
	reg.Add(&Record{Name: "GPUCoreTemp", GPU: 0, Kind: KindInteger, ReadOnly: true})
	reg.Add(&Record{Name: "GPUCoreTemp", GPU: 1, Kind: KindInteger})

	rec0, ok := reg.Get(0, "GPUCoreTemp")
	require.True(t, ok)
	rec1, ok := reg.Get(1, "GPUCoreTemp")
	require.True(t, ok)

	assert.True(t, rec0.ReadOnly)
	assert.False(t, rec1.ReadOnly)
	assert.Equal(t, 2, reg.Len())
}

func TestRegistrySortedAccessors(t *testing.T) {
	reg := NewRegistry()
	reg.Add(&Record{Name: "Zeta", GPU: 2})
	reg.Add(&Record{Name: "Alpha", GPU: 2})
	reg.Add(&Record{Name: "Mid", GPU: 0})

	assert.Equal(t, []int{0, 2}, reg.GPUs())
	assert.Equal(t, []string{"Alpha", "Zeta"}, reg.Names(2))
	assert.Empty(t, reg.Names(5))
}

func TestRegistryGetMissing(t *testing.T) {
	reg := NewRegistry()
	_, ok := reg.Get(0, "Nope")
	assert.False(t, ok)
}

func TestRegistryJSONStable(t *testing.T) {
	build := func() Registry {
		reg := NewRegistry()
		reg.Add(&Record{Name: "B", GPU: 1, Kind: KindInteger, Example: 2})
		reg.Add(&Record{Name: "A", GPU: 0, Kind: KindBoolean, Example: true})
		reg.Add(&Record{Name: "C", GPU: 0, Kind: KindBitmask, Pattern: "0x[0-9a-z]{8}"})
		return reg
	}

	first, err := json.Marshal(build())
	require.NoError(t, err)
	second, err := json.Marshal(build())
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}
