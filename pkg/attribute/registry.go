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

import "sort"

// Registry is the complete structured result of one discovery pass,
// grouped by GPU index then attribute name. It is built once per pass
// and not modified after it is returned to the caller.
type Registry map[int]map[string]*Record

// NewRegistry creates an empty registry.
func NewRegistry() Registry {
	return make(Registry)
}

// Add inserts a record under its GPU index and name, replacing any
// previous record with the same coordinates.
func (r Registry) Add(rec *Record) {
	attrs, ok := r[rec.GPU]
	if !ok {
		attrs = make(map[string]*Record)
		r[rec.GPU] = attrs
	}
	attrs[rec.Name] = rec
}

// Get retrieves a record by GPU index and attribute name.
func (r Registry) Get(gpu int, name string) (*Record, bool) {
	attrs, ok := r[gpu]
	if !ok {
		return nil, false
	}
	rec, ok := attrs[name]
	return rec, ok
}

// GPUs returns the GPU indices present in the registry, sorted ascending.
func (r Registry) GPUs() []int {
	gpus := make([]int, 0, len(r))
	for gpu := range r {
		gpus = append(gpus, gpu)
	}
	sort.Ints(gpus)
	return gpus
}

// Names returns the attribute names discovered for a GPU, sorted.
func (r Registry) Names(gpu int) []string {
	names := make([]string, 0, len(r[gpu]))
	for name := range r[gpu] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the total number of records across all GPUs.
func (r Registry) Len() int {
	n := 0
	for _, attrs := range r {
		n += len(attrs)
	}
	return n
}
