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

// Package defaults centralizes shared default values and timeouts.
package defaults

import "time"

// Binary and display defaults matching a stock Xorg installation.
const (
	// SettingsPath is the default location of the nvidia-settings binary.
	SettingsPath = "/usr/bin/nvidia-settings"

	// TerminalPath is the default location of the xterm binary used as
	// the wide capture terminal.
	TerminalPath = "/usr/bin/xterm"

	// Display is the default X display address.
	Display = ":0"
)

// Discovery timing.
const (
	// DiscoveryTimeout bounds one end-to-end discovery pass. The query
	// itself usually completes in a few seconds; slow driver stacks with
	// many GPUs have been observed to take much longer.
	DiscoveryTimeout = 2 * time.Minute

	// SpawnInterval is the minimum spacing between external process
	// launches when a spawn limiter is configured.
	SpawnInterval = time.Second
)
