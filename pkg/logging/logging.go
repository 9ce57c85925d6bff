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

// Package logging configures the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"
)

// SetDefaultStructuredLogger installs a JSON slog handler at info level
// with the application name and version attached to every record.
func SetDefaultStructuredLogger(name, version string) {
	SetDefaultStructuredLoggerWithLevel(name, version, slog.LevelInfo.String())
}

// SetDefaultStructuredLoggerWithLevel installs a JSON slog handler with the
// given level (debug, info, warn, error). An unparsable level falls back to
// info rather than failing startup.
func SetDefaultStructuredLoggerWithLevel(name, version, level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	logger := slog.New(handler).With(
		slog.String("name", name),
		slog.String("version", version),
	)
	slog.SetDefault(logger)
}
