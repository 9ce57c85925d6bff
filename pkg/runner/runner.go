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

// Package runner executes the nvidia-settings query command and captures its
// full, unwrapped standard output.
//
// Capturing through a pipe is not an option: under an X display the tool
// wraps its output at 80 columns, truncating long attribute lines. The
// runner instead launches the query inside a terminal launcher sized wide
// enough to avoid wrapping, with stdout redirected to a temporary file, and
// reads the file back after the process exits.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/commander-cli/cmd"
)

const (
	// queryArgs is the fixed argument pair passed to nvidia-settings.
	queryArgs = "--query all"

	// terminalGeometry sizes the capture terminal wide enough that no
	// attribute line wraps (500 columns, 50 rows).
	terminalGeometry = "500x50"
)

// Runner produces the raw query output for one discovery pass.
type Runner interface {
	// Run executes the query command once and returns its full stdout.
	// A non-zero exit surfaces as *ExecutionError; there is no retry.
	Run(ctx context.Context) ([]byte, error)
}

// ExecutionError reports a query command that exited non-zero. It carries
// the command line and both captured streams for diagnostics.
type ExecutionError struct {
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("command %q failed with code %d\nstdout:\n%s\nstderr:\n%s",
		e.Command, e.ExitCode, e.Stdout, e.Stderr)
}

// XTermRunner runs nvidia-settings inside an xterm-compatible terminal
// launcher to obtain unwrapped output.
type XTermRunner struct {
	// SettingsPath is the absolute path to the nvidia-settings binary.
	SettingsPath string

	// TerminalPath is the absolute path to the terminal launcher binary.
	TerminalPath string

	// Display is the X display address exported as DISPLAY for the
	// query process, e.g. ":0".
	Display string

	// Timeout bounds a single query execution. Zero means no limit
	// beyond the caller's context.
	Timeout time.Duration
}

// NewXTermRunner creates a runner after verifying both binaries exist and
// are executable.
func NewXTermRunner(settingsPath, terminalPath, display string, timeout time.Duration) (*XTermRunner, error) {
	for _, path := range []string{settingsPath, terminalPath} {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("binary %s not found: %w", path, err)
		}
		if info.IsDir() || info.Mode().Perm()&0111 == 0 {
			return nil, fmt.Errorf("binary %s is not executable", path)
		}
	}
	return &XTermRunner{
		SettingsPath: settingsPath,
		TerminalPath: terminalPath,
		Display:      display,
		Timeout:      timeout,
	}, nil
}

// Run executes one query. The terminal launcher writes the query's stdout
// to a temporary file; the launcher's own exit code is the query's.
func (r *XTermRunner) Run(ctx context.Context) ([]byte, error) {
	capture, err := os.CreateTemp("", "nvidia-settings-query-*.out")
	if err != nil {
		return nil, fmt.Errorf("failed to create capture file: %w", err)
	}
	captureName := capture.Name()
	_ = capture.Close()
	defer func() {
		if err := os.Remove(captureName); err != nil {
			slog.Warn("failed to remove capture file", "path", captureName, "error", err)
		}
	}()

	line := fmt.Sprintf("%s -geometry %s -e '%s %s >%s'",
		r.TerminalPath, terminalGeometry, r.SettingsPath, queryArgs, captureName)

	opts := []func(*cmd.Command){
		cmd.WithInheritedEnvironment(cmd.EnvVars{"DISPLAY": r.Display}),
	}
	if r.Timeout > 0 {
		opts = append(opts, cmd.WithTimeout(r.Timeout))
	}
	c := cmd.NewCommand(line, opts...)

	slog.Debug("executing query command", "command", line, "display", r.Display)

	if err := c.ExecuteContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to execute %q: %w", line, err)
	}

	out, readErr := os.ReadFile(captureName)

	if c.ExitCode() != 0 {
		return nil, &ExecutionError{
			Command:  line,
			ExitCode: c.ExitCode(),
			Stdout:   string(out),
			Stderr:   c.Stderr(),
		}
	}
	if readErr != nil {
		return nil, fmt.Errorf("failed to read capture file %s: %w", captureName, readErr)
	}

	slog.Debug("query command completed", "bytes", len(out))
	return out, nil
}
