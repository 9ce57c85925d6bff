/*
Copyright © 2026 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/nvidia-settings-api/pkg/defaults"
	"github.com/NVIDIA/nvidia-settings-api/pkg/discovery"
	"github.com/NVIDIA/nvidia-settings-api/pkg/logging"
	"github.com/NVIDIA/nvidia-settings-api/pkg/runner"
	"github.com/NVIDIA/nvidia-settings-api/pkg/serializer"
)

func discoverCmd() *cli.Command {
	return &cli.Command{
		Name:  "discover",
		Usage: "Run one attribute discovery pass and write the registry",
		Description: `Run nvidia-settings --query all and convert its output into a typed
per-GPU attribute registry.

The query runs inside a wide terminal launcher (xterm by default) with its
standard output redirected to a temporary file. Piped capture is not usable
here: the tool wraps its output at 80 columns under X, truncating long
attribute lines.

# Examples

Discover with stock paths and print JSON to stdout:
  nvset discover

Write the registry as YAML to a file, using a different display:
  nvset discover --display :1 --format yaml --output registry.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "nvidia-settings-path",
				Usage:   "Absolute path to the nvidia-settings binary",
				Sources: cli.EnvVars("NVSET_SETTINGS_PATH"),
				Value:   defaults.SettingsPath,
			},
			&cli.StringFlag{
				Name:    "xterm-path",
				Usage:   "Absolute path to the terminal launcher binary",
				Sources: cli.EnvVars("NVSET_XTERM_PATH"),
				Value:   defaults.TerminalPath,
			},
			&cli.StringFlag{
				Name:    "display",
				Usage:   "X display address exported as DISPLAY for the query",
				Sources: cli.EnvVars("NVSET_DISPLAY"),
				Value:   defaults.Display,
			},
			&cli.StringFlag{
				Name:    "output",
				Usage:   "Output file path (default: stdout)",
				Sources: cli.EnvVars("NVSET_OUTPUT"),
			},
			&cli.StringFlag{
				Name:    "format",
				Usage:   fmt.Sprintf("Output format, one of: %v", serializer.SupportedFormats()),
				Sources: cli.EnvVars("NVSET_FORMAT"),
				Value:   string(serializer.FormatJSON),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Timeout for the discovery pass",
				Value: defaults.DiscoveryTimeout,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Info("starting", "name", name, "version", version, "commit", commit, "date", date)

			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			r, err := runner.NewXTermRunner(
				cmd.String("nvidia-settings-path"),
				cmd.String("xterm-path"),
				cmd.String("display"),
				cmd.Duration("timeout"),
			)
			if err != nil {
				return fmt.Errorf("invalid runner configuration: %w", err)
			}

			d := discovery.New(r,
				discovery.WithSpawnLimit(rate.Every(defaults.SpawnInterval), 1),
			)

			dctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout")+time.Second)
			defer cancel()

			reg, err := d.Discover(dctx)
			if err != nil {
				return err
			}

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := w.Close(); err != nil {
					slog.Warn("failed to close output", "error", err)
				}
			}()

			return w.Serialize(ctx, reg)
		},
	}
}
