/*
Copyright © 2026 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the nvset command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const (
	name           = "nvset"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Discover GPU driver settings exposed by nvidia-settings",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("NVSET_LOG_LEVEL"),
				Value:   "info",
			},
		},
		Commands: []*cli.Command{
			discoverCmd(),
		},
	}
}

// Execute runs the root command with graceful shutdown handling.
// It is called by main.main() and exits the process on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return rootCmd().Run(gctx, os.Args)
	})

	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
