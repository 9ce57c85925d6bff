/*
Copyright © 2026 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdHasDiscover(t *testing.T) {
	root := rootCmd()
	assert.Equal(t, "nvset", root.Name)

	var names []string
	for _, c := range root.Commands {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "discover")
}

func TestDiscoverRejectsUnknownFormat(t *testing.T) {
	root := rootCmd()
	err := root.Run(context.Background(), []string{"nvset", "discover", "--format", "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestDiscoverRejectsMissingBinaries(t *testing.T) {
	root := rootCmd()
	err := root.Run(context.Background(), []string{
		"nvset", "discover",
		"--nvidia-settings-path", "/nonexistent/nvidia-settings",
		"--xterm-path", "/nonexistent/xterm",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
