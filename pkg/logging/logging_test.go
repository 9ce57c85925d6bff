/*
Copyright © 2026 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetDefaultStructuredLoggerWithLevel(t *testing.T) {
	SetDefaultStructuredLoggerWithLevel("nvset", "test", "debug")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	SetDefaultStructuredLoggerWithLevel("nvset", "test", "warn")
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))
}

func TestUnparsableLevelFallsBackToInfo(t *testing.T) {
	SetDefaultStructuredLoggerWithLevel("nvset", "test", "chatty")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
