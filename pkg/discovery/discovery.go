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

// Package discovery ties the command runner and the attribute parser into a
// single discovery pass: one process launch, one full-output capture, one
// parse, one immutable registry. Callers typically run a pass once at
// startup to build their route table and schema documents.
package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/nvidia-settings-api/pkg/attribute"
	"github.com/NVIDIA/nvidia-settings-api/pkg/parser"
	"github.com/NVIDIA/nvidia-settings-api/pkg/runner"
)

// Discoverer runs attribute discovery passes.
type Discoverer struct {
	runner  runner.Runner
	limiter *rate.Limiter
}

// Option configures a Discoverer.
type Option func(*Discoverer)

// WithSpawnLimit rate-limits process spawns across passes. The host may
// serialize access to the hardware query interface, so rapid repeated
// passes wait for a token instead of stacking external processes.
func WithSpawnLimit(limit rate.Limit, burst int) Option {
	return func(d *Discoverer) {
		d.limiter = rate.NewLimiter(limit, burst)
	}
}

// New creates a Discoverer for the given runner.
func New(r runner.Runner, options ...Option) *Discoverer {
	d := &Discoverer{runner: r}
	for _, opt := range options {
		opt(d)
	}
	return d
}

// Discover executes one end-to-end discovery pass and returns a fresh
// registry. Failures surface as *runner.ExecutionError when the external
// command exits non-zero, or *parser.ParseError when its output declares an
// attribute type the schema mapping does not handle; both unwrap with
// errors.As. No partial registry is returned on error.
func (d *Discoverer) Discover(ctx context.Context) (attribute.Registry, error) {
	passID := uuid.New().String()
	log := slog.With("pass", passID)

	start := time.Now()
	defer func() {
		discoveryPassDuration.Observe(time.Since(start).Seconds())
	}()

	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			discoveryPassTotal.WithLabelValues("execution_error").Inc()
			return nil, fmt.Errorf("waiting for spawn slot: %w", err)
		}
	}

	log.Debug("starting attribute discovery pass")

	raw, err := d.runner.Run(ctx)
	if err != nil {
		discoveryPassTotal.WithLabelValues("execution_error").Inc()
		log.Error("query command failed", "error", err)
		return nil, fmt.Errorf("query command failed: %w", err)
	}

	reg, err := parser.Parse(raw)
	if err != nil {
		discoveryPassTotal.WithLabelValues("parse_error").Inc()
		log.Error("failed to parse query output", "error", err)
		return nil, fmt.Errorf("failed to parse query output: %w", err)
	}

	discoveryPassTotal.WithLabelValues("success").Inc()
	discoveryAttributeCount.Set(float64(reg.Len()))

	log.Info("attribute discovery pass completed",
		"gpus", len(reg.GPUs()),
		"attributes", reg.Len(),
		"duration", time.Since(start))

	return reg, nil
}
