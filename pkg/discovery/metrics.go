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

package discovery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Discovery pass metrics
	discoveryPassDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nvsettings_discovery_duration_seconds",
			Help:    "Time taken by a complete attribute discovery pass",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
		},
	)

	discoveryPassTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nvsettings_discovery_total",
			Help: "Total number of attribute discovery passes",
		},
		[]string{"status"}, // success, execution_error, parse_error
	)

	discoveryAttributeCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nvsettings_discovery_attributes",
			Help: "Number of attributes in the last discovered registry",
		},
	)
)
