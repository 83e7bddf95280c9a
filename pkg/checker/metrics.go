// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package checker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Check evaluation metrics
	checkDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vercheck_check_duration_seconds",
			Help:    "Time taken to run one version check",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
	)

	checkTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vercheck_check_total",
			Help: "Total number of version checks",
		},
		[]string{"outcome"}, // equal, less, greater, not-installed, extraction-failed, desired-malformed, error
	)
)
