// Copyright (c) 2026, The Build Redirect Authors. All rights reserved.
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

package manifest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	refreshResultSuccess = "success"
	refreshResultError   = "error"
)

var (
	// Refresh metrics
	refreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redirect_manifest_refresh_total",
			Help: "Total number of manifest refreshes by result",
		},
		[]string{"result"},
	)

	refreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "redirect_manifest_refresh_duration_seconds",
			Help:    "Duration of manifest refreshes in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	// Cache metrics
	cacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "redirect_manifest_cache_hits_total",
			Help: "Total number of lookups served from a fresh snapshot",
		},
	)
	cacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "redirect_manifest_cache_misses_total",
			Help: "Total number of lookups that found the snapshot missing or stale",
		},
	)

	cachedPlatforms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "redirect_manifest_platforms",
			Help: "Number of platforms in the published snapshot",
		},
	)
	cachedEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "redirect_manifest_entries",
			Help: "Number of build versions in the published snapshot",
		},
	)
)
