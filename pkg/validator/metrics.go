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

package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	layerValidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cc_layer_validations_total",
			Help: "Total number of layer validations by lab and outcome",
		},
		[]string{"lab", "status"},
	)

	labDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cc_lab_validation_duration_seconds",
			Help:    "Time spent validating all layers of a lab",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"lab"},
	)
)
