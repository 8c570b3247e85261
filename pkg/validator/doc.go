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

// Package validator runs the lab validation harness.
//
// # Overview
//
// Every lab in the catalog is a sequence of layers. Conceptual layers have
// nothing to execute. Every other layer is bound, through a Registry, to a
// Probe: a closure that calls one capability function with fixed test input.
// Validating a layer invokes its probe exactly once and classifies the
// outcome.
//
// # Classification
//
//   - conceptual: the layer is conceptual; no probe is looked up or run
//   - pass: the probe returned nil
//   - not_implemented: the error carries errors.ErrCodeNotImplemented
//   - implemented: the error carries errors.ErrCodeUnconfigured, or its text
//     contains "not configured" (case-insensitive)
//   - error: any other error, or a panic
//
// Raw error text never leaves the harness. It is logged at debug level and the
// caller only sees the fixed message for the status.
//
// # Usage
//
//	v, err := validator.New(cat, labs.Registry(svcs), validator.WithVersion(version))
//	if err != nil {
//	    return err // registry does not cover the catalog
//	}
//	res := v.ValidateLab(ctx, "05")
//	all := v.ValidateAll(ctx)
//
// # Concurrency
//
// Layers and labs are validated sequentially. A Validator holds only immutable
// state and may serve concurrent requests. The harness imposes no timeout and
// does not stop early when ctx is canceled; probes receive ctx and may honor
// it themselves.
package validator
