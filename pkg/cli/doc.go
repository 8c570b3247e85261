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

// Package cli implements ccctl, the command-line companion of the AI-102
// command center.
//
// # Commands
//
// labs - Print the lab catalog:
//
//	ccctl labs [--catalog FILE] [--output FILE] [--format yaml|json|table]
//
// validate - Run the validation harness in-process:
//
//	ccctl validate [--lab ID] [--demo] [--fail-on-error] [--env-file FILE]
//
// The report carries a kind/apiVersion/metadata envelope, the per-lab layer
// results and a summary of status counts. --fail-on-error exits non-zero when
// any layer reports "error"; stubs and missing credentials do not fail.
//
// progress - Manage the local progress database:
//
//	ccctl progress show|complete LAB LAYER|reset [--db PATH]
//
// # Global Flags
//
//	--log-level    debug, info, warn or error (env LOG_LEVEL)
//	--version, -v  Show version information
//
// # Output Formats
//
// YAML is the default. JSON is suited to scripts and table to terminals.
package cli
