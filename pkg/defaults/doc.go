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

// Package defaults provides centralized configuration constants for the
// command center backend.
//
// This package defines timeout values and request size limits used across the
// codebase. Centralizing these values ensures consistency and makes tuning
// easier.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - HTTP client timeouts: For outbound calls to cloud AI services
//   - Store timeouts: For local progress persistence
//
// # Upload Limits
//
// Multipart uploads are capped per capability. Documents accept the largest
// payloads, followed by audio, images and plain text search documents.
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(r.Context(), defaults.ServiceHandlerTimeout)
//	defer cancel()
package defaults
