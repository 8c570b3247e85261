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

// Package api wires the command center HTTP API: it loads configuration,
// builds the capability services, the lab validator and the progress store,
// and serves them through pkg/server.
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Validation:
//   - GET /api/validate        - every lab, layers in order
//   - GET /api/validate/{lab}  - one lab; unknown ids are reported in the body
//
// Capabilities (JSON or multipart bodies, POST unless noted):
//   - /api/generative/chat, /api/generative/image, /api/agents/chat
//   - /api/vision/analyze, /api/vision/ocr
//   - /api/language/analyze, /api/language/translate,
//     /api/language/speech-to-text, /api/language/text-to-speech
//   - /api/search/upload, /api/search/query
//   - /api/documents/analyze?model=, GET /api/documents/models
//   - /api/safety/analyze-text, /api/safety/check-prompt
//
// Progress:
//   - GET /api/progress
//   - POST /api/progress/complete
//   - DELETE /api/progress/reset
//
// System endpoints (no rate limiting): GET /health, GET /ready, GET /metrics.
package api
