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

// Package server provides the HTTP server used by the command center API.
//
// Every API handler passed with WithHandler is wrapped in the same middleware
// chain, outermost first:
//
//   - metrics: request count, latency and in-flight gauge per route pattern
//   - version: API version negotiation via application/vnd.ai102.cc.v1+json
//   - request ID: X-Request-Id, kept when it is a UUID, generated otherwise
//   - panic recovery: a generic 500 response, the panic is logged
//   - rate limiting: token bucket (golang.org/x/time/rate) shared by all routes
//   - logging: debug line per completed request
//
// The system routes /health, /ready and /metrics bypass the chain. When
// CORS origins are configured the whole mux is wrapped by github.com/rs/cors.
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr, which emit
// an ErrorResponse:
//
//	{
//	  "code": "NOT_IMPLEMENTED",
//	  "message": "vision.ocr_image is not implemented yet",
//	  "details": {"function": "vision.ocr_image"},
//	  "requestId": "3f0c...",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": false
//	}
//
// Error codes from pkg/errors map to HTTP status with HTTPStatusFromCode.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("ccd"),
//	    server.WithVersion(version),
//	    server.WithCORSOrigins("http://localhost:3000"),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/api/validate/{lab}": v.HandleValidateLab,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Configuration
//
// NewConfig reads PORT (default 8000), SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT
// and RATE_LIMIT_BURST from the environment. Run shuts down gracefully on
// SIGINT or SIGTERM; /ready reports 503 while starting and draining.
package server
