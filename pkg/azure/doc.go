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

// Package azure provides the HTTP transport shared by capability clients
// that call Azure AI REST endpoints.
//
// Client wraps a pooled *http.Client with connect, TLS and response header
// timeouts taken from pkg/defaults, a minimum of TLS 1.2 and a fixed
// User-Agent. DoJSON encodes a request body, sends it with caller headers and
// decodes a JSON response, translating non-2xx responses into structured
// errors:
//
//	401, 403     -> errors.ErrCodeUnauthorized
//	404          -> errors.ErrCodeNotFound
//	400, 422     -> errors.ErrCodeInvalidRequest
//	408          -> errors.ErrCodeTimeout
//	429          -> errors.ErrCodeRateLimitExceeded
//	5xx          -> errors.ErrCodeUnavailable
//	anything else-> errors.ErrCodeInternal
//
// Response bodies of failed calls are kept in the error context, never in the
// message.
package azure
