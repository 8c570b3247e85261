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

package serializer

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/ai102-labs/command-center/pkg/errors"
)

// RespondJSON writes a JSON response with the given status code and data.
// It buffers the JSON encoding before writing headers to prevent partial responses.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// Connection is broken, log but can't recover
		slog.Warn("response write failed", "error", err)
	}
}

// DecodeJSON decodes a JSON request body of at most limit bytes into v.
// Unknown fields are ignored. Failures are returned as structured errors:
// INVALID_REQUEST for malformed or empty bodies, PAYLOAD_TOO_LARGE when the
// body exceeds limit.
func DecodeJSON(r *http.Request, v any, limit int64) error {
	if r.Body == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "request body is required")
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read request body", err)
	}
	if int64(len(body)) > limit {
		return errors.NewWithContext(errors.ErrCodePayloadTooLarge, "request body too large",
			map[string]any{"limit": limit})
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return errors.New(errors.ErrCodeInvalidRequest, "request body is required")
	}

	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid JSON body", err)
	}
	return nil
}
