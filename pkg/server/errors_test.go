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

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cnserrors "github.com/ai102-labs/command-center/pkg/errors"
)

func TestCodeMapping(t *testing.T) {
	tests := []struct {
		code      cnserrors.ErrorCode
		status    int
		retryable bool
	}{
		{cnserrors.ErrCodeInvalidRequest, http.StatusBadRequest, false},
		{cnserrors.ErrCodeUnauthorized, http.StatusUnauthorized, false},
		{cnserrors.ErrCodeNotFound, http.StatusNotFound, false},
		{cnserrors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed, false},
		{cnserrors.ErrCodePayloadTooLarge, http.StatusRequestEntityTooLarge, false},
		{cnserrors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests, true},
		{cnserrors.ErrCodeNotImplemented, http.StatusNotImplemented, false},
		{cnserrors.ErrCodeUnconfigured, http.StatusServiceUnavailable, false},
		{cnserrors.ErrCodeUnavailable, http.StatusServiceUnavailable, true},
		{cnserrors.ErrCodeTimeout, http.StatusGatewayTimeout, true},
		{cnserrors.ErrCodeInternal, http.StatusInternalServerError, true},
		{cnserrors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatusFromCode(tt.code))
			assert.Equal(t, tt.retryable, retryableFromCode(tt.code))
		})
	}
}

func TestMergeDetails(t *testing.T) {
	assert.Nil(t, mergeDetails(nil, nil))
	assert.Nil(t, mergeDetails(map[string]any{}, map[string]any{}))

	a := map[string]any{"a": 1, "shared": "old"}
	b := map[string]any{"b": 2, "shared": "new"}
	assert.Equal(t, map[string]any{"a": 1, "b": 2, "shared": "new"}, mergeDetails(a, b))
	assert.Equal(t, "old", a["shared"], "inputs are not modified")
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestWriteError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	rec := httptest.NewRecorder()

	WriteError(rec, req, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest, "bad request", false, map[string]any{"k": "v"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
	assert.Equal(t, "bad request", resp.Message)
	assert.Equal(t, "req-123", resp.RequestID)
	assert.False(t, resp.Retryable)
	assert.Equal(t, map[string]any{"k": "v"}, resp.Details)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestWriteErrorFromErr(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		extra       map[string]any
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails map[string]any
		retryable   bool
	}{
		{
			name:        "structured error keeps code and context, not cause",
			err:         cnserrors.WrapWithContext(cnserrors.ErrCodeUnavailable, "translator unavailable", errors.New("dial tcp: refused"), map[string]any{"service": "translator"}),
			extra:       map[string]any{"extra": "yes"},
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    "SERVICE_UNAVAILABLE",
			wantMessage: "translator unavailable",
			wantDetails: map[string]any{"service": "translator", "extra": "yes"},
			retryable:   true,
		},
		{
			name:        "wrapped stub is 501",
			err:         fmt.Errorf("probe: %w", cnserrors.NotImplemented("vision.ocr_image")),
			wantStatus:  http.StatusNotImplemented,
			wantCode:    "NOT_IMPLEMENTED",
			wantMessage: "vision.ocr_image is not implemented yet",
			wantDetails: map[string]any{"function": "vision.ocr_image"},
		},
		{
			name:        "missing credentials is 503",
			err:         cnserrors.Unconfigured("Azure Translator is not configured"),
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    "NOT_CONFIGURED",
			wantMessage: "Azure Translator is not configured",
		},
		{
			name:        "plain error falls back to internal",
			err:         errors.New("boom"),
			extra:       map[string]any{"x": "y"},
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL",
			wantMessage: "fallback",
			wantDetails: map[string]any{"x": "y"},
			retryable:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteErrorFromErr(rec, httptest.NewRequest(http.MethodPost, "/api/test", nil), tt.err, "fallback", tt.extra)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, tt.wantDetails, resp.Details)
			assert.Equal(t, tt.retryable, resp.Retryable)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestWriteErrorFromErr_UpstreamTextNotEchoed(t *testing.T) {
	upstream := &url.Error{
		Op:  "Post",
		URL: "https://secret-translator.cognitiveservices.azure.com/translate?api-version=3.0",
		Err: errors.New("dial tcp 10.0.0.7:443: connect: connection refused"),
	}

	tests := []struct {
		name string
		err  error
	}{
		{"structured cause", cnserrors.Wrap(cnserrors.ErrCodeUnavailable, "translation request failed", upstream)},
		{"plain error", upstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteErrorFromErr(rec, httptest.NewRequest(http.MethodPost, "/api/language/translate", nil), tt.err, "Translation failed", nil)

			body := rec.Body.String()
			assert.NotContains(t, body, "secret-translator")
			assert.NotContains(t, body, "10.0.0.7")
		})
	}
}
