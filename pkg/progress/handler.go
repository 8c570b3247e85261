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

package progress

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ai102-labs/command-center/pkg/defaults"
	cnserrors "github.com/ai102-labs/command-center/pkg/errors"
	"github.com/ai102-labs/command-center/pkg/serializer"
	"github.com/ai102-labs/command-center/pkg/server"
)

// CompleteRequest is the body of POST /api/progress/complete.
type CompleteRequest struct {
	Lab   string `json:"lab"`
	Layer int    `json:"layer"`
}

// CompleteResponse reports a lab's completed layers after an update.
type CompleteResponse struct {
	OK              bool   `json:"ok"`
	Lab             string `json:"lab"`
	CompletedLayers []int  `json:"completed_layers"`
}

// OKResponse acknowledges a request.
type OKResponse struct {
	OK bool `json:"ok"`
}

func allow(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": []string{method},
		})
	return false
}

func storeFailed(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg, "error", err)
	server.WriteError(w, r, http.StatusInternalServerError, cnserrors.ErrCodeInternal,
		msg, true, nil)
}

// HandleGet serves GET /api/progress.
func (s *Store) HandleGet(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaults.ProgressHandlerTimeout)
	defer cancel()

	p, err := s.Get(ctx)
	if err != nil {
		storeFailed(w, r, "Failed to read progress", err)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, p)
}

// HandleComplete serves POST /api/progress/complete.
func (s *Store) HandleComplete(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaults.ProgressHandlerTimeout)
	defer cancel()

	var req CompleteRequest
	if err := serializer.DecodeJSON(r, &req, defaults.MaxJSONBodyBytes); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid progress request", nil)
		return
	}
	if err := Validate(req.Lab, req.Layer); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid progress request", nil)
		return
	}

	layers, err := s.Complete(ctx, req.Lab, req.Layer)
	if err != nil {
		storeFailed(w, r, "Failed to save progress", err)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, CompleteResponse{OK: true, Lab: req.Lab, CompletedLayers: layers})
}

// HandleReset serves DELETE /api/progress/reset.
func (s *Store) HandleReset(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodDelete) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaults.ProgressHandlerTimeout)
	defer cancel()

	if err := s.Reset(ctx); err != nil {
		storeFailed(w, r, "Failed to reset progress", err)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, OKResponse{OK: true})
}
