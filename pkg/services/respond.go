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

package services

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ai102-labs/command-center/pkg/defaults"
	cnserrors "github.com/ai102-labs/command-center/pkg/errors"
	"github.com/ai102-labs/command-center/pkg/server"
)

// WriteError responds with the structured error carried by err. Errors
// without a code are logged and reported as a generic internal error so that
// their text never reaches the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if cnserrors.CodeOf(err) == "" {
		slog.Error("capability failed",
			"path", r.URL.Path,
			"error", err)
		server.WriteError(w, r, http.StatusInternalServerError, cnserrors.ErrCodeInternal,
			"Internal server error", true, nil)
		return
	}

	slog.Debug("capability returned structured error",
		"path", r.URL.Path,
		"error", err)
	server.WriteErrorFromErr(w, r, err, fallback, nil)
}

// RequireMethod writes a 405 and returns false unless r uses method.
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
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

// Context returns the request context bounded by the capability handler
// timeout.
func Context(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), defaults.ServiceHandlerTimeout)
}
