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

// Package serializer provides utilities for serializing data to various formats.
//
// The package supports three output formats:
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable configuration format
//   - Table: Column output for values implementing Tabular
//
// Usage:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer writer.Close()
//	if err := writer.Serialize(ctx, report); err != nil {
//		return err
//	}
//
// For HTTP handlers:
//
//	var req TranslateRequest
//	if err := serializer.DecodeJSON(r, &req, defaults.MaxJSONBodyBytes); err != nil {
//		server.WriteErrorFromErr(w, r, err, "Invalid request body", nil)
//		return
//	}
//	serializer.RespondJSON(w, http.StatusOK, resp)
package serializer
