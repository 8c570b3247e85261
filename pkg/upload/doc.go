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

// Package upload reads single-file multipart uploads with a content type
// allow list and a size cap.
//
// A Policy names the form field, the maximum file size and the accepted
// media types. Read returns the file contents or a structured error:
//
//   - errors.ErrCodeInvalidRequest: missing field, unsupported type, empty file
//   - errors.ErrCodePayloadTooLarge: the file or request exceeds the cap
//
// Policies for the documents, image, audio and search text endpoints are
// predefined.
package upload
