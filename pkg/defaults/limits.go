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

package defaults

// Upload size limits in bytes.
const (
	// MaxDocumentUploadBytes caps document intelligence uploads (50 MB).
	MaxDocumentUploadBytes int64 = 50 << 20

	// MaxAudioUploadBytes caps speech-to-text uploads (25 MB).
	MaxAudioUploadBytes int64 = 25 << 20

	// MaxImageUploadBytes caps vision uploads (20 MB).
	MaxImageUploadBytes int64 = 20 << 20

	// MaxSearchUploadBytes caps documents uploaded to the search index (10 MB).
	MaxSearchUploadBytes int64 = 10 << 20

	// MaxJSONBodyBytes caps JSON request bodies.
	MaxJSONBodyBytes int64 = 1 << 20
)

// Progress tracking bounds.
const (
	// MaxLabIDLength is the longest lab identifier accepted by the progress store.
	MaxLabIDLength = 100

	// MaxLayerNumber is the highest layer number accepted by the progress store.
	MaxLayerNumber = 20
)
