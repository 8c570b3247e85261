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

package upload

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/ai102-labs/command-center/pkg/defaults"
	cnserrors "github.com/ai102-labs/command-center/pkg/errors"
)

// DefaultField is the multipart field carrying the file.
const DefaultField = "file"

// multipartOverhead allows for boundaries and headers around the file.
const multipartOverhead = 1 << 20

// maxMemory is how much of a form is kept in memory before spilling to disk.
const maxMemory = 8 << 20

// Policy constrains an upload.
type Policy struct {
	// Field is the form field name. Defaults to DefaultField.
	Field string

	// MaxBytes is the largest accepted file.
	MaxBytes int64

	// Allowed maps accepted media types to true.
	Allowed map[string]bool

	// Label names the accepted types in error messages, e.g. "PDF, PNG".
	Label string
}

// File is an uploaded file read into memory.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Size returns the file length in bytes.
func (f *File) Size() int {
	return len(f.Data)
}

// Documents accepts document images and PDFs.
var Documents = Policy{
	MaxBytes: defaults.MaxDocumentUploadBytes,
	Allowed:  set("application/pdf", "image/jpeg", "image/png", "image/tiff", "image/bmp"),
	Label:    "PDF, JPEG, PNG, TIFF, BMP",
}

// Images accepts common image formats.
var Images = Policy{
	MaxBytes: defaults.MaxImageUploadBytes,
	Allowed:  set("image/jpeg", "image/png", "image/gif", "image/bmp", "image/webp", "image/tiff"),
	Label:    "JPEG, PNG, GIF, BMP, WEBP, TIFF",
}

// Audio accepts recorded speech.
var Audio = Policy{
	MaxBytes: defaults.MaxAudioUploadBytes,
	Allowed:  set("audio/wav", "audio/x-wav", "audio/wave", "audio/webm", "audio/ogg", "audio/mpeg"),
	Label:    "WAV, WEBM, OGG, MP3",
}

// Text accepts documents to index for search.
var Text = Policy{
	MaxBytes: defaults.MaxSearchUploadBytes,
	Allowed:  set("text/plain", "text/markdown", "application/json"),
	Label:    "TXT, MD, JSON",
}

func set(types ...string) map[string]bool {
	m := make(map[string]bool, len(types))
	for _, t := range types {
		m[t] = true
	}
	return m
}

// Read parses the multipart request and returns the file named by the
// policy's field.
func Read(w http.ResponseWriter, r *http.Request, p Policy) (*File, error) {
	field := p.Field
	if field == "" {
		field = DefaultField
	}

	r.Body = http.MaxBytesReader(w, r.Body, p.MaxBytes+multipartOverhead)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return nil, tooLarge(p)
		}
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "invalid multipart form", err)
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	f, fh, err := r.FormFile(field)
	if err != nil {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("missing file field %q", field),
			map[string]any{"field": field})
	}
	defer f.Close()

	ct := mediaType(fh.Header.Get("Content-Type"))
	if !p.Allowed[ct] {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("Unsupported file type '%s'. Allowed: %s.", ct, p.Label),
			map[string]any{"contentType": ct})
	}

	if fh.Size > p.MaxBytes {
		return nil, tooLarge(p)
	}
	data, err := io.ReadAll(io.LimitReader(f, p.MaxBytes+1))
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "failed to read uploaded file", err)
	}
	if int64(len(data)) > p.MaxBytes {
		return nil, tooLarge(p)
	}
	if len(data) == 0 {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "Uploaded file is empty.")
	}

	return &File{Name: fh.Filename, ContentType: ct, Data: data}, nil
}

func tooLarge(p Policy) error {
	return cnserrors.NewWithContext(cnserrors.ErrCodePayloadTooLarge,
		fmt.Sprintf("File too large. Maximum is %d MB.", p.MaxBytes>>20),
		map[string]any{"maxBytes": p.MaxBytes})
}

// mediaType strips parameters and lowercases ct.
func mediaType(ct string) string {
	if mt, _, err := mime.ParseMediaType(ct); err == nil {
		return mt
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
