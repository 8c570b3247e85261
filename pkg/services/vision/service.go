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

// Package vision exposes the Azure AI Vision capabilities of the vision lab:
// image analysis and OCR with the Read API.
package vision

import (
	"context"
	"net/http"

	"github.com/ai102-labs/command-center/pkg/config"
	cnserrors "github.com/ai102-labs/command-center/pkg/errors"
	"github.com/ai102-labs/command-center/pkg/serializer"
	"github.com/ai102-labs/command-center/pkg/services"
	"github.com/ai102-labs/command-center/pkg/services/mock"
	"github.com/ai102-labs/command-center/pkg/upload"
)

// Service calls the Azure AI Services vision endpoints.
type Service struct {
	demo  bool
	creds config.Credentials
}

// New returns a Service for the given settings.
func New(cfg *config.Settings) *Service {
	return &Service{demo: cfg.DemoMode, creds: cfg.AIServices}
}

// AnalyzeImage describes an image with a caption, tags and detected objects.
func (s *Service) AnalyzeImage(ctx context.Context, image []byte) (services.ImageAnalysis, error) {
	if s.demo {
		return mock.AnalyzeImage(), nil
	}
	return services.ImageAnalysis{}, cnserrors.NotImplemented("vision.analyze_image")
}

// OCRImage extracts printed and handwritten lines from an image.
func (s *Service) OCRImage(ctx context.Context, image []byte) (services.OCRResult, error) {
	if s.demo {
		return mock.OCRImage(), nil
	}
	return services.OCRResult{}, cnserrors.NotImplemented("vision.ocr_image")
}

// HandleAnalyze serves POST /api/vision/analyze.
func (s *Service) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !services.RequireMethod(w, r, http.MethodPost) {
		return
	}
	ctx, cancel := services.Context(r)
	defer cancel()

	f, err := upload.Read(w, r, upload.Images)
	if err != nil {
		services.WriteError(w, r, err, "Invalid image upload")
		return
	}

	res, err := s.AnalyzeImage(ctx, f.Data)
	if err != nil {
		services.WriteError(w, r, err, "Image analysis failed")
		return
	}
	serializer.RespondJSON(w, http.StatusOK, res)
}

// HandleOCR serves POST /api/vision/ocr.
func (s *Service) HandleOCR(w http.ResponseWriter, r *http.Request) {
	if !services.RequireMethod(w, r, http.MethodPost) {
		return
	}
	ctx, cancel := services.Context(r)
	defer cancel()

	f, err := upload.Read(w, r, upload.Images)
	if err != nil {
		services.WriteError(w, r, err, "Invalid image upload")
		return
	}

	res, err := s.OCRImage(ctx, f.Data)
	if err != nil {
		services.WriteError(w, r, err, "OCR failed")
		return
	}
	if res.Text == nil {
		res.Text = []string{}
	}
	serializer.RespondJSON(w, http.StatusOK, res)
}
