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

// Package safety exposes Azure AI Content Safety: harm category analysis and
// prompt shields for the responsible AI lab.
package safety

import (
	"context"
	"net/http"
	"strings"

	"github.com/ai102-labs/command-center/pkg/config"
	"github.com/ai102-labs/command-center/pkg/defaults"
	cnserrors "github.com/ai102-labs/command-center/pkg/errors"
	"github.com/ai102-labs/command-center/pkg/serializer"
	"github.com/ai102-labs/command-center/pkg/services"
	"github.com/ai102-labs/command-center/pkg/services/mock"
)

// SeverityLabel names a 0-6 severity the way the UI shows it.
func SeverityLabel(severity int) string {
	switch {
	case severity <= 0:
		return "Safe"
	case severity <= 2:
		return "Low"
	case severity <= 4:
		return "Medium"
	default:
		return "High"
	}
}

// Service calls the Content Safety endpoint.
type Service struct {
	demo  bool
	creds config.Credentials
}

// New returns a Service for the given settings.
func New(cfg *config.Settings) *Service {
	return &Service{demo: cfg.DemoMode, creds: cfg.ContentSafety}
}

// AnalyzeText reports the severity of text in each harm category.
func (s *Service) AnalyzeText(ctx context.Context, text string) (services.SafetyAnalysis, error) {
	if s.demo {
		return mock.SafetyAnalyzeText(), nil
	}
	return services.SafetyAnalysis{}, cnserrors.NotImplemented("safety.analyze_text")
}

// CheckPrompt reports whether prompt looks like an injection or jailbreak
// attempt.
func (s *Service) CheckPrompt(ctx context.Context, prompt string) (services.PromptCheck, error) {
	if s.demo {
		return mock.CheckPrompt(), nil
	}
	return services.PromptCheck{}, cnserrors.NotImplemented("safety.check_prompt")
}

// TextRequest is the body of POST /api/safety/analyze-text.
type TextRequest struct {
	Text string `json:"text"`
}

// PromptRequest is the body of POST /api/safety/check-prompt.
type PromptRequest struct {
	Prompt string `json:"prompt"`
}

// HandleAnalyzeText serves POST /api/safety/analyze-text.
func (s *Service) HandleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	if !services.RequireMethod(w, r, http.MethodPost) {
		return
	}
	ctx, cancel := services.Context(r)
	defer cancel()

	var req TextRequest
	if err := serializer.DecodeJSON(r, &req, defaults.MaxJSONBodyBytes); err != nil {
		services.WriteError(w, r, err, "Invalid safety request")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		services.WriteError(w, r, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "text cannot be empty"), "Invalid safety request")
		return
	}

	res, err := s.AnalyzeText(ctx, req.Text)
	if err != nil {
		services.WriteError(w, r, err, "Content safety analysis failed")
		return
	}
	for i := range res.Categories {
		if res.Categories[i].Label == "" {
			res.Categories[i].Label = SeverityLabel(res.Categories[i].Severity)
		}
	}
	serializer.RespondJSON(w, http.StatusOK, res)
}

// HandleCheckPrompt serves POST /api/safety/check-prompt.
func (s *Service) HandleCheckPrompt(w http.ResponseWriter, r *http.Request) {
	if !services.RequireMethod(w, r, http.MethodPost) {
		return
	}
	ctx, cancel := services.Context(r)
	defer cancel()

	var req PromptRequest
	if err := serializer.DecodeJSON(r, &req, defaults.MaxJSONBodyBytes); err != nil {
		services.WriteError(w, r, err, "Invalid prompt check request")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		services.WriteError(w, r, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "prompt cannot be empty"), "Invalid prompt check request")
		return
	}

	res, err := s.CheckPrompt(ctx, req.Prompt)
	if err != nil {
		services.WriteError(w, r, err, "Prompt check failed")
		return
	}
	serializer.RespondJSON(w, http.StatusOK, res)
}
