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

// Package documents exposes Azure AI Document Intelligence: running prebuilt
// models over uploaded documents and listing the models offered.
package documents

import (
	"context"
	"net/http"
	"strings"

	"github.com/ai102-labs/command-center/pkg/config"
	cnserrors "github.com/ai102-labs/command-center/pkg/errors"
	"github.com/ai102-labs/command-center/pkg/serializer"
	"github.com/ai102-labs/command-center/pkg/services"
	"github.com/ai102-labs/command-center/pkg/services/mock"
	"github.com/ai102-labs/command-center/pkg/upload"
)

// DefaultModel is used when a request names no model.
const DefaultModel = "prebuilt-invoice"

var models = []services.DocumentModel{
	{ID: "prebuilt-invoice", Name: "Invoice", Description: "Extract fields from invoices"},
	{ID: "prebuilt-receipt", Name: "Receipt", Description: "Extract fields from receipts"},
	{ID: "prebuilt-idDocument", Name: "ID Document", Description: "Extract fields from ID documents"},
	{ID: "prebuilt-businessCard", Name: "Business Card", Description: "Extract contact info from business cards"},
	{ID: "prebuilt-tax.us.w2", Name: "W-2", Description: "Extract fields from W-2 tax forms"},
}

// Models returns the prebuilt models offered by the UI.
func Models() []services.DocumentModel {
	out := make([]services.DocumentModel, len(models))
	copy(out, models)
	return out
}

// Service calls the Document Intelligence endpoint.
type Service struct {
	demo  bool
	creds config.Credentials
}

// New returns a Service for the given settings.
func New(cfg *config.Settings) *Service {
	return &Service{demo: cfg.DemoMode, creds: cfg.DocumentIntelligence}
}

// AnalyzeDocument runs modelID over the document and returns extracted
// fields, tables and pages.
func (s *Service) AnalyzeDocument(ctx context.Context, document []byte, modelID string) (services.DocumentAnalysis, error) {
	if modelID == "" {
		modelID = DefaultModel
	}
	if s.demo {
		return mock.AnalyzeDocument(modelID), nil
	}
	return services.DocumentAnalysis{}, cnserrors.NotImplemented("documents.analyze_document")
}

// ModelsResponse lists the available models.
type ModelsResponse struct {
	Models []services.DocumentModel `json:"models"`
}

// HandleAnalyze serves POST /api/documents/analyze?model=ID.
func (s *Service) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !services.RequireMethod(w, r, http.MethodPost) {
		return
	}
	ctx, cancel := services.Context(r)
	defer cancel()

	f, err := upload.Read(w, r, upload.Documents)
	if err != nil {
		services.WriteError(w, r, err, "Invalid document upload")
		return
	}

	res, err := s.AnalyzeDocument(ctx, f.Data, strings.TrimSpace(r.URL.Query().Get("model")))
	if err != nil {
		services.WriteError(w, r, err, "Document analysis failed")
		return
	}
	serializer.RespondJSON(w, http.StatusOK, res)
}

// HandleModels serves GET /api/documents/models.
func (s *Service) HandleModels(w http.ResponseWriter, r *http.Request) {
	if !services.RequireMethod(w, r, http.MethodGet) {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, ModelsResponse{Models: Models()})
}
