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

// Package search exposes the Azure AI Search capabilities of the RAG and
// knowledge mining labs: uploading documents to an index and querying it.
// The generative chat uses Service as its retriever.
package search

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/ai102-labs/command-center/pkg/config"
	"github.com/ai102-labs/command-center/pkg/defaults"
	cnserrors "github.com/ai102-labs/command-center/pkg/errors"
	"github.com/ai102-labs/command-center/pkg/serializer"
	"github.com/ai102-labs/command-center/pkg/services"
	"github.com/ai102-labs/command-center/pkg/services/mock"
	"github.com/ai102-labs/command-center/pkg/upload"
)

// Service calls an Azure AI Search index.
type Service struct {
	demo     bool
	settings config.Search
}

// New returns a Service for the given settings.
func New(cfg *config.Settings) *Service {
	return &Service{demo: cfg.DemoMode, settings: cfg.Search}
}

// Index returns the name of the target index.
func (s *Service) Index() string {
	return s.settings.Index
}

// UploadDocument adds a text document to the index.
func (s *Service) UploadDocument(ctx context.Context, filename, content string) error {
	if s.demo {
		return nil
	}
	return cnserrors.NotImplemented("search.upload_document")
}

// SearchDocuments queries the index and returns matches ordered by score.
func (s *Service) SearchDocuments(ctx context.Context, query string) ([]services.SearchResult, error) {
	if s.demo {
		return mock.SearchDocuments(), nil
	}
	return nil, cnserrors.NotImplemented("search.search_documents")
}

// QueryRequest is the body of POST /api/search/query.
type QueryRequest struct {
	Query string `json:"query"`
}

// QueryResponse lists matching documents.
type QueryResponse struct {
	Results []services.SearchResult `json:"results"`
}

// UploadResponse acknowledges an indexed document.
type UploadResponse struct {
	OK       bool   `json:"ok"`
	Filename string `json:"filename"`
}

// HandleUpload serves POST /api/search/upload.
func (s *Service) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if !services.RequireMethod(w, r, http.MethodPost) {
		return
	}
	ctx, cancel := services.Context(r)
	defer cancel()

	f, err := upload.Read(w, r, upload.Text)
	if err != nil {
		services.WriteError(w, r, err, "Invalid document upload")
		return
	}
	if !utf8.Valid(f.Data) {
		services.WriteError(w, r, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "document must be UTF-8 text"), "Invalid document upload")
		return
	}

	if err := s.UploadDocument(ctx, f.Name, string(f.Data)); err != nil {
		services.WriteError(w, r, err, "Document upload failed")
		return
	}
	serializer.RespondJSON(w, http.StatusOK, UploadResponse{OK: true, Filename: f.Name})
}

// HandleQuery serves POST /api/search/query.
func (s *Service) HandleQuery(w http.ResponseWriter, r *http.Request) {
	if !services.RequireMethod(w, r, http.MethodPost) {
		return
	}
	ctx, cancel := services.Context(r)
	defer cancel()

	var req QueryRequest
	if err := serializer.DecodeJSON(r, &req, defaults.MaxJSONBodyBytes); err != nil {
		services.WriteError(w, r, err, "Invalid search request")
		return
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		services.WriteError(w, r, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "query cannot be empty"), "Invalid search request")
		return
	}

	results, err := s.SearchDocuments(ctx, query)
	if err != nil {
		services.WriteError(w, r, err, "Search failed")
		return
	}
	if results == nil {
		results = []services.SearchResult{}
	}
	serializer.RespondJSON(w, http.StatusOK, QueryResponse{Results: results})
}
