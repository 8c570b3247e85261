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

// Package labs binds every non-conceptual lab layer to a probe that calls
// its capability with fixed test input.
//
// The bindings mirror the catalog in pkg/catalog: for example layer 3 of
// lab 05 translates "Hello" from "en" to "es". Probes ignore return values;
// only the error matters to the validator.
package labs

import (
	"context"

	"github.com/ai102-labs/command-center/pkg/config"
	"github.com/ai102-labs/command-center/pkg/services"
	"github.com/ai102-labs/command-center/pkg/services/documents"
	"github.com/ai102-labs/command-center/pkg/services/language"
	"github.com/ai102-labs/command-center/pkg/services/openai"
	"github.com/ai102-labs/command-center/pkg/services/safety"
	"github.com/ai102-labs/command-center/pkg/services/search"
	"github.com/ai102-labs/command-center/pkg/services/vision"
	"github.com/ai102-labs/command-center/pkg/validator"
)

// Fixed probe inputs.
var (
	fakeImage = []byte("fake-image-bytes")
	fakeAudio = []byte("fake-audio")
	hi        = []services.ChatMessage{{Role: "user", Content: "Hi"}}
)

// Services groups the capability services probed by the validator.
type Services struct {
	OpenAI    *openai.Service
	Vision    *vision.Service
	Language  *language.Service
	Search    *search.Service
	Documents *documents.Service
	Safety    *safety.Service
}

// NewServices builds every capability service from cfg. Generative chat is
// grounded in the search service.
func NewServices(cfg *config.Settings, opts ...language.Option) *Services {
	s := &Services{
		Vision:    vision.New(cfg),
		Language:  language.New(cfg, opts...),
		Search:    search.New(cfg),
		Documents: documents.New(cfg),
		Safety:    safety.New(cfg),
	}
	s.OpenAI = openai.New(cfg, openai.WithRetriever(s.Search))
	return s
}

// Registry returns the probes for every non-conceptual layer of the default
// catalog.
func Registry(s *Services) validator.Registry {
	return validator.Registry{
		{Lab: "01", Layer: 1}: func(ctx context.Context) error {
			_, err := s.OpenAI.ChatCompletion(ctx, hi, services.DefaultChatOptions())
			return err
		},
		{Lab: "01", Layer: 3}: func(ctx context.Context) error {
			_, err := s.OpenAI.GenerateImage(ctx, "A blue circle")
			return err
		},
		{Lab: "02", Layer: 2}: func(ctx context.Context) error {
			return s.Search.UploadDocument(ctx, "test_validate.txt", "validation test content")
		},
		{Lab: "02", Layer: 3}: func(ctx context.Context) error {
			_, err := s.Search.SearchDocuments(ctx, "test")
			return err
		},
		{Lab: "04", Layer: 1}: func(ctx context.Context) error {
			_, err := s.Vision.AnalyzeImage(ctx, fakeImage)
			return err
		},
		{Lab: "04", Layer: 3}: func(ctx context.Context) error {
			_, err := s.Vision.OCRImage(ctx, fakeImage)
			return err
		},
		{Lab: "05", Layer: 1}: func(ctx context.Context) error {
			_, err := s.Language.AnalyzeText(ctx, "Test sentence.", language.AnalysisSentiment)
			return err
		},
		{Lab: "05", Layer: 3}: func(ctx context.Context) error {
			_, err := s.Language.TranslateText(ctx, "Hello", "en", "es")
			return err
		},
		{Lab: "05", Layer: 4}: func(ctx context.Context) error {
			_, err := s.Language.SpeechToText(ctx, fakeAudio)
			return err
		},
		{Lab: "06", Layer: 1}: func(ctx context.Context) error {
			_, err := s.OpenAI.ChatWithTools(ctx, hi, "You are a test agent.", []string{"web_search"})
			return err
		},
		{Lab: "07", Layer: 1}: func(ctx context.Context) error {
			_, err := s.Safety.AnalyzeText(ctx, "Test sentence.")
			return err
		},
		{Lab: "07", Layer: 3}: func(ctx context.Context) error {
			_, err := s.Safety.CheckPrompt(ctx, "Test prompt.")
			return err
		},
	}
}
