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

package language

import (
	"net/http"
	"strings"

	"github.com/ai102-labs/command-center/pkg/defaults"
	cnserrors "github.com/ai102-labs/command-center/pkg/errors"
	"github.com/ai102-labs/command-center/pkg/serializer"
	"github.com/ai102-labs/command-center/pkg/services"
	"github.com/ai102-labs/command-center/pkg/upload"
)

// AnalyzeRequest is the body of POST /api/language/analyze.
type AnalyzeRequest struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// TranslateRequest is the body of POST /api/language/translate.
type TranslateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// SpeechRequest is the body of POST /api/language/text-to-speech.
type SpeechRequest struct {
	Text string `json:"text"`
}

// TranscriptResponse carries recognized speech.
type TranscriptResponse struct {
	Text string `json:"text"`
}

// AudioResponse carries synthesized speech as a data URL.
type AudioResponse struct {
	AudioURL string `json:"audio_url"`
}

func requireText(text string) error {
	if strings.TrimSpace(text) == "" {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "text cannot be empty")
	}
	return nil
}

// HandleAnalyze serves POST /api/language/analyze.
func (s *Service) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !services.RequireMethod(w, r, http.MethodPost) {
		return
	}
	ctx, cancel := services.Context(r)
	defer cancel()

	var req AnalyzeRequest
	if err := serializer.DecodeJSON(r, &req, defaults.MaxJSONBodyBytes); err != nil {
		services.WriteError(w, r, err, "Invalid analysis request")
		return
	}
	if err := requireText(req.Text); err != nil {
		services.WriteError(w, r, err, "Invalid analysis request")
		return
	}

	res, err := s.AnalyzeText(ctx, req.Text, req.Type)
	if err != nil {
		services.WriteError(w, r, err, "Text analysis failed")
		return
	}
	serializer.RespondJSON(w, http.StatusOK, res)
}

// HandleTranslate serves POST /api/language/translate.
func (s *Service) HandleTranslate(w http.ResponseWriter, r *http.Request) {
	if !services.RequireMethod(w, r, http.MethodPost) {
		return
	}
	ctx, cancel := services.Context(r)
	defer cancel()

	var req TranslateRequest
	if err := serializer.DecodeJSON(r, &req, defaults.MaxJSONBodyBytes); err != nil {
		services.WriteError(w, r, err, "Invalid translation request")
		return
	}
	if err := requireText(req.Text); err != nil {
		services.WriteError(w, r, err, "Invalid translation request")
		return
	}

	res, err := s.TranslateText(ctx, req.Text, req.Source, req.Target)
	if err != nil {
		services.WriteError(w, r, err, "Translation failed")
		return
	}
	serializer.RespondJSON(w, http.StatusOK, res)
}

// HandleSpeechToText serves POST /api/language/speech-to-text.
func (s *Service) HandleSpeechToText(w http.ResponseWriter, r *http.Request) {
	if !services.RequireMethod(w, r, http.MethodPost) {
		return
	}
	ctx, cancel := services.Context(r)
	defer cancel()

	f, err := upload.Read(w, r, upload.Audio)
	if err != nil {
		services.WriteError(w, r, err, "Invalid audio upload")
		return
	}

	text, err := s.SpeechToText(ctx, f.Data)
	if err != nil {
		services.WriteError(w, r, err, "Speech recognition failed")
		return
	}
	serializer.RespondJSON(w, http.StatusOK, TranscriptResponse{Text: text})
}

// HandleTextToSpeech serves POST /api/language/text-to-speech.
func (s *Service) HandleTextToSpeech(w http.ResponseWriter, r *http.Request) {
	if !services.RequireMethod(w, r, http.MethodPost) {
		return
	}
	ctx, cancel := services.Context(r)
	defer cancel()

	var req SpeechRequest
	if err := serializer.DecodeJSON(r, &req, defaults.MaxJSONBodyBytes); err != nil {
		services.WriteError(w, r, err, "Invalid speech request")
		return
	}
	if err := requireText(req.Text); err != nil {
		services.WriteError(w, r, err, "Invalid speech request")
		return
	}

	audio, err := s.TextToSpeech(ctx, req.Text)
	if err != nil {
		services.WriteError(w, r, err, "Speech synthesis failed")
		return
	}
	serializer.RespondJSON(w, http.StatusOK, AudioResponse{AudioURL: audio})
}
