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

// Package language exposes the Azure AI Language, Translator and Speech
// capabilities of the language lab.
//
// Translation is implemented against the Translator v3 REST API and is the
// reference for how the other capabilities are expected to report missing
// credentials: it returns errors.Unconfigured when no key is set, which the
// lab validator reports as "implemented".
package language

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	xlang "golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/ai102-labs/command-center/pkg/azure"
	"github.com/ai102-labs/command-center/pkg/config"
	cnserrors "github.com/ai102-labs/command-center/pkg/errors"
	"github.com/ai102-labs/command-center/pkg/services"
	"github.com/ai102-labs/command-center/pkg/services/mock"
)

// Analysis types accepted by AnalyzeText.
const (
	AnalysisAll        = "all"
	AnalysisSentiment  = "sentiment"
	AnalysisKeyPhrases = "keyPhrases"
	AnalysisEntities   = "entities"
	AnalysisPII        = "pii"
	AnalysisLanguage   = "language"
)

// AutoDetect asks the translator to detect the source language.
const AutoDetect = "auto"

const translatorAPIVersion = "3.0"

// AnalysisTypes returns the accepted analysis types.
func AnalysisTypes() []string {
	return []string{AnalysisAll, AnalysisSentiment, AnalysisKeyPhrases, AnalysisEntities, AnalysisPII, AnalysisLanguage}
}

// Option configures a Service.
type Option func(*Service)

// WithClient sets the HTTP client used for REST calls.
func WithClient(c *azure.Client) Option {
	return func(s *Service) {
		s.client = c
	}
}

// Service calls the language, translation and speech endpoints.
type Service struct {
	demo       bool
	text       config.Credentials
	translator config.Regional
	speech     config.Regional
	client     *azure.Client
}

// New returns a Service for the given settings.
func New(cfg *config.Settings, opts ...Option) *Service {
	s := &Service{
		demo:       cfg.DemoMode,
		text:       cfg.AIServices,
		translator: cfg.Translator,
		speech:     cfg.Speech,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = azure.NewClient()
	}
	return s
}

// AnalyzeText runs the requested analysis type over text.
func (s *Service) AnalyzeText(ctx context.Context, text, analysisType string) (services.TextAnalysis, error) {
	if analysisType == "" {
		analysisType = AnalysisAll
	}
	if !validAnalysisType(analysisType) {
		return services.TextAnalysis{}, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			"unsupported analysis type", map[string]any{
				"type":    analysisType,
				"allowed": AnalysisTypes(),
			})
	}

	if s.demo {
		return filterAnalysis(mock.AnalyzeText(), analysisType), nil
	}
	return services.TextAnalysis{}, cnserrors.NotImplemented("language.analyze_text")
}

func validAnalysisType(t string) bool {
	for _, a := range AnalysisTypes() {
		if a == t {
			return true
		}
	}
	return false
}

// filterAnalysis keeps only the result for analysisType.
func filterAnalysis(a services.TextAnalysis, analysisType string) services.TextAnalysis {
	switch analysisType {
	case AnalysisSentiment:
		return services.TextAnalysis{Sentiment: a.Sentiment}
	case AnalysisKeyPhrases:
		return services.TextAnalysis{KeyPhrases: a.KeyPhrases}
	case AnalysisEntities:
		return services.TextAnalysis{Entities: a.Entities}
	case AnalysisPII:
		return services.TextAnalysis{PIIEntities: a.PIIEntities}
	case AnalysisLanguage:
		return services.TextAnalysis{Language: a.Language}
	default:
		return a
	}
}

type translateItem struct {
	Text string `json:"Text"`
}

type translateResult struct {
	DetectedLanguage *struct {
		Language string  `json:"language"`
		Score    float64 `json:"score"`
	} `json:"detectedLanguage,omitempty"`
	Translations []struct {
		Text string `json:"text"`
		To   string `json:"to"`
	} `json:"translations"`
}

// TranslateText translates text from source to target. A source of "auto"
// or "" lets the service detect the language.
func (s *Service) TranslateText(ctx context.Context, text, source, target string) (services.Translation, error) {
	if s.demo {
		return services.Translation{Text: mock.TranslateText()}, nil
	}

	to, err := parseLanguage(target)
	if err != nil {
		return services.Translation{}, err
	}
	var from string
	if source != "" && !strings.EqualFold(source, AutoDetect) {
		if from, err = parseLanguage(source); err != nil {
			return services.Translation{}, err
		}
	}

	if !s.translator.Configured() {
		return services.Translation{}, cnserrors.Unconfigured("Azure Translator is not configured")
	}

	q := url.Values{}
	q.Set("api-version", translatorAPIVersion)
	q.Set("to", to)
	if from != "" {
		q.Set("from", from)
	}
	endpoint := strings.TrimRight(s.translator.Endpoint, "/") + "/translate?" + q.Encode()

	h := http.Header{}
	h.Set(azure.HeaderSubscriptionKey, s.translator.Key)
	if s.translator.Region != "" {
		h.Set(azure.HeaderSubscriptionRegion, s.translator.Region)
	}

	var out []translateResult
	if err := s.client.DoJSON(ctx, http.MethodPost, endpoint, h, []translateItem{{Text: text}}, &out); err != nil {
		return services.Translation{}, cnserrors.Wrap(cnserrors.CodeOf(err), "translation request failed", err)
	}
	if len(out) == 0 || len(out[0].Translations) == 0 {
		return services.Translation{}, cnserrors.New(cnserrors.ErrCodeInternal, "translator returned no translations")
	}

	res := services.Translation{Text: out[0].Translations[0].Text}
	if d := out[0].DetectedLanguage; d != nil && from == "" {
		res.Detected = describeLanguage(d.Language, d.Score)
	}
	return res, nil
}

// parseLanguage validates a BCP 47 code and returns its canonical form.
func parseLanguage(code string) (string, error) {
	tag, err := xlang.Parse(strings.TrimSpace(code))
	if err != nil || tag == xlang.Und {
		return "", cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			"invalid language code", map[string]any{"code": code})
	}
	return tag.String(), nil
}

func describeLanguage(code string, score float64) *services.DetectedLanguage {
	d := &services.DetectedLanguage{ISO: code, Name: code, Confidence: score}
	if tag, err := xlang.Parse(code); err == nil {
		if name := display.English.Languages().Name(tag); name != "" {
			d.Name = name
		}
	}
	return d
}

// SpeechToText transcribes WAV audio.
func (s *Service) SpeechToText(ctx context.Context, audio []byte) (string, error) {
	if s.demo {
		return mock.SpeechToText(), nil
	}
	return "", cnserrors.NotImplemented("language.speech_to_text")
}

// TextToSpeech synthesizes text and returns a base64 data URL.
func (s *Service) TextToSpeech(ctx context.Context, text string) (string, error) {
	if s.demo {
		return mock.TextToSpeech(), nil
	}
	return "", cnserrors.NotImplemented("language.text_to_speech")
}
