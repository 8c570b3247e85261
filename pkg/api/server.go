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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ai102-labs/command-center/pkg/catalog"
	"github.com/ai102-labs/command-center/pkg/config"
	"github.com/ai102-labs/command-center/pkg/labs"
	"github.com/ai102-labs/command-center/pkg/logging"
	"github.com/ai102-labs/command-center/pkg/progress"
	"github.com/ai102-labs/command-center/pkg/server"
	"github.com/ai102-labs/command-center/pkg/validator"
)

const (
	name           = "ccd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/ai102-labs/command-center/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// Configuration comes from .env and the environment; see pkg/config.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithCORSOrigins(cfg.CORSOrigins...),
		server.WithHandler(a.routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// app holds everything the routes are served from.
type app struct {
	services  *labs.Services
	validator *validator.Validator
	progress  *progress.Store
}

func newApp(cfg *config.Settings) (*app, error) {
	cat, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load lab catalog: %w", err)
	}

	svc := labs.NewServices(cfg)

	v, err := validator.New(cat, labs.Registry(svc), validator.WithVersion(version))
	if err != nil {
		return nil, fmt.Errorf("failed to build validator: %w", err)
	}

	store, err := progress.Open(cfg.ProgressDBPath)
	if err != nil {
		return nil, err
	}

	slog.Info("application ready",
		"labs", cat.Len(),
		"demo", cfg.DemoMode,
		"progress", store.Path(),
	)

	return &app{services: svc, validator: v, progress: store}, nil
}

func (a *app) close() {
	if err := a.progress.Close(); err != nil {
		slog.Warn("failed to close progress store", "error", err)
	}
}

// routes maps every API pattern to its handler. Handlers check methods
// themselves so that a wrong method gets a structured 405.
func (a *app) routes() map[string]http.HandlerFunc {
	s := a.services
	return map[string]http.HandlerFunc{
		"/api/validate":       a.validator.HandleValidateAll,
		"/api/validate/{lab}": a.validator.HandleValidateLab,

		"/api/generative/chat":  s.OpenAI.HandleChat,
		"/api/generative/image": s.OpenAI.HandleImage,
		"/api/agents/chat":      s.OpenAI.HandleAgentChat,

		"/api/vision/analyze": s.Vision.HandleAnalyze,
		"/api/vision/ocr":     s.Vision.HandleOCR,

		"/api/language/analyze":        s.Language.HandleAnalyze,
		"/api/language/translate":      s.Language.HandleTranslate,
		"/api/language/speech-to-text": s.Language.HandleSpeechToText,
		"/api/language/text-to-speech": s.Language.HandleTextToSpeech,

		"/api/search/upload": s.Search.HandleUpload,
		"/api/search/query":  s.Search.HandleQuery,

		"/api/documents/analyze": s.Documents.HandleAnalyze,
		"/api/documents/models":  s.Documents.HandleModels,

		"/api/safety/analyze-text": s.Safety.HandleAnalyzeText,
		"/api/safety/check-prompt": s.Safety.HandleCheckPrompt,

		"/api/progress":          a.progress.HandleGet,
		"/api/progress/complete": a.progress.HandleComplete,
		"/api/progress/reset":    a.progress.HandleReset,
	}
}
