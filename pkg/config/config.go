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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvDemoMode = "DEMO_MODE"

	EnvOpenAIEndpoint        = "AZURE_OPENAI_ENDPOINT"
	EnvOpenAIKey             = "AZURE_OPENAI_KEY"
	EnvOpenAIDeployment      = "AZURE_OPENAI_DEPLOYMENT"
	EnvOpenAIDalleDeployment = "AZURE_OPENAI_DALLE_DEPLOYMENT"
	EnvOpenAIAPIVersion      = "AZURE_OPENAI_API_VERSION"
	EnvAIServicesEndpoint    = "AZURE_AI_SERVICES_ENDPOINT"
	EnvAIServicesKey         = "AZURE_AI_SERVICES_KEY"
	EnvSearchEndpoint        = "AZURE_SEARCH_ENDPOINT"
	EnvSearchKey             = "AZURE_SEARCH_KEY"
	EnvSearchIndex           = "AZURE_SEARCH_INDEX"
	EnvDocIntelEndpoint      = "AZURE_DOCUMENT_INTELLIGENCE_ENDPOINT"
	EnvDocIntelKey           = "AZURE_DOCUMENT_INTELLIGENCE_KEY"
	EnvSpeechKey             = "AZURE_SPEECH_KEY"
	EnvSpeechRegion          = "AZURE_SPEECH_REGION"
	EnvTranslatorKey         = "AZURE_TRANSLATOR_KEY"
	EnvTranslatorRegion      = "AZURE_TRANSLATOR_REGION"
	EnvTranslatorEndpoint    = "AZURE_TRANSLATOR_ENDPOINT"
	EnvContentSafetyEndpoint = "AZURE_CONTENT_SAFETY_ENDPOINT"
	EnvContentSafetyKey      = "AZURE_CONTENT_SAFETY_KEY"
	EnvCORSOrigins           = "CORS_ORIGINS"
	EnvProgressDB            = "PROGRESS_DB"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultOpenAIDeployment      = "gpt-4o-mini"
	DefaultOpenAIDalleDeployment = "dall-e-3"
	DefaultOpenAIAPIVersion      = "2024-10-21"
	DefaultSearchIndex           = "ai102-index"
	DefaultTranslatorEndpoint    = "https://api.cognitive.microsofttranslator.com"
	DefaultCORSOrigin            = "http://localhost:3000"
	DefaultProgressDB            = "data/progress.db"
)

// Credentials is an endpoint and key pair for a keyed cloud service.
type Credentials struct {
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	Key      string `json:"-" yaml:"-"`
}

// Configured reports whether both endpoint and key are set.
func (c Credentials) Configured() bool {
	return c.Endpoint != "" && c.Key != ""
}

// OpenAI holds Azure OpenAI settings.
type OpenAI struct {
	Credentials     `json:",inline" yaml:",inline"`
	Deployment      string `json:"deployment" yaml:"deployment"`
	DalleDeployment string `json:"dalleDeployment" yaml:"dalleDeployment"`
	APIVersion      string `json:"apiVersion" yaml:"apiVersion"`
}

// Search holds Azure AI Search settings.
type Search struct {
	Credentials `json:",inline" yaml:",inline"`
	Index       string `json:"index" yaml:"index"`
}

// Regional holds settings for services addressed by key and region.
type Regional struct {
	Key      string `json:"-" yaml:"-"`
	Region   string `json:"region,omitempty" yaml:"region,omitempty"`
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
}

// Configured reports whether a key is set. Region is optional for global
// resources.
func (r Regional) Configured() bool {
	return r.Key != ""
}

// Settings is the full application configuration.
type Settings struct {
	DemoMode bool `json:"demoMode" yaml:"demoMode"`

	OpenAI               OpenAI      `json:"openai" yaml:"openai"`
	AIServices           Credentials `json:"aiServices" yaml:"aiServices"`
	Search               Search      `json:"search" yaml:"search"`
	DocumentIntelligence Credentials `json:"documentIntelligence" yaml:"documentIntelligence"`
	Speech               Regional    `json:"speech" yaml:"speech"`
	Translator           Regional    `json:"translator" yaml:"translator"`
	ContentSafety        Credentials `json:"contentSafety" yaml:"contentSafety"`

	CORSOrigins    []string `json:"corsOrigins" yaml:"corsOrigins"`
	ProgressDBPath string   `json:"progressDbPath" yaml:"progressDbPath"`
}

// Load applies the given .env files (missing files are ignored) and then
// builds Settings from the environment. With no files, ".env" is tried.
func Load(envFiles ...string) (*Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Debug("env file not found, skipping", "path", f)
				continue
			}
			return nil, fmt.Errorf("failed to load env file %q: %w", f, err)
		}
		slog.Debug("loaded env file", "path", f)
	}

	return FromEnv(os.Getenv)
}

// FromEnv builds Settings using getenv to look up variables.
func FromEnv(getenv func(string) string) (*Settings, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	demo := false
	if v := get(EnvDemoMode, ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", EnvDemoMode, v, err)
		}
		demo = b
	}

	s := &Settings{
		DemoMode: demo,
		OpenAI: OpenAI{
			Credentials: Credentials{
				Endpoint: get(EnvOpenAIEndpoint, ""),
				Key:      get(EnvOpenAIKey, ""),
			},
			Deployment:      get(EnvOpenAIDeployment, DefaultOpenAIDeployment),
			DalleDeployment: get(EnvOpenAIDalleDeployment, DefaultOpenAIDalleDeployment),
			APIVersion:      get(EnvOpenAIAPIVersion, DefaultOpenAIAPIVersion),
		},
		AIServices: Credentials{
			Endpoint: get(EnvAIServicesEndpoint, ""),
			Key:      get(EnvAIServicesKey, ""),
		},
		Search: Search{
			Credentials: Credentials{
				Endpoint: get(EnvSearchEndpoint, ""),
				Key:      get(EnvSearchKey, ""),
			},
			Index: get(EnvSearchIndex, DefaultSearchIndex),
		},
		DocumentIntelligence: Credentials{
			Endpoint: get(EnvDocIntelEndpoint, ""),
			Key:      get(EnvDocIntelKey, ""),
		},
		Speech: Regional{
			Key:    get(EnvSpeechKey, ""),
			Region: get(EnvSpeechRegion, ""),
		},
		Translator: Regional{
			Key:      get(EnvTranslatorKey, ""),
			Region:   get(EnvTranslatorRegion, ""),
			Endpoint: get(EnvTranslatorEndpoint, DefaultTranslatorEndpoint),
		},
		ContentSafety: Credentials{
			Endpoint: get(EnvContentSafetyEndpoint, ""),
			Key:      get(EnvContentSafetyKey, ""),
		},
		CORSOrigins:    splitList(get(EnvCORSOrigins, DefaultCORSOrigin)),
		ProgressDBPath: get(EnvProgressDB, DefaultProgressDB),
	}

	return s, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
