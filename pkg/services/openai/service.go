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

// Package openai exposes the Azure OpenAI capabilities used by the GenAI lab
// and the agent workshop: chat completion, image generation and chat with
// tool calls. Chat can be grounded in search results when a Retriever is
// configured.
package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/ai102-labs/command-center/pkg/config"
	cnserrors "github.com/ai102-labs/command-center/pkg/errors"
	"github.com/ai102-labs/command-center/pkg/services"
	"github.com/ai102-labs/command-center/pkg/services/mock"
)

// Retriever finds documents relevant to a query.
type Retriever interface {
	SearchDocuments(ctx context.Context, query string) ([]services.SearchResult, error)
}

// Option configures a Service.
type Option func(*Service)

// WithRetriever grounds RAG chat in r.
func WithRetriever(r Retriever) Option {
	return func(s *Service) {
		s.retriever = r
	}
}

// Service calls Azure OpenAI deployments.
type Service struct {
	demo      bool
	settings  config.OpenAI
	retriever Retriever
}

// New returns a Service for the given settings.
func New(cfg *config.Settings, opts ...Option) *Service {
	s := &Service{
		demo:     cfg.DemoMode,
		settings: cfg.OpenAI,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ChatCompletion sends messages to the chat deployment and returns the
// assistant's reply.
func (s *Service) ChatCompletion(ctx context.Context, messages []services.ChatMessage, opts services.ChatOptions) (string, error) {
	if s.demo {
		return mock.ChatCompletion(), nil
	}
	return "", cnserrors.NotImplemented("openai.chat_completion")
}

// GenerateImage returns the URL of an image generated from prompt.
func (s *Service) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if s.demo {
		return mock.GenerateImage(), nil
	}
	return "", cnserrors.NotImplemented("openai.generate_image")
}

// ChatWithTools answers as an agent following instructions with the named
// tools available.
func (s *Service) ChatWithTools(ctx context.Context, messages []services.ChatMessage, instructions string, tools []string) (services.AgentReply, error) {
	if s.demo {
		return mock.ChatWithTools(), nil
	}
	return services.AgentReply{}, cnserrors.NotImplemented("openai.chat_with_tools")
}

// GroundedChat retrieves documents for the last user message, adds them as
// context and completes the chat. It returns the reply and the sources used.
func (s *Service) GroundedChat(ctx context.Context, messages []services.ChatMessage, opts services.ChatOptions) (string, []string, error) {
	if s.retriever == nil {
		return "", nil, cnserrors.Unconfigured("search retriever is not configured")
	}

	query := lastUserMessage(messages)
	if query == "" {
		return "", nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "no user message to ground")
	}

	docs, err := s.retriever.SearchDocuments(ctx, query)
	if err != nil {
		return "", nil, err
	}

	grounded := make([]services.ChatMessage, 0, len(messages)+1)
	grounded = append(grounded, services.ChatMessage{Role: "system", Content: groundingPrompt(docs)})
	grounded = append(grounded, messages...)

	reply, err := s.ChatCompletion(ctx, grounded, opts)
	if err != nil {
		return "", nil, err
	}
	return reply, sources(docs), nil
}

func lastUserMessage(messages []services.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" && strings.TrimSpace(messages[i].Content) != "" {
			return messages[i].Content
		}
	}
	return ""
}

func groundingPrompt(docs []services.SearchResult) string {
	var b strings.Builder
	b.WriteString("Answer using only the sources below. Cite the source name for each fact.\n")
	for i, d := range docs {
		fmt.Fprintf(&b, "\n[%d] %s\n%s\n", i+1, d.Source, d.Content)
	}
	return b.String()
}

// sources returns the distinct document names in result order.
func sources(docs []services.SearchResult) []string {
	seen := make(map[string]bool, len(docs))
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		if d.Source == "" || seen[d.Source] {
			continue
		}
		seen[d.Source] = true
		out = append(out, d.Source)
	}
	return out
}
