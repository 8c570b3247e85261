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

package openai

import (
	"net/http"
	"strings"

	"github.com/ai102-labs/command-center/pkg/defaults"
	cnserrors "github.com/ai102-labs/command-center/pkg/errors"
	"github.com/ai102-labs/command-center/pkg/serializer"
	"github.com/ai102-labs/command-center/pkg/services"
)

// ChatRequest is the body of POST /api/generative/chat.
type ChatRequest struct {
	Messages         []services.ChatMessage `json:"messages"`
	Model            string                 `json:"model,omitempty"`
	Temperature      *float64               `json:"temperature,omitempty"`
	TopP             *float64               `json:"top_p,omitempty"`
	MaxTokens        *int                   `json:"max_tokens,omitempty"`
	FrequencyPenalty *float64               `json:"frequency_penalty,omitempty"`
	PresencePenalty  *float64               `json:"presence_penalty,omitempty"`
	UseRAG           bool                   `json:"use_rag,omitempty"`
}

// Options merges the request's parameters over the defaults.
func (c *ChatRequest) Options() services.ChatOptions {
	o := services.DefaultChatOptions()
	o.Model = c.Model
	if c.Temperature != nil {
		o.Temperature = *c.Temperature
	}
	if c.TopP != nil {
		o.TopP = *c.TopP
	}
	if c.MaxTokens != nil {
		o.MaxTokens = *c.MaxTokens
	}
	if c.FrequencyPenalty != nil {
		o.FrequencyPenalty = *c.FrequencyPenalty
	}
	if c.PresencePenalty != nil {
		o.PresencePenalty = *c.PresencePenalty
	}
	return o
}

// Validate checks the request is usable.
func (c *ChatRequest) Validate() error {
	if len(c.Messages) == 0 {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "messages cannot be empty")
	}
	o := c.Options()
	switch {
	case o.Temperature < 0 || o.Temperature > 2:
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "temperature must be between 0 and 2")
	case o.TopP < 0 || o.TopP > 1:
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "top_p must be between 0 and 1")
	case o.MaxTokens < 1:
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "max_tokens must be positive")
	case o.FrequencyPenalty < -2 || o.FrequencyPenalty > 2:
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "frequency_penalty must be between -2 and 2")
	case o.PresencePenalty < -2 || o.PresencePenalty > 2:
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "presence_penalty must be between -2 and 2")
	}
	return nil
}

// ChatResponse is the reply to a chat request.
type ChatResponse struct {
	Message string   `json:"message"`
	Sources []string `json:"sources,omitempty"`
}

// ImageRequest is the body of POST /api/generative/image.
type ImageRequest struct {
	Prompt string `json:"prompt"`
}

// ImageResponse carries the generated image URL.
type ImageResponse struct {
	URL string `json:"url"`
}

// AgentConfig describes an agent built in the workshop UI.
type AgentConfig struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name,omitempty"`
	Instructions string   `json:"instructions"`
	Tools        []string `json:"tools"`
}

// AgentRequest is the body of POST /api/agents/chat.
type AgentRequest struct {
	AgentID  string                 `json:"agent_id,omitempty"`
	Messages []services.ChatMessage `json:"messages"`
	Agent    AgentConfig            `json:"agent_config"`
}

// HandleChat serves POST /api/generative/chat.
func (s *Service) HandleChat(w http.ResponseWriter, r *http.Request) {
	if !services.RequireMethod(w, r, http.MethodPost) {
		return
	}
	ctx, cancel := services.Context(r)
	defer cancel()

	var req ChatRequest
	if err := serializer.DecodeJSON(r, &req, defaults.MaxJSONBodyBytes); err != nil {
		services.WriteError(w, r, err, "Invalid chat request")
		return
	}
	if err := req.Validate(); err != nil {
		services.WriteError(w, r, err, "Invalid chat request")
		return
	}

	var resp ChatResponse
	var err error
	if req.UseRAG {
		resp.Message, resp.Sources, err = s.GroundedChat(ctx, req.Messages, req.Options())
	} else {
		resp.Message, err = s.ChatCompletion(ctx, req.Messages, req.Options())
	}
	if err != nil {
		services.WriteError(w, r, err, "Chat completion failed")
		return
	}
	serializer.RespondJSON(w, http.StatusOK, resp)
}

// HandleImage serves POST /api/generative/image.
func (s *Service) HandleImage(w http.ResponseWriter, r *http.Request) {
	if !services.RequireMethod(w, r, http.MethodPost) {
		return
	}
	ctx, cancel := services.Context(r)
	defer cancel()

	var req ImageRequest
	if err := serializer.DecodeJSON(r, &req, defaults.MaxJSONBodyBytes); err != nil {
		services.WriteError(w, r, err, "Invalid image request")
		return
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		services.WriteError(w, r, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "prompt cannot be empty"), "Invalid image request")
		return
	}

	url, err := s.GenerateImage(ctx, prompt)
	if err != nil {
		services.WriteError(w, r, err, "Image generation failed")
		return
	}
	serializer.RespondJSON(w, http.StatusOK, ImageResponse{URL: url})
}

// HandleAgentChat serves POST /api/agents/chat.
func (s *Service) HandleAgentChat(w http.ResponseWriter, r *http.Request) {
	if !services.RequireMethod(w, r, http.MethodPost) {
		return
	}
	ctx, cancel := services.Context(r)
	defer cancel()

	var req AgentRequest
	if err := serializer.DecodeJSON(r, &req, defaults.MaxJSONBodyBytes); err != nil {
		services.WriteError(w, r, err, "Invalid agent request")
		return
	}
	if len(req.Messages) == 0 {
		services.WriteError(w, r, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "messages cannot be empty"), "Invalid agent request")
		return
	}

	reply, err := s.ChatWithTools(ctx, req.Messages, req.Agent.Instructions, req.Agent.Tools)
	if err != nil {
		services.WriteError(w, r, err, "Agent chat failed")
		return
	}
	if reply.ToolCalls == nil {
		reply.ToolCalls = []services.ToolCall{}
	}
	serializer.RespondJSON(w, http.StatusOK, reply)
}
