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

package services

// ChatMessage is a single turn in a conversation.
type ChatMessage struct {
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

// ChatOptions are the sampling parameters of a chat completion.
type ChatOptions struct {
	Model            string  `json:"model,omitempty"`
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"top_p"`
	MaxTokens        int     `json:"max_tokens"`
	FrequencyPenalty float64 `json:"frequency_penalty"`
	PresencePenalty  float64 `json:"presence_penalty"`
}

// DefaultChatOptions returns the parameters used when a request omits them.
func DefaultChatOptions() ChatOptions {
	return ChatOptions{
		Temperature: 0.7,
		TopP:        1.0,
		MaxTokens:   800,
	}
}

// ToolCall is a tool invocation made by an agent.
type ToolCall struct {
	Tool   string `json:"tool"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

// AgentReply is an agent's answer and the tools it called.
type AgentReply struct {
	Message   string     `json:"message"`
	ToolCalls []ToolCall `json:"tool_calls"`
}

// BoundingBox locates an object in an image, in pixels.
type BoundingBox struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// DetectedObject is an object found in an image.
type DetectedObject struct {
	Name        string       `json:"name"`
	Confidence  float64      `json:"confidence"`
	BoundingBox *BoundingBox `json:"boundingBox,omitempty"`
}

// ImageAnalysis describes an image.
type ImageAnalysis struct {
	Caption     string           `json:"caption,omitempty"`
	Description string           `json:"description,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Objects     []DetectedObject `json:"objects,omitempty"`
}

// OCRResult holds the lines read from an image.
type OCRResult struct {
	Text []string `json:"text"`
}

// SentimentScores are per-label confidence scores.
type SentimentScores struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// Sentiment is the overall sentiment of a text.
type Sentiment struct {
	Label  string          `json:"label"`
	Scores SentimentScores `json:"scores"`
}

// Entity is a named entity found in a text.
type Entity struct {
	Text       string  `json:"text"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence,omitempty"`
}

// DetectedLanguage is the language of a text.
type DetectedLanguage struct {
	Name       string  `json:"name"`
	ISO        string  `json:"iso"`
	Confidence float64 `json:"confidence"`
}

// TextAnalysis holds the results of the requested analysis types. Fields for
// types that were not requested are omitted.
type TextAnalysis struct {
	Sentiment   *Sentiment        `json:"sentiment,omitempty"`
	KeyPhrases  []string          `json:"keyPhrases,omitempty"`
	Entities    []Entity          `json:"entities,omitempty"`
	PIIEntities []Entity          `json:"piiEntities,omitempty"`
	Language    *DetectedLanguage `json:"language,omitempty"`
}

// Translation is the result of translating a text.
type Translation struct {
	Text     string            `json:"translated"`
	Detected *DetectedLanguage `json:"detected_language,omitempty"`
}

// SearchResult is a document matched by a query.
type SearchResult struct {
	Content    string            `json:"content"`
	Score      float64           `json:"score"`
	Source     string            `json:"source"`
	Highlights []string          `json:"highlights,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// SafetyCategory is the severity found for one harm category.
type SafetyCategory struct {
	Name     string `json:"name"`
	Severity int    `json:"severity"`
	Label    string `json:"label"`
}

// SafetyAnalysis holds per-category results.
type SafetyAnalysis struct {
	Categories []SafetyCategory `json:"categories"`
}

// PromptCheck reports whether a prompt looks like an injection attempt.
type PromptCheck struct {
	Flagged bool   `json:"flagged"`
	Reason  string `json:"reason,omitempty"`
}

// DocumentField is a value extracted from a document.
type DocumentField struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// DocumentTable is a table extracted from a document.
type DocumentTable struct {
	RowCount    int        `json:"rowCount"`
	ColumnCount int        `json:"columnCount"`
	Cells       [][]string `json:"cells"`
}

// DocumentPage summarizes a page of a document.
type DocumentPage struct {
	PageNumber int     `json:"pageNumber"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Unit       string  `json:"unit"`
	Lines      int     `json:"lines"`
}

// DocumentAnalysis is the result of running a document model.
type DocumentAnalysis struct {
	ModelID string                   `json:"modelId"`
	Fields  map[string]DocumentField `json:"fields"`
	Tables  []DocumentTable          `json:"tables"`
	Pages   []DocumentPage           `json:"pages"`
}

// DocumentModel describes a prebuilt document model.
type DocumentModel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
