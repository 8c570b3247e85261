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

// Package mock provides the canned responses returned in demo mode, so the
// UI can be explored before any cloud resource exists.
package mock

import (
	"strings"

	"github.com/ai102-labs/command-center/pkg/services"
)

// ChatCompletion returns a demo assistant reply.
func ChatCompletion() string {
	return "This is a demo response from GPT. In production, this would be a " +
		"real Azure OpenAI chat completion. The model would consider your " +
		"message history, system instructions, and parameters like " +
		"temperature and max_tokens to generate a contextual reply."
}

// GenerateImage returns a placeholder image URL.
func GenerateImage() string {
	return "https://placehold.co/1024x1024/2563eb/ffffff?text=DALL-E+Demo+Image"
}

// ChatWithTools returns a demo agent reply with one simulated tool call.
func ChatWithTools() services.AgentReply {
	return services.AgentReply{
		Message: "This is a demo agent response. In production, the agent would " +
			"follow its system instructions and use the configured tools to " +
			"answer your question.",
		ToolCalls: []services.ToolCall{
			{
				Tool:   "web_search",
				Input:  "demo search query",
				Output: "Demo result: This is a simulated tool call.",
			},
		},
	}
}

// AnalyzeImage returns a demo image analysis.
func AnalyzeImage() services.ImageAnalysis {
	return services.ImageAnalysis{
		Caption:     "A sample image showing a city skyline at sunset",
		Description: "city, skyline, sunset, buildings, clouds, urban",
		Tags:        []string{"city", "skyline", "sunset", "building", "cloud", "sky"},
		Objects: []services.DetectedObject{
			{Name: "building", Confidence: 0.95, BoundingBox: &services.BoundingBox{X: 100, Y: 200, W: 300, H: 400}},
			{Name: "cloud", Confidence: 0.88, BoundingBox: &services.BoundingBox{X: 50, Y: 10, W: 500, H: 150}},
		},
	}
}

// OCRImage returns demo OCR lines.
func OCRImage() services.OCRResult {
	return services.OCRResult{
		Text: []string{
			"DEMO OCR OUTPUT",
			"This is a simulated OCR result.",
			"In production, the Azure Read API would",
			"extract actual text from your image.",
			"Line 5: It handles printed and handwritten text.",
		},
	}
}

// AnalyzeText returns a demo analysis covering every analysis type.
func AnalyzeText() services.TextAnalysis {
	return services.TextAnalysis{
		Sentiment: &services.Sentiment{
			Label:  "positive",
			Scores: services.SentimentScores{Positive: 0.89, Neutral: 0.08, Negative: 0.03},
		},
		KeyPhrases: []string{"demo mode", "Azure AI services", "text analytics"},
		Entities: []services.Entity{
			{Text: "Azure", Category: "Organization", Confidence: 0.95},
			{Text: "AI-102", Category: "Other", Confidence: 0.87},
		},
		PIIEntities: []services.Entity{
			{Text: "john@example.com", Category: "Email"},
		},
		Language: &services.DetectedLanguage{Name: "English", ISO: "en", Confidence: 0.99},
	}
}

// TranslateText returns a demo translation.
func TranslateText() string {
	return "[Demo] Translated text would appear here."
}

// SpeechToText returns a demo transcription.
func SpeechToText() string {
	return "This is a demo transcription of the audio you uploaded."
}

// TextToSpeech returns a demo audio data URL.
func TextToSpeech() string {
	return "data:audio/mp3;base64,DEMO_AUDIO_DATA"
}

// SearchDocuments returns demo search results.
func SearchDocuments() []services.SearchResult {
	return []services.SearchResult{
		{
			Content: "Azure AI Search is a cloud search service that gives " +
				"developers APIs and tools for building rich search " +
				"experiences over private, heterogeneous content.",
			Score:      8.5,
			Source:     "demo-document.txt",
			Highlights: []string{"<em>Azure AI Search</em> is a cloud search service"},
			Metadata:   map[string]string{"title": "demo-document.txt", "source": "demo-document.txt"},
		},
		{
			Content: "Retrieval-Augmented Generation (RAG) combines search with " +
				"generative AI to ground responses in your own data.",
			Score:    6.2,
			Source:   "rag-overview.txt",
			Metadata: map[string]string{"title": "rag-overview.txt", "source": "rag-overview.txt"},
		},
	}
}

// SafetyAnalyzeText returns a demo analysis with every category safe.
func SafetyAnalyzeText() services.SafetyAnalysis {
	return services.SafetyAnalysis{
		Categories: []services.SafetyCategory{
			{Name: "Hate", Severity: 0, Label: "Safe"},
			{Name: "SelfHarm", Severity: 0, Label: "Safe"},
			{Name: "Sexual", Severity: 0, Label: "Safe"},
			{Name: "Violence", Severity: 0, Label: "Safe"},
		},
	}
}

// CheckPrompt returns a demo prompt check that is not flagged.
func CheckPrompt() services.PromptCheck {
	return services.PromptCheck{Flagged: false}
}

// AnalyzeDocument returns a demo extraction shaped after modelID.
func AnalyzeDocument(modelID string) services.DocumentAnalysis {
	res := services.DocumentAnalysis{
		ModelID: modelID,
		Pages: []services.DocumentPage{
			{PageNumber: 1, Width: 8.5, Height: 11, Unit: "inch", Lines: 24},
		},
		Tables: []services.DocumentTable{},
	}

	switch {
	case strings.HasPrefix(modelID, "prebuilt-receipt"):
		res.Fields = map[string]services.DocumentField{
			"MerchantName":    {Value: "Contoso Coffee", Confidence: 0.97},
			"TransactionDate": {Value: "2025-01-15", Confidence: 0.95},
			"Total":           {Value: "12.40", Confidence: 0.98},
		}
	case strings.HasPrefix(modelID, "prebuilt-idDocument"):
		res.Fields = map[string]services.DocumentField{
			"FirstName":      {Value: "Demo", Confidence: 0.93},
			"LastName":       {Value: "Student", Confidence: 0.93},
			"DocumentNumber": {Value: "D1234567", Confidence: 0.91},
		}
	case strings.HasPrefix(modelID, "prebuilt-businessCard"):
		res.Fields = map[string]services.DocumentField{
			"ContactNames": {Value: "Demo Student", Confidence: 0.94},
			"CompanyNames": {Value: "Contoso", Confidence: 0.92},
			"Emails":       {Value: "demo@contoso.com", Confidence: 0.96},
		}
	case strings.HasPrefix(modelID, "prebuilt-tax.us.w2"):
		res.Fields = map[string]services.DocumentField{
			"TaxYear":                       {Value: "2024", Confidence: 0.99},
			"Employer.Name":                 {Value: "Contoso Ltd", Confidence: 0.95},
			"WagesTipsAndOtherCompensation": {Value: "52000.00", Confidence: 0.94},
		}
	default:
		res.Fields = map[string]services.DocumentField{
			"VendorName":   {Value: "Contoso Ltd", Confidence: 0.96},
			"InvoiceId":    {Value: "INV-0042", Confidence: 0.98},
			"InvoiceTotal": {Value: "1,250.00", Confidence: 0.97},
		}
		res.Tables = []services.DocumentTable{
			{
				RowCount:    3,
				ColumnCount: 3,
				Cells: [][]string{
					{"Description", "Quantity", "Amount"},
					{"Consulting", "10", "1,000.00"},
					{"Support", "1", "250.00"},
				},
			},
		}
	}
	return res
}
