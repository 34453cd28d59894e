// Package ai integrates Google Gemini for transaction category suggestions.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Minjxnx/budget-wise/internal/domain"
)

// GeminiSuggester implements domain.CategorySuggester using Google Gemini.
type GeminiSuggester struct {
	apiKey    string
	modelName string
}

// NewGeminiSuggester creates a new Gemini-backed suggester.
func NewGeminiSuggester(apiKey string) *GeminiSuggester {
	return &GeminiSuggester{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the suggester is configured with an API key.
func (s *GeminiSuggester) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestCategory asks Gemini to pick a category for a transaction description.
func (s *GeminiSuggester) SuggestCategory(ctx context.Context, description string) (*domain.CategorySuggestion, error) {
	if !s.IsAvailable() {
		return nil, domain.ErrSuggesterUnavailable
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(description)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	suggestion, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return suggestion, nil
}

// buildPrompt creates the categorization prompt for Gemini.
func (s *GeminiSuggester) buildPrompt(description string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert at categorizing personal finance transactions. ")
	sb.WriteString("Pick the single best category for the transaction description below.\n\n")

	sb.WriteString("AVAILABLE CATEGORIES (use ONLY these exact IDs):\n")
	for _, cat := range domain.Categories() {
		sb.WriteString(fmt.Sprintf("- ID: %s, Name: %s\n", cat.ID, cat.Name))
	}

	sb.WriteString(fmt.Sprintf("\nTRANSACTION DESCRIPTION: %q\n", description))

	sb.WriteString(`
Respond with a single JSON object:
{
  "category_id": "one of the IDs above",
  "confidence": 0.0-1.0,
  "reasoning": "brief explanation"
}

If nothing fits well, use "other" with a low confidence.

RESPONSE FORMAT: Return only the JSON object, no additional text.
`)

	return sb.String()
}

// geminiSuggestion represents the raw response from Gemini.
type geminiSuggestion struct {
	CategoryID string  `json:"category_id"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// parseResponse extracts the suggestion from the Gemini response.
func (s *GeminiSuggester) parseResponse(resp *genai.GenerateContentResponse) (*domain.CategorySuggestion, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var raw geminiSuggestion
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	// The model occasionally invents IDs despite the prompt
	if !domain.IsValidCategory(raw.CategoryID) {
		raw.CategoryID = "other"
		raw.Confidence = 0
	}

	if raw.Confidence < 0 {
		raw.Confidence = 0
	}
	if raw.Confidence > 1 {
		raw.Confidence = 1
	}

	return &domain.CategorySuggestion{
		CategoryID: raw.CategoryID,
		Confidence: raw.Confidence,
		Reasoning:  raw.Reasoning,
	}, nil
}
