package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SuggestionService produces a short menu description for a dish name.
// Implementations call a generative-text backend; the result only prefills a
// form field and failures are always recoverable.
type SuggestionService interface {
	SuggestDescription(ctx context.Context, itemName string) (string, error)
}

// GeminiSuggestionService implements SuggestionService against the Gemini
// generateContent REST endpoint.
type GeminiSuggestionService struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

var suggestionServiceInstance SuggestionService

// InitSuggestionService initializes the suggestion service with a Gemini
// backend.
func InitSuggestionService(apiKey, endpoint string) SuggestionService {
	suggestionServiceInstance = &GeminiSuggestionService{
		apiKey:   apiKey,
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	return suggestionServiceInstance
}

// GetSuggestionService returns the initialized suggestion service instance.
func GetSuggestionService() SuggestionService {
	return suggestionServiceInstance
}

// SetSuggestionService sets the suggestion service instance (primarily for testing)
func SetSuggestionService(service SuggestionService) {
	suggestionServiceInstance = service
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// SuggestDescription asks the model for a short, enticing description of the
// named dish.
func (s *GeminiSuggestionService) SuggestDescription(ctx context.Context, itemName string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("suggestion service is not configured (missing API key)")
	}

	prompt := fmt.Sprintf("Generate a short, enticing menu description for an Indian dish called '%s'. Keep it under 15 words and sound appealing.", itemName)
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode suggestion request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/gemini-2.5-flash:generateContent?key=%s", s.endpoint, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create suggestion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call suggestion endpoint: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("suggestion endpoint returned status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode suggestion response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("suggestion response contained no text")
	}

	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}
