package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/whdzera/atem/internal/metrics"
)

const (
	geminiModel   = "gemini-2.0-flash"
	geminiAPIURL  = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"
	geminiTimeout = 30 * time.Second

	// Keep only the leading paragraphs of a suggestion so chat replies
	// stay short.
	maxSuggestionParagraphs = 4
)

// GeminiService asks Gemini for a best-guess card name when a query
// misses both the local index and the card database. Disabled when no
// API key is configured; callers must check IsEnabled.
type GeminiService struct {
	apiKey  string
	client  *http.Client
	enabled bool
}

func NewGeminiService() *GeminiService {
	apiKey := os.Getenv("GEMINI_API_KEY")

	svc := &GeminiService{
		apiKey:  apiKey,
		client:  &http.Client{Timeout: geminiTimeout},
		enabled: apiKey != "",
	}

	if svc.enabled {
		log.Printf("Gemini fallback: enabled (model=%s)", geminiModel)
	} else {
		log.Printf("Gemini fallback: disabled (no GEMINI_API_KEY)")
	}

	return svc
}

// IsEnabled returns whether the fallback is available.
func (s *GeminiService) IsEnabled() bool {
	return s.enabled
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
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// SuggestCard returns a short natural-language suggestion for a card
// name that was not found anywhere.
func (s *GeminiService) SuggestCard(ctx context.Context, query string) (string, error) {
	if !s.enabled {
		return "", fmt.Errorf("gemini fallback is disabled")
	}

	metrics.GeminiRequestsTotal.Inc()

	prompt := fmt.Sprintf(
		"Find the Yu-Gi-Oh! card %q. If no card has exactly that name, suggest the closest real card names from the official card database.",
		query,
	)
	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode gemini request: %w", err)
	}

	reqURL := fmt.Sprintf(geminiAPIURL, geminiModel) + "?key=" + s.apiKey
	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		metrics.GeminiErrorsTotal.WithLabelValues("network").Inc()
		return "", fmt.Errorf("failed to reach gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.GeminiErrorsTotal.WithLabelValues("api").Inc()
		return "", fmt.Errorf("gemini API returned status %d", resp.StatusCode)
	}

	var gr geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		metrics.GeminiErrorsTotal.WithLabelValues("parse").Inc()
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}

	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		metrics.GeminiErrorsTotal.WithLabelValues("empty").Inc()
		return "", fmt.Errorf("gemini returned no candidates")
	}

	text := strings.TrimSpace(gr.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		metrics.GeminiErrorsTotal.WithLabelValues("empty").Inc()
		return "", fmt.Errorf("gemini returned empty text")
	}

	return firstParagraphs(text, maxSuggestionParagraphs), nil
}

// firstParagraphs keeps the first n blank-line separated paragraphs.
func firstParagraphs(text string, n int) string {
	paragraphs := strings.Split(text, "\n\n")
	if len(paragraphs) > n {
		paragraphs = paragraphs[:n]
	}
	return strings.TrimSpace(strings.Join(paragraphs, "\n\n"))
}
