package gen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	geminiBaseURL    = "https://generativelanguage.googleapis.com/v1beta/models"
	geminiModel      = "gemini-2.0-flash"
	geminiMaxRetries = 3
	geminiInitDelay  = time.Second
)

// ErrNoAPIKey is returned when the client was constructed without a
// key. Callers treat it like any other generation failure.
var ErrNoAPIKey = errors.New("gemini api key not set")

// GeminiClient calls the Gemini generateContent API.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	retryDelay time.Duration
	client     *http.Client
}

var _ Generator = (*GeminiClient)(nil)

// NewGeminiClient creates a client for the Gemini API. model may be
// empty to use the default.
func NewGeminiClient(apiKey, model string) *GeminiClient {
	if model == "" {
		model = geminiModel
	}
	return &GeminiClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    geminiBaseURL,
		retryDelay: geminiInitDelay,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
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

// Generate sends the prompt and returns the first candidate's text.
// Retries with exponential backoff on transient (429/5xx) responses.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", c.baseURL, c.model)

	var lastErr error
	for attempt := 0; attempt < geminiMaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay << (attempt - 1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-goog-api-key", c.apiKey)

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("http request: %w", err)
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("read response: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("gemini status %d: %s", resp.StatusCode, respBody)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("gemini status %d: %s", resp.StatusCode, respBody)
		}

		var parsed geminiResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return "", fmt.Errorf("decode response: %w", err)
		}
		if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
			return "", errors.New("gemini response has no candidates")
		}

		return parsed.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("gemini request failed after %d attempts: %w", geminiMaxRetries, lastErr)
}
