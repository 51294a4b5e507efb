package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// GeminiClient implements Summarizer using the Gemini generateContent API
type GeminiClient struct {
	HTTP    *http.Client
	BaseURL string
	Model   string
	APIKey  string
	Logger  *slog.Logger
}

// NewGeminiClient creates a new Gemini API client
func NewGeminiClient(baseURL, model, apiKey string, logger *slog.Logger) *GeminiClient {
	return &GeminiClient{
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		BaseURL: baseURL,
		Model:   model,
		APIKey:  apiKey,
		Logger:  logger,
	}
}

// generateContentRequest represents the Gemini request format
type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateContentResponse represents the Gemini response format
type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

const (
	promptPreamble = "Summarize the following git commit messages as a daily work report, focusing on tasks completed. Messages: "
	maxRetries     = 3
	baseDelay      = 1 * time.Second
)

// NoSummary is returned when the API answers successfully but the response
// carries no candidate text. It is written into the report as-is so a
// missing summary never branches downstream.
const NoSummary = "[No summary returned by Gemini API]"

// Summarize generates a work summary for one date's messages
func (c *GeminiClient) Summarize(ctx context.Context, date string, messages []string) (string, error) {
	logger := c.logger()
	logger.Debug("Gemini summarizing date group", "model", c.Model, "date", date, "messages", len(messages))

	prompt := promptPreamble + strings.Join(messages, "\n")
	return c.callAPI(ctx, prompt)
}

// callAPI makes the HTTP request to the Gemini API with retry logic
func (c *GeminiClient) callAPI(ctx context.Context, prompt string) (string, error) {
	logger := c.logger()

	request := generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			// Jittered exponential backoff between attempts
			delay := time.Duration(float64(baseDelay) * math.Pow(2, float64(attempt-1)))
			jitter := time.Duration(rand.Float64() * float64(delay) * 0.1)
			logger.Debug("Gemini API retry backoff", "attempt", attempt, "delay", delay+jitter)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay + jitter):
			}
		}

		response, err := c.makeHTTPRequest(ctx, request)
		if err != nil {
			lastErr = err

			if httpErr, ok := err.(*HTTPError); ok && retryable(httpErr.StatusCode) {
				logger.Debug("Gemini API retryable failure", "attempt", attempt+1, "statusCode", httpErr.StatusCode)
				// Honor Retry-After on rate limits
				if httpErr.StatusCode == http.StatusTooManyRequests {
					if retryAfter := httpErr.Headers.Get("Retry-After"); retryAfter != "" {
						if seconds, parseErr := strconv.Atoi(retryAfter); parseErr == nil {
							select {
							case <-ctx.Done():
								return "", ctx.Err()
							case <-time.After(time.Duration(seconds) * time.Second):
							}
						}
					}
				}
				continue
			}

			logger.Debug("Gemini API request failed", "attempt", attempt+1, "error", err)
			return "", fmt.Errorf("Gemini API request failed: %w", err)
		}

		if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
			logger.Debug("Gemini API returned no candidate text")
			return NoSummary, nil
		}

		summary := response.Candidates[0].Content.Parts[0].Text
		logger.Debug("Gemini API request succeeded", "attempt", attempt+1, "summaryLength", len(summary))
		return summary, nil
	}

	logger.Debug("Gemini API failed after all retries", "maxRetries", maxRetries, "lastError", lastErr)
	return "", fmt.Errorf("Gemini API failed after %d retries: %w", maxRetries, lastErr)
}

// makeHTTPRequest performs the actual HTTP request
func (c *GeminiClient) makeHTTPRequest(ctx context.Context, request generateContentRequest) (*generateContentResponse, error) {
	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		strings.TrimRight(c.BaseURL, "/"), c.Model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-goog-api-key", c.APIKey)
	req.Header.Set("User-Agent", "commit-digest-cli/1.0")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Headers:    resp.Header,
		}
	}

	var response generateContentResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &response, nil
}

func (c *GeminiClient) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// retryable reports whether a status code is worth another attempt
func retryable(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= 500
}

// HTTPError represents an HTTP error response
type HTTPError struct {
	StatusCode int
	Body       string
	Headers    http.Header
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}
