// Package anthropic provides a behaviorist.Client implementation backed by
// the Anthropic Messages API.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dpq/pkg/behaviorist"
	"dpq/pkg/serrors"
)

// DefaultBaseURL is the public Anthropic API endpoint.
const DefaultBaseURL = "https://api.anthropic.com"

// apiVersion is the Messages API version header value.
const apiVersion = "2023-06-01"

// Client talks to the Anthropic Messages API and fulfills the
// behaviorist.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the API
	apiKey     string       // apiKey authenticates requests
	model      string       // model is the model identifier to use
	maxTokens  int          // maxTokens caps the response length
	baseURL    string       // baseURL allows overriding the endpoint in tests
}

// New constructs a Client that uses the provided http.Client and API key.
// An empty baseURL falls back to DefaultBaseURL.
func New(httpClient *http.Client, apiKey, model string, maxTokens int, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		model:      model,
		maxTokens:  maxTokens,
		baseURL:    baseURL,
	}
}

// ParseRateLimit extracts Anthropic rate-limit information from the HTTP
// response headers and converts it into a behaviorist.RateLimitStatus.
func ParseRateLimit(h http.Header) (behaviorist.RateLimitStatus, error) {
	atoi := func(s string) int {
		if s == "" {
			return 0
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}

		return 0
	}
	limit := atoi(h.Get("anthropic-ratelimit-requests-limit"))
	remaining := atoi(h.Get("anthropic-ratelimit-requests-remaining"))

	resetStr := h.Get("anthropic-ratelimit-requests-reset")
	resetAt, err := time.Parse(time.RFC3339Nano, resetStr)
	if err != nil {
		return behaviorist.RateLimitStatus{}, fmt.Errorf("could not parse reset at: %w", err)
	}

	return behaviorist.RateLimitStatus{Limit: limit, Remaining: remaining, ResetAt: resetAt}, nil
}

// Wire types for the Messages API.

type systemBlock struct {
	Type         string        `json:"type"`
	Text         string        `json:"text"`
	CacheControl *cacheControl `json:"cache_control,omitempty"`
}

type cacheControl struct {
	Type string `json:"type"`
}

type imageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type contentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *imageSource `json:"source,omitempty"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type messagesReq struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	System    []systemBlock `json:"system"`
	Messages  []message     `json:"messages"`
}

type messagesResp struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// complete sends one Messages API request and returns the concatenated text
// content of the response.
func (c *Client) complete(ctx context.Context, system string, content []contentBlock) (string, behaviorist.RateLimitStatus, error) {
	bodyBytes, err := json.Marshal(messagesReq{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System: []systemBlock{{
			Type:         "text",
			Text:         system,
			CacheControl: &cacheControl{Type: "ephemeral"},
		}},
		Messages: []message{{Role: "user", Content: content}},
	})
	if err != nil {
		return "", behaviorist.RateLimitStatus{}, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+"/v1/messages",
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return "", behaviorist.RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", behaviorist.RateLimitStatus{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl, rlErr := ParseRateLimit(resp.Header)
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", rl, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		if rlErr != nil {
			return "", rl, fmt.Errorf("could not parse rate limit: %w", rlErr)
		}

		return "", rl, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", rl, fmt.Errorf("messages request failed: %s", strings.TrimSpace(string(b)))
	}

	// successful
	var mr messagesResp
	if err := json.Unmarshal(b, &mr); err != nil {
		return "", rl, fmt.Errorf("could not decode response: %w", err)
	}
	var text strings.Builder
	for _, block := range mr.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", rl, fmt.Errorf("response contained no text content")
	}

	return text.String(), rl, nil
}

// stripFences removes a markdown code fence around a JSON payload, which the
// model sometimes adds despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	return strings.TrimSpace(s)
}

// extractJSON returns the first top-level JSON object embedded in the text.
func extractJSON(s string) (string, error) {
	s = stripFences(s)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON object found in response")
	}

	return s[start : end+1], nil
}

// Ensure Client conforms to the behaviorist.Client interface at compile time.
var _ behaviorist.Client = (*Client)(nil)
