package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// shared HTTP client for completion API calls; generation of larger plugins
// regularly takes tens of seconds, so the timeout is generous
var completionHTTPClient = &http.Client{
	Timeout: 120 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for completion API calls (10 requests/second with burst capacity of 5)
var completionRateLimiter = rate.NewLimiter(10, 5)

type completionRequestBody struct {
	Prompt          string  `json:"prompt"`
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	TopP            float32 `json:"topP"`
	TopK            int     `json:"topK,omitempty"`
}

type completionResponseBody struct {
	Text string `json:"text"`
}

// HTTP client for the external completion API
type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	if config.MaxOutputTokens == 0 {
		config.MaxOutputTokens = defaultMaxOutputTokens
	}

	if config.Temperature == 0 {
		config.Temperature = defaultTemperature
	}

	if config.TopP == 0 {
		config.TopP = defaultTopP
	}

	return &Client{
		config:     config,
		httpClient: completionHTTPClient,
	}
}

func (c *Client) Model() string {
	return c.config.Model
}

// issues a single completion call; a non-2xx status or empty completion
// text is a hard failure, never retried here
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	temperature := req.Temperature
	if temperature == 0 {
		temperature = c.config.Temperature
	}

	maxOutputTokens := req.MaxOutputTokens
	if maxOutputTokens == 0 {
		maxOutputTokens = c.config.MaxOutputTokens
	}

	topP := req.TopP
	if topP == 0 {
		topP = c.config.TopP
	}

	topK := req.TopK
	if topK == 0 {
		topK = c.config.TopK
	}

	reqBody := completionRequestBody{
		Prompt:          req.Prompt,
		Temperature:     temperature,
		MaxOutputTokens: maxOutputTokens,
		TopP:            topP,
		TopK:            topK,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateText", c.config.APIURL, c.config.Model)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.config.APIKey)

	// rate limiting
	if err := completionRateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp completionResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	text := strings.TrimSpace(apiResp.Text)
	if text == "" {
		return "", fmt.Errorf("no content in response")
	}

	return text, nil
}
