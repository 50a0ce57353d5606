package llm

import (
	"errors"
	"os"
	"strconv"
)

// returned when no completion API credential is configured; callers treat
// this as "AI features disabled", not as a startup failure
var ErrNotConfigured = errors.New("COMPLETION_API_KEY not configured")

const (
	defaultAPIURL          = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultModel           = "gemini-2.0-flash"
	defaultMaxOutputTokens = 8192
	defaultTemperature     = float32(0.7)
	defaultTopP            = float32(0.95)
	defaultTopK            = 40
)

// loadConfig loads completion client configuration from environment variables
func loadConfig() (*Config, error) {
	apiKey := os.Getenv("COMPLETION_API_KEY")
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	apiURL := os.Getenv("COMPLETION_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	model := os.Getenv("COMPLETION_MODEL")
	if model == "" {
		model = defaultModel
	}

	maxOutputTokens := defaultMaxOutputTokens
	if maxTokensStr := os.Getenv("COMPLETION_MAX_OUTPUT_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			maxOutputTokens = val
		}
	}

	temperature := defaultTemperature
	if tempStr := os.Getenv("COMPLETION_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			temperature = float32(val)
		}
	}

	return &Config{
		APIURL:          apiURL,
		APIKey:          apiKey,
		Model:           model,
		MaxOutputTokens: maxOutputTokens,
		Temperature:     temperature,
		TopP:            defaultTopP,
		TopK:            defaultTopK,
	}, nil
}
