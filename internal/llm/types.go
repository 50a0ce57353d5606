package llm

import "context"

// generates a text completion from a single prompt
type TextGenerator interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Model() string
}

// parameters for a single completion call
type CompletionRequest struct {
	Prompt          string  `json:"prompt"`
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	TopP            float32 `json:"topP"`
	TopK            int     `json:"topK,omitempty"`
}

// holds configuration for the completion client
type Config struct {
	APIURL          string
	APIKey          string
	Model           string
	MaxOutputTokens int
	Temperature     float32
	TopP            float32
	TopK            int
}
