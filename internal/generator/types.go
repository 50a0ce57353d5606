package generator

import (
	"context"

	"github.com/sycord/server/internal/llm"
	"github.com/sycord/server/sycord/functions"
)

// generation mode selected from the request shape
type Mode int

const (
	ModeInvalid Mode = iota
	ModeNew
	ModeDetailsProvided
	ModeFollowUp
)

func (m Mode) String() string {
	switch m {
	case ModeNew:
		return "new"
	case ModeDetailsProvided:
		return "details_provided"
	case ModeFollowUp:
		return "follow_up"
	default:
		return "invalid"
	}
}

// persistence collaborator for follow-up generations
type FunctionStore interface {
	Get(ctx context.Context, functionID, userID string) (*functions.Function, error)
	AppendCodeVersion(ctx context.Context, version functions.CodeVersion, messages []functions.ChatMessage) (int, error)
}

// orchestrates classification, prompt composition, completion calls and
// follow-up persistence
type Generator struct {
	generator llm.TextGenerator // nil when AI features are not configured
	store     FunctionStore
	locks     *sessionLocks
}

// contains all inputs for one generation turn
type GenerateRequest struct {
	UserID        string
	Message       string
	ChatSessionID string
	FunctionID    string
	Details       map[string]string
}

// contains the composed marker-annotated response plus its decoded fields
type GenerateResponse struct {
	Response          string   `json:"response"`
	PluginName        string   `json:"plugin_name,omitempty"`
	RequestedDetails  []string `json:"requested_details,omitempty"`
	UsageInstructions string   `json:"usage_instructions,omitempty"`
	Code              string   `json:"code,omitempty"`
	Files             []string `json:"files,omitempty"`
	Version           int      `json:"version,omitempty"`
	Model             string   `json:"model,omitempty"`
}
