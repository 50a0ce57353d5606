package functions

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// chat message roles
const (
	RoleUser = "user"
	RoleAI   = "ai"
)

type Repository struct {
	db *pgxpool.Pool
}

// a generated plugin function owned by a dashboard user, together with its
// latest code version
type Function struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	ChatSessionID string    `json:"chat_session_id"`
	LatestVersion int       `json:"latest_version"`
	LatestCode    string    `json:"latest_code,omitempty"`
	LatestUsage   string    `json:"latest_usage,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// one immutable snapshot of generated code; versions are append-only and
// monotonic per chat session, starting at 1
type CodeVersion struct {
	ID                string    `json:"id"`
	FunctionID        string    `json:"function_id"`
	ChatSessionID     string    `json:"chat_session_id"`
	Version           int       `json:"version"`
	Code              string    `json:"code"`
	UsageInstructions string    `json:"usage_instructions,omitempty"`
	Prompt            string    `json:"prompt,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// one immutable chat turn; follow-ups write these in user/ai pairs
type ChatMessage struct {
	ID            string    `json:"id"`
	ChatSessionID string    `json:"chat_session_id"`
	FunctionID    string    `json:"function_id"`
	Role          string    `json:"role"` // "user" or "ai"
	Content       string    `json:"content"`
	IsCode        bool      `json:"is_code,omitempty"`
	CreatedAt     time.Time `json:"timestamp"`
}

// contains data for saving a newly generated function
type CreateFunctionRequest struct {
	Name              string `json:"name" binding:"required,max=100"`
	Code              string `json:"code" binding:"required,max=1048576"` // 1MB limit
	UsageInstructions string `json:"usage_instructions,omitempty" binding:"max=10000"`
	Prompt            string `json:"prompt,omitempty" binding:"max=10000"`
}
