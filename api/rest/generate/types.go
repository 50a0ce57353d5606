package generate

// request payload for AI plugin generation
type Request struct {
	Message       string            `json:"message" binding:"required"`
	ChatSessionID string            `json:"chat_session_id,omitempty"`
	FunctionID    string            `json:"function_id,omitempty"`
	Details       map[string]string `json:"details,omitempty"`
}
