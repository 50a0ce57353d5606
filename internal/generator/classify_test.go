package generator

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		req  GenerateRequest
		want Mode
	}{
		{
			name: "bare message is a new request",
			req:  GenerateRequest{Message: "make a welcome bot"},
			want: ModeNew,
		},
		{
			name: "details present routes to details provided",
			req: GenerateRequest{
				Message: "make a welcome bot",
				Details: map[string]string{"welcome-channel-id": "123"},
			},
			want: ModeDetailsProvided,
		},
		{
			name: "empty details map still counts as details provided",
			req: GenerateRequest{
				Message: "make a welcome bot",
				Details: map[string]string{},
			},
			want: ModeDetailsProvided,
		},
		{
			name: "chat session with function is a follow-up",
			req: GenerateRequest{
				Message:       "also log joins",
				ChatSessionID: "sess-1",
				FunctionID:    "fn-1",
			},
			want: ModeFollowUp,
		},
		{
			name: "chat session without function is invalid",
			req: GenerateRequest{
				Message:       "also log joins",
				ChatSessionID: "sess-1",
			},
			want: ModeInvalid,
		},
		{
			name: "chat session takes precedence over details",
			req: GenerateRequest{
				Message:       "also log joins",
				ChatSessionID: "sess-1",
				FunctionID:    "fn-1",
				Details:       map[string]string{"channel": "123"},
			},
			want: ModeFollowUp,
		},
		{
			name: "chat session without function stays invalid even with details",
			req: GenerateRequest{
				Message:       "also log joins",
				ChatSessionID: "sess-1",
				Details:       map[string]string{"channel": "123"},
			},
			want: ModeInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.req); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}
