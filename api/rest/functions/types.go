package functions

import (
	"github.com/sycord/server/sycord/functions"
)

// response payload for function listings
type ListResponse struct {
	Functions []functions.Function `json:"functions"`
	Total     int                  `json:"total"`
}

// response payload for code version listings; the last element is the
// current version
type VersionsResponse struct {
	Versions []functions.CodeVersion `json:"versions"`
	Total    int                     `json:"total"`
}

// response payload for chat history listings
type MessagesResponse struct {
	Messages []functions.ChatMessage `json:"messages"`
	Total    int                     `json:"total"`
}
