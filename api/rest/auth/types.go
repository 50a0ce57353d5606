package auth

import (
	"github.com/sycord/server/sycord/users"
)

// response payload after a successful OAuth callback
type AuthResponse struct {
	User  *users.User `json:"user"`
	Token string      `json:"token"`
}
