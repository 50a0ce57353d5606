package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// represents JWT claims for a dashboard session
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
