package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Session é a sessão aberta após a senha compartilhada ser validada
type Session struct {
	ID        string `json:"id"`
	IssuedAt  string `json:"issued_at"`
	ExpiresAt string `json:"expires_at"`
}

type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}
