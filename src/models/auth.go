package models

import "time"

// UnlockRequest represents the board unlock payload
type UnlockRequest struct {
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents an issued board token
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
