package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// JwtClaims are the claims carried by every issued token.
type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest is the body for POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User represents a merchant account.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatMessage is one stored turn of an assistant conversation. Parsed holds
// the structured form of assistant replies, null for user prompts.
type ChatMessage struct {
	ID         string          `json:"id"`
	MerchantID string          `json:"merchant_id"`
	Role       string          `json:"role"`
	Content    string          `json:"content"`
	Parsed     *ParsedResponse `json:"parsed,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
