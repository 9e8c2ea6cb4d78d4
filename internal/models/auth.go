package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserClaimKey is the context key under which the authenticated claims
// are stored by the Authenticate middleware.
type UserClaimKey struct{}

// ValidatedBodyKey is the context key for a validated request body.
type ValidatedBodyKey struct{}

// ValidatedQueryKey is the context key for validated query parameters.
type ValidatedQueryKey struct{}

// UserClaims is the verified caller identity extracted from the access
// token. IP is populated by the Authenticate middleware from the request,
// it is never part of the token itself.
type UserClaims struct {
	UserID  uuid.UUID `json:"user_id"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"is_admin"`
	Issuer  string    `json:"issuer"`
	IP      string    `json:"-"`
	jwt.RegisteredClaims
}

// Error is the JSON envelope returned for every failed request.
type Error struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode"`
}

// Response is the JSON envelope returned for every successful request.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}
