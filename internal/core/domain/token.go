package domain

import "time"

// TokenType distinguishes access from refresh tokens. Only refresh tokens
// are persisted.
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

// TokenRecord is a persisted refresh-token document. The signed token string
// itself is the lookup key.
type TokenRecord struct {
	ID          string
	Token       string
	UserID      string
	Type        TokenType
	Expires     time.Time
	Blacklisted bool
	CreatedAt   time.Time
}

// TokenPair is a signed token together with its expiry.
type TokenPair struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// AuthTokens is the access/refresh pair returned by login and refresh.
type AuthTokens struct {
	Access  TokenPair `json:"access"`
	Refresh TokenPair `json:"refresh"`
}
