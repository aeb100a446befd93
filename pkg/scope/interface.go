package scope

import "time"

// Manager issues and verifies signed session tokens.
type Manager interface {
	CreateToken(subject string) (Token, error)
	Verify(token string) (Payload, error)
}

// Token is a freshly signed token and its absolute expiry.
type Token struct {
	Value     string
	ExpiresAt time.Time
}
