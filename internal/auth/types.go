package auth

import "time"

// Credentials is the single username/password pair allowed to log in.
type Credentials struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
}
