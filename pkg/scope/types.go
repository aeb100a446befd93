package scope

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptySecret  = errors.New("scope: signing secret is required")
	ErrEmptySubject = errors.New("scope: subject is required")
	ErrTokenInvalid = errors.New("scope: invalid token")
)

// Payload is the claim set carried by a session token.
type Payload struct {
	jwt.RegisteredClaims
}
