package scope

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL is the lifetime of a token when none is configured.
const DefaultTTL = time.Hour

type implManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option customises a Manager.
type Option func(*implManager)

// WithClock overrides the time source, used by tests to mint expired tokens.
func WithClock(now func() time.Time) Option {
	return func(m *implManager) { m.now = now }
}

// New creates an HS256 Manager.
func New(secret string, ttl time.Duration, opts ...Option) (Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &implManager{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// CreateToken signs a token for subject valid for the configured TTL.
func (m *implManager) CreateToken(subject string) (Token, error) {
	if subject == "" {
		return Token{}, ErrEmptySubject
	}

	now := m.now()
	exp := now.Add(m.ttl)
	claims := Payload{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return Token{}, fmt.Errorf("signing token: %w", err)
	}
	return Token{Value: signed, ExpiresAt: exp}, nil
}

// Verify checks signature, algorithm and expiry and returns the claims.
func (m *implManager) Verify(tokenString string) (Payload, error) {
	var claims Payload
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return Payload{}, ErrTokenInvalid
	}
	if claims.Subject == "" {
		return Payload{}, fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}
	return claims, nil
}
