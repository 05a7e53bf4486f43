package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: malformed input, wrong
// signature, expiry, unexpected algorithm. Callers must not distinguish
// between them, so only one error crosses this boundary.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies signed, expiring session tokens. The
// secret and TTL are fixed at construction, so a service value is safe for
// concurrent use without locking.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService signing with secret and issuing
// tokens valid for ttl.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// TTL returns the configured token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue creates a signed token for subject, valid from now until now + TTL.
func (s *TokenService) Issue(subject string) (string, error) {
	return s.IssueAt(subject, time.Now())
}

// IssueAt is Issue with an explicit issue time, for deterministic tests.
func (s *TokenService) IssueAt(subject string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates tokenStr against the current time and returns the subject
// it was issued for. Any failure yields ErrInvalidToken.
func (s *TokenService) Verify(tokenStr string) (string, error) {
	return s.VerifyAt(tokenStr, time.Now())
}

// VerifyAt is Verify with an explicit verification time.
func (s *TokenService) VerifyAt(tokenStr string, now time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
