package security

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoToken      = errors.New("no token set")
	ErrExpiredToken = errors.New("token has expired")
)

// TokenStore holds the bearer token for the signed-in renter. Synchronizers
// consult it before issuing requests so that a missing or expired token is
// reported as an auth failure without a round trip.
type TokenStore struct {
	mu    sync.RWMutex
	token string
	now   func() time.Time
}

func NewTokenStore() *TokenStore {
	return &TokenStore{now: time.Now}
}

// SetToken replaces the current bearer token. An empty string signs out.
func (s *TokenStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear signs out.
func (s *TokenStore) Clear() {
	s.SetToken("")
}

// Token returns the raw bearer token, empty when signed out.
func (s *TokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a usable token is present. A JWT whose exp
// claim has passed counts as signed out; opaque tokens cannot be inspected
// and pass as long as they are non-empty.
func (s *TokenStore) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return false
	}
	return !s.expired(s.token)
}

// Inspect validates the stored token shape and reports why it is unusable.
func (s *TokenStore) Inspect() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return ErrNoToken
	}
	if s.expired(s.token) {
		return ErrExpiredToken
	}
	return nil
}

func (s *TokenStore) expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Not a JWT; the server remains the authority on opaque tokens.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(s.now())
}
