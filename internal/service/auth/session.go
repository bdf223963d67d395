package auth

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

type sessionMeta struct {
	Phone     string
	ExpiresAt time.Time
}

// sessionManager issues and validates the opaque bearer tokens handed out
// after OTP verification. Tokens live in memory for their TTL.
type sessionManager struct {
	mu       sync.Mutex
	sessions map[string]sessionMeta
	now      func() time.Time
}

func newSessionManager() *sessionManager {
	return &sessionManager{
		sessions: make(map[string]sessionMeta),
		now:      time.Now,
	}
}

func (m *sessionManager) Issue(phone string, ttl time.Duration) (string, error) {
	token, err := randomToken()
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = sessionMeta{Phone: phone, ExpiresAt: m.now().Add(ttl)}
	return token, nil
}

func (m *sessionManager) Validate(token string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	meta, ok := m.sessions[token]
	if !ok {
		return "", false
	}
	if m.now().After(meta.ExpiresAt) {
		delete(m.sessions, token)
		return "", false
	}
	return meta.Phone, true
}

func (m *sessionManager) Revoke(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
