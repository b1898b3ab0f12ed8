package services

import (
	"context"
	"sync"
	"time"

	"logistics_dashboard/internal/redis"
)

// SessionStore keeps login sessions by token. *redis.Client satisfies it.
type SessionStore interface {
	SetSession(ctx context.Context, token string, data *redis.SessionData, ttl time.Duration) error
	GetSession(ctx context.Context, token string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, token string) error
}

type memorySession struct {
	data      redis.SessionData
	expiresAt time.Time
}

// memorySessionStore is used when no redis is configured.
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	now      func() time.Time
}

func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string]memorySession), now: time.Now}
}

func (m *memorySessionStore) SetSession(ctx context.Context, token string, data *redis.SessionData, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = memorySession{data: *data, expiresAt: m.now().Add(ttl)}
	return nil
}

func (m *memorySessionStore) GetSession(ctx context.Context, token string) (*redis.SessionData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return nil, redis.ErrSessionNotFound
	}
	if !m.now().Before(s.expiresAt) {
		delete(m.sessions, token)
		return nil, redis.ErrSessionNotFound
	}
	data := s.data
	return &data, nil
}

func (m *memorySessionStore) DeleteSession(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}
