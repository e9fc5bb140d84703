// Package session keeps the authenticated user's token and display name between
// commands and across restarts of the terminal.
package session

import (
	"context"
	"sync"
)

// Keys under which the session is kept. They match what the mobile app wrote, so a
// shared redis instance can be read by both.
const (
	TokenKey    = "userToken"
	UserNameKey = "userName"
)

type Store interface {
	Token(ctx context.Context) (string, error)
	UserName(ctx context.Context) (string, error)
	Save(ctx context.Context, token, userName string) error
	Clear(ctx context.Context) error
}

type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Token(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.values[TokenKey], nil
}

func (s *MemoryStore) UserName(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.values[UserNameKey], nil
}

func (s *MemoryStore) Save(_ context.Context, token, userName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[TokenKey] = token
	s.values[UserNameKey] = userName

	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, TokenKey)
	delete(s.values, UserNameKey)

	return nil
}
