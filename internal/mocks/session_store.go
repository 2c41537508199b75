package mocks

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Antonio12313/mexase-api/internal/service"
)

// MemorySessionStore is an in-memory SessionStore for tests. Sessions are
// stored as JSON so callers get the same round-trip semantics as the Redis
// store: missing ids map to ErrSessionNotFound and returned sessions never
// alias stored ones.
type MemorySessionStore struct {
	mu         sync.Mutex
	sessions   map[string][]byte
	submitting map[string]bool
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions:   make(map[string][]byte),
		submitting: make(map[string]bool),
	}
}

func (s *MemorySessionStore) Save(ctx context.Context, sess *service.WizardSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = data
	return nil
}

func (s *MemorySessionStore) Get(ctx context.Context, id string) (*service.WizardSession, error) {
	s.mu.Lock()
	data, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, service.ErrSessionNotFound
	}
	var sess service.WizardSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *MemorySessionStore) Update(ctx context.Context, sess *service.WizardSession) error {
	return s.Save(ctx, sess)
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	delete(s.submitting, id)
	return nil
}

func (s *MemorySessionStore) BeginSubmit(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting[id] {
		return false, nil
	}
	s.submitting[id] = true
	return true, nil
}

func (s *MemorySessionStore) EndSubmit(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.submitting, id)
	return nil
}
