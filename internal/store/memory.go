package store

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// MemoryStore is an in-process DocumentStore for the CLI and for tests.
// Documents are stored as deep copies so callers cannot mutate stored state.
type MemoryStore struct {
	mu      sync.RWMutex
	resumes map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{resumes: make(map[string][]byte)}
}

// Load returns the stored resume for an id.
func (s *MemoryStore) Load(_ context.Context, id string) (*types.Resume, error) {
	s.mu.RLock()
	data, ok := s.resumes[id]
	s.mu.RUnlock()
	if !ok {
		return nil, &NotFoundError{ID: id}
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// Save stores the resume under its document id, assigning one if missing.
func (s *MemoryStore) Save(_ context.Context, resume *types.Resume) error {
	id := resume.ID()
	data, err := json.Marshal(resume)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.resumes[id] = data
	s.mu.Unlock()
	return nil
}

// List returns all stored document ids, sorted.
func (s *MemoryStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	ids := make([]string, 0, len(s.resumes))
	for id := range s.resumes {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	sort.Strings(ids)
	return ids, nil
}
