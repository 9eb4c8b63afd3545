package identity

import (
	"context"
	"sync"

	"verigate/internal/identity/models"
	id "verigate/pkg/domain"
	"verigate/pkg/platform/sentinel"
)

// InMemoryStore is a thread-safe, map-backed profile store. Resubmitting
// personal info under the same session starts a fresh profile; the session
// index always points at the latest one.
type InMemoryStore struct {
	mu        sync.RWMutex
	profiles  map[id.ProfileID]models.Profile
	bySession map[id.SessionID]id.ProfileID
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		profiles:  make(map[id.ProfileID]models.Profile),
		bySession: make(map[id.SessionID]id.ProfileID),
	}
}

func (s *InMemoryStore) Create(_ context.Context, profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.profiles[profile.ID]; exists {
		return sentinel.ErrConflict
	}
	s.profiles[profile.ID] = *profile
	s.bySession[profile.SessionID] = profile.ID
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, profileID id.ProfileID) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[profileID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := profile
	return &copied, nil
}

func (s *InMemoryStore) GetBySession(_ context.Context, sessionID id.SessionID) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profileID, ok := s.bySession[sessionID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	profile := s.profiles[profileID]
	copied := profile
	return &copied, nil
}

func (s *InMemoryStore) Update(_ context.Context, profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.profiles[profile.ID]; !exists {
		return sentinel.ErrNotFound
	}
	s.profiles[profile.ID] = *profile
	return nil
}
