package storage

import (
	"context"
	"errors"
	"sync"

	mediaapp "github.com/helenrojas261991-debug/home-services-florida/internal/application/media"
)

// Ensure StubMediaStorage implements mediaapp.ObjectStorage
var _ mediaapp.ObjectStorage = (*StubMediaStorage)(nil)

// StubMediaStorage is an in-memory ObjectStorage for development and tests.
// Objects live in a map and public URLs are synthesized from BaseURL.
type StubMediaStorage struct {
	// BaseURL is the base URL for generated public URLs.
	// Defaults to "https://storage.example.com" if not set.
	BaseURL string

	mu      sync.RWMutex
	objects map[string][]byte
}

// NewStubMediaStorage creates a new StubMediaStorage
func NewStubMediaStorage() *StubMediaStorage {
	return &StubMediaStorage{
		BaseURL: "https://storage.example.com",
		objects: make(map[string][]byte),
	}
}

// Upload stores the object in memory
func (s *StubMediaStorage) Upload(ctx context.Context, storageKey string, data []byte, contentType string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[storageKey] = data
	return nil
}

// PublicURL synthesizes a public URL for the key
func (s *StubMediaStorage) PublicURL(ctx context.Context, storageKey string) (string, error) {
	if storageKey == "" {
		return "", errors.New("storage key is required")
	}
	return s.BaseURL + "/" + storageKey, nil
}

// Delete removes the object from memory
func (s *StubMediaStorage) Delete(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, storageKey)
	return nil
}

// Exists reports whether the object was uploaded
func (s *StubMediaStorage) Exists(ctx context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, errors.New("storage key is required")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[storageKey]
	return ok, nil
}
