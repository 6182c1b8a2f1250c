package repository

import (
	"context"
	"sync"
)

// MemoryBlobStore keeps collection blobs in process memory. It backs
// the test suite and the OSPRO_STORE=memory mode used for local runs
// without a DynamoDB endpoint. Data does not survive a restart.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

var _ BlobStore = (*MemoryBlobStore)(nil)

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: make(map[string][]byte)}
}

func (s *MemoryBlobStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, found := s.blobs[key]
	if !found {
		return nil, false, nil
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	return cp, true, nil
}

func (s *MemoryBlobStore) Put(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(payload))
	copy(cp, payload)
	s.blobs[key] = cp
	return nil
}

func (s *MemoryBlobStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}

// Seed writes a raw payload under a collection key, bypassing the
// envelope codec. Test helper for legacy and corrupt payload cases.
func (s *MemoryBlobStore) Seed(key string, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = []byte(string(payload))
}
