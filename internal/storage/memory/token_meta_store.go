package memory

import (
	"context"
	"sync"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
	"github.com/Harry-maxy/whale-radar-ai/internal/storage"
)

// TokenMetaStore is an in-memory implementation of storage.TokenMetaStore.
type TokenMetaStore struct {
	mu   sync.RWMutex
	data map[string]*domain.TokenMeta // keyed by mint
}

// NewTokenMetaStore creates a new in-memory token metadata store.
func NewTokenMetaStore() *TokenMetaStore {
	return &TokenMetaStore{
		data: make(map[string]*domain.TokenMeta),
	}
}

// Insert adds metadata for a mint. Returns ErrDuplicateKey if the mint exists.
func (s *TokenMetaStore) Insert(_ context.Context, meta *domain.TokenMeta) error {
	if meta == nil || meta.Mint == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[meta.Mint]; exists {
		return storage.ErrDuplicateKey
	}

	copied := *meta
	s.data[meta.Mint] = &copied
	return nil
}

// GetByMint retrieves metadata by mint address. Returns ErrNotFound if not exists.
func (s *TokenMetaStore) GetByMint(_ context.Context, mint string) (*domain.TokenMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meta, exists := s.data[mint]
	if !exists {
		return nil, storage.ErrNotFound
	}

	copied := *meta
	return &copied, nil
}

var _ storage.TokenMetaStore = (*TokenMetaStore)(nil)
