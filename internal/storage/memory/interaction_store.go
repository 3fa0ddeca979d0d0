package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
	"github.com/Harry-maxy/whale-radar-ai/internal/storage"
)

// InteractionStore is an in-memory implementation of storage.InteractionStore.
type InteractionStore struct {
	mu   sync.RWMutex
	data []domain.TokenInteraction
}

// NewInteractionStore creates a new in-memory interaction store.
func NewInteractionStore() *InteractionStore {
	return &InteractionStore{}
}

// Insert appends one interaction record.
func (s *InteractionStore) Insert(_ context.Context, it *domain.TokenInteraction) error {
	if it == nil || it.WalletAddress == "" || it.TokenMint == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = append(s.data, *it)
	return nil
}

// InsertBulk appends multiple records atomically.
func (s *InteractionStore) InsertBulk(_ context.Context, its []*domain.TokenInteraction) error {
	if len(its) == 0 {
		return nil
	}

	for _, it := range its {
		if it == nil || it.WalletAddress == "" || it.TokenMint == "" {
			return storage.ErrInvalidInput
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range its {
		s.data = append(s.data, *it)
	}
	return nil
}

// GetByWallet retrieves all interactions for a wallet, ordered by block_time ASC.
func (s *InteractionStore) GetByWallet(_ context.Context, walletAddress string) ([]domain.TokenInteraction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.TokenInteraction
	for _, it := range s.data {
		if it.WalletAddress == walletAddress {
			result = append(result, it)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].BlockTime < result[j].BlockTime
	})

	return result, nil
}

// GetByTimeRange retrieves interactions within [start, end], ordered by block_time ASC.
func (s *InteractionStore) GetByTimeRange(_ context.Context, start, end uint64) ([]domain.TokenInteraction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.TokenInteraction
	for _, it := range s.data {
		if it.BlockTime >= start && it.BlockTime <= end {
			result = append(result, it)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].BlockTime < result[j].BlockTime
	})

	return result, nil
}

var _ storage.InteractionStore = (*InteractionStore)(nil)
